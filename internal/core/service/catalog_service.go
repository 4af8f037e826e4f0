package service

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// CatalogService serves the public catalog. Prices arrive from the backend
// as number-or-string and are normalized by the domain type before they
// reach this layer; the view just flattens them.
type CatalogService struct {
	backend ports.BackendClient
}

func NewCatalogService(backend ports.BackendClient) *CatalogService {
	return &CatalogService{backend: backend}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]ports.ProductView, error) {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*ports.ProductView, error) {
	p, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	v := productView(*p)
	return &v, nil
}

func productView(p domain.Product) ports.ProductView {
	return ports.ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         float64(p.Price),
		StockQuantity: p.StockQuantity,
		StockStatus:   p.StockStatus(),
		ImageURL:      p.ImageURL,
	}
}
