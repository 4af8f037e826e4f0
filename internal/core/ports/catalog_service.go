package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// ProductView is a catalog entry with its price normalized and its stock
// badge derived.
type ProductView struct {
	ID            int64
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	StockStatus   string
	ImageURL      string
}

// CatalogService exposes the public catalog reads.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]ProductView, error)
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
}

// OrderService exposes the session user's order history. Both operations
// require an authenticated session.
type OrderService interface {
	ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, sessionID string, orderID int64) (*domain.Order, error)
}

// AdminService exposes the admin product CRUD. All operations require the
// admin role; the backend's 403 maps to domain.ErrForbidden.
type AdminService interface {
	ListProducts(ctx context.Context, sessionID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, sessionID string, input CreateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sessionID string, productID int64) error
}
