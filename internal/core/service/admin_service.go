package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// AdminService fronts the admin-scoped product CRUD. The cached role is
// checked locally before any call, and the backend's own 403 still maps to
// ErrForbidden — the backend remains authoritative.
type AdminService struct {
	backend ports.BackendClient
	auth    ports.AuthStore
	logger  zerolog.Logger
}

func NewAdminService(backend ports.BackendClient, auth ports.AuthStore, logger zerolog.Logger) *AdminService {
	return &AdminService{backend: backend, auth: auth, logger: logger}
}

func (s *AdminService) ListProducts(ctx context.Context, sessionID string) ([]domain.Product, error) {
	auth, err := s.requireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.backend.AdminListProducts(ctx, auth.Token)
}

func (s *AdminService) CreateProduct(ctx context.Context, sessionID string, input ports.CreateProductInput) (*domain.Product, error) {
	auth, err := s.requireAdmin(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	created, err := s.backend.AdminCreateProduct(ctx, auth.Token, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", created.ID).
		Str("name", created.Name).
		Msg("product created")

	return created, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, sessionID string, productID int64) error {
	auth, err := s.requireAdmin(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.backend.AdminDeleteProduct(ctx, auth.Token, productID); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", productID).Msg("product deleted")
	return nil
}

func (s *AdminService) requireAdmin(ctx context.Context, sessionID string) (*domain.Auth, error) {
	auth, err := s.auth.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !auth.Valid() {
		return nil, domain.ErrAuthRequired
	}
	if !auth.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return auth, nil
}
