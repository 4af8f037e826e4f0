package service

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// OrderService reads the session user's order history from the backend.
// Orders are read-only here; all state changes are backend-driven.
type OrderService struct {
	backend ports.BackendClient
	auth    ports.AuthStore
}

func NewOrderService(backend ports.BackendClient, auth ports.AuthStore) *OrderService {
	return &OrderService{backend: backend, auth: auth}
}

func (s *OrderService) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	auth, err := s.requireAuth(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.backend.ListUserOrders(ctx, auth.Token, auth.User.ID)
}

func (s *OrderService) GetOrder(ctx context.Context, sessionID string, orderID int64) (*domain.Order, error) {
	auth, err := s.requireAuth(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	order, err := s.backend.GetOrder(ctx, auth.Token, orderID)
	if err != nil {
		return nil, err
	}
	// The backend scopes order reads by token, but double-check ownership so
	// a misconfigured backend cannot leak another user's order through us.
	if order.UserID != 0 && order.UserID != auth.User.ID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) requireAuth(ctx context.Context, sessionID string) (*domain.Auth, error) {
	auth, err := s.auth.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !auth.Valid() {
		return nil, domain.ErrAuthRequired
	}
	return auth, nil
}
