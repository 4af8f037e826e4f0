package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/api/metrics"
	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
)

// CartService implements the session cart operations on top of a CartStore.
// Each mutation is a synchronous read-modify-write followed by a cart-change
// broadcast; there is no locking because the store's contract is
// last-writer-wins per session.
type CartService struct {
	store  ports.CartStore
	events *bus.Bus
	logger zerolog.Logger
}

func NewCartService(store ports.CartStore, events *bus.Bus, logger zerolog.Logger) *CartService {
	return &CartService{store: store, events: events, logger: logger}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*ports.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (s *CartService) Add(ctx context.Context, sessionID string, input ports.AddCartItemInput) (*ports.CartView, error) {
	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}
	return s.mutate(ctx, sessionID, "add", func(cart domain.Cart) domain.Cart {
		return cart.Add(domain.CartItem{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Quantity:  qty,
			ImageURL:  input.ImageURL,
		})
	})
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*ports.CartView, error) {
	return s.mutate(ctx, sessionID, "set_quantity", func(cart domain.Cart) domain.Cart {
		return cart.SetQuantity(productID, quantity)
	})
}

func (s *CartService) Remove(ctx context.Context, sessionID string, productID int64) (*ports.CartView, error) {
	return s.mutate(ctx, sessionID, "remove", func(cart domain.Cart) domain.Cart {
		return cart.Remove(productID)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	s.events.PublishCartChanged(sessionID)
	return nil
}

func (s *CartService) mutate(ctx context.Context, sessionID, op string, apply func(domain.Cart) domain.Cart) (*ports.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := apply(cart)
	if err := s.store.Save(ctx, sessionID, updated); err != nil {
		return nil, err
	}

	metrics.CartOperationsTotal.WithLabelValues(op).Inc()
	s.events.PublishCartChanged(sessionID)

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("op", op).
		Int("item_count", updated.ItemCount()).
		Msg("cart updated")

	return view(updated), nil
}

func view(cart domain.Cart) *ports.CartView {
	return &ports.CartView{
		Items:     cart,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}
}
