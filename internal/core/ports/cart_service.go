package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// AddCartItemInput describes a line being added to the cart. Quantity
// defaults to 1 upstream; a non-positive quantity is rejected before it
// reaches the store.
type AddCartItemInput struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int
	ImageURL  string
}

// CartView is the derived snapshot handed to the transport layer: the lines
// plus the two aggregates every consumer needs.
type CartView struct {
	Items     []domain.CartItem
	ItemCount int
	Total     float64
}

// CartService exposes the session cart's operations. Every mutation
// broadcasts a cart-change notification so independent consumers stay
// consistent without sharing memory.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	Add(ctx context.Context, sessionID string, input AddCartItemInput) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartView, error)
	Remove(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	Clear(ctx context.Context, sessionID string) error
}
