package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// CartStore persists one cart per storefront session. Implementations must
// treat malformed persisted data as an empty cart, never as an error, and
// must tolerate last-writer-wins overwrites from concurrent sessions.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// AuthStore persists the token+user pair for a session. Get returns
// (nil, nil) when the record is absent, incomplete, or malformed — callers
// treat all three identically as "not authenticated".
type AuthStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Auth, error)
	Save(ctx context.Context, sessionID string, auth *domain.Auth) error
	Clear(ctx context.Context, sessionID string) error
}
