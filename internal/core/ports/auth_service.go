package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// LoginInput carries credentials to the login use case.
type LoginInput struct {
	Email    string
	Password string
}

// AuthService owns the session's auth lifecycle: login/signup against the
// backend, caching the token+user pair, and logout.
type AuthService interface {
	Login(ctx context.Context, sessionID string, input LoginInput) (*domain.Auth, error)
	Signup(ctx context.Context, sessionID string, input SignupInput) (*domain.Auth, error)
	Logout(ctx context.Context, sessionID string) error
	// Current returns the cached auth record, or nil when not authenticated.
	Current(ctx context.Context, sessionID string) (*domain.Auth, error)
}
