package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
)

// AuthService delegates credential checks to the backend and caches the
// resulting token+user pair in the session's auth store. Passwords pass
// through verbatim; nothing credential-shaped is persisted here.
type AuthService struct {
	backend ports.BackendClient
	store   ports.AuthStore
	events  *bus.Bus
	logger  zerolog.Logger
}

func NewAuthService(backend ports.BackendClient, store ports.AuthStore, events *bus.Bus, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, store: store, events: events, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, sessionID string, input ports.LoginInput) (*domain.Auth, error) {
	auth, err := s.backend.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, auth); err != nil {
		return nil, err
	}
	s.events.PublishAuthChanged(sessionID)

	s.logger.Info().
		Str("session_id", sessionID).
		Int64("user_id", auth.User.ID).
		Msg("user logged in")

	return auth, nil
}

func (s *AuthService) Signup(ctx context.Context, sessionID string, input ports.SignupInput) (*domain.Auth, error) {
	auth, err := s.backend.Signup(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, auth); err != nil {
		return nil, err
	}
	s.events.PublishAuthChanged(sessionID)

	s.logger.Info().
		Str("session_id", sessionID).
		Int64("user_id", auth.User.ID).
		Msg("user signed up")

	return auth, nil
}

// Logout clears the token and user together and broadcasts the change.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.events.PublishAuthChanged(sessionID)
	return nil
}

// Current returns the cached auth record, or nil when the session is not
// authenticated. Malformed persisted state reads as nil, never an error.
func (s *AuthService) Current(ctx context.Context, sessionID string) (*domain.Auth, error) {
	return s.store.Get(ctx, sessionID)
}
