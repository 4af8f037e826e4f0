package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// Auth records are never refreshed; they simply expire with the session.
const authTTL = 24 * time.Hour

// AuthStore persists the session's token+user pair under auth:<session_id>.
type AuthStore struct {
	client *redis.Client
}

func NewAuthStore(client *redis.Client) *AuthStore {
	return &AuthStore{client: client}
}

// Get returns the session's auth record, or (nil, nil) when the record is
// absent, incomplete, or fails to decode. Callers must not distinguish
// those cases.
func (s *AuthStore) Get(ctx context.Context, sessionID string) (*domain.Auth, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("auth get: %w", err)
	}
	return decodeAuth(raw), nil
}

func (s *AuthStore) Save(ctx context.Context, sessionID string, auth *domain.Auth) error {
	if !auth.Valid() {
		return fmt.Errorf("auth save: refusing to persist incomplete record")
	}
	raw, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("auth encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, authTTL).Err(); err != nil {
		return fmt.Errorf("auth save: %w", err)
	}
	return nil
}

// Clear removes the token and user together; from the caller's point of
// view logout is a single atomic operation.
func (s *AuthStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("auth clear: %w", err)
	}
	return nil
}

func (s *AuthStore) key(sessionID string) string {
	return "auth:" + sessionID
}

// decodeAuth applies the both-or-neither rule: malformed JSON or a record
// missing the token or the user reads as "not authenticated".
func decodeAuth(raw []byte) *domain.Auth {
	var auth domain.Auth
	if err := json.Unmarshal(raw, &auth); err != nil {
		return nil
	}
	if !auth.Valid() {
		return nil
	}
	return &auth
}
