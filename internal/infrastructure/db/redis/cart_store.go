package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// cartTTL bounds abandoned carts. Every save refreshes it.
const cartTTL = 30 * 24 * time.Hour

// CartStore persists one cart per session under cart:<session_id>.
// Reads and writes are plain GET/SET with no locking: a session serves
// one shopper, so last writer wins.
type CartStore struct {
	client *redis.Client
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

// Get returns the session's cart. A missing key or malformed persisted JSON
// reads as an empty cart, never an error.
func (s *CartStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.Cart{}, nil
		}
		return nil, fmt.Errorf("cart get: %w", err)
	}
	return decodeCart(raw), nil
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func (s *CartStore) key(sessionID string) string {
	return "cart:" + sessionID
}

// decodeCart tolerates corrupted persisted state: anything that does not
// parse as a cart is treated as empty. Stored lines with non-positive
// quantities are dropped on read so the invariant holds even against data
// written by older code.
func decodeCart(raw []byte) domain.Cart {
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.Cart{}
	}
	out := make(domain.Cart, 0, len(cart))
	for _, item := range cart {
		if item.Quantity > 0 {
			out = append(out, item)
		}
	}
	return out
}
