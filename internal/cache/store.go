package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Cache keys for the flight listings. Mutations must invalidate the admin
// key and every public-locale key so the public page reflects changes
// without a manual reload.
const keyFlightsAdmin = "flights:admin"

func KeyFlightsAdmin() string {
	return keyFlightsAdmin
}

func KeyFlightsPublic(locale string) string {
	return fmt.Sprintf("flights:public:%s", locale)
}

// Store is a small JSON cache over redis for query results keyed by logical
// resource. Entries carry a defensive TTL; the contract is explicit
// invalidation after successful mutations.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, raw, s.ttl).Err()
}

func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
