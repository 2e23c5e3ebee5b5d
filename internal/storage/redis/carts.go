package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

const cartKeyPrefix = "cart:"

// CartStore persists carts as JSON blobs with a TTL. Merging and quantity
// rules live in the domain model; this layer only loads and saves.
type CartStore struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCartStore connects to Redis and verifies connectivity.
func NewCartStore(ctx context.Context, addr string, ttl time.Duration, logger *slog.Logger) (*CartStore, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &CartStore{client: client, ttl: ttl, logger: logger}, nil
}

// Get loads a cart by identifier.
func (s *CartStore) Get(ctx context.Context, id string) (*model.Cart, error) {
	payload, err := s.client.Get(ctx, cartKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	var cart model.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// Save stores the cart and refreshes its TTL.
func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	cart.UpdatedAt = time.Now()
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.client.Set(ctx, cartKeyPrefix+cart.ID, payload, s.ttl).Err()
}

// Delete removes a cart; deleting an absent cart is not an error.
func (s *CartStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, cartKeyPrefix+id).Err()
}

// Close releases the underlying connection.
func (s *CartStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
