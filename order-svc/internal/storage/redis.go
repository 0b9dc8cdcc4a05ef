package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(sessionKey string) string {
	return "cart:" + sessionKey
}

// Load returns the session's cart, or an empty anonymous cart when the
// session has none yet.
func (s *RedisCartStore) Load(ctx context.Context, sessionKey string) (*cart.Cart, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w: %w", domain.ErrPersistence, err)
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.New(""), nil
	}
	if c.Lines == nil {
		c.Lines = []cart.Line{}
	}
	return &c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionKey string, c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.Client.Set(ctx, s.CartKey(sessionKey), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionKey string) error {
	if err := s.Client.Del(ctx, s.CartKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

type RedisOrderCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisOrderCache(client *redis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{Client: client, TTL: ttl}
}

func (c *RedisOrderCache) CustomerOrdersKey(customerID string) string {
	return "orders:customer:" + customerID
}

func (c *RedisOrderCache) GetCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, bool, error) {
	raw, err := c.Client.Get(ctx, c.CustomerOrdersKey(customerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, false, nil
	}
	return orders, true, nil
}

func (c *RedisOrderCache) SetCustomerOrders(ctx context.Context, customerID string, orders []domain.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.CustomerOrdersKey(customerID), payload, c.TTL).Err()
}

func (c *RedisOrderCache) InvalidateCustomerOrders(ctx context.Context, customerID string) error {
	return c.Client.Del(ctx, c.CustomerOrdersKey(customerID)).Err()
}
