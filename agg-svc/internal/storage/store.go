package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lunchbox-marketplace/agg-svc/internal/domain"
	"lunchbox-marketplace/statskeys"

	"github.com/redis/go-redis/v9"
)

const (
	eventTTL = 24 * time.Hour
	dailyTTL = 7 * 24 * time.Hour
)

// Store keeps restaurant statistics in Redis for dashboards and mirrors the
// daily counters into restaurant_daily_stats.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurant_daily_stats (
		restaurant_id UUID NOT NULL,
		day DATE NOT NULL,
		orders_count INTEGER NOT NULL DEFAULT 0,
		revenue_cents BIGINT NOT NULL DEFAULT 0,
		delivered_count INTEGER NOT NULL DEFAULT 0,
		cancelled_count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (restaurant_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS processed_order_events (
		event_id TEXT PRIMARY KEY,
		processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// MarkProcessed claims an event id. It returns false when the event was
// already handled.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, statskeys.Event(eventID), 1, eventTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claim event %s: %w", eventID, err)
	}
	return ok, nil
}

// ReleaseEvent drops the claim so a redelivered event is processed again.
// Each sink remembers what it already applied, so a retry only fills in the
// sinks that failed.
func (s *Store) ReleaseEvent(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, statskeys.Event(eventID)).Err()
}

// applyOnce runs incr in a MULTI/EXEC together with the event's applied
// marker. An event the marker already names is skipped.
func (s *Store) applyOnce(ctx context.Context, eventID string, incr func(redis.Pipeliner)) error {
	appliedKey := statskeys.Applied(eventID)
	return s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, appliedKey).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr(pipe)
			pipe.Set(ctx, appliedKey, 1, eventTTL)
			return nil
		})
		return err
	}, appliedKey)
}

// The processed_order_events insert and the counter upsert run as one
// statement, so the counters move only for an event id not seen before.
const recordOrderSQL = `
	WITH applied AS (
		INSERT INTO processed_order_events (event_id) VALUES ($4)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING event_id
	)
	INSERT INTO restaurant_daily_stats (restaurant_id, day, orders_count, revenue_cents)
	SELECT $1::uuid, $2::date, 1, $3::bigint FROM applied
	ON CONFLICT (restaurant_id, day) DO UPDATE
	SET orders_count = restaurant_daily_stats.orders_count + 1,
		revenue_cents = restaurant_daily_stats.revenue_cents + EXCLUDED.revenue_cents
`

const recordStatusSQL = `
	WITH applied AS (
		INSERT INTO processed_order_events (event_id) VALUES ($3)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING event_id
	)
	INSERT INTO restaurant_daily_stats (restaurant_id, day, %[1]s)
	SELECT $1::uuid, $2::date, 1 FROM applied
	ON CONFLICT (restaurant_id, day) DO UPDATE
	SET %[1]s = restaurant_daily_stats.%[1]s + 1
`

func (s *Store) RecordOrder(ctx context.Context, ev domain.OrderEvent) error {
	day := ev.Day()
	ordersKey := statskeys.Orders(day, ev.RestaurantID)
	dailyKey := statskeys.Daily(day, ev.RestaurantID)
	allTimeKey := statskeys.AllTime(ev.RestaurantID)

	err := s.applyOnce(ctx, ev.EventID, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, ordersKey, statskeys.FieldCount, 1)
		pipe.HIncrBy(ctx, ordersKey, statskeys.FieldRevenueCents, ev.TotalCents)
		pipe.Expire(ctx, ordersKey, dailyTTL)
		for _, item := range ev.Items {
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.MenuItemID)
			pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), item.MenuItemID)
		}
		if len(ev.Items) > 0 {
			pipe.Expire(ctx, dailyKey, dailyTTL)
		}
	})
	if err != nil {
		return fmt.Errorf("record order %s in redis: %w", ev.OrderID, err)
	}

	if _, err := s.db.ExecContext(ctx, recordOrderSQL, ev.RestaurantID, day, ev.TotalCents, ev.EventID); err != nil {
		return fmt.Errorf("record order %s in postgres: %w", ev.OrderID, err)
	}
	return nil
}

// RecordStatusChange counts deliveries and cancellations. Other statuses are
// ignored.
func (s *Store) RecordStatusChange(ctx context.Context, ev domain.OrderEvent) error {
	var field, column string
	switch ev.Status {
	case domain.StatusDelivered:
		field, column = statskeys.FieldDelivered, "delivered_count"
	case domain.StatusCancelled:
		field, column = statskeys.FieldCancelled, "cancelled_count"
	default:
		return nil
	}

	day := ev.Day()
	ordersKey := statskeys.Orders(day, ev.RestaurantID)
	err := s.applyOnce(ctx, ev.EventID, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, ordersKey, field, 1)
		pipe.Expire(ctx, ordersKey, dailyTTL)
	})
	if err != nil {
		return fmt.Errorf("record %s for order %s in redis: %w", ev.Status, ev.OrderID, err)
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(recordStatusSQL, column), ev.RestaurantID, day, ev.EventID); err != nil {
		return fmt.Errorf("record %s for order %s in postgres: %w", ev.Status, ev.OrderID, err)
	}
	return nil
}
