package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lunchbox-marketplace/analytics-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStats answers the same questions as RedisStats from the order
// tables. It is the fallback when Redis has nothing.
type PostgresStats struct {
	db *sql.DB
}

func NewPostgresStats(db *sql.DB) *PostgresStats {
	return &PostgresStats{db: db}
}

func (s *PostgresStats) RestaurantOwner(ctx context.Context, restaurantID string) (string, error) {
	if _, err := uuid.Parse(restaurantID); err != nil {
		return "", domain.ErrRestaurantNotFound
	}
	var ownerID string
	err := s.db.QueryRowContext(ctx, `SELECT owner_id FROM restaurants WHERE id = $1`, restaurantID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrRestaurantNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup restaurant owner: %w", err)
	}
	return ownerID, nil
}

func (s *PostgresStats) DailyCounters(ctx context.Context, restaurantID, day string) (domain.DailyCounters, bool, error) {
	var c domain.DailyCounters
	err := s.db.QueryRowContext(ctx, `
		SELECT orders_count, revenue_cents, delivered_count, cancelled_count
		FROM restaurant_daily_stats
		WHERE restaurant_id = $1 AND day = $2
	`, restaurantID, day).Scan(&c.Orders, &c.RevenueCents, &c.Delivered, &c.Cancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DailyCounters{}, false, nil
	}
	if err != nil {
		return domain.DailyCounters{}, false, fmt.Errorf("read daily stats: %w", err)
	}
	return c, true, nil
}

func (s *PostgresStats) TopLunchboxes(ctx context.Context, restaurantID, day string, limit int) ([]domain.LunchboxScore, error) {
	if day == "" {
		return s.ranking(ctx, `
			SELECT oi.lunchbox_id, MAX(oi.name), o.restaurant_id, SUM(oi.quantity) AS units
			FROM order_items oi
			JOIN orders o ON oi.order_id = o.id
			WHERE o.restaurant_id = $1
			GROUP BY oi.lunchbox_id, o.restaurant_id
			ORDER BY units DESC
			LIMIT $2
		`, restaurantID, limit)
	}
	return s.ranking(ctx, `
		SELECT oi.lunchbox_id, MAX(oi.name), o.restaurant_id, SUM(oi.quantity) AS units
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.restaurant_id = $1 AND (o.created_at AT TIME ZONE 'UTC')::date = $2::date
		GROUP BY oi.lunchbox_id, o.restaurant_id
		ORDER BY units DESC
		LIMIT $3
	`, restaurantID, day, limit)
}

func (s *PostgresStats) TopAcrossRestaurants(ctx context.Context, day string, limit int) ([]domain.LunchboxScore, error) {
	return s.ranking(ctx, `
		SELECT oi.lunchbox_id, MAX(oi.name), o.restaurant_id, SUM(oi.quantity) AS units
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE (o.created_at AT TIME ZONE 'UTC')::date = $1::date
		GROUP BY oi.lunchbox_id, o.restaurant_id
		ORDER BY units DESC
		LIMIT $2
	`, day, limit)
}

func (s *PostgresStats) ranking(ctx context.Context, query string, args ...any) ([]domain.LunchboxScore, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read ranking: %w", err)
	}
	defer rows.Close()

	scores := []domain.LunchboxScore{}
	for rows.Next() {
		var sc domain.LunchboxScore
		if err := rows.Scan(&sc.LunchboxID, &sc.Name, &sc.RestaurantID, &sc.Quantity); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// LunchboxNames resolves display names for ranked ids.
func (s *PostgresStats) LunchboxNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM lunchboxes WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("read lunchbox names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan lunchbox name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
