package service

import (
	"context"

	"lunchbox-marketplace/analytics-svc/internal/domain"
	"lunchbox-marketplace/analytics-svc/internal/storage"
	"lunchbox-marketplace/auth"
)

// StatsReader is implemented by both the Redis counters and the Postgres
// fallback. An empty day means all time.
type StatsReader interface {
	DailyCounters(ctx context.Context, restaurantID, day string) (domain.DailyCounters, bool, error)
	TopLunchboxes(ctx context.Context, restaurantID, day string, limit int) ([]domain.LunchboxScore, error)
	TopAcrossRestaurants(ctx context.Context, day string, limit int) ([]domain.LunchboxScore, error)
}

type RestaurantOwnerLookup interface {
	RestaurantOwner(ctx context.Context, restaurantID string) (string, error)
}

type LunchboxNamer interface {
	LunchboxNames(ctx context.Context, ids []string) (map[string]string, error)
}

type AnalyticsInterface interface {
	RestaurantAnalytics(ctx context.Context, identity auth.Identity, restaurantID string) (*domain.RestaurantAnalytics, error)
	TopLunchboxes(ctx context.Context, identity auth.Identity, restaurantID string, limit int) ([]domain.LunchboxScore, error)
	TopToday(ctx context.Context, identity auth.Identity, limit int) ([]domain.LunchboxScore, error)
}

var (
	_ AnalyticsInterface    = (*AnalyticsService)(nil)
	_ StatsReader           = (*storage.RedisStats)(nil)
	_ StatsReader           = (*storage.PostgresStats)(nil)
	_ RestaurantOwnerLookup = (*storage.PostgresStats)(nil)
	_ LunchboxNamer         = (*storage.PostgresStats)(nil)
)
