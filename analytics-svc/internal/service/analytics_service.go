package service

import (
	"context"
	"errors"
	"time"

	"lunchbox-marketplace/analytics-svc/internal/domain"
	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/statskeys"

	"go.uber.org/zap"
)

const (
	DefaultLimit   = 10
	MaxLimit       = 50
	dashboardLimit = 5
)

type AnalyticsService struct {
	cache  StatsReader
	db     StatsReader
	owners RestaurantOwnerLookup
	names  LunchboxNamer
	authz  *authz.Authorizer
	logger *zap.SugaredLogger
	now    func() time.Time
}

type Deps struct {
	Cache  StatsReader
	DB     StatsReader
	Owners RestaurantOwnerLookup
	Names  LunchboxNamer
}

func NewAnalyticsService(deps Deps, authorizer *authz.Authorizer, logger *zap.SugaredLogger) *AnalyticsService {
	return &AnalyticsService{
		cache:  deps.Cache,
		db:     deps.DB,
		owners: deps.Owners,
		names:  deps.Names,
		authz:  authorizer,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock that decides which day is "today".
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// RestaurantAnalytics builds the owner dashboard for today.
func (s *AnalyticsService) RestaurantAnalytics(ctx context.Context, identity auth.Identity, restaurantID string) (*domain.RestaurantAnalytics, error) {
	if err := s.authorizeRestaurant(ctx, identity, restaurantID); err != nil {
		return nil, err
	}

	day := statskeys.Day(s.now())
	counters, err := s.counters(ctx, restaurantID, day)
	if err != nil {
		return nil, err
	}
	topToday, err := s.restaurantTop(ctx, restaurantID, day, dashboardLimit)
	if err != nil {
		return nil, err
	}
	topAllTime, err := s.restaurantTop(ctx, restaurantID, "", dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantAnalytics{
		RestaurantID:   restaurantID,
		Day:            day,
		OrdersToday:    counters.Orders,
		RevenueToday:   domain.FormatCents(counters.RevenueCents),
		DeliveredToday: counters.Delivered,
		CancelledToday: counters.Cancelled,
		TopToday:       topToday,
		TopAllTime:     topAllTime,
	}, nil
}

// TopLunchboxes is the all-time ranking of one restaurant.
func (s *AnalyticsService) TopLunchboxes(ctx context.Context, identity auth.Identity, restaurantID string, limit int) ([]domain.LunchboxScore, error) {
	if err := s.authorizeRestaurant(ctx, identity, restaurantID); err != nil {
		return nil, err
	}
	return s.restaurantTop(ctx, restaurantID, "", ClampLimit(limit))
}

// TopToday ranks lunchboxes across every restaurant. Admin only.
func (s *AnalyticsService) TopToday(ctx context.Context, identity auth.Identity, limit int) ([]domain.LunchboxScore, error) {
	target := authz.Target{Resource: authz.ResourceRestaurantAnalytics}
	if err := s.authz.Authorize(identity, authz.ActionRead, target); err != nil {
		return nil, err
	}

	day := statskeys.Day(s.now())
	limit = ClampLimit(limit)
	scores, err := s.cache.TopAcrossRestaurants(ctx, day, limit)
	if err != nil {
		s.logger.Warnw("redis ranking unavailable, reading postgres", "day", day, "error", err)
	}
	if err != nil || len(scores) == 0 {
		return s.db.TopAcrossRestaurants(ctx, day, limit)
	}
	return s.withNames(ctx, scores)
}

func (s *AnalyticsService) authorizeRestaurant(ctx context.Context, identity auth.Identity, restaurantID string) error {
	if err := s.authz.Check(identity, authz.ResourceRestaurantAnalytics, authz.ActionRead); err != nil {
		return err
	}
	ownerID, err := s.owners.RestaurantOwner(ctx, restaurantID)
	if errors.Is(err, domain.ErrRestaurantNotFound) && !s.authz.RevealsMissing(identity.Role) {
		return authz.ErrForbidden
	}
	if err != nil {
		return err
	}
	return s.authz.Authorize(identity, authz.ActionRead, authz.Target{
		Resource:          authz.ResourceRestaurantAnalytics,
		RestaurantOwnerID: ownerID,
	})
}

func (s *AnalyticsService) counters(ctx context.Context, restaurantID, day string) (domain.DailyCounters, error) {
	counters, found, err := s.cache.DailyCounters(ctx, restaurantID, day)
	if err != nil {
		s.logger.Warnw("redis counters unavailable, reading postgres", "restaurant_id", restaurantID, "error", err)
	}
	if err == nil && found {
		return counters, nil
	}
	counters, _, err = s.db.DailyCounters(ctx, restaurantID, day)
	return counters, err
}

func (s *AnalyticsService) restaurantTop(ctx context.Context, restaurantID, day string, limit int) ([]domain.LunchboxScore, error) {
	scores, err := s.cache.TopLunchboxes(ctx, restaurantID, day, limit)
	if err != nil {
		s.logger.Warnw("redis ranking unavailable, reading postgres", "restaurant_id", restaurantID, "error", err)
	}
	if err != nil || len(scores) == 0 {
		return s.db.TopLunchboxes(ctx, restaurantID, day, limit)
	}
	return s.withNames(ctx, scores)
}

// withNames fills names for scores read from Redis. A failed lookup leaves
// them blank.
func (s *AnalyticsService) withNames(ctx context.Context, scores []domain.LunchboxScore) ([]domain.LunchboxScore, error) {
	ids := make([]string, len(scores))
	for i, sc := range scores {
		ids[i] = sc.LunchboxID
	}
	names, err := s.names.LunchboxNames(ctx, ids)
	if err != nil {
		s.logger.Warnw("failed to resolve lunchbox names", "error", err)
		return scores, nil
	}
	for i := range scores {
		scores[i].Name = names[scores[i].LunchboxID]
	}
	return scores, nil
}
