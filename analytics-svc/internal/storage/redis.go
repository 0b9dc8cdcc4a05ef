package storage

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"lunchbox-marketplace/analytics-svc/internal/domain"
	"lunchbox-marketplace/statskeys"

	"github.com/redis/go-redis/v9"
)

// RedisStats reads the counters agg-svc maintains. Scores carry no names.
type RedisStats struct {
	rdb *redis.Client
}

func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb}
}

func (s *RedisStats) DailyCounters(ctx context.Context, restaurantID, day string) (domain.DailyCounters, bool, error) {
	fields, err := s.rdb.HGetAll(ctx, statskeys.Orders(day, restaurantID)).Result()
	if err != nil {
		return domain.DailyCounters{}, false, fmt.Errorf("read daily counters: %w", err)
	}
	if len(fields) == 0 {
		return domain.DailyCounters{}, false, nil
	}

	field := func(name string) int64 {
		n, _ := strconv.ParseInt(fields[name], 10, 64)
		return n
	}
	return domain.DailyCounters{
		Orders:       field(statskeys.FieldCount),
		RevenueCents: field(statskeys.FieldRevenueCents),
		Delivered:    field(statskeys.FieldDelivered),
		Cancelled:    field(statskeys.FieldCancelled),
	}, true, nil
}

// TopLunchboxes ranks one restaurant's lunchboxes for a day, or over all
// time when day is empty.
func (s *RedisStats) TopLunchboxes(ctx context.Context, restaurantID, day string, limit int) ([]domain.LunchboxScore, error) {
	key := statskeys.AllTime(restaurantID)
	if day != "" {
		key = statskeys.Daily(day, restaurantID)
	}
	return s.top(ctx, key, restaurantID, limit)
}

// TopAcrossRestaurants merges every restaurant's daily ranking.
func (s *RedisStats) TopAcrossRestaurants(ctx context.Context, day string, limit int) ([]domain.LunchboxScore, error) {
	var all []domain.LunchboxScore
	iter := s.rdb.Scan(ctx, 0, statskeys.DailyPattern(day), 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		scores, err := s.top(ctx, key, statskeys.RestaurantFromDaily(key), limit)
		if err != nil {
			return nil, err
		}
		all = append(all, scores...)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan daily rankings: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Quantity > all[j].Quantity })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *RedisStats) top(ctx context.Context, key, restaurantID string, limit int) ([]domain.LunchboxScore, error) {
	members, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read ranking %s: %w", key, err)
	}
	scores := make([]domain.LunchboxScore, 0, len(members))
	for _, m := range members {
		id, _ := m.Member.(string)
		scores = append(scores, domain.LunchboxScore{LunchboxID: id, RestaurantID: restaurantID, Quantity: int64(m.Score)})
	}
	return scores, nil
}
