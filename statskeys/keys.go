// Package statskeys names the Redis keys shared by the aggregation writer
// and the analytics reader.
package statskeys

import (
	"fmt"
	"strings"
	"time"
)

const (
	DayLayout = "2006-01-02"

	FieldCount        = "count"
	FieldRevenueCents = "revenue_cents"
	FieldDelivered    = "delivered"
	FieldCancelled    = "cancelled"
)

func Day(t time.Time) string { return t.UTC().Format(DayLayout) }

func Event(eventID string) string { return "analytics:event:" + eventID }

// Applied marks an event whose counters are already in Redis.
func Applied(eventID string) string { return "analytics:applied:" + eventID }

// Orders is a hash of the day's counters for one restaurant.
func Orders(day, restaurantID string) string {
	return fmt.Sprintf("analytics:orders:%s:%s", day, restaurantID)
}

// Daily is a sorted set of lunchbox ids scored by units ordered that day.
func Daily(day, restaurantID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", day, restaurantID)
}

func DailyPattern(day string) string { return fmt.Sprintf("analytics:daily:%s:*", day) }

// RestaurantFromDaily extracts the restaurant id from a Daily key.
func RestaurantFromDaily(key string) string {
	return key[strings.LastIndex(key, ":")+1:]
}

func AllTime(restaurantID string) string { return "analytics:alltime:" + restaurantID }
