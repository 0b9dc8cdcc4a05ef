package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// LunchboxScore ranks a lunchbox by units ordered.
type LunchboxScore struct {
	LunchboxID   string `json:"lunchboxId"`
	Name         string `json:"name,omitempty"`
	RestaurantID string `json:"restaurantId"`
	Quantity     int64  `json:"quantity"`
}

type DailyCounters struct {
	Orders       int64
	RevenueCents int64
	Delivered    int64
	Cancelled    int64
}

type RestaurantAnalytics struct {
	RestaurantID   string          `json:"restaurantId"`
	Day            string          `json:"day"`
	OrdersToday    int64           `json:"ordersToday"`
	RevenueToday   string          `json:"revenueToday"`
	DeliveredToday int64           `json:"deliveredToday"`
	CancelledToday int64           `json:"cancelledToday"`
	TopToday       []LunchboxScore `json:"topToday"`
	TopAllTime     []LunchboxScore `json:"topAllTime"`
}

// FormatCents renders minor units as a two-decimal amount.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
