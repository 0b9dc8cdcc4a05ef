package domain

import (
	"errors"
	"time"

	"lunchbox-marketplace/statskeys"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"

	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var ErrMalformedEvent = errors.New("malformed order event")

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderEvent is the payload order-svc publishes on the orders topic.
type OrderEvent struct {
	EventID      string      `json:"event_id"`
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	OrderNumber  int64       `json:"order_number"`
	CustomerID   string      `json:"customer_id"`
	RestaurantID string      `json:"restaurant_id"`
	Status       string      `json:"status"`
	TotalCents   int64       `json:"total_cents"`
	Items        []EventItem `json:"items,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Day is the UTC calendar day the event counts towards.
func (e OrderEvent) Day() string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return statskeys.Day(ts)
}

func (e OrderEvent) Validate() error {
	if e.EventID == "" || e.RestaurantID == "" {
		return ErrMalformedEvent
	}
	return nil
}

// Counted reports whether the event changes any statistic.
func (e OrderEvent) Counted() bool {
	switch e.Type {
	case EventOrderCreated:
		return true
	case EventOrderStatusChanged:
		return e.Status == StatusDelivered || e.Status == StatusCancelled
	}
	return false
}
