package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderEvent is published on the orders topic after a committed change.
type OrderEvent struct {
	EventID      string           `json:"event_id"`
	Type         string           `json:"type"`
	OrderID      string           `json:"order_id"`
	OrderNumber  int64            `json:"order_number"`
	CustomerID   string           `json:"customer_id"`
	RestaurantID string           `json:"restaurant_id"`
	Status       OrderStatus      `json:"status"`
	TotalCents   int64            `json:"total_cents"`
	Items        []OrderEventItem `json:"items,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}
