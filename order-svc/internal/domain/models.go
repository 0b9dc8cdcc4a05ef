package domain

import (
	"strings"
	"time"

	"lunchbox-marketplace/auth"

	"github.com/shopspring/decimal"
)

type DeliveryLocation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeliveryBuilding struct {
	ID                 string    `json:"id"`
	DeliveryLocationID string    `json:"deliveryLocationId"`
	Name               string    `json:"name"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Restaurant struct {
	ID                 string          `json:"id"`
	OwnerID            string          `json:"ownerId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Cuisine            string          `json:"cuisine"`
	ImageURL           string          `json:"imageUrl,omitempty"`
	DeliveryFee        decimal.Decimal `json:"deliveryFee"`
	DeliveryLocationID string          `json:"deliveryLocationId,omitempty"`
	Rating             decimal.Decimal `json:"rating"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// MenuItem is a lunchbox offered by one restaurant.
type MenuItem struct {
	ID                  string          `json:"id"`
	RestaurantID        string          `json:"restaurantId"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	ImageURL            string          `json:"imageUrl,omitempty"`
	IsAvailable         bool            `json:"isAvailable"`
	DietaryTags         []string        `json:"dietaryTags"`
	AvailableDays       []Weekday       `json:"availableDays"`
	EligibleBuildingIDs []string        `json:"eligibleBuildingIds"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email,omitempty"`
	Role               auth.Role `json:"role"`
	FullName           string    `json:"fullName"`
	PhoneNumber        string    `json:"phoneNumber"`
	DeliveryLocationID string    `json:"deliveryLocationId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ProfileComplete gates checkout: both contact fields must carry more than
// whitespace.
func (u User) ProfileComplete() bool {
	return strings.TrimSpace(u.FullName) != "" && strings.TrimSpace(u.PhoneNumber) != ""
}

type Order struct {
	ID                 string          `json:"id"`
	OrderNumber        int64           `json:"orderNumber"`
	CustomerID         string          `json:"customerId"`
	RestaurantID       string          `json:"restaurantId"`
	Status             OrderStatus     `json:"status"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DeliveryFee        decimal.Decimal `json:"deliveryFee"`
	ServiceFee         decimal.Decimal `json:"serviceFee"`
	Tax                decimal.Decimal `json:"tax"`
	Total              decimal.Decimal `json:"total"`
	DeliveryLocation   string          `json:"deliveryLocation"`
	DeliveryBuildingID string          `json:"deliveryBuildingId"`
	DeliveryDay        Weekday         `json:"deliveryDay"`
	PaymentIntentID    string          `json:"paymentIntentId,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	Items              []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"orderId"`
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// OrderRef is the slice of an order needed to authorize and transition it.
type OrderRef struct {
	ID                string
	CustomerID        string
	RestaurantID      string
	RestaurantOwnerID string
	Status            OrderStatus
}

// OrderFilter scopes an order listing. Empty fields do not filter.
type OrderFilter struct {
	CustomerID        string
	RestaurantOwnerID string
}
