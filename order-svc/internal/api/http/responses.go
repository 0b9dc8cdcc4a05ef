package httpapi

import (
	"time"

	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/pricing"

	"github.com/shopspring/decimal"
)

// Money always leaves the service as a two-decimal string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type restaurantResponse struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"ownerId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Cuisine            string    `json:"cuisine"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	DeliveryFee        string    `json:"deliveryFee"`
	DeliveryLocationID string    `json:"deliveryLocationId,omitempty"`
	Rating             string    `json:"rating"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

func newRestaurantResponse(r domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Name:               r.Name,
		Description:        r.Description,
		Cuisine:            r.Cuisine,
		ImageURL:           r.ImageURL,
		DeliveryFee:        money(r.DeliveryFee),
		DeliveryLocationID: r.DeliveryLocationID,
		Rating:             r.Rating.StringFixed(1),
		IsActive:           r.IsActive,
		CreatedAt:          r.CreatedAt,
	}
}

func newRestaurantResponses(rs []domain.Restaurant) []restaurantResponse {
	out := make([]restaurantResponse, len(rs))
	for i, r := range rs {
		out[i] = newRestaurantResponse(r)
	}
	return out
}

type menuItemResponse struct {
	ID                  string    `json:"id"`
	RestaurantID        string    `json:"restaurantId"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Price               string    `json:"price"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	IsAvailable         bool      `json:"isAvailable"`
	DietaryTags         []string  `json:"dietaryTags"`
	AvailableDays       []string  `json:"availableDays"`
	EligibleBuildingIDs []string  `json:"eligibleBuildingIds"`
	CreatedAt           time.Time `json:"createdAt"`
}

func newMenuItemResponse(m domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:                  m.ID,
		RestaurantID:        m.RestaurantID,
		Name:                m.Name,
		Description:         m.Description,
		Price:               money(m.Price),
		ImageURL:            m.ImageURL,
		IsAvailable:         m.IsAvailable,
		DietaryTags:         nonNilStrings(m.DietaryTags),
		AvailableDays:       domain.WeekdayStrings(m.AvailableDays),
		EligibleBuildingIDs: nonNilStrings(m.EligibleBuildingIDs),
		CreatedAt:           m.CreatedAt,
	}
}

func newMenuItemResponses(items []domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, len(items))
	for i, m := range items {
		out[i] = newMenuItemResponse(m)
	}
	return out
}

type profileResponse struct {
	ID                 string `json:"id"`
	Email              string `json:"email,omitempty"`
	Role               string `json:"role"`
	FullName           string `json:"fullName"`
	PhoneNumber        string `json:"phoneNumber"`
	DeliveryLocationID string `json:"deliveryLocationId,omitempty"`
	ProfileComplete    bool   `json:"profileComplete"`
}

func newProfileResponse(u domain.User) profileResponse {
	return profileResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Role:               string(u.Role),
		FullName:           u.FullName,
		PhoneNumber:        u.PhoneNumber,
		DeliveryLocationID: u.DeliveryLocationID,
		ProfileComplete:    u.ProfileComplete(),
	}
}

type cartLineResponse struct {
	MenuItemID     string   `json:"menuItemId"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Quantity       int      `json:"quantity"`
	UnitPrice      string   `json:"unitPrice"`
	LineTotal      string   `json:"lineTotal"`
	RestaurantID   string   `json:"restaurantId"`
	RestaurantName string   `json:"restaurantName"`
	AvailableDays  []string `json:"availableDays"`
	BuildingIDs    []string `json:"eligibleBuildingIds"`
}

type cartResponse struct {
	Lines            []cartLineResponse `json:"lines"`
	Subtotal         string             `json:"subtotal"`
	DeliveryFee      string             `json:"deliveryFee"`
	ItemCount        int                `json:"itemCount"`
	MixedRestaurants bool               `json:"mixedRestaurants"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	lines := make([]cartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = cartLineResponse{
			MenuItemID:     l.MenuItemID,
			Name:           l.Name,
			ImageURL:       l.ImageURL,
			Quantity:       l.Quantity,
			UnitPrice:      money(l.UnitPrice),
			LineTotal:      money(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))),
			RestaurantID:   l.RestaurantID,
			RestaurantName: l.RestaurantName,
			AvailableDays:  domain.WeekdayStrings(l.AvailableDays),
			BuildingIDs:    nonNilStrings(l.EligibleBuildingIDs),
		}
	}
	return cartResponse{
		Lines:            lines,
		Subtotal:         money(c.Subtotal()),
		DeliveryFee:      money(c.DeliveryFee()),
		ItemCount:        c.ItemCount(),
		MixedRestaurants: c.MixedRestaurants(),
	}
}

type orderItemResponse struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
}

func newOrderItemResponses(items []domain.OrderItem) []orderItemResponse {
	out := make([]orderItemResponse, len(items))
	for i, it := range items {
		out[i] = orderItemResponse{
			ID:         it.ID,
			OrderID:    it.OrderID,
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      money(it.Price),
		}
	}
	return out
}

type orderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        int64               `json:"orderNumber"`
	CustomerID         string              `json:"customerId"`
	RestaurantID       string              `json:"restaurantId"`
	Status             string              `json:"status"`
	Subtotal           string              `json:"subtotal"`
	DeliveryFee        string              `json:"deliveryFee"`
	ServiceFee         string              `json:"serviceFee"`
	Tax                string              `json:"tax"`
	Total              string              `json:"total"`
	DeliveryLocation   string              `json:"deliveryLocation"`
	DeliveryBuildingID string              `json:"deliveryBuildingId"`
	DeliveryDay        string              `json:"deliveryDay"`
	PaymentIntentID    string              `json:"paymentIntentId,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	Items              []orderItemResponse `json:"items,omitempty"`
}

func newOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		CustomerID:         o.CustomerID,
		RestaurantID:       o.RestaurantID,
		Status:             string(o.Status),
		Subtotal:           money(o.Subtotal),
		DeliveryFee:        money(o.DeliveryFee),
		ServiceFee:         money(o.ServiceFee),
		Tax:                money(o.Tax),
		Total:              money(o.Total),
		DeliveryLocation:   o.DeliveryLocation,
		DeliveryBuildingID: o.DeliveryBuildingID,
		DeliveryDay:        string(o.DeliveryDay),
		PaymentIntentID:    o.PaymentIntentID,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if len(o.Items) > 0 {
		resp.Items = newOrderItemResponses(o.Items)
	}
	return resp
}

func newOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = newOrderResponse(o)
	}
	return out
}

type paymentIntentResponse struct {
	PaymentIntentID string         `json:"paymentIntentId"`
	ClientSecret    string         `json:"clientSecret"`
	Amount          string         `json:"amount"`
	Currency        string         `json:"currency"`
	Totals          pricing.Totals `json:"totals"`
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
