package tests

import (
	"context"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	customerID    = "cust-1"
	otherCustID   = "cust-2"
	ownerID       = "owner-1"
	otherOwnerID  = "owner-2"
	adminID       = "admin-1"
	restaurantID  = "6f1c2a9e-3b4d-4e5f-8a7b-1c2d3e4f5a60"
	locationID    = "0b8e7d6c-5a4f-4e3d-9c2b-1a0f9e8d7c61"
	buildingID    = "a3c5e7f9-1b2d-4f6a-8c0e-2d4f6a8c0e62"
	menuItemID    = "c4d5e6f7-a8b9-4c0d-9e1f-2a3b4c5d6e63"
	orderID       = "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a64"
	secondOrderID = "f2a3b4c5-d6e7-4f8a-9b0c-1d2e3f4a5b65"
	unknownID     = "9d8c7b6a-5f4e-4d3c-8b2a-190817161566"
	sessionKey    = "sess-1"
	intentID      = "pi_123"
)

var (
	customer   = auth.Identity{UserID: customerID, Role: auth.RoleCustomer}
	owner      = auth.Identity{UserID: ownerID, Role: auth.RoleRestaurantOwner}
	otherOwner = auth.Identity{UserID: otherOwnerID, Role: auth.RoleRestaurantOwner}
	admin      = auth.Identity{UserID: adminID, Role: auth.RoleAdmin}
	anonymous  = auth.Anonymous()
)

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want string) interface{} {
	w := dec(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(w) })
}

func sampleMenuItem() domain.MenuItem {
	return domain.MenuItem{
		ID:                  menuItemID,
		RestaurantID:        restaurantID,
		Name:                "Teriyaki Bento",
		Price:               dec("12.75"),
		IsAvailable:         true,
		AvailableDays:       []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
		EligibleBuildingIDs: []string{buildingID},
	}
}

func sampleRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:                 restaurantID,
		OwnerID:            ownerID,
		Name:               "Bento Bar",
		DeliveryFee:        dec("2.99"),
		DeliveryLocationID: locationID,
		IsActive:           true,
	}
}

// sampleCart holds two of the sample lunchbox: subtotal 25.50, total 32.54.
func sampleCart() *cart.Cart {
	c := cart.New(customerID)
	item := sampleMenuItem()
	rest := sampleRestaurant()
	c.AddItem(item, rest.Name, rest.DeliveryFee, cart.Options{})
	c.AddItem(item, rest.Name, rest.DeliveryFee, cart.Options{})
	return c
}

func completeUser() *domain.User {
	return &domain.User{ID: customerID, Role: auth.RoleCustomer, FullName: "Ada Lovelace", PhoneNumber: "+1 555 0100"}
}

func freshCart(c func() *cart.Cart) func(context.Context, string) *cart.Cart {
	return func(context.Context, string) *cart.Cart { return c() }
}
