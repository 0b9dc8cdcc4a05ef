package cart

import (
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/pricing"

	"github.com/shopspring/decimal"
)

const (
	// MaxLineQuantity caps a single line and MaxItems caps the whole cart,
	// which keeps every order total inside the storable amount.
	MaxLineQuantity = 99
	MaxItems        = 200
)

type Line struct {
	MenuItemID            string           `json:"menuItemId"`
	Name                  string           `json:"name"`
	ImageURL              string           `json:"imageUrl,omitempty"`
	Quantity              int              `json:"quantity"`
	UnitPrice             decimal.Decimal  `json:"unitPrice"`
	RestaurantID          string           `json:"restaurantId"`
	RestaurantName        string           `json:"restaurantName"`
	RestaurantDeliveryFee decimal.Decimal  `json:"restaurantDeliveryFee"`
	AvailableDays         []domain.Weekday `json:"availableDays"`
	EligibleBuildingIDs   []string         `json:"eligibleBuildingIds"`
}

type Options struct {
	// EnforceSingleRestaurant refuses, at add time, items from a second
	// restaurant. Checkout refuses mixed carts regardless.
	EnforceSingleRestaurant bool
}

// Cart belongs to one session. OwnerID is the identity the lines were
// collected under; an empty OwnerID is an anonymous cart.
type Cart struct {
	OwnerID string `json:"ownerId"`
	Lines   []Line `json:"lines"`
}

func New(ownerID string) *Cart {
	return &Cart{OwnerID: ownerID, Lines: []Line{}}
}

// BindOwner attaches the cart to the identity making the current request.
// Any change of identity, including signing in or out, empties the cart.
func (c *Cart) BindOwner(ownerID string) bool {
	if c.OwnerID == ownerID {
		return false
	}
	cleared := len(c.Lines) > 0
	c.OwnerID = ownerID
	c.Lines = []Line{}
	return cleared
}

// AddItem merges on menu item id. A repeated add only bumps the quantity;
// the snapshot taken on the first add is kept.
func (c *Cart) AddItem(item domain.MenuItem, restaurantName string, restaurantDeliveryFee decimal.Decimal, opts Options) error {
	if c.ItemCount() >= MaxItems {
		return domain.ErrQuantityLimit
	}
	if i := c.index(item.ID); i >= 0 {
		if c.Lines[i].Quantity >= MaxLineQuantity {
			return domain.ErrQuantityLimit
		}
		c.Lines[i].Quantity++
		return nil
	}
	if opts.EnforceSingleRestaurant && len(c.Lines) > 0 && c.Lines[0].RestaurantID != item.RestaurantID {
		return domain.ErrMultiRestaurantCart
	}

	c.Lines = append(c.Lines, Line{
		MenuItemID:            item.ID,
		Name:                  item.Name,
		ImageURL:              item.ImageURL,
		Quantity:              1,
		UnitPrice:             item.Price,
		RestaurantID:          item.RestaurantID,
		RestaurantName:        restaurantName,
		RestaurantDeliveryFee: restaurantDeliveryFee,
		AvailableDays:         append([]domain.Weekday(nil), item.AvailableDays...),
		EligibleBuildingIDs:   append([]string(nil), item.EligibleBuildingIDs...),
	})
	return nil
}

func (c *Cart) RemoveItem(menuItemID string) {
	if i := c.index(menuItemID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// UpdateQuantity treats any quantity below one as a removal. Quantities
// past MaxLineQuantity, or that would push the cart past MaxItems, are
// refused and leave the cart unchanged.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return nil
	}
	i := c.index(menuItemID)
	if i < 0 {
		return nil
	}
	if quantity > MaxLineQuantity || c.ItemCount()-c.Lines[i].Quantity+quantity > MaxItems {
		return domain.ErrQuantityLimit
	}
	c.Lines[i].Quantity = quantity
	return nil
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// DeliveryFee is the fee recorded on the first line. It is only correct for
// single-restaurant carts, which is all checkout accepts.
func (c *Cart) DeliveryFee() decimal.Decimal {
	if len(c.Lines) == 0 {
		return decimal.Zero
	}
	return c.Lines[0].RestaurantDeliveryFee
}

func (c *Cart) Subtotal() decimal.Decimal {
	return pricing.ComputeTotals(c.PricingLines(), decimal.Zero).Subtotal
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// RestaurantIDs lists distinct restaurants in line order.
func (c *Cart) RestaurantIDs() []string {
	seen := make(map[string]struct{}, len(c.Lines))
	ids := make([]string, 0, 1)
	for _, line := range c.Lines {
		if _, ok := seen[line.RestaurantID]; ok {
			continue
		}
		seen[line.RestaurantID] = struct{}{}
		ids = append(ids, line.RestaurantID)
	}
	return ids
}

func (c *Cart) MixedRestaurants() bool {
	return len(c.RestaurantIDs()) > 1
}

func (c *Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity}
	}
	return lines
}

func (c *Cart) Totals() pricing.Totals {
	return pricing.ComputeTotals(c.PricingLines(), c.DeliveryFee())
}

func (c *Cart) index(menuItemID string) int {
	for i, line := range c.Lines {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
