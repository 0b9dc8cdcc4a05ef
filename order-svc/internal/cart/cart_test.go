package cart

import (
	"testing"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, restaurantID, price string) domain.MenuItem {
	return domain.MenuItem{
		ID:                  id,
		RestaurantID:        restaurantID,
		Name:                "Lunchbox " + id,
		Price:               decimal.RequireFromString(price),
		IsAvailable:         true,
		AvailableDays:       []domain.Weekday{domain.Monday},
		EligibleBuildingIDs: []string{"b1"},
	}
}

func TestAddItem_MergesSameItem(t *testing.T) {
	c := New("cust-1")

	require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "Noodle Bar", decimal.RequireFromString("2.99"), Options{}))
	require.NoError(t, c.AddItem(item("a", "r1", "99.00"), "Renamed", decimal.RequireFromString("9.99"), Options{}))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, "10.00", c.Lines[0].UnitPrice.StringFixed(2), "first add wins for the price snapshot")
	assert.Equal(t, "Noodle Bar", c.Lines[0].RestaurantName)
	assert.Equal(t, "2.99", c.DeliveryFee().StringFixed(2))
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
	}{
		{name: "positive sets quantity", quantity: 4, wantLen: 1},
		{name: "zero removes", quantity: 0, wantLen: 0},
		{name: "negative removes", quantity: -1, wantLen: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New("cust-1")
			require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.Zero, Options{}))

			require.NoError(t, c.UpdateQuantity("a", testCase.quantity))

			assert.Len(t, c.Lines, testCase.wantLen)
			if testCase.wantLen == 1 {
				assert.Equal(t, testCase.quantity, c.Lines[0].Quantity)
			}
			require.NoError(t, c.UpdateQuantity("a", -1))
			c.RemoveItem("a")
			assert.Empty(t, c.Lines)
		})
	}
}

func TestQuantityLimits(t *testing.T) {
	t.Run("line quantity is capped", func(t *testing.T) {
		c := New("cust-1")
		require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.Zero, Options{}))

		require.NoError(t, c.UpdateQuantity("a", MaxLineQuantity))
		assert.ErrorIs(t, c.UpdateQuantity("a", MaxLineQuantity+1), domain.ErrQuantityLimit)
		assert.ErrorIs(t, c.UpdateQuantity("a", 1<<62), domain.ErrQuantityLimit)
		assert.ErrorIs(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.Zero, Options{}), domain.ErrQuantityLimit)
		assert.Equal(t, MaxLineQuantity, c.Lines[0].Quantity)
	})

	t.Run("cart item count is capped", func(t *testing.T) {
		c := New("cust-1")
		ids := []string{"a", "b", "c"}
		for _, id := range ids {
			require.NoError(t, c.AddItem(item(id, "r1", "10.00"), "R1", decimal.Zero, Options{}))
		}
		require.NoError(t, c.UpdateQuantity("a", MaxLineQuantity))
		require.NoError(t, c.UpdateQuantity("b", MaxLineQuantity))

		assert.ErrorIs(t, c.UpdateQuantity("c", MaxItems-2*MaxLineQuantity+1), domain.ErrQuantityLimit)
		require.NoError(t, c.UpdateQuantity("c", MaxItems-2*MaxLineQuantity))
		assert.Equal(t, MaxItems, c.ItemCount())
		assert.ErrorIs(t, c.AddItem(item("d", "r1", "10.00"), "R1", decimal.Zero, Options{}), domain.ErrQuantityLimit)
		assert.Len(t, c.Lines, 3)
	})
}

func TestBindOwner_ClearsOnIdentityChange(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		wantClear bool
	}{
		{name: "same identity keeps lines", from: "cust-1", to: "cust-1", wantClear: false},
		{name: "switching customers clears", from: "cust-1", to: "cust-2", wantClear: true},
		{name: "anonymous signing in clears", from: "", to: "cust-1", wantClear: true},
		{name: "signing out clears", from: "cust-1", to: "", wantClear: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New(testCase.from)
			require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.Zero, Options{}))

			cleared := c.BindOwner(testCase.to)

			assert.Equal(t, testCase.wantClear, cleared)
			assert.Equal(t, testCase.to, c.OwnerID)
			if testCase.wantClear {
				assert.True(t, c.IsEmpty())
			} else {
				assert.Len(t, c.Lines, 1)
			}
		})
	}
}

func TestMixedRestaurants(t *testing.T) {
	c := New("cust-1")
	require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.RequireFromString("2.99"), Options{}))
	require.NoError(t, c.AddItem(item("b", "r2", "5.00"), "R2", decimal.RequireFromString("4.00"), Options{}))

	assert.True(t, c.MixedRestaurants())
	assert.Equal(t, []string{"r1", "r2"}, c.RestaurantIDs())
	assert.Equal(t, "2.99", c.DeliveryFee().StringFixed(2), "fee comes from the first line")
}

func TestAddItem_EnforceSingleRestaurant(t *testing.T) {
	c := New("cust-1")
	opts := Options{EnforceSingleRestaurant: true}
	require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.Zero, opts))

	err := c.AddItem(item("b", "r2", "5.00"), "R2", decimal.Zero, opts)

	assert.ErrorIs(t, err, domain.ErrMultiRestaurantCart)
	assert.Len(t, c.Lines, 1)
}

func TestTotalsAndCounts(t *testing.T) {
	c := New("cust-1")
	require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.RequireFromString("2.99"), Options{}))
	require.NoError(t, c.AddItem(item("a", "r1", "10.00"), "R1", decimal.RequireFromString("2.99"), Options{}))
	require.NoError(t, c.AddItem(item("b", "r1", "5.50"), "R1", decimal.RequireFromString("2.99"), Options{}))

	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, "25.50", c.Subtotal().StringFixed(2))
	assert.Equal(t, "32.54", c.Totals().Total.StringFixed(2))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.DeliveryFee().IsZero())
}
