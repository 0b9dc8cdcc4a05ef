package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name        string
		lines       []Line
		deliveryFee decimal.Decimal
		want        map[string]string
	}{
		{
			name:        "two items with restaurant fee",
			lines:       []Line{{UnitPrice: d("10.00"), Quantity: 2}, {UnitPrice: d("5.50"), Quantity: 1}},
			deliveryFee: d("2.99"),
			want:        map[string]string{"subtotal": "25.50", "deliveryFee": "2.99", "serviceFee": "1.50", "tax": "2.55", "total": "32.54"},
		},
		{
			name:        "empty cart still carries fees",
			lines:       nil,
			deliveryFee: d("0"),
			want:        map[string]string{"subtotal": "0.00", "deliveryFee": "0.00", "serviceFee": "1.50", "tax": "0.00", "total": "1.50"},
		},
		{
			name:        "tax rounds to the cent",
			lines:       []Line{{UnitPrice: d("0.15"), Quantity: 3}},
			deliveryFee: d("1.00"),
			want:        map[string]string{"subtotal": "0.45", "deliveryFee": "1.00", "serviceFee": "1.50", "tax": "0.05", "total": "3.00"},
		},
		{
			name:        "no float drift on repeating cents",
			lines:       []Line{{UnitPrice: d("0.10"), Quantity: 3}, {UnitPrice: d("0.20"), Quantity: 1}},
			deliveryFee: d("0.00"),
			want:        map[string]string{"subtotal": "0.50", "deliveryFee": "0.00", "serviceFee": "1.50", "tax": "0.05", "total": "2.05"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := ComputeTotals(testCase.lines, testCase.deliveryFee)

			assert.Equal(t, testCase.want["subtotal"], got.Subtotal.StringFixed(2))
			assert.Equal(t, testCase.want["deliveryFee"], got.DeliveryFee.StringFixed(2))
			assert.Equal(t, testCase.want["serviceFee"], got.ServiceFee.StringFixed(2))
			assert.Equal(t, testCase.want["tax"], got.Tax.StringFixed(2))
			assert.Equal(t, testCase.want["total"], got.Total.StringFixed(2))
		})
	}
}

func TestComputeTotals_Invariants(t *testing.T) {
	lines := []Line{
		{UnitPrice: d("12.99"), Quantity: 3},
		{UnitPrice: d("7.35"), Quantity: 2},
		{UnitPrice: d("0.01"), Quantity: 7},
	}
	fee := d("3.49")

	first := ComputeTotals(lines, fee)
	second := ComputeTotals(lines, fee)

	assert.True(t, first.Subtotal.Equal(d("53.74")))
	assert.True(t, first.Subtotal.Equal(second.Subtotal), "repeated calls must agree")
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Tax.Equal(first.Subtotal.Mul(TaxRate).Round(2)))
	assert.True(t, first.Total.Equal(first.Subtotal.Add(first.DeliveryFee).Add(first.ServiceFee).Add(first.Tax)))
}

func TestTotals_MarshalJSON(t *testing.T) {
	totals := ComputeTotals([]Line{{UnitPrice: d("10"), Quantity: 2}, {UnitPrice: d("5.5"), Quantity: 1}}, d("2.99"))

	raw, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":"25.50","deliveryFee":"2.99","serviceFee":"1.50","tax":"2.55","total":"32.54"}`, string(raw))
}
