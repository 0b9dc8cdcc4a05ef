package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var (
	ServiceFee = decimal.RequireFromString("1.50")
	TaxRate    = decimal.RequireFromString("0.10")
)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals prices a cart. Tax is charged on the subtotal only and is
// rounded to the cent; fees are added untaxed.
func ComputeTotals(lines []Line, deliveryFee decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		ServiceFee:  ServiceFee,
		Tax:         tax,
		Total:       subtotal.Add(deliveryFee).Add(ServiceFee).Add(tax),
	}
}

func (t Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"subtotal":    t.Subtotal.StringFixed(2),
		"deliveryFee": t.DeliveryFee.StringFixed(2),
		"serviceFee":  t.ServiceFee.StringFixed(2),
		"tax":         t.Tax.StringFixed(2),
		"total":       t.Total.StringFixed(2),
	})
}
