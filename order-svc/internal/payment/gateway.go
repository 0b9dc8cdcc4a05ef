package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const StatusSucceeded = "succeeded"

var ErrPaymentsDisabled = errors.New("payments are not configured")

// AuthorityIntent is the payment authority's view of an intent.
type AuthorityIntent struct {
	ID           string
	ClientSecret string
	AmountMinor  int64
	Currency     string
	Status       string
}

// Authority is the external payment provider.
type Authority interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (AuthorityIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (AuthorityIntent, error)
}

type Intent struct {
	ID           string          `json:"paymentIntentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

type Gateway struct {
	authority Authority
	currency  string
}

func NewGateway(authority Authority, currency string) *Gateway {
	return &Gateway{authority: authority, currency: currency}
}

// MaxAmount is the largest order total the orders table can hold.
var MaxAmount = decimal.RequireFromString("99999999.99")

// ToMinorUnits converts a currency amount to cents. Amounts that would need
// rounding, or that exceed MaxAmount, are rejected rather than silently
// adjusted.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return 0, domain.ErrInvalidAmount
	}
	cents := amount.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, domain.ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// CreatePaymentIntent asks the authority to authorize exactly amount. It is
// called once per checkout attempt and never retried here.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (Intent, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return Intent{}, err
	}
	if g.authority == nil {
		return Intent{}, fmt.Errorf("%w: %w", domain.ErrPaymentAuthority, ErrPaymentsDisabled)
	}

	created, err := g.authority.CreateIntent(ctx, minor, g.currency)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: %w", domain.ErrPaymentAuthority, err)
	}
	return Intent{
		ID:           created.ID,
		ClientSecret: created.ClientSecret,
		Amount:       decimal.New(created.AmountMinor, -2),
		Currency:     created.Currency,
	}, nil
}

// VerifyPayment confirms with the authority that the intent was paid for
// exactly amount in the gateway's currency.
func (g *Gateway) VerifyPayment(ctx context.Context, intentID string, amount decimal.Decimal) error {
	if intentID == "" {
		return domain.ErrPaymentNotConfirmed
	}
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return err
	}
	if g.authority == nil {
		return fmt.Errorf("%w: %w", domain.ErrPaymentAuthority, ErrPaymentsDisabled)
	}

	intent, err := g.authority.RetrieveIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, ErrIntentNotFound) {
			return domain.ErrPaymentNotConfirmed
		}
		return fmt.Errorf("%w: %w", domain.ErrPaymentAuthority, err)
	}
	if intent.Status != StatusSucceeded || intent.AmountMinor != minor || !strings.EqualFold(intent.Currency, g.currency) {
		return domain.ErrPaymentNotConfirmed
	}
	return nil
}
