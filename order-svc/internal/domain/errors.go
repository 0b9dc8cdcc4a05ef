package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindStateConflict Kind = "state_conflict"
	KindPersistence   Kind = "persistence"
	KindExternal      Kind = "external"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrInvalidInput   = newError(KindValidation, "invalid_input", "invalid request")
	ErrInvalidAmount  = newError(KindValidation, "invalid_amount", "payment amount must be positive whole cents within the storable range")
	ErrEmptyCart      = newError(KindValidation, "empty_cart", "cart is empty")
	ErrMissingSession = newError(KindValidation, "missing_cart_session", "cart session is required")
	ErrQuantityLimit  = newError(KindValidation, "quantity_limit", "quantity exceeds the cart limit")

	ErrNotFound = newError(KindNotFound, "not_found", "resource not found")

	ErrProfileIncomplete       = newError(KindStateConflict, "profile_incomplete", "full name and phone number are required before checkout")
	ErrMultiRestaurantCart     = newError(KindStateConflict, "multi_restaurant_cart", "cart contains items from more than one restaurant")
	ErrSelectionIncomplete     = newError(KindStateConflict, "selection_incomplete", "delivery day and delivery building must both be selected")
	ErrIneligibleItems         = newError(KindStateConflict, "ineligible_items", "some items cannot be delivered for the selected day and building")
	ErrItemUnavailable         = newError(KindStateConflict, "item_unavailable", "menu item is not available")
	ErrRestaurantUnavailable   = newError(KindStateConflict, "restaurant_unavailable", "restaurant is not accepting orders")
	ErrBuildingOutsideLocation = newError(KindStateConflict, "building_outside_location", "delivery building is not served by this restaurant")
	ErrPriceChanged            = newError(KindStateConflict, "price_changed", "menu prices changed since the item was added to the cart")
	ErrTotalsMismatch          = newError(KindStateConflict, "totals_mismatch", "order total does not match the current cart")
	ErrPaymentNotConfirmed     = newError(KindStateConflict, "payment_not_confirmed", "payment has not been confirmed for this order total")
	ErrInvalidTransition       = newError(KindStateConflict, "invalid_status_transition", "order status transition is not allowed")
	ErrConcurrentUpdate        = newError(KindStateConflict, "concurrent_update", "order was modified concurrently")
	ErrBulkUpdateFailed        = newError(KindStateConflict, "bulk_update_failed", "bulk status update rejected; no orders were changed")
	ErrResourceInUse           = newError(KindStateConflict, "resource_in_use", "resource is referenced by other records")
	ErrDuplicatePayment        = newError(KindStateConflict, "duplicate_payment_intent", "payment intent already used by another order")

	ErrPersistence      = newError(KindPersistence, "persistence_failure", "storage is temporarily unavailable")
	ErrPaymentAuthority = newError(KindExternal, "payment_authority_error", "payment provider is unavailable")
)

// KindOf returns the taxonomy kind of err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

type IneligibleItem struct {
	MenuItemID string   `json:"menuItemId"`
	Name       string   `json:"name"`
	Reasons    []string `json:"reasons"`
}

type IneligibleItemsError struct {
	Items []IneligibleItem
}

func (e *IneligibleItemsError) Error() string {
	ids := make([]string, len(e.Items))
	for i, item := range e.Items {
		ids[i] = item.MenuItemID
	}
	return fmt.Sprintf("%s: %s", ErrIneligibleItems.Message, strings.Join(ids, ", "))
}

func (e *IneligibleItemsError) Unwrap() error {
	return ErrIneligibleItems
}

// BulkUpdateError names the order that caused a bulk status update to be
// rolled back.
type BulkUpdateError struct {
	OrderID string
	Err     error
}

func (e *BulkUpdateError) Error() string {
	return fmt.Sprintf("order %s: %v", e.OrderID, e.Err)
}

func (e *BulkUpdateError) Unwrap() []error {
	return []error{e.Err, ErrBulkUpdateFailed}
}

func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
