package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseWeekday(fl.Field().String())
		return ok
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a single JSON object into dst and runs the struct
// validators. Any failure is an invalid-input error.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.InvalidInput("request body is empty")
		}
		return domain.InvalidInput("malformed JSON: %v", err)
	}
	if err := Validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// pathID reads a UUID path variable. Ids that do not parse never reach
// storage.
func pathID(r *http.Request, name string) (string, error) {
	id := mux.Vars(r)[name]
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.InvalidInput("%s must be a UUID", name)
	}
	return id, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.InvalidInput("%v", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return domain.InvalidInput("%s", strings.Join(msgs, "; "))
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

type restaurantRequest struct {
	OwnerID            string          `json:"ownerId"`
	Name               string          `json:"name" validate:"required,max=200"`
	Description        string          `json:"description" validate:"max=2000"`
	Cuisine            string          `json:"cuisine" validate:"max=100"`
	ImageURL           string          `json:"imageUrl" validate:"omitempty,url"`
	DeliveryFee        decimal.Decimal `json:"deliveryFee"`
	DeliveryLocationID string          `json:"deliveryLocationId" validate:"omitempty,uuid"`
	IsActive           *bool           `json:"isActive"`
}

func (req restaurantRequest) input() (service.RestaurantInput, error) {
	if req.DeliveryFee.IsNegative() {
		return service.RestaurantInput{}, domain.InvalidInput("deliveryFee must not be negative")
	}
	return service.RestaurantInput{
		OwnerID:            strings.TrimSpace(req.OwnerID),
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		Cuisine:            req.Cuisine,
		ImageURL:           req.ImageURL,
		DeliveryFee:        req.DeliveryFee,
		DeliveryLocationID: req.DeliveryLocationID,
		IsActive:           boolOr(req.IsActive, true),
	}, nil
}

type menuItemRequest struct {
	Name                string          `json:"name" validate:"required,max=200"`
	Description         string          `json:"description" validate:"max=2000"`
	Price               decimal.Decimal `json:"price"`
	ImageURL            string          `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable         *bool           `json:"isAvailable"`
	DietaryTags         []string        `json:"dietaryTags" validate:"dive,required,max=50"`
	AvailableDays       []string        `json:"availableDays" validate:"dive,weekday"`
	EligibleBuildingIDs []string        `json:"eligibleBuildingIds" validate:"dive,uuid"`
}

func (req menuItemRequest) input() (service.MenuItemInput, error) {
	if !req.Price.IsPositive() {
		return service.MenuItemInput{}, domain.InvalidInput("price must be positive")
	}
	if !req.Price.Equal(req.Price.Round(2)) {
		return service.MenuItemInput{}, domain.InvalidInput("price must have at most two decimals")
	}
	return service.MenuItemInput{
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		Price:               req.Price,
		ImageURL:            req.ImageURL,
		IsAvailable:         boolOr(req.IsAvailable, true),
		DietaryTags:         req.DietaryTags,
		AvailableDays:       domain.WeekdaysFromStrings(req.AvailableDays),
		EligibleBuildingIDs: dedupeStrings(req.EligibleBuildingIDs),
	}, nil
}

type locationRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"max=500"`
	IsActive *bool  `json:"isActive"`
}

type buildingRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	IsActive *bool  `json:"isActive"`
}

type profileRequest struct {
	FullName           string `json:"fullName" validate:"max=200"`
	PhoneNumber        string `json:"phoneNumber" validate:"max=50"`
	DeliveryLocationID string `json:"deliveryLocationId" validate:"omitempty,uuid"`
}

type addCartItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required,uuid"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=99"`
}

type checkoutRequest struct {
	DeliveryDay        string `json:"deliveryDay" validate:"omitempty,weekday"`
	DeliveryBuildingID string `json:"deliveryBuildingId" validate:"omitempty,uuid"`
}

func (req checkoutRequest) input() service.CheckoutInput {
	day, _ := domain.ParseWeekday(req.DeliveryDay)
	return service.CheckoutInput{DeliveryDay: day, DeliveryBuildingID: strings.TrimSpace(req.DeliveryBuildingID)}
}

type placeOrderRequest struct {
	PaymentIntentID    string           `json:"paymentIntentId" validate:"required"`
	DeliveryDay        string           `json:"deliveryDay" validate:"omitempty,weekday"`
	DeliveryBuildingID string           `json:"deliveryBuildingId" validate:"omitempty,uuid"`
	ExpectedTotal      *decimal.Decimal `json:"expectedTotal"`
}

func (req placeOrderRequest) input() service.PlaceOrderInput {
	checkout := checkoutRequest{DeliveryDay: req.DeliveryDay, DeliveryBuildingID: req.DeliveryBuildingID}.input()
	return service.PlaceOrderInput{
		PaymentIntentID:    strings.TrimSpace(req.PaymentIntentID),
		DeliveryDay:        checkout.DeliveryDay,
		DeliveryBuildingID: checkout.DeliveryBuildingID,
		ExpectedTotal:      req.ExpectedTotal,
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready out_for_delivery delivered cancelled"`
}

type bulkStatusRequest struct {
	OrderIDs []string `json:"orderIds" validate:"required,min=1,dive,required,uuid"`
	Status   string   `json:"status" validate:"required,oneof=pending confirmed preparing ready out_for_delivery delivered cancelled"`
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
