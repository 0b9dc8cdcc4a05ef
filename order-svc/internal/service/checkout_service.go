package service

import (
	"context"
	"errors"
	"time"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/eligibility"
	"lunchbox-marketplace/order-svc/internal/payment"
	"lunchbox-marketplace/order-svc/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReasonUnavailable marks a cart line whose lunchbox is gone, switched off or
// moved to another restaurant since it was added.
const ReasonUnavailable = "unavailable"

type CheckoutInput struct {
	DeliveryDay        domain.Weekday
	DeliveryBuildingID string
}

type PlaceOrderInput struct {
	PaymentIntentID    string
	DeliveryDay        domain.Weekday
	DeliveryBuildingID string
	// ExpectedTotal is the total the client showed the customer, if any.
	ExpectedTotal *decimal.Decimal
}

// Quote is a checkout priced against current database state.
type Quote struct {
	CustomerID string
	Restaurant *domain.Restaurant
	Building   *domain.DeliveryBuilding
	Location   *domain.DeliveryLocation
	Day        domain.Weekday
	Lines      []cart.Line
	Totals     pricing.Totals
}

type Validation struct {
	eligibility.Result
	AvailableBuildings []domain.DeliveryBuilding `json:"availableBuildings"`
	AvailableDays      []domain.Weekday          `json:"availableDays"`
}

type PaymentIntentResult struct {
	payment.Intent
	Totals pricing.Totals `json:"totals"`
}

type CheckoutService struct {
	carts       *CartService
	users       UserRepository
	restaurants RestaurantRepository
	menu        MenuItemRepository
	locations   LocationRepository
	orders      OrderRepository
	cache       OrderCache
	gateway     PaymentGateway
	events      EventPublisher
	qr          QRGenerator
	authz       *authz.Authorizer
	logger      *zap.SugaredLogger
}

type CheckoutDeps struct {
	Carts       *CartService
	Users       UserRepository
	Restaurants RestaurantRepository
	Menu        MenuItemRepository
	Locations   LocationRepository
	Orders      OrderRepository
	Cache       OrderCache
	Gateway     PaymentGateway
	Events      EventPublisher
	QR          QRGenerator
}

func NewCheckoutService(deps CheckoutDeps, authorizer *authz.Authorizer, logger *zap.SugaredLogger) *CheckoutService {
	return &CheckoutService{
		carts:       deps.Carts,
		users:       deps.Users,
		restaurants: deps.Restaurants,
		menu:        deps.Menu,
		locations:   deps.Locations,
		orders:      deps.Orders,
		cache:       deps.Cache,
		gateway:     deps.Gateway,
		events:      deps.Events,
		qr:          deps.QR,
		authz:       authorizer,
		logger:      logger,
	}
}

// Totals prices the session cart as it stands.
func (s *CheckoutService) Totals(ctx context.Context, identity auth.Identity, sessionKey string) (pricing.Totals, error) {
	if err := s.authorizeCheckout(identity); err != nil {
		return pricing.Totals{}, err
	}
	c, err := s.carts.Get(ctx, identity, sessionKey)
	if err != nil {
		return pricing.Totals{}, err
	}
	return c.Totals(), nil
}

// Validate reports eligibility for the chosen day and building along with
// the choices every line in the cart supports.
func (s *CheckoutService) Validate(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*Validation, error) {
	if err := s.authorizeCheckout(identity); err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, identity, sessionKey)
	if err != nil {
		return nil, err
	}

	buildings, err := activeBuildings(ctx, s.locations, eligibility.AvailableBuildingIDs(c.Lines))
	if err != nil {
		return nil, err
	}
	return &Validation{
		Result:             eligibility.Validate(c.Lines, input.DeliveryDay, input.DeliveryBuildingID),
		AvailableBuildings: buildings,
		AvailableDays:      eligibility.AvailableDays(c.Lines),
	}, nil
}

// Quote runs every checkout rule short of payment.
func (s *CheckoutService) Quote(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*Quote, error) {
	if err := s.authorizeCheckout(identity); err != nil {
		return nil, err
	}
	return s.quote(ctx, identity, sessionKey, input, nil)
}

// CreatePaymentIntent asks the payment authority to authorize the quoted
// total. Checkouts that would be refused never reach the authority.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*PaymentIntentResult, error) {
	quote, err := s.Quote(ctx, identity, sessionKey, input)
	if err != nil {
		return nil, err
	}
	intent, err := s.gateway.CreatePaymentIntent(ctx, quote.Totals.Total)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("payment intent created",
		"customer_id", identity.UserID, "payment_intent_id", intent.ID, "amount", quote.Totals.Total.StringFixed(2))
	return &PaymentIntentResult{Intent: intent, Totals: quote.Totals}, nil
}

// PlaceOrder turns a paid checkout into an order. It returns created=false
// when the payment intent already produced an order for this customer.
func (s *CheckoutService) PlaceOrder(ctx context.Context, identity auth.Identity, sessionKey string, input PlaceOrderInput) (*domain.Order, bool, error) {
	if err := s.authorizeCheckout(identity); err != nil {
		return nil, false, err
	}
	if input.PaymentIntentID == "" {
		return nil, false, domain.ErrPaymentNotConfirmed
	}

	// A replayed request finds its order before the cleared cart is looked at.
	if existing, err := s.existingOrder(ctx, identity, input.PaymentIntentID); err != nil || existing != nil {
		return existing, false, err
	}

	quote, err := s.quote(ctx, identity, sessionKey, CheckoutInput{
		DeliveryDay:        input.DeliveryDay,
		DeliveryBuildingID: input.DeliveryBuildingID,
	}, input.ExpectedTotal)
	if err != nil {
		return nil, false, err
	}

	if err := s.gateway.VerifyPayment(ctx, input.PaymentIntentID, quote.Totals.Total); err != nil {
		s.logger.Warnw("payment not confirmed", "customer_id", identity.UserID, "payment_intent_id", input.PaymentIntentID, "error", err)
		return nil, false, err
	}

	order := newOrder(quote, input.PaymentIntentID)
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, domain.ErrDuplicatePayment) {
			existing, lookupErr := s.existingOrder(ctx, identity, input.PaymentIntentID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	s.logger.Infow("order created",
		"order_id", order.ID, "order_number", order.OrderNumber, "customer_id", order.CustomerID,
		"restaurant_id", order.RestaurantID, "total", order.Total.StringFixed(2))
	s.afterCommit(ctx, identity, sessionKey, order)
	return order, true, nil
}

func (s *CheckoutService) authorizeCheckout(identity auth.Identity) error {
	return s.authz.Authorize(identity, authz.ActionCreate, authz.Target{Resource: authz.ResourceOrder, SubjectID: identity.UserID})
}

// existingOrder resolves a payment intent that has already been used. An
// intent owned by another customer is treated as unpaid for this one.
func (s *CheckoutService) existingOrder(ctx context.Context, identity auth.Identity, intentID string) (*domain.Order, error) {
	existing, err := s.orders.GetOrderByPaymentIntent(ctx, intentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if existing.CustomerID != identity.UserID {
		s.logger.Warnw("payment intent reused by another customer",
			"payment_intent_id", intentID, "customer_id", identity.UserID)
		return nil, domain.ErrPaymentNotConfirmed
	}
	return existing, nil
}

func (s *CheckoutService) quote(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput, expected *decimal.Decimal) (*Quote, error) {
	c, err := s.carts.Get(ctx, identity, sessionKey)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	if err := s.requireCompleteProfile(ctx, identity); err != nil {
		return nil, err
	}
	if c.MixedRestaurants() {
		return nil, domain.ErrMultiRestaurantCart
	}

	lines, err := s.refreshLines(ctx, identity, sessionKey, c)
	if err != nil {
		return nil, err
	}

	rest, err := s.restaurants.GetRestaurant(ctx, lines[0].RestaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrRestaurantUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !rest.IsActive {
		return nil, domain.ErrRestaurantUnavailable
	}
	for i := range lines {
		lines[i].RestaurantName = rest.Name
		lines[i].RestaurantDeliveryFee = rest.DeliveryFee
	}

	if err := eligibility.Validate(lines, input.DeliveryDay, input.DeliveryBuildingID).Err(); err != nil {
		return nil, err
	}

	building, location, err := s.deliveryTarget(ctx, rest, input.DeliveryBuildingID)
	if err != nil {
		return nil, err
	}

	pricingLines := make([]pricing.Line, len(lines))
	for i, line := range lines {
		pricingLines[i] = pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity}
	}
	totals := pricing.ComputeTotals(pricingLines, rest.DeliveryFee)
	if expected != nil && !expected.Equal(totals.Total) {
		return nil, domain.ErrTotalsMismatch
	}

	return &Quote{
		CustomerID: identity.UserID,
		Restaurant: rest,
		Building:   building,
		Location:   location,
		Day:        input.DeliveryDay,
		Lines:      lines,
		Totals:     totals,
	}, nil
}

// requireCompleteProfile reads contact details from the user record; token
// claims are never trusted for this.
func (s *CheckoutService) requireCompleteProfile(ctx context.Context, identity auth.Identity) error {
	user, err := s.users.GetUser(ctx, identity.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrProfileIncomplete
	}
	if err != nil {
		return err
	}
	if !user.ProfileComplete() {
		return domain.ErrProfileIncomplete
	}
	return nil
}

// refreshLines re-reads every cart line from the menu. Availability, days
// and buildings always come from the database. A changed price stops the
// checkout and the stored cart is repriced so the customer sees it.
func (s *CheckoutService) refreshLines(ctx context.Context, identity auth.Identity, sessionKey string, c *cart.Cart) ([]cart.Line, error) {
	ids := make([]string, len(c.Lines))
	for i, line := range c.Lines {
		ids[i] = line.MenuItemID
	}
	items, err := s.menu.GetMenuItems(ctx, ids)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]cart.Line, len(c.Lines))
	unavailable := []domain.IneligibleItem{}
	repriced := false
	for i, line := range c.Lines {
		item, ok := byID[line.MenuItemID]
		if !ok || !item.IsAvailable || item.RestaurantID != line.RestaurantID {
			unavailable = append(unavailable, domain.IneligibleItem{
				MenuItemID: line.MenuItemID,
				Name:       line.Name,
				Reasons:    []string{ReasonUnavailable},
			})
			continue
		}
		if !item.Price.Equal(line.UnitPrice) {
			c.Lines[i].UnitPrice = item.Price
			repriced = true
		}
		line.Name = item.Name
		line.UnitPrice = item.Price
		line.AvailableDays = item.AvailableDays
		line.EligibleBuildingIDs = item.EligibleBuildingIDs
		lines[i] = line
	}

	if len(unavailable) > 0 {
		return nil, &domain.IneligibleItemsError{Items: unavailable}
	}
	if repriced {
		if err := s.carts.store.Save(ctx, sessionKey, c); err != nil {
			s.logger.Warnw("failed to reprice cart", "session", sessionKey, "customer_id", identity.UserID, "error", err)
		}
		return nil, domain.ErrPriceChanged
	}
	return lines, nil
}

func (s *CheckoutService) deliveryTarget(ctx context.Context, rest *domain.Restaurant, buildingID string) (*domain.DeliveryBuilding, *domain.DeliveryLocation, error) {
	building, err := s.locations.GetBuilding(ctx, buildingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, domain.ErrBuildingOutsideLocation
	}
	if err != nil {
		return nil, nil, err
	}
	if !building.IsActive || building.DeliveryLocationID != rest.DeliveryLocationID {
		return nil, nil, domain.ErrBuildingOutsideLocation
	}

	location, err := s.locations.GetLocation(ctx, building.DeliveryLocationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, domain.ErrBuildingOutsideLocation
	}
	if err != nil {
		return nil, nil, err
	}
	return building, location, nil
}

func newOrder(quote *Quote, intentID string) *domain.Order {
	items := make([]domain.OrderItem, len(quote.Lines))
	for i, line := range quote.Lines {
		items[i] = domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.UnitPrice,
		}
	}
	return &domain.Order{
		CustomerID:         quote.CustomerID,
		RestaurantID:       quote.Restaurant.ID,
		Status:             domain.StatusPending,
		Subtotal:           quote.Totals.Subtotal,
		DeliveryFee:        quote.Totals.DeliveryFee,
		ServiceFee:         quote.Totals.ServiceFee,
		Tax:                quote.Totals.Tax,
		Total:              quote.Totals.Total,
		DeliveryLocation:   quote.Location.Name,
		DeliveryBuildingID: quote.Building.ID,
		DeliveryDay:        quote.Day,
		PaymentIntentID:    intentID,
		Items:              items,
	}
}

// afterCommit runs the side effects of a committed order. None of them can
// undo the order, so failures are only logged.
func (s *CheckoutService) afterCommit(ctx context.Context, identity auth.Identity, sessionKey string, order *domain.Order) {
	if _, err := s.carts.Clear(ctx, identity, sessionKey); err != nil {
		s.logger.Warnw("failed to clear cart", "order_id", order.ID, "session", sessionKey, "error", err)
	}
	if err := s.cache.InvalidateCustomerOrders(ctx, order.CustomerID); err != nil {
		s.logger.Warnw("failed to invalidate order cache", "customer_id", order.CustomerID, "error", err)
	}

	if png, err := s.qr.Generate(order.ID); err != nil {
		s.logger.Errorw("failed to generate QR code", "order_id", order.ID, "error", err)
	} else if err := s.orders.SaveQRCode(ctx, order.ID, png); err != nil {
		s.logger.Errorw("failed to save QR code", "order_id", order.ID, "error", err)
	}

	if err := s.events.PublishOrderEvent(ctx, newOrderEvent(domain.EventOrderCreated, order)); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", order.ID, "type", domain.EventOrderCreated, "error", err)
	}
}

func newOrderEvent(eventType string, order *domain.Order) domain.OrderEvent {
	items := make([]domain.OrderEventItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = domain.OrderEventItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}
	return domain.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalCents:   order.Total.Shift(2).Round(0).IntPart(),
		Items:        items,
		Timestamp:    time.Now().UTC(),
	}
}
