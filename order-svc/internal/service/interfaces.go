package service

import (
	"context"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/payment"
	"lunchbox-marketplace/order-svc/internal/pricing"

	"github.com/shopspring/decimal"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context, activeOnly bool) ([]domain.Restaurant, error)
	ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id string) error
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	GetMenuItems(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
}

type LocationRepository interface {
	CreateLocation(ctx context.Context, loc *domain.DeliveryLocation) error
	ListLocations(ctx context.Context, activeOnly bool) ([]domain.DeliveryLocation, error)
	GetLocation(ctx context.Context, id string) (*domain.DeliveryLocation, error)
	UpdateLocation(ctx context.Context, loc *domain.DeliveryLocation) error
	DeleteLocation(ctx context.Context, id string) error
	CreateBuilding(ctx context.Context, b *domain.DeliveryBuilding) error
	ListBuildings(ctx context.Context, locationID string) ([]domain.DeliveryBuilding, error)
	GetBuilding(ctx context.Context, id string) (*domain.DeliveryBuilding, error)
	GetBuildings(ctx context.Context, ids []string) ([]domain.DeliveryBuilding, error)
	UpdateBuilding(ctx context.Context, b *domain.DeliveryBuilding) error
	DeleteBuilding(ctx context.Context, id string) error
}

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetOrderByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error)
	GetOrderRef(ctx context.Context, id string) (*domain.OrderRef, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) (*domain.Order, error)
	BulkUpdateOrderStatus(ctx context.Context, ids []string, to domain.OrderStatus, guard func(domain.OrderRef) error) (int64, error)
	SaveQRCode(ctx context.Context, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type CartStore interface {
	Load(ctx context.Context, sessionKey string) (*cart.Cart, error)
	Save(ctx context.Context, sessionKey string, c *cart.Cart) error
	Delete(ctx context.Context, sessionKey string) error
}

type OrderCache interface {
	GetCustomerOrders(ctx context.Context, customerID string) ([]domain.Order, bool, error)
	SetCustomerOrders(ctx context.Context, customerID string, orders []domain.Order) error
	InvalidateCustomerOrders(ctx context.Context, customerID string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (payment.Intent, error)
	VerifyPayment(ctx context.Context, intentID string, amount decimal.Decimal) error
}

var _ PaymentGateway = (*payment.Gateway)(nil)

type LocationServiceInterface interface {
	ListLocations(ctx context.Context, identity auth.Identity, includeInactive bool) ([]domain.DeliveryLocation, error)
	CreateLocation(ctx context.Context, identity auth.Identity, input LocationInput) (*domain.DeliveryLocation, error)
	UpdateLocation(ctx context.Context, identity auth.Identity, id string, input LocationInput) (*domain.DeliveryLocation, error)
	DeleteLocation(ctx context.Context, identity auth.Identity, id string) error
	ListBuildings(ctx context.Context, locationID string) ([]domain.DeliveryBuilding, error)
	CreateBuilding(ctx context.Context, identity auth.Identity, locationID string, input BuildingInput) (*domain.DeliveryBuilding, error)
	UpdateBuilding(ctx context.Context, identity auth.Identity, id string, input BuildingInput) (*domain.DeliveryBuilding, error)
	DeleteBuilding(ctx context.Context, identity auth.Identity, id string) error
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, identity auth.Identity) (*domain.User, error)
	Update(ctx context.Context, identity auth.Identity, input ProfileInput) (*domain.User, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, identity auth.Identity, sessionKey string) (*cart.Cart, error)
	AddItem(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string) (*cart.Cart, error)
	RemoveItem(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string) (*cart.Cart, error)
	UpdateQuantity(ctx context.Context, identity auth.Identity, sessionKey, menuItemID string, quantity int) (*cart.Cart, error)
	Clear(ctx context.Context, identity auth.Identity, sessionKey string) (*cart.Cart, error)
}

type CheckoutServiceInterface interface {
	Totals(ctx context.Context, identity auth.Identity, sessionKey string) (pricing.Totals, error)
	Validate(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*Validation, error)
	Quote(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*Quote, error)
	CreatePaymentIntent(ctx context.Context, identity auth.Identity, sessionKey string, input CheckoutInput) (*PaymentIntentResult, error)
	PlaceOrder(ctx context.Context, identity auth.Identity, sessionKey string, input PlaceOrderInput) (*domain.Order, bool, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, identity auth.Identity) ([]domain.Order, error)
	Get(ctx context.Context, identity auth.Identity, id string) (*domain.Order, error)
	Items(ctx context.Context, identity auth.Identity, id string) ([]domain.OrderItem, error)
	QRCode(ctx context.Context, identity auth.Identity, id string) ([]byte, error)
	UpdateStatus(ctx context.Context, identity auth.Identity, id string, to domain.OrderStatus) (*domain.Order, error)
	BulkUpdateStatus(ctx context.Context, identity auth.Identity, ids []string, to domain.OrderStatus) (int64, error)
}

var (
	_ LocationServiceInterface = (*LocationService)(nil)
	_ ProfileServiceInterface  = (*ProfileService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
)
