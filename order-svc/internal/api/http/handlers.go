package httpapi

import (
	"net/http"
	"time"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/order-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const CartSessionHeader = "X-Cart-Session"

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Locations service.LocationServiceInterface
	Profiles  service.ProfileServiceInterface
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
	Logger    *zap.SugaredLogger
}

type Services struct {
	Catalog   service.CatalogServiceInterface
	Locations service.LocationServiceInterface
	Profiles  service.ProfileServiceInterface
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
}

func NewHandler(svcs Services, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		Catalog:   svcs.Catalog,
		Locations: svcs.Locations,
		Profiles:  svcs.Profiles,
		Carts:     svcs.Carts,
		Checkout:  svcs.Checkout,
		Orders:    svcs.Orders,
		Logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/owner/{ownerId}", h.getOwnerRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/lunchboxes", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/lunchboxes", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/lunchboxes/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/lunchboxes/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/lunchboxes/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/delivery-locations", h.getLocations).Methods("GET")
	r.HandleFunc("/api/delivery-locations", h.createLocation).Methods("POST")
	r.HandleFunc("/api/delivery-locations/{id}", h.updateLocation).Methods("PUT")
	r.HandleFunc("/api/delivery-locations/{id}", h.deleteLocation).Methods("DELETE")
	r.HandleFunc("/api/delivery-locations/{id}/buildings", h.getBuildings).Methods("GET")
	r.HandleFunc("/api/delivery-locations/{id}/buildings", h.createBuilding).Methods("POST")
	r.HandleFunc("/api/delivery-buildings/{id}", h.updateBuilding).Methods("PUT")
	r.HandleFunc("/api/delivery-buildings/{id}", h.deleteBuilding).Methods("DELETE")

	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profile", h.updateProfile).Methods("PUT")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{menuItemId}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{menuItemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout/totals", h.getCheckoutTotals).Methods("GET")
	r.HandleFunc("/api/checkout/validate", h.validateCheckout).Methods("POST")
	r.HandleFunc("/api/checkout/payment-intent", h.createPaymentIntent).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/bulk-status", h.bulkUpdateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/items", h.getOrderItems).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, h.Logger, err)
}

func identityOf(r *http.Request) auth.Identity {
	return auth.FromContext(r.Context())
}
