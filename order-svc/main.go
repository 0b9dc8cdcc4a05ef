package main

import (
	"context"
	"net/http"
	"time"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/config"
	httpapi "lunchbox-marketplace/order-svc/internal/api/http"
	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/payment"
	"lunchbox-marketplace/order-svc/internal/service"
	"lunchbox-marketplace/order-svc/internal/storage"

	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

type dependencies struct {
	Repo    *storage.PostgresRepository
	Carts   service.CartStore
	Cache   service.OrderCache
	Events  service.EventPublisher
	Gateway service.PaymentGateway
	QR      service.QRGenerator
}

func newServices(deps dependencies, cfg config.Config, logger *zap.SugaredLogger) httpapi.Services {
	authorizer := authz.NewDefault()
	carts := service.NewCartService(deps.Carts, deps.Repo, deps.Repo,
		cart.Options{EnforceSingleRestaurant: cfg.EnforceSingleRestaurantCart}, logger)

	return httpapi.Services{
		Catalog:   service.NewCatalogService(deps.Repo, deps.Repo, deps.Repo, authorizer, logger),
		Locations: service.NewLocationService(deps.Repo, authorizer, logger),
		Profiles:  service.NewProfileService(deps.Repo, deps.Repo, authorizer, logger),
		Carts:     carts,
		Checkout: service.NewCheckoutService(service.CheckoutDeps{
			Carts:       carts,
			Users:       deps.Repo,
			Restaurants: deps.Repo,
			Menu:        deps.Repo,
			Locations:   deps.Repo,
			Orders:      deps.Repo,
			Cache:       deps.Cache,
			Gateway:     deps.Gateway,
			Events:      deps.Events,
			QR:          deps.QR,
		}, authorizer, logger),
		Orders: service.NewOrderService(deps.Repo, deps.Cache, deps.Events, authorizer, logger),
	}
}

// paymentAuthority returns nil when no secret key is configured; checkout
// then reports the payment provider as unavailable.
func paymentAuthority(cfg config.PaymentConfig, logger *zap.SugaredLogger) payment.Authority {
	if cfg.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, payments are disabled")
		return nil
	}
	return payment.NewHTTPAuthority(cfg.BaseURL, cfg.SecretKey, &http.Client{Timeout: 15 * time.Second})
}

func main() {
	cfg := config.Load(":8081")
	logger := config.NewLogger("order-svc")
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db := config.MustInitPostgres()
	defer db.Close()
	repo := storage.NewPostgresRepository(storage.NewRetryingDB(db, storage.RetryPolicy(cfg.DBRetry), logger))
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatalw("failed to apply schema", "error", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	services := newServices(dependencies{
		Repo:    repo,
		Carts:   storage.NewRedisCartStore(rdb, cfg.CartTTL),
		Cache:   storage.NewRedisOrderCache(rdb, cfg.OrderCacheTTL),
		Events:  storage.NewKafkaPublisher(writer),
		Gateway: payment.NewGateway(paymentAuthority(cfg.Payment, logger), cfg.Payment.Currency),
		QR:      service.NewDefaultQRGenerator(cfg.PublicBaseURL),
	}, cfg, logger)

	handler := httpapi.NewHandler(services, logger)
	router := httpapi.NewRouter(handler, auth.NewJWTManager(cfg.JWTSecret, tokenTTL))

	if err := httpapi.StartServer(cfg.HTTPAddr, router, logger); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
