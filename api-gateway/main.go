package main

import (
	"net/http"
	"time"

	"lunchbox-marketplace/api-gateway/internal/gateway"
	"lunchbox-marketplace/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func newHandler(cfg gateway.Config, client gateway.HTTPClient, logger *zap.SugaredLogger) http.Handler {
	gw := gateway.NewGateway(cfg, client, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Cart-Session", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	cfg := config.Load(":8080")
	logger := config.NewLogger("api-gateway")
	defer logger.Sync()

	routes := gateway.Config{
		OrderSvcURL:     config.GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		StaticDir:       config.GetEnv("STATIC_DIR", "./frontend/dist"),
	}
	handler := newHandler(routes, &http.Client{Timeout: 30 * time.Second}, logger)

	logger.Infow("API gateway starting", "addr", cfg.HTTPAddr, "order_svc", routes.OrderSvcURL, "analytics_svc", routes.AnalyticsSvcURL)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalw("gateway stopped", "error", err)
	}
}
