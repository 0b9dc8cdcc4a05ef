package main

import (
	"database/sql"

	httpapi "lunchbox-marketplace/analytics-svc/internal/api/http"
	"lunchbox-marketplace/analytics-svc/internal/service"
	"lunchbox-marketplace/analytics-svc/internal/storage"
	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newHandler(db *sql.DB, rdb *redis.Client, logger *zap.SugaredLogger) *httpapi.Handler {
	pg := storage.NewPostgresStats(db)
	svc := service.NewAnalyticsService(service.Deps{
		Cache:  storage.NewRedisStats(rdb),
		DB:     pg,
		Owners: pg,
		Names:  pg,
	}, authz.NewDefault(), logger)
	return httpapi.NewHandler(svc, logger)
}

func main() {
	cfg := config.Load(":8083")
	logger := config.NewLogger("analytics-svc")
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	// Tokens are only verified here, so the TTL is irrelevant.
	verifier := auth.NewJWTManager(cfg.JWTSecret, 0)
	router := httpapi.NewRouter(newHandler(db, rdb, logger), verifier)

	if err := httpapi.StartServer(cfg.HTTPAddr, router, logger); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
