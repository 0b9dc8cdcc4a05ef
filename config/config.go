package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const OrdersTopic = "orders"

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

type PaymentConfig struct {
	SecretKey string
	BaseURL   string
	Currency  string
}

type Config struct {
	HTTPAddr                    string
	JWTSecret                   string
	PublicBaseURL               string
	Payment                     PaymentConfig
	CartTTL                     time.Duration
	OrderCacheTTL               time.Duration
	EnforceSingleRestaurantCart bool
	DBRetry                     RetryConfig
}

// Load reads the process environment. A .env file in the working directory
// is applied first when present; real environment variables take precedence.
func Load(defaultAddr string) Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      GetEnv("HTTP_ADDR", defaultAddr),
		JWTSecret:     GetEnv("JWT_SECRET", ""),
		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		Payment: PaymentConfig{
			SecretKey: GetEnv("STRIPE_SECRET_KEY", ""),
			BaseURL:   GetEnv("STRIPE_API_URL", "https://api.stripe.com"),
			Currency:  GetEnv("PAYMENT_CURRENCY", "usd"),
		},
		CartTTL:                     getDuration("CART_TTL", 7*24*time.Hour),
		OrderCacheTTL:               getDuration("ORDER_CACHE_TTL", 5*time.Minute),
		EnforceSingleRestaurantCart: getBool("CART_ENFORCE_SINGLE_RESTAURANT", false),
		DBRetry: RetryConfig{
			MaxAttempts: getInt("DB_RETRY_ATTEMPTS", 3),
			BaseDelay:   getDuration("DB_RETRY_BASE_DELAY", time.Second),
			Multiplier:  2,
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), GetEnv("DB_SSLMODE", "disable"))
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", GetEnv("DATABASE_URL", PostgresDSN()))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}
