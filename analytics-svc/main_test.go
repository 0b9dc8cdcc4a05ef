package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "lunchbox-marketplace/analytics-svc/internal/api/http"
	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/statskeys"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const restaurantID = "8a6e0804-2bd0-4672-b79d-d97027f9071a"

func TestRestaurantAnalyticsEndToEnd(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	day := statskeys.Day(time.Now())
	mr.HSet(statskeys.Orders(day, restaurantID), statskeys.FieldCount, "2", statskeys.FieldRevenueCents, "2199")
	mr.ZAdd(statskeys.Daily(day, restaurantID), 3, "lb-1")
	mr.ZAdd(statskeys.AllTime(restaurantID), 12, "lb-1")

	sqlMock.ExpectQuery("SELECT owner_id FROM restaurants").
		WithArgs(restaurantID).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-1"))
	for i := 0; i < 2; i++ {
		sqlMock.ExpectQuery("SELECT id, name FROM lunchboxes").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("lb-1", "Bento"))
	}

	tokens := auth.NewJWTManager("secret", time.Hour)
	token, err := tokens.Generate(auth.Identity{UserID: "owner-1", Role: auth.RoleRestaurantOwner})
	if err != nil {
		t.Fatal(err)
	}
	router := httpapi.NewRouter(newHandler(db, rdb, zap.NewNop().Sugar()), tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+restaurantID+"/analytics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		OrdersToday  int64  `json:"ordersToday"`
		RevenueToday string `json:"revenueToday"`
		TopAllTime   []struct {
			Name     string `json:"name"`
			Quantity int64  `json:"quantity"`
		} `json:"topAllTime"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.OrdersToday != 2 || body.RevenueToday != "21.99" {
		t.Fatalf("unexpected counters: %+v", body)
	}
	if len(body.TopAllTime) != 1 || body.TopAllTime[0].Name != "Bento" || body.TopAllTime[0].Quantity != 12 {
		t.Fatalf("unexpected all-time ranking: %+v", body.TopAllTime)
	}
	if err := sqlMock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestHealthIsPublic(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	router := httpapi.NewRouter(newHandler(db, nil, zap.NewNop().Sugar()), auth.NewJWTManager("secret", time.Hour))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
