package tests

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lunchbox-marketplace/order-svc/internal/cart"
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restaurantRowColumns = []string{
	"id", "owner_id", "name", "description", "cuisine", "image_url",
	"delivery_fee", "delivery_location_id", "rating", "is_active", "created_at",
}

func newSQLRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	policy := storage.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2}
	return storage.NewPostgresRepository(storage.NewRetryingDB(db, policy, nopLogger())), mock
}

func TestPostgres_GetRestaurant(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectQuery(`SELECT .+ FROM restaurants WHERE id = \$1`).
		WithArgs(restaurantID).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow(restaurantID, ownerID, "Bento Bar", "", "japanese", "", "2.99", locationID, "4.5", true, time.Now()))

	rest, err := repo.GetRestaurant(context.Background(), restaurantID)

	require.NoError(t, err)
	assert.Equal(t, ownerID, rest.OwnerID)
	assert.True(t, rest.DeliveryFee.Equal(dec("2.99")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetRestaurantNotFound(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectQuery(`SELECT .+ FROM restaurants WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

	_, err := repo.GetRestaurant(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_MalformedIDIsInvalidInput(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectQuery(`SELECT .+ FROM restaurants WHERE id = \$1`).
		WithArgs("abc").
		WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})

	_, err := repo.GetRestaurant(context.Background(), "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetryingDB(t *testing.T) {
	tests := []struct {
		name     string
		failures []error
		wantErr  error
	}{
		{name: "connection reset is retried", failures: []error{&pq.Error{Code: "08006"}}},
		{name: "waking serverless endpoint is retried", failures: []error{
			&pq.Error{Code: "XX000", Message: "endpoint has been disabled"},
			&pq.Error{Code: "57P01"},
		}},
		{name: "attempts run out", failures: []error{
			&pq.Error{Code: "08006"}, &pq.Error{Code: "08006"}, &pq.Error{Code: "08006"},
		}, wantErr: domain.ErrPersistence},
		{name: "syntax error is not retried", failures: []error{&pq.Error{Code: "42601"}}, wantErr: domain.ErrPersistence},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newSQLRepo(t)
			for _, failure := range testCase.failures {
				mock.ExpectQuery(`SELECT .+ FROM restaurants WHERE id = \$1`).WillReturnError(failure)
			}
			succeeds := testCase.wantErr == nil
			if succeeds {
				mock.ExpectQuery(`SELECT .+ FROM restaurants WHERE id = \$1`).
					WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
						AddRow(restaurantID, ownerID, "Bento Bar", "", "", "", "2.99", "", "0", true, time.Now()))
			}

			_, err := repo.GetRestaurant(context.Background(), restaurantID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, storage.IsTransient(&pq.Error{Code: "08001"}))
	assert.True(t, storage.IsTransient(&pq.Error{Code: "57P03"}))
	assert.True(t, storage.IsTransient(errors.New("ERROR: endpoint has been disabled")))
	assert.False(t, storage.IsTransient(&pq.Error{Code: "23505"}))
	assert.False(t, storage.IsTransient(nil))
}

func TestPostgres_DeleteRestaurant(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM restaurants`).WithArgs(restaurantID).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing to delete",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM restaurants`).WithArgs(restaurantID).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "still referenced",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM restaurants`).WithArgs(restaurantID).WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrResourceInUse,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newSQLRepo(t)
			testCase.setup(mock)

			err := repo.DeleteRestaurant(context.Background(), restaurantID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func newPendingOrder() *domain.Order {
	order := placedOrder()
	order.ID = ""
	order.OrderNumber = 0
	order.Items = []domain.OrderItem{{MenuItemID: menuItemID, Name: "Teriyaki Bento", Quantity: 2, Price: dec("12.75")}}
	return order
}

func TestPostgres_CreateOrder(t *testing.T) {
	repo, mock := newSQLRepo(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "created_at", "updated_at"}).AddRow("ord-1", 1001, now, now))
	mock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs("ord-1", menuItemID, "Teriyaki Bento", 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("item-1"))
	mock.ExpectCommit()

	order := newPendingOrder()
	err := repo.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, int64(1001), order.OrderNumber)
	assert.Equal(t, "ord-1", order.Items[0].OrderID)
	assert.Equal(t, "item-1", order.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateOrderDuplicateIntent(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_payment_intent_id_key"})
	mock.ExpectRollback()

	err := repo.CreateOrder(context.Background(), newPendingOrder())

	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateOrderItemFailureRollsBack(t *testing.T) {
	repo, mock := newSQLRepo(t)
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "created_at", "updated_at"}).AddRow("ord-1", 1001, now, now))
	mock.ExpectQuery(`INSERT INTO order_items`).WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err := repo.CreateOrder(context.Background(), newPendingOrder())

	assert.ErrorIs(t, err, domain.ErrResourceInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateOrderStatusConflict(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectQuery(`UPDATE orders o\s+SET status = \$1`).
		WithArgs(domain.StatusConfirmed, "ord-1", domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateOrderStatus(context.Background(), "ord-1", domain.StatusPending, domain.StatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var refColumns = []string{"id", "customer_id", "restaurant_id", "owner_id", "status"}

func TestPostgres_BulkUpdateOrderStatus(t *testing.T) {
	vetoOrd2 := func(ref domain.OrderRef) error {
		if ref.ID == "ord-2" {
			return domain.ErrInvalidTransition
		}
		return nil
	}
	allow := func(domain.OrderRef) error { return nil }

	tests := []struct {
		name    string
		refs    [][]any
		guard   func(domain.OrderRef) error
		commit  bool
		wantErr error
		wantID  string
	}{
		{
			name: "all pass",
			refs: [][]any{
				{"ord-1", customerID, restaurantID, ownerID, "pending"},
				{"ord-2", customerID, restaurantID, ownerID, "pending"},
			},
			guard:  allow,
			commit: true,
		},
		{
			name: "veto rolls back",
			refs: [][]any{
				{"ord-1", customerID, restaurantID, ownerID, "pending"},
				{"ord-2", customerID, restaurantID, ownerID, "delivered"},
			},
			guard:   vetoOrd2,
			wantErr: domain.ErrInvalidTransition,
			wantID:  "ord-2",
		},
		{
			name:    "missing order rolls back",
			refs:    [][]any{{"ord-1", customerID, restaurantID, ownerID, "pending"}},
			guard:   allow,
			wantErr: domain.ErrNotFound,
			wantID:  "ord-2",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newSQLRepo(t)
			rows := sqlmock.NewRows(refColumns)
			for _, ref := range testCase.refs {
				values := make([]driver.Value, len(ref))
				for i, v := range ref {
					values[i] = v
				}
				rows.AddRow(values...)
			}
			mock.ExpectBegin()
			mock.ExpectQuery(`FOR UPDATE OF o`).WillReturnRows(rows)
			if testCase.commit {
				mock.ExpectExec(`UPDATE orders SET status = \$1`).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			updated, err := repo.BulkUpdateOrderStatus(context.Background(), []string{"ord-1", "ord-2"}, domain.StatusConfirmed, testCase.guard)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				var bulkErr *domain.BulkUpdateError
				require.ErrorAs(t, err, &bulkErr)
				assert.Equal(t, testCase.wantID, bulkErr.OrderID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(2), updated)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_GetQRCodeMissing(t *testing.T) {
	repo, mock := newSQLRepo(t)
	mock.ExpectQuery(`SELECT qr_code FROM orders`).WithArgs("ord-1").
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow(nil))

	_, err := repo.GetQRCode(context.Background(), "ord-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisCartStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session is an empty anonymous cart", func(t *testing.T) {
		_, client := newMiniRedis(t)
		store := storage.NewRedisCartStore(client, time.Hour)

		c, err := store.Load(ctx, sessionKey)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.OwnerID)
	})

	t.Run("saved cart round trips with ttl", func(t *testing.T) {
		mr, client := newMiniRedis(t)
		store := storage.NewRedisCartStore(client, time.Hour)

		require.NoError(t, store.Save(ctx, sessionKey, sampleCart()))
		c, err := store.Load(ctx, sessionKey)

		require.NoError(t, err)
		assert.Equal(t, customerID, c.OwnerID)
		require.Len(t, c.Lines, 1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
		assert.True(t, c.Totals().Total.Equal(dec("32.54")))
		assert.Equal(t, time.Hour, mr.TTL(store.CartKey(sessionKey)))
	})

	t.Run("unreadable payload starts over", func(t *testing.T) {
		mr, client := newMiniRedis(t)
		store := storage.NewRedisCartStore(client, time.Hour)
		require.NoError(t, mr.Set(store.CartKey(sessionKey), "{not json"))

		c, err := store.Load(ctx, sessionKey)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("delete drops the session cart", func(t *testing.T) {
		mr, client := newMiniRedis(t)
		store := storage.NewRedisCartStore(client, time.Hour)
		require.NoError(t, store.Save(ctx, sessionKey, sampleCart()))

		require.NoError(t, store.Delete(ctx, sessionKey))

		assert.False(t, mr.Exists(store.CartKey(sessionKey)))
	})

	t.Run("unreachable redis is a persistence failure", func(t *testing.T) {
		mr, client := newMiniRedis(t)
		store := storage.NewRedisCartStore(client, time.Hour)
		mr.Close()

		_, err := store.Load(ctx, sessionKey)

		assert.ErrorIs(t, err, domain.ErrPersistence)
		assert.ErrorIs(t, store.Save(ctx, sessionKey, cart.New("")), domain.ErrPersistence)
	})
}

func TestRedisOrderCache(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniRedis(t)
	cache := storage.NewRedisOrderCache(client, time.Minute)

	_, hit, err := cache.GetCustomerOrders(ctx, customerID)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.SetCustomerOrders(ctx, customerID, []domain.Order{*placedOrder()}))
	assert.Equal(t, time.Minute, mr.TTL(cache.CustomerOrdersKey(customerID)))

	orders, hit, err := cache.GetCustomerOrders(ctx, customerID)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(dec("32.54")))

	require.NoError(t, cache.InvalidateCustomerOrders(ctx, customerID))
	_, hit, err = cache.GetCustomerOrders(ctx, customerID)
	require.NoError(t, err)
	assert.False(t, hit)
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)
	event := domain.OrderEvent{
		EventID:      "evt-1",
		Type:         domain.EventOrderCreated,
		OrderID:      "ord-1",
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Status:       domain.StatusPending,
		TotalCents:   3254,
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte(restaurantID), writer.messages[0].Key)
	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, int64(3254), decoded.TotalCents)

	writer.err = errors.New("broker unavailable")
	assert.Error(t, publisher.PublishOrderEvent(context.Background(), event))
}
