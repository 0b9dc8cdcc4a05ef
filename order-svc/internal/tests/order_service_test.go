package tests

import (
	"context"
	"errors"
	"testing"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"
	"lunchbox-marketplace/order-svc/internal/mocks"
	"lunchbox-marketplace/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders *mocks.OrderRepository
	cache  *mocks.OrderCache
	events *mocks.EventPublisher
	svc    *service.OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	f := &orderFixture{
		orders: mocks.NewOrderRepository(t),
		cache:  mocks.NewOrderCache(t),
		events: mocks.NewEventPublisher(t),
	}
	f.svc = service.NewOrderService(f.orders, f.cache, f.events, authz.NewDefault(), nopLogger())
	return f
}

func orderRef(id string, status domain.OrderStatus) *domain.OrderRef {
	return &domain.OrderRef{
		ID:                id,
		CustomerID:        customerID,
		RestaurantID:      restaurantID,
		RestaurantOwnerID: ownerID,
		Status:            status,
	}
}

func TestOrderService_List(t *testing.T) {
	stored := []domain.Order{{ID: "ord-1", CustomerID: customerID}}

	tests := []struct {
		name     string
		identity auth.Identity
		setup    func(*orderFixture)
		wantErr  error
	}{
		{
			name:     "admin sees every order",
			identity: admin,
			setup: func(f *orderFixture) {
				f.orders.On("ListOrders", mock.Anything, domain.OrderFilter{}).Return(stored, nil).Once()
			},
		},
		{
			name:     "owner sees orders of their restaurants",
			identity: owner,
			setup: func(f *orderFixture) {
				f.orders.On("ListOrders", mock.Anything, domain.OrderFilter{RestaurantOwnerID: ownerID}).Return(stored, nil).Once()
			},
		},
		{
			name:     "customer served from cache",
			identity: customer,
			setup: func(f *orderFixture) {
				f.cache.On("GetCustomerOrders", mock.Anything, customerID).Return(stored, true, nil).Once()
			},
		},
		{
			name:     "customer cache miss fills the cache",
			identity: customer,
			setup: func(f *orderFixture) {
				f.cache.On("GetCustomerOrders", mock.Anything, customerID).Return(nil, false, nil).Once()
				f.orders.On("ListOrders", mock.Anything, domain.OrderFilter{CustomerID: customerID}).Return(stored, nil).Once()
				f.cache.On("SetCustomerOrders", mock.Anything, customerID, stored).Return(nil).Once()
			},
		},
		{
			name:     "broken cache falls back to the database",
			identity: customer,
			setup: func(f *orderFixture) {
				f.cache.On("GetCustomerOrders", mock.Anything, customerID).Return(nil, false, errors.New("redis down")).Once()
				f.orders.On("ListOrders", mock.Anything, domain.OrderFilter{CustomerID: customerID}).Return(stored, nil).Once()
				f.cache.On("SetCustomerOrders", mock.Anything, customerID, stored).Return(errors.New("redis down")).Once()
			},
		},
		{
			name:     "anonymous must sign in",
			identity: anonymous,
			setup:    func(f *orderFixture) {},
			wantErr:  authz.ErrUnauthenticated,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			testCase.setup(f)

			orders, err := f.svc.List(context.Background(), testCase.identity)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, orders)
		})
	}
}

func TestOrderService_Get(t *testing.T) {
	tests := []struct {
		name     string
		identity auth.Identity
		ref      *domain.OrderRef
		refErr   error
		wantErr  error
	}{
		{name: "customer reads own order", identity: customer, ref: orderRef("ord-1", domain.StatusPending)},
		{name: "owner reads order of own restaurant", identity: owner, ref: orderRef("ord-1", domain.StatusPending)},
		{name: "admin reads any order", identity: admin, ref: orderRef("ord-1", domain.StatusPending)},
		{
			name:     "other customer is denied",
			identity: auth.Identity{UserID: otherCustID, Role: auth.RoleCustomer},
			ref:      orderRef("ord-1", domain.StatusPending),
			wantErr:  authz.ErrForbidden,
		},
		{name: "other owner is denied", identity: otherOwner, ref: orderRef("ord-1", domain.StatusPending), wantErr: authz.ErrForbidden},
		{name: "missing order hidden from customers", identity: customer, refErr: domain.ErrNotFound, wantErr: authz.ErrForbidden},
		{name: "missing order revealed to owners", identity: owner, refErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			f.orders.On("GetOrderRef", mock.Anything, "ord-1").Return(testCase.ref, testCase.refErr).Once()
			if testCase.wantErr == nil {
				f.orders.On("GetOrder", mock.Anything, "ord-1").Return(&domain.Order{ID: "ord-1"}, nil).Once()
			}

			order, err := f.svc.Get(context.Background(), testCase.identity, "ord-1")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ord-1", order.ID)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		identity  auth.Identity
		current   domain.OrderStatus
		to        domain.OrderStatus
		refErr    error
		updateErr error
		wantErr   error
	}{
		{name: "owner confirms", identity: owner, current: domain.StatusPending, to: domain.StatusConfirmed},
		{name: "admin skips ahead", identity: admin, current: domain.StatusConfirmed, to: domain.StatusDelivered},
		{name: "owner cancels", identity: owner, current: domain.StatusReady, to: domain.StatusCancelled},
		{name: "customer cannot update", identity: customer, current: domain.StatusPending, to: domain.StatusConfirmed, wantErr: authz.ErrForbidden},
		{name: "foreign restaurant", identity: otherOwner, current: domain.StatusPending, to: domain.StatusConfirmed, wantErr: authz.ErrForbidden},
		{name: "backwards", identity: owner, current: domain.StatusReady, to: domain.StatusPreparing, wantErr: domain.ErrInvalidTransition},
		{name: "same state", identity: owner, current: domain.StatusReady, to: domain.StatusReady, wantErr: domain.ErrInvalidTransition},
		{name: "terminal", identity: admin, current: domain.StatusDelivered, to: domain.StatusCancelled, wantErr: domain.ErrInvalidTransition},
		{name: "unknown status", identity: owner, current: domain.StatusPending, to: "shipped", wantErr: domain.ErrInvalidInput},
		{name: "missing order", identity: owner, refErr: domain.ErrNotFound, to: domain.StatusConfirmed, wantErr: domain.ErrNotFound},
		{
			name: "concurrent writer wins", identity: owner, current: domain.StatusPending, to: domain.StatusConfirmed,
			updateErr: domain.ErrConcurrentUpdate, wantErr: domain.ErrConcurrentUpdate,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			if testCase.to.Valid() && testCase.identity.Role != auth.RoleCustomer {
				if testCase.refErr != nil {
					f.orders.On("GetOrderRef", mock.Anything, "ord-1").Return(nil, testCase.refErr).Once()
				} else {
					f.orders.On("GetOrderRef", mock.Anything, "ord-1").Return(orderRef("ord-1", testCase.current), nil).Once()
				}
			}
			if testCase.wantErr == nil || testCase.updateErr != nil {
				updated := &domain.Order{ID: "ord-1", CustomerID: customerID, RestaurantID: restaurantID, Status: testCase.to}
				if testCase.updateErr != nil {
					updated = nil
				}
				f.orders.On("UpdateOrderStatus", mock.Anything, "ord-1", testCase.current, testCase.to).
					Return(updated, testCase.updateErr).Once()
			}
			if testCase.wantErr == nil {
				f.cache.On("InvalidateCustomerOrders", mock.Anything, customerID).Return(nil).Once()
				f.events.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderStatusChanged && e.Status == testCase.to
				})).Return(nil).Once()
			}

			order, err := f.svc.UpdateStatus(context.Background(), testCase.identity, "ord-1", testCase.to)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.to, order.Status)
		})
	}
}

func TestOrderService_BulkUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		identity auth.Identity
		ids      []string
		refs     []domain.OrderRef
		wantErr  error
		wantID   string
	}{
		{
			name:     "owner confirms a batch",
			identity: owner,
			ids:      []string{"ord-1", "ord-2", "ord-1"},
			refs:     []domain.OrderRef{*orderRef("ord-1", domain.StatusPending), *orderRef("ord-2", domain.StatusPending)},
		},
		{
			name:     "one foreign order rejects the batch",
			identity: owner,
			ids:      []string{"ord-1", "ord-2"},
			refs: []domain.OrderRef{
				*orderRef("ord-1", domain.StatusPending),
				{ID: "ord-2", CustomerID: customerID, RestaurantID: "rest-2", RestaurantOwnerID: otherOwnerID, Status: domain.StatusPending},
			},
			wantErr: authz.ErrForbidden,
			wantID:  "ord-2",
		},
		{
			name:     "one bad transition rejects the batch",
			identity: admin,
			ids:      []string{"ord-1", "ord-2"},
			refs:     []domain.OrderRef{*orderRef("ord-1", domain.StatusPending), *orderRef("ord-2", domain.StatusDelivered)},
			wantErr:  domain.ErrInvalidTransition,
			wantID:   "ord-2",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)
			// The repository applies the guard to each locked row.
			f.orders.On("BulkUpdateOrderStatus", mock.Anything, []string{"ord-1", "ord-2"}, domain.StatusConfirmed, mock.Anything).
				Return(func(_ context.Context, ids []string, _ domain.OrderStatus, guard func(domain.OrderRef) error) int64 {
					for _, ref := range testCase.refs {
						if guard(ref) != nil {
							return 0
						}
					}
					return int64(len(ids))
				}, func(_ context.Context, _ []string, _ domain.OrderStatus, guard func(domain.OrderRef) error) error {
					for _, ref := range testCase.refs {
						if err := guard(ref); err != nil {
							return &domain.BulkUpdateError{OrderID: ref.ID, Err: err}
						}
					}
					return nil
				}).Once()
			if testCase.wantErr == nil {
				for _, id := range []string{"ord-1", "ord-2"} {
					f.orders.On("GetOrder", mock.Anything, id).
						Return(&domain.Order{ID: id, CustomerID: customerID, RestaurantID: restaurantID, Status: domain.StatusConfirmed}, nil).Once()
				}
				f.cache.On("InvalidateCustomerOrders", mock.Anything, customerID).Return(nil).Twice()
				f.events.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Twice()
			}

			updated, err := f.svc.BulkUpdateStatus(context.Background(), testCase.identity, testCase.ids, domain.StatusConfirmed)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.ErrorIs(t, err, domain.ErrBulkUpdateFailed)
				var bulkErr *domain.BulkUpdateError
				require.True(t, errors.As(err, &bulkErr))
				assert.Equal(t, testCase.wantID, bulkErr.OrderID)
				assert.Zero(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), updated)
		})
	}
}

func TestOrderService_BulkUpdateStatus_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		identity auth.Identity
		ids      []string
		status   domain.OrderStatus
		wantErr  error
	}{
		{name: "customer", identity: customer, ids: []string{"ord-1"}, status: domain.StatusConfirmed, wantErr: authz.ErrForbidden},
		{name: "anonymous", identity: anonymous, ids: []string{"ord-1"}, status: domain.StatusConfirmed, wantErr: authz.ErrUnauthenticated},
		{name: "no ids", identity: admin, ids: []string{"", ""}, status: domain.StatusConfirmed, wantErr: domain.ErrInvalidInput},
		{name: "unknown status", identity: admin, ids: []string{"ord-1"}, status: "lost", wantErr: domain.ErrInvalidInput},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t)

			_, err := f.svc.BulkUpdateStatus(context.Background(), testCase.identity, testCase.ids, testCase.status)

			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestOrderService_QRCode(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.On("GetOrderRef", mock.Anything, "ord-1").Return(orderRef("ord-1", domain.StatusPending), nil).Once()
	f.orders.On("GetQRCode", mock.Anything, "ord-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := f.svc.QRCode(context.Background(), customer, "ord-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
