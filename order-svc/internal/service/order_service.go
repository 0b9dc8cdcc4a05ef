package service

import (
	"context"

	"lunchbox-marketplace/auth"
	"lunchbox-marketplace/authz"
	"lunchbox-marketplace/order-svc/internal/domain"

	"go.uber.org/zap"
)

type OrderService struct {
	orders OrderRepository
	cache  OrderCache
	events EventPublisher
	authz  *authz.Authorizer
	logger *zap.SugaredLogger
}

func NewOrderService(orders OrderRepository, cache OrderCache, events EventPublisher,
	authorizer *authz.Authorizer, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{orders: orders, cache: cache, events: events, authz: authorizer, logger: logger}
}

// List returns the orders the caller may see: everything for admins, their
// restaurants' orders for owners and their own orders for customers.
func (s *OrderService) List(ctx context.Context, identity auth.Identity) ([]domain.Order, error) {
	if err := s.authz.Check(identity, authz.ResourceOrder, authz.ActionRead); err != nil {
		return nil, err
	}

	switch s.authz.Scope(identity.Role, authz.ResourceOrder, authz.ActionRead) {
	case authz.ScopeAny:
		return s.orders.ListOrders(ctx, domain.OrderFilter{})
	case authz.ScopeOwn:
		if identity.Role == auth.RoleRestaurantOwner {
			return s.orders.ListOrders(ctx, domain.OrderFilter{RestaurantOwnerID: identity.UserID})
		}
		return s.customerOrders(ctx, identity.UserID)
	default:
		return nil, authz.ErrForbidden
	}
}

func (s *OrderService) customerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	cached, hit, err := s.cache.GetCustomerOrders(ctx, customerID)
	if err != nil {
		s.logger.Warnw("order cache read failed", "customer_id", customerID, "error", err)
	}
	if hit {
		return cached, nil
	}

	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{CustomerID: customerID})
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCustomerOrders(ctx, customerID, orders); err != nil {
		s.logger.Warnw("order cache write failed", "customer_id", customerID, "error", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, identity auth.Identity, id string) (*domain.Order, error) {
	if _, err := s.authorizedRef(ctx, identity, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.orders.GetOrder(ctx, id)
}

func (s *OrderService) Items(ctx context.Context, identity auth.Identity, id string) ([]domain.OrderItem, error) {
	if _, err := s.authorizedRef(ctx, identity, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.orders.ListOrderItems(ctx, id)
}

// QRCode returns the stored handoff code as PNG bytes.
func (s *OrderService) QRCode(ctx context.Context, identity auth.Identity, id string) ([]byte, error) {
	if _, err := s.authorizedRef(ctx, identity, authz.ActionRead, id); err != nil {
		return nil, err
	}
	return s.orders.GetQRCode(ctx, id)
}

func (s *OrderService) UpdateStatus(ctx context.Context, identity auth.Identity, id string, to domain.OrderStatus) (*domain.Order, error) {
	if !to.Valid() {
		return nil, domain.InvalidInput("unknown order status %q", to)
	}
	ref, err := s.authorizedRef(ctx, identity, authz.ActionUpdateStatus, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(ref.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	order, err := s.orders.UpdateOrderStatus(ctx, id, ref.Status, to)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("order status updated", "order_id", id, "from", ref.Status, "to", to, "by", identity.UserID)
	s.statusChanged(ctx, order)
	return order, nil
}

// BulkUpdateStatus applies one status to many orders. Every order is checked
// the same way UpdateStatus checks a single one and nothing changes unless
// all of them pass.
func (s *OrderService) BulkUpdateStatus(ctx context.Context, identity auth.Identity, ids []string, to domain.OrderStatus) (int64, error) {
	if !to.Valid() {
		return 0, domain.InvalidInput("unknown order status %q", to)
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return 0, domain.InvalidInput("orderIds must not be empty")
	}
	if err := s.authz.Check(identity, authz.ResourceOrder, authz.ActionUpdateStatus); err != nil {
		return 0, err
	}

	updated, err := s.orders.BulkUpdateOrderStatus(ctx, ids, to, func(ref domain.OrderRef) error {
		if err := s.authz.Authorize(identity, authz.ActionUpdateStatus, orderTarget(ref)); err != nil {
			return err
		}
		if !domain.CanTransition(ref.Status, to) {
			return domain.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Infow("bulk order status updated", "count", updated, "to", to, "by", identity.UserID)
	for _, id := range ids {
		order, err := s.orders.GetOrder(ctx, id)
		if err != nil {
			s.logger.Warnw("failed to reload order after bulk update", "order_id", id, "error", err)
			continue
		}
		s.statusChanged(ctx, order)
	}
	return updated, nil
}

func (s *OrderService) authorizedRef(ctx context.Context, identity auth.Identity, action authz.Action, id string) (*domain.OrderRef, error) {
	if err := s.authz.Check(identity, authz.ResourceOrder, action); err != nil {
		return nil, err
	}
	ref, err := s.orders.GetOrderRef(ctx, id)
	if err != nil {
		return nil, hideMissing(s.authz, identity, err)
	}
	if err := s.authz.Authorize(identity, action, orderTarget(*ref)); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *OrderService) statusChanged(ctx context.Context, order *domain.Order) {
	if err := s.cache.InvalidateCustomerOrders(ctx, order.CustomerID); err != nil {
		s.logger.Warnw("failed to invalidate order cache", "customer_id", order.CustomerID, "error", err)
	}
	if err := s.events.PublishOrderEvent(ctx, newOrderEvent(domain.EventOrderStatusChanged, order)); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", order.ID, "type", domain.EventOrderStatusChanged, "error", err)
	}
}

func orderTarget(ref domain.OrderRef) authz.Target {
	return authz.Target{
		Resource:          authz.ResourceOrder,
		SubjectID:         ref.CustomerID,
		RestaurantOwnerID: ref.RestaurantOwnerID,
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
