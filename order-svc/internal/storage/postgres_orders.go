package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `o.id, o.order_number, o.customer_id, o.restaurant_id, o.status, o.subtotal, o.delivery_fee,
	o.service_fee, o.tax, o.total, o.delivery_location, o.delivery_building_id, o.delivery_day,
	COALESCE(o.payment_intent_id, ''), o.created_at, o.updated_at`

func scanOrder(row scanner, o *domain.Order) error {
	return row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.RestaurantID, &o.Status, &o.Subtotal, &o.DeliveryFee,
		&o.ServiceFee, &o.Tax, &o.Total, &o.DeliveryLocation, &o.DeliveryBuildingID, &o.DeliveryDay,
		&o.PaymentIntentID, &o.CreatedAt, &o.UpdatedAt)
}

// CreateOrder writes the order and all of its items in one transaction. The
// order number comes from the table's sequence.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return domain.InvalidInput("order has no items")
	}

	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (customer_id, restaurant_id, status, subtotal, delivery_fee, service_fee, tax, total,
				delivery_location, delivery_building_id, delivery_day, payment_intent_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, order_number, created_at, updated_at`,
			order.CustomerID, order.RestaurantID, order.Status, order.Subtotal, order.DeliveryFee, order.ServiceFee,
			order.Tax, order.Total, order.DeliveryLocation, order.DeliveryBuildingID, order.DeliveryDay,
			nullString(order.PaymentIntentID),
		).Scan(&order.ID, &order.OrderNumber, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO order_items (order_id, lunchbox_id, name, quantity, price)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				order.ID, item.MenuItemID, item.Name, item.Quantity, item.Price,
			).Scan(&item.ID); err != nil {
				return err
			}
		}
		return nil
	})
	return translate("create order", err)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanOrder(row, &order)
	}, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
	if err != nil {
		return nil, translate("get order", err)
	}

	items, err := r.ListOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) GetOrderByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error) {
	var id string
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&id)
	}, `SELECT id FROM orders WHERE payment_intent_id = $1`, intentID)
	if err != nil {
		return nil, translate("get order by payment intent", err)
	}
	return r.GetOrder(ctx, id)
}

func (r *PostgresRepository) GetOrderRef(ctx context.Context, id string) (*domain.OrderRef, error) {
	var ref domain.OrderRef
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&ref.ID, &ref.CustomerID, &ref.RestaurantID, &ref.RestaurantOwnerID, &ref.Status)
	}, `
		SELECT o.id, o.customer_id, o.restaurant_id, r.owner_id, o.status
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`, id)
	if err != nil {
		return nil, translate("get order ref", err)
	}
	return &ref, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		orders = []domain.Order{}
		for rows.Next() {
			var o domain.Order
			if err := scanOrder(rows, &o); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	}, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE ($1 = '' OR o.customer_id = $1)
		  AND ($2 = '' OR r.owner_id = $2)
		ORDER BY o.created_at DESC`, filter.CustomerID, filter.RestaurantOwnerID)
	return orders, translate("list orders", err)
}

func (r *PostgresRepository) ListOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		items = []domain.OrderItem{}
		for rows.Next() {
			var item domain.OrderItem
			if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	}, `SELECT id, order_id, lunchbox_id, name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY name`, orderID)
	return items, translate("list order items", err)
}

// UpdateOrderStatus moves an order from one status to another. The update is
// conditional on the current status so concurrent writers cannot both win.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanOrder(row, &order)
	}, `
		UPDATE orders o
		SET status = $1, updated_at = NOW()
		WHERE o.id = $2 AND o.status = $3
		RETURNING `+orderColumns, to, id, from)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrConcurrentUpdate
	}
	if err != nil {
		return nil, translate("update order status", err)
	}
	return &order, nil
}

// BulkUpdateOrderStatus locks every requested order, lets guard veto each one
// and then updates them together. A single veto or missing id rolls back the
// whole batch.
func (r *PostgresRepository) BulkUpdateOrderStatus(ctx context.Context, ids []string, to domain.OrderStatus, guard func(domain.OrderRef) error) (int64, error) {
	var updated int64
	err := r.db.InTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT o.id, o.customer_id, o.restaurant_id, r.owner_id, o.status
			FROM orders o
			JOIN restaurants r ON r.id = o.restaurant_id
			WHERE o.id::text = ANY($1)
			ORDER BY o.id
			FOR UPDATE OF o`, pq.Array(ids))
		if err != nil {
			return err
		}
		found := make(map[string]domain.OrderRef, len(ids))
		for rows.Next() {
			var ref domain.OrderRef
			if err := rows.Scan(&ref.ID, &ref.CustomerID, &ref.RestaurantID, &ref.RestaurantOwnerID, &ref.Status); err != nil {
				rows.Close()
				return err
			}
			found[ref.ID] = ref
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, id := range ids {
			ref, ok := found[id]
			if !ok {
				return &domain.BulkUpdateError{OrderID: id, Err: domain.ErrNotFound}
			}
			if err := guard(ref); err != nil {
				return &domain.BulkUpdateError{OrderID: id, Err: err}
			}
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE orders SET status = $1, updated_at = NOW() WHERE id::text = ANY($2)`, to, pq.Array(ids))
		if err != nil {
			return err
		}
		updated, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if updated != int64(len(found)) {
			return fmt.Errorf("bulk status update touched %d of %d orders", updated, len(found))
		}
		return nil
	})
	if err != nil {
		return 0, translate("bulk update order status", err)
	}
	return updated, nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.db.Exec(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return translate("save qr code", err)
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qr []byte
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&qr)
	}, "SELECT qr_code FROM orders WHERE id = $1", orderID)
	if err != nil {
		return nil, translate("get qr code", err)
	}
	if len(qr) == 0 {
		return nil, domain.ErrNotFound
	}
	return qr, nil
}
