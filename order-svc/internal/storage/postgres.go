package storage

import (
	"context"
	"database/sql"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *RetryingDB
}

func NewPostgresRepository(db *RetryingDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `id, owner_id, name, COALESCE(description, ''), COALESCE(cuisine, ''), COALESCE(image_url, ''),
	delivery_fee, COALESCE(delivery_location_id::text, ''), rating, is_active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row scanner, rest *domain.Restaurant) error {
	return row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Description, &rest.Cuisine, &rest.ImageURL,
		&rest.DeliveryFee, &rest.DeliveryLocationID, &rest.Rating, &rest.IsActive, &rest.CreatedAt)
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&rest.ID, &rest.CreatedAt)
	}, `
		INSERT INTO restaurants (owner_id, name, description, cuisine, image_url, delivery_fee, delivery_location_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		rest.OwnerID, rest.Name, rest.Description, rest.Cuisine, rest.ImageURL, rest.DeliveryFee,
		nullString(rest.DeliveryLocationID), rest.IsActive)
	return translate("create restaurant", err)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context, activeOnly bool) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		restaurants = []domain.Restaurant{}
		for rows.Next() {
			var rest domain.Restaurant
			if err := scanRestaurant(rows, &rest); err != nil {
				return err
			}
			restaurants = append(restaurants, rest)
		}
		return nil
	}, `SELECT `+restaurantColumns+` FROM restaurants WHERE ($1 = FALSE OR is_active) ORDER BY created_at DESC`, activeOnly)
	return restaurants, translate("list restaurants", err)
}

func (r *PostgresRepository) ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		restaurants = []domain.Restaurant{}
		for rows.Next() {
			var rest domain.Restaurant
			if err := scanRestaurant(rows, &rest); err != nil {
				return err
			}
			restaurants = append(restaurants, rest)
		}
		return nil
	}, `SELECT `+restaurantColumns+` FROM restaurants WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	return restaurants, translate("list owner restaurants", err)
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanRestaurant(row, &rest)
	}, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get restaurant", err)
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&rest.CreatedAt)
	}, `
		UPDATE restaurants
		SET name = $1, description = $2, cuisine = $3, image_url = $4, delivery_fee = $5,
			delivery_location_id = $6, is_active = $7
		WHERE id = $8
		RETURNING created_at`,
		rest.Name, rest.Description, rest.Cuisine, rest.ImageURL, rest.DeliveryFee,
		nullString(rest.DeliveryLocationID), rest.IsActive, rest.ID)
	return translate("update restaurant", err)
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return translate("delete restaurant", err)
	}
	return requireAffected(res)
}

const menuItemColumns = `id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), is_available,
	dietary_tags, available_days, eligible_building_ids, created_at`

func scanMenuItem(row scanner, item *domain.MenuItem) error {
	var days []string
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.IsAvailable, pq.Array(&item.DietaryTags), pq.Array(&days), pq.Array(&item.EligibleBuildingIDs),
		&item.CreatedAt); err != nil {
		return err
	}
	item.AvailableDays = domain.WeekdaysFromStrings(days)
	if item.DietaryTags == nil {
		item.DietaryTags = []string{}
	}
	if item.EligibleBuildingIDs == nil {
		item.EligibleBuildingIDs = []string{}
	}
	return nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&item.ID, &item.CreatedAt)
	}, `
		INSERT INTO lunchboxes (restaurant_id, name, description, price, image_url, is_available,
			dietary_tags, available_days, eligible_building_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.ImageURL, item.IsAvailable,
		pq.Array(item.DietaryTags), pq.Array(domain.WeekdayStrings(item.AvailableDays)), pq.Array(item.EligibleBuildingIDs))
	return translate("create lunchbox", err)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		items = []domain.MenuItem{}
		for rows.Next() {
			var item domain.MenuItem
			if err := scanMenuItem(rows, &item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	}, `SELECT `+menuItemColumns+` FROM lunchboxes WHERE restaurant_id = $1 ORDER BY created_at`, restaurantID)
	return items, translate("list lunchboxes", err)
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanMenuItem(row, &item)
	}, `SELECT `+menuItemColumns+` FROM lunchboxes WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get lunchbox", err)
	}
	return &item, nil
}

// GetMenuItems loads the current state of the given lunchboxes. Ids that do
// not exist are simply absent from the result.
func (r *PostgresRepository) GetMenuItems(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		items = []domain.MenuItem{}
		for rows.Next() {
			var item domain.MenuItem
			if err := scanMenuItem(rows, &item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	}, `SELECT `+menuItemColumns+` FROM lunchboxes WHERE id::text = ANY($1)`, pq.Array(ids))
	return items, translate("get lunchboxes", err)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&item.CreatedAt)
	}, `
		UPDATE lunchboxes
		SET name = $1, description = $2, price = $3, image_url = $4, is_available = $5,
			dietary_tags = $6, available_days = $7, eligible_building_ids = $8
		WHERE id = $9 AND restaurant_id = $10
		RETURNING created_at`,
		item.Name, item.Description, item.Price, item.ImageURL, item.IsAvailable,
		pq.Array(item.DietaryTags), pq.Array(domain.WeekdayStrings(item.AvailableDays)), pq.Array(item.EligibleBuildingIDs),
		item.ID, item.RestaurantID)
	return translate("update lunchbox", err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, "DELETE FROM lunchboxes WHERE id = $1", id)
	if err != nil {
		return translate("delete lunchbox", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return translate("rows affected", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
