package storage

import (
	"context"
	"database/sql"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateLocation(ctx context.Context, loc *domain.DeliveryLocation) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&loc.ID, &loc.CreatedAt)
	}, `INSERT INTO delivery_locations (name, address, is_active) VALUES ($1, $2, $3) RETURNING id, created_at`,
		loc.Name, loc.Address, loc.IsActive)
	return translate("create location", err)
}

func (r *PostgresRepository) ListLocations(ctx context.Context, activeOnly bool) ([]domain.DeliveryLocation, error) {
	var locations []domain.DeliveryLocation
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		locations = []domain.DeliveryLocation{}
		for rows.Next() {
			var loc domain.DeliveryLocation
			if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.IsActive, &loc.CreatedAt); err != nil {
				return err
			}
			locations = append(locations, loc)
		}
		return nil
	}, `
		SELECT id, name, address, is_active, created_at
		FROM delivery_locations
		WHERE ($1 = FALSE OR is_active)
		ORDER BY name`, activeOnly)
	return locations, translate("list locations", err)
}

func (r *PostgresRepository) GetLocation(ctx context.Context, id string) (*domain.DeliveryLocation, error) {
	var loc domain.DeliveryLocation
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.IsActive, &loc.CreatedAt)
	}, `SELECT id, name, address, is_active, created_at FROM delivery_locations WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get location", err)
	}
	return &loc, nil
}

func (r *PostgresRepository) UpdateLocation(ctx context.Context, loc *domain.DeliveryLocation) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&loc.CreatedAt)
	}, `UPDATE delivery_locations SET name = $1, address = $2, is_active = $3 WHERE id = $4 RETURNING created_at`,
		loc.Name, loc.Address, loc.IsActive, loc.ID)
	return translate("update location", err)
}

func (r *PostgresRepository) DeleteLocation(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, "DELETE FROM delivery_locations WHERE id = $1", id)
	if err != nil {
		return translate("delete location", err)
	}
	return requireAffected(res)
}

const buildingColumns = `id, delivery_location_id, name, is_active, created_at`

func scanBuilding(row scanner, b *domain.DeliveryBuilding) error {
	return row.Scan(&b.ID, &b.DeliveryLocationID, &b.Name, &b.IsActive, &b.CreatedAt)
}

func (r *PostgresRepository) CreateBuilding(ctx context.Context, b *domain.DeliveryBuilding) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&b.ID, &b.CreatedAt)
	}, `INSERT INTO delivery_buildings (delivery_location_id, name, is_active) VALUES ($1, $2, $3) RETURNING id, created_at`,
		b.DeliveryLocationID, b.Name, b.IsActive)
	return translate("create building", err)
}

func (r *PostgresRepository) ListBuildings(ctx context.Context, locationID string) ([]domain.DeliveryBuilding, error) {
	return r.queryBuildings(ctx, "list buildings",
		`SELECT `+buildingColumns+` FROM delivery_buildings WHERE delivery_location_id = $1 ORDER BY name`, locationID)
}

func (r *PostgresRepository) GetBuildings(ctx context.Context, ids []string) ([]domain.DeliveryBuilding, error) {
	return r.queryBuildings(ctx, "get buildings",
		`SELECT `+buildingColumns+` FROM delivery_buildings WHERE id::text = ANY($1) ORDER BY name`, pq.Array(ids))
}

func (r *PostgresRepository) queryBuildings(ctx context.Context, op, query string, args ...any) ([]domain.DeliveryBuilding, error) {
	var buildings []domain.DeliveryBuilding
	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		buildings = []domain.DeliveryBuilding{}
		for rows.Next() {
			var b domain.DeliveryBuilding
			if err := scanBuilding(rows, &b); err != nil {
				return err
			}
			buildings = append(buildings, b)
		}
		return nil
	}, query, args...)
	return buildings, translate(op, err)
}

func (r *PostgresRepository) GetBuilding(ctx context.Context, id string) (*domain.DeliveryBuilding, error) {
	var b domain.DeliveryBuilding
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanBuilding(row, &b)
	}, `SELECT `+buildingColumns+` FROM delivery_buildings WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get building", err)
	}
	return &b, nil
}

func (r *PostgresRepository) UpdateBuilding(ctx context.Context, b *domain.DeliveryBuilding) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&b.DeliveryLocationID, &b.CreatedAt)
	}, `UPDATE delivery_buildings SET name = $1, is_active = $2 WHERE id = $3 RETURNING delivery_location_id, created_at`,
		b.Name, b.IsActive, b.ID)
	return translate("update building", err)
}

func (r *PostgresRepository) DeleteBuilding(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, "DELETE FROM delivery_buildings WHERE id = $1", id)
	if err != nil {
		return translate("delete building", err)
	}
	return requireAffected(res)
}
