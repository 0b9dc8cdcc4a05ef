package storage

import (
	"context"
	"database/sql"

	"lunchbox-marketplace/order-svc/internal/domain"
)

const userColumns = `id, COALESCE(email, ''), role, COALESCE(full_name, ''), COALESCE(phone_number, ''),
	COALESCE(delivery_location_id::text, ''), created_at`

func scanUser(row scanner, u *domain.User) error {
	return row.Scan(&u.ID, &u.Email, &u.Role, &u.FullName, &u.PhoneNumber, &u.DeliveryLocationID, &u.CreatedAt)
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanUser(row, &u)
	}, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

// UpsertUser provisions the user row on first sight and leaves an existing
// row untouched apart from the role, which follows the identity provider.
func (r *PostgresRepository) UpsertUser(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanUser(row, u)
	}, `
		INSERT INTO users (id, email, role)
		VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role
		RETURNING `+userColumns,
		u.ID, u.Email, u.Role)
	return translate("upsert user", err)
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return scanUser(row, u)
	}, `
		UPDATE users
		SET full_name = $1, phone_number = $2, delivery_location_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+userColumns,
		u.FullName, u.PhoneNumber, nullString(u.DeliveryLocationID), u.ID)
	return translate("update profile", err)
}
