package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS delivery_locations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_buildings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		delivery_location_id UUID NOT NULL REFERENCES delivery_locations(id),
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT,
		role TEXT NOT NULL DEFAULT 'customer' CHECK (role IN ('customer', 'restaurant_owner', 'admin')),
		full_name TEXT,
		phone_number TEXT,
		delivery_location_id UUID REFERENCES delivery_locations(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		cuisine TEXT,
		image_url TEXT,
		delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
		delivery_location_id UUID REFERENCES delivery_locations(id),
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS lunchboxes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		dietary_tags TEXT[] NOT NULL DEFAULT '{}',
		available_days TEXT[] NOT NULL DEFAULT '{monday,tuesday,wednesday,thursday,friday}',
		eligible_building_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_number BIGSERIAL UNIQUE,
		customer_id TEXT NOT NULL,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		status TEXT NOT NULL DEFAULT 'pending',
		subtotal NUMERIC(10,2) NOT NULL,
		delivery_fee NUMERIC(10,2) NOT NULL,
		service_fee NUMERIC(10,2) NOT NULL,
		tax NUMERIC(10,2) NOT NULL,
		total NUMERIC(10,2) NOT NULL,
		delivery_location TEXT NOT NULL,
		delivery_building_id UUID NOT NULL REFERENCES delivery_buildings(id),
		delivery_day TEXT NOT NULL,
		payment_intent_id TEXT,
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT orders_payment_intent_id_key UNIQUE (payment_intent_id)
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		lunchbox_id UUID NOT NULL REFERENCES lunchboxes(id),
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_daily_stats (
		restaurant_id UUID NOT NULL,
		day DATE NOT NULL,
		orders_count INTEGER NOT NULL DEFAULT 0,
		revenue_cents BIGINT NOT NULL DEFAULT 0,
		delivered_count INTEGER NOT NULL DEFAULT 0,
		cancelled_count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (restaurant_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders (restaurant_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_lunchboxes_restaurant ON lunchboxes (restaurant_id)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
