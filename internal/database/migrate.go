package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schema creates all tables and indexes if they do not exist.
// order_items cascade on order deletion; orders keep their rows with a
// null user when the user is deleted.
const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS otps (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		otp VARCHAR(6) NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_otps_email ON otps(email);
	CREATE INDEX IF NOT EXISTS idx_otps_expires_at ON otps(expires_at);

	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
		original_price DECIMAL(10, 2),
		image VARCHAR(500) NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		brand VARCHAR(100) NOT NULL DEFAULT '',
		rating DECIMAL(3, 2),
		review_count INTEGER NOT NULL DEFAULT 0,
		tag VARCHAR(10) CHECK (tag IN ('Sale', 'New', 'Hot')),
		weight VARCHAR(50),
		flavour VARCHAR(100),
		diet_type VARCHAR(100),
		speciality VARCHAR(255),
		info VARCHAR(255),
		items INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		subtotal DECIMAL(10, 2) NOT NULL,
		delivery_charges DECIMAL(10, 2) NOT NULL,
		total DECIMAL(10, 2) NOT NULL,
		delivery_method VARCHAR(50) NOT NULL,
		payment_method VARCHAR(50) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		address TEXT,
		city VARCHAR(100) NOT NULL,
		post_code VARCHAR(20),
		country VARCHAR(100) NOT NULL,
		region_state VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
	CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id VARCHAR(36) NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		product_image VARCHAR(500),
		price DECIMAL(10, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		selected_weight VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`

// Migrate creates the schema and applies the idempotent catalogue seed.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info().Msg("database schema ready")

	if err := Seed(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	return nil
}
