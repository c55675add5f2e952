package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rl1809/retail-datagen/internal/port"
)

// PostgresSink appends batches to PostgreSQL with COPY, which is the fast
// path for bulk loads.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS products (
	product_id VARCHAR(50) PRIMARY KEY,
	category VARCHAR(50),
	brand VARCHAR(50),
	sku VARCHAR(50) UNIQUE,
	price DOUBLE PRECISION,
	cost DOUBLE PRECISION,
	supplier_id VARCHAR(50),
	dimensions VARCHAR(50),
	manufacture_date DATE,
	warranty_years INTEGER,
	lifecycle_stage VARCHAR(20)
);

CREATE TABLE IF NOT EXISTS suppliers (
	supplier_id VARCHAR(50) PRIMARY KEY,
	name VARCHAR(100),
	contact VARCHAR(100),
	rating DOUBLE PRECISION,
	lead_time_days INTEGER,
	contract_start DATE
);

CREATE TABLE IF NOT EXISTS customers (
	customer_id VARCHAR(50) PRIMARY KEY,
	age INTEGER,
	gender VARCHAR(1),
	location VARCHAR(50),
	first_purchase DATE,
	last_purchase DATE,
	lifetime_value DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS inventory (
	id SERIAL PRIMARY KEY,
	product_id VARCHAR(50),
	warehouse VARCHAR(50),
	stock_level INTEGER,
	restock_frequency_days INTEGER,
	stock_location VARCHAR(50),
	order_quantity INTEGER,
	restock_date DATE
);

CREATE TABLE IF NOT EXISTS promotions (
	id SERIAL PRIMARY KEY,
	product_id VARCHAR(50),
	promotion_type VARCHAR(50),
	discount_percentage DOUBLE PRECISION,
	campaign_duration_days INTEGER,
	campaign_budget DOUBLE PRECISION,
	campaign_start DATE,
	campaign_end DATE,
	target_audience VARCHAR(50),
	channel VARCHAR(50),
	competitor_response VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS sales (
	id SERIAL PRIMARY KEY,
	date DATE,
	product_id VARCHAR(50),
	customer_id VARCHAR(50),
	store_id VARCHAR(50),
	sales_quantity INTEGER,
	sales_revenue DOUBLE PRECISION,
	promo_flag BOOLEAN,
	holiday_flag VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS shipments (
	shipment_id VARCHAR(50) PRIMARY KEY,
	product_id VARCHAR(50),
	transport_mode VARCHAR(50),
	tracking_number VARCHAR(50),
	departure TIMESTAMP,
	arrival TIMESTAMP,
	status VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS market_trends (
	id SERIAL PRIMARY KEY,
	date DATE,
	product_id VARCHAR(50),
	temperature DOUBLE PRECISION,
	weather_condition VARCHAR(50),
	social_media_mentions INTEGER,
	competitor_analysis_score DOUBLE PRECISION,
	cpi_change DOUBLE PRECISION
);
`

// EnsureSchema creates the eight dataset tables when they do not exist.
func (p *PostgresSink) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// AppendRows bulk-loads the batch via COPY in insertion order.
func (p *PostgresSink) AppendRows(ctx context.Context, batch port.Batch) error {
	if len(batch.Rows) == 0 {
		return nil
	}

	_, err := p.pool.CopyFrom(ctx,
		pgx.Identifier{batch.Table},
		batch.Columns,
		pgx.CopyFromRows(batch.Rows),
	)
	if err != nil {
		return fmt.Errorf("copy into %s: %w", batch.Table, err)
	}
	return nil
}
