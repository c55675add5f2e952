package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rl1809/retail-datagen/internal/port"
)

// insertChunkSize bounds the number of rows per multi-row INSERT.
const insertChunkSize = 1000

// MySQLSink appends batches to a MySQL database. Each batch is written in a
// single transaction, so a retried append never leaves a partial table
// behind.
type MySQLSink struct {
	db *sql.DB
}

func NewMySQLSink(db *sql.DB) *MySQLSink {
	return &MySQLSink{db: db}
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id VARCHAR(50) PRIMARY KEY,
		category VARCHAR(50),
		brand VARCHAR(50),
		sku VARCHAR(50) UNIQUE,
		price DOUBLE,
		cost DOUBLE,
		supplier_id VARCHAR(50),
		dimensions VARCHAR(50),
		manufacture_date DATE,
		warranty_years INT,
		lifecycle_stage VARCHAR(20)
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		supplier_id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100),
		contact VARCHAR(100),
		rating DOUBLE,
		lead_time_days INT,
		contract_start DATE
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id VARCHAR(50) PRIMARY KEY,
		age INT,
		gender VARCHAR(1),
		location VARCHAR(50),
		first_purchase DATE,
		last_purchase DATE,
		lifetime_value DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id INT AUTO_INCREMENT PRIMARY KEY,
		product_id VARCHAR(50),
		warehouse VARCHAR(50),
		stock_level INT,
		restock_frequency_days INT,
		stock_location VARCHAR(50),
		order_quantity INT,
		restock_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS promotions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		product_id VARCHAR(50),
		promotion_type VARCHAR(50),
		discount_percentage DOUBLE,
		campaign_duration_days INT,
		campaign_budget DOUBLE,
		campaign_start DATE,
		campaign_end DATE,
		target_audience VARCHAR(50),
		channel VARCHAR(50),
		competitor_response VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id INT AUTO_INCREMENT PRIMARY KEY,
		date DATE,
		product_id VARCHAR(50),
		customer_id VARCHAR(50),
		store_id VARCHAR(50),
		sales_quantity INT,
		sales_revenue DOUBLE,
		promo_flag BOOLEAN,
		holiday_flag VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		shipment_id VARCHAR(50) PRIMARY KEY,
		product_id VARCHAR(50),
		transport_mode VARCHAR(50),
		tracking_number VARCHAR(50),
		departure DATETIME,
		arrival DATETIME,
		status VARCHAR(50)
	)`,
	`CREATE TABLE IF NOT EXISTS market_trends (
		id INT AUTO_INCREMENT PRIMARY KEY,
		date DATE,
		product_id VARCHAR(50),
		temperature DOUBLE,
		weather_condition VARCHAR(50),
		social_media_mentions INT,
		competitor_analysis_score DOUBLE,
		cpi_change DOUBLE
	)`,
}

// EnsureSchema creates the eight dataset tables when they do not exist.
func (m *MySQLSink) EnsureSchema(ctx context.Context) error {
	for _, stmt := range mysqlSchema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// AppendRows inserts the batch in insertion order using chunked multi-row
// INSERTs inside one transaction.
func (m *MySQLSink) AppendRows(ctx context.Context, batch port.Batch) error {
	if len(batch.Rows) == 0 {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	cols := "`" + strings.Join(batch.Columns, "`, `") + "`"
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(batch.Columns)), ", ") + ")"

	for start := 0; start < len(batch.Rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(batch.Rows) {
			end = len(batch.Rows)
		}
		chunk := batch.Rows[start:end]

		placeholders := make([]string, len(chunk))
		args := make([]any, 0, len(chunk)*len(batch.Columns))
		for i, row := range chunk {
			placeholders[i] = placeholder
			args = append(args, row...)
		}

		query := fmt.Sprintf("INSERT INTO `%s` (%s) VALUES %s",
			batch.Table, cols, strings.Join(placeholders, ", "))
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", batch.Table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", batch.Table, err)
	}
	return nil
}
