package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id      TEXT PRIMARY KEY,
    name    TEXT NOT NULL,
    email   TEXT NOT NULL,
    role    TEXT NOT NULL DEFAULT '',
    address TEXT,
    phone   TEXT
);

CREATE TABLE IF NOT EXISTS categories (
    id                 TEXT PRIMARY KEY,
    category_name      TEXT NOT NULL,
    category_status    TEXT NOT NULL DEFAULT '',
    category_image_url TEXT
);

CREATE TABLE IF NOT EXISTS products (
    id                  TEXT PRIMARY KEY,
    vendor_id           TEXT NOT NULL REFERENCES users (id),
    product_name        TEXT NOT NULL,
    product_description TEXT,
    category_id         TEXT NOT NULL REFERENCES categories (id),
    price               NUMERIC(12, 2) NOT NULL,
    stock_quantity      INTEGER NOT NULL DEFAULT 0,
    product_status      TEXT NOT NULL DEFAULT '',
    product_image_url   TEXT
);

CREATE TABLE IF NOT EXISTS orders (
    id               TEXT PRIMARY KEY,
    customer_id      TEXT NOT NULL REFERENCES users (id),
    delivery_address TEXT NOT NULL,
    total_amount     NUMERIC(12, 2) NOT NULL,
    status           TEXT NOT NULL,
    order_date       TIMESTAMPTZ NOT NULL,
    dispatched_date  TIMESTAMPTZ,
    delivery_status  TEXT NOT NULL DEFAULT 'Pending',

    -- токен оптимистичной блокировки
    version          BIGINT NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS order_items (
    order_id   TEXT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
    product_id TEXT NOT NULL,
    vendor_id  TEXT NOT NULL,
    quantity   INTEGER NOT NULL,
    price      NUMERIC(12, 2) NOT NULL,
    status     TEXT NOT NULL,
    PRIMARY KEY (order_id, product_id)
);

CREATE TABLE IF NOT EXISTS order_cancellations (
    order_id     TEXT PRIMARY KEY REFERENCES orders (id) ON DELETE CASCADE,
    requested    BOOLEAN NOT NULL DEFAULT FALSE,
    reason       TEXT,
    status       TEXT NOT NULL DEFAULT '',
    requested_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id);
CREATE INDEX IF NOT EXISTS idx_order_items_vendor_id ON order_items (vendor_id);
`

// Init создаёт схему, если её ещё нет.
func Init(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
