package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS products (
	id    INT PRIMARY KEY,
	title TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL,
	image TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS stock (
	product_id INT PRIMARY KEY,
	amount     INT NOT NULL CHECK (amount >= 0)
);
CREATE TABLE IF NOT EXISTS cart_storage (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureSchema crea las tablas del catálogo y del almacenamiento si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
