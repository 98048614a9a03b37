package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// SeedCatalog carga productos y stock en una sola transacción (Upsert, idempotente).
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, products []*entity.Product, stock []*entity.Stock) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	stockRepo := NewStockRepository(tx)
	for _, p := range products {
		if err := productRepo.Upsert(ctx, p); err != nil {
			return err
		}
	}
	for _, s := range stock {
		if err := stockRepo.Upsert(ctx, s); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
