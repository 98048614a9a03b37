// Package kvstore elige el KeyValueStore del carrito según STORAGE_DRIVER.
package kvstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/postgres"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/redis"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/storage"
	"github.com/jhoicas/rocketshoes-cart/pkg/config"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

// Open construye el store configurado. pool se reutiliza para el driver postgres;
// si es nil se abre uno propio. log puede ser nil. La función devuelta libera lo que Open haya abierto.
func Open(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, log *logger.Logger) (repository.KeyValueStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), noop, nil
	case "file":
		return storage.NewFileStore(cfg.Storage.Path).WithLogger(log), noop, nil
	case "redis":
		kv := redis.NewKVStore(cfg.Storage.RedisURL)
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		return kv, func() { _ = kv.Close() }, nil
	case "postgres":
		closer := noop
		if pool == nil {
			p, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			pool, closer = p, p.Close
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			closer()
			return nil, nil, err
		}
		return postgres.NewKVStore(pool), closer, nil
	default:
		return nil, nil, fmt.Errorf("STORAGE_DRIVER inválido: %q", cfg.Storage.Driver)
	}
}
