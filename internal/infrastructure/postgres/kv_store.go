package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const kvTimeout = 5 * time.Second

// KVStore KeyValueStore sobre la tabla cart_storage.
type KVStore struct {
	q Querier
}

// NewKVStore construye el almacenamiento. Pasar pool o tx (Querier).
func NewKVStore(q Querier) *KVStore {
	return &KVStore{q: q}
}

// Get devuelve el valor de la clave.
func (s *KVStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()
	var v string
	err := s.q.QueryRow(ctx, `SELECT value FROM cart_storage WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cart_storage: %w", err)
	}
	return v, true, nil
}

// Set inserta o sobrescribe el valor de la clave.
func (s *KVStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()
	query := `
		INSERT INTO cart_storage (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert cart_storage: %w", err)
	}
	return nil
}
