// Package redis implementa el KeyValueStore del carrito sobre Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const opTimeout = 5 * time.Second

// KVStore KeyValueStore sobre Redis: un string por clave, sin expiración.
type KVStore struct {
	client *goredis.Client
}

// NewKVStore acepta una URL redis://… o, si no lo es, la trata como host:port.
func NewKVStore(addr string) *KVStore {
	opts, err := goredis.ParseURL(addr)
	if err != nil {
		opts = &goredis.Options{
			Addr:         addr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}
	return &KVStore{client: goredis.NewClient(opts)}
}

// NewKVStoreFromClient usa un cliente ya construido.
func NewKVStoreFromClient(client *goredis.Client) *KVStore {
	return &KVStore{client: client}
}

// Get devuelve el valor; redis.Nil significa clave inexistente.
func (s *KVStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set sobrescribe el valor de la clave.
func (s *KVStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping verifica la conexión.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close libera el pool de conexiones.
func (s *KVStore) Close() error {
	return s.client.Close()
}
