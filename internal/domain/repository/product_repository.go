package repository

import (
	"context"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
