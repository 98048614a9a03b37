package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

func TestNewCartItem_CantidadInicialUno(t *testing.T) {
	p := &entity.Product{ID: 7, Title: "Zapatillas", Price: decimal.RequireFromString("179.9"), Image: "https://img/7.jpg"}

	item := entity.NewCartItem(p)

	assert.Equal(t, 7, item.ID)
	assert.Equal(t, "Zapatillas", item.Title)
	assert.Equal(t, "https://img/7.jpg", item.Image)
	assert.Equal(t, 1, item.Amount)
}

func TestCartItem_Subtotal(t *testing.T) {
	item := entity.CartItem{ID: 1, Price: decimal.RequireFromString("10.50"), Amount: 3}
	assert.Equal(t, "31.5", item.Subtotal().String())
}
