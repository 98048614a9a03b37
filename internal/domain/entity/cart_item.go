package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito: un producto con su cantidad.
// Invariante: como máximo un CartItem por ID y Amount >= 1 mientras esté en el carrito.
type CartItem struct {
	ID     int
	Title  string
	Price  decimal.Decimal
	Image  string
	Amount int
}

// NewCartItem crea la línea para un producto recién agregado (cantidad 1).
func NewCartItem(p *Product) CartItem {
	return CartItem{
		ID:     p.ID,
		Title:  p.Title,
		Price:  p.Price,
		Image:  p.Image,
		Amount: 1,
	}
}

// Subtotal precio * cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Amount)))
}
