package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
type Product struct {
	ID    int
	Title string
	Price decimal.Decimal
	Image string // URL de la imagen
}
