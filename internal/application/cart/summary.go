package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// Summary vista de solo lectura del carrito con subtotales y total.
type Summary struct {
	Items []SummaryLine
	Total decimal.Decimal
	Units int
}

// SummaryLine una línea del carrito con su subtotal.
type SummaryLine struct {
	Item     entity.CartItem
	Subtotal decimal.Decimal
}

// Summary calcula subtotales, total y unidades sobre una copia del carrito.
func (s *Store) Summary() Summary {
	return Summarize(s.Cart())
}

// Summarize calcula el resumen de una secuencia de items.
func Summarize(items []entity.CartItem) Summary {
	out := Summary{Items: make([]SummaryLine, 0, len(items)), Total: decimal.Zero}
	for _, it := range items {
		sub := it.Subtotal()
		out.Items = append(out.Items, SummaryLine{Item: it, Subtotal: sub})
		out.Total = out.Total.Add(sub)
		out.Units += it.Amount
	}
	return out
}

// AmountByProduct cantidad en carrito por id de producto (el contador de la vitrina).
func (s *Store) AmountByProduct() map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]int, len(s.items))
	for _, it := range s.items {
		out[it.ID] = it.Amount
	}
	return out
}
