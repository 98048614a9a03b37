package dto

import (
	"encoding/json"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
)

// AddCartItemRequest cuerpo de POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

// UpdateCartItemRequest cuerpo de PUT /api/cart/items/:id.
type UpdateCartItemRequest struct {
	Amount int `json:"amount"`
}

// CartItemResponse línea del carrito con su subtotal.
type CartItemResponse struct {
	ID       int         `json:"id"`
	Title    string      `json:"title"`
	Price    json.Number `json:"price"`
	Image    string      `json:"image"`
	Amount   int         `json:"amount"`
	Subtotal json.Number `json:"subtotal"`
}

// CartResponse estado del carrito tras la operación. Toasts trae los mensajes
// emitidos durante la petición; vacío si la operación tuvo éxito.
type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Total  json.Number        `json:"total"`
	Units  int                `json:"units"`
	Toasts []string           `json:"toasts"`
}

// NewCartResponse arma la respuesta desde el resumen del carrito. toasts nil se serializa como [].
func NewCartResponse(sum cart.Summary, toasts []string) CartResponse {
	items := make([]CartItemResponse, 0, len(sum.Items))
	for _, l := range sum.Items {
		items = append(items, CartItemResponse{
			ID:       l.Item.ID,
			Title:    l.Item.Title,
			Price:    Number(l.Item.Price),
			Image:    l.Item.Image,
			Amount:   l.Item.Amount,
			Subtotal: Number(l.Subtotal),
		})
	}
	if toasts == nil {
		toasts = []string{}
	}
	return CartResponse{Items: items, Total: Number(sum.Total), Units: sum.Units, Toasts: toasts}
}
