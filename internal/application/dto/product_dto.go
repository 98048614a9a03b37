package dto

import (
	"encoding/json"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// ProductResponse producto del catálogo tal como lo expone la API (mismo formato que el db.json del json-server).
type ProductResponse struct {
	ID    int         `json:"id"`
	Title string      `json:"title"`
	Price json.Number `json:"price"`
	Image string      `json:"image"`
}

// NewProductResponse mapea la entidad.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Title: p.Title, Price: Number(p.Price), Image: p.Image}
}
