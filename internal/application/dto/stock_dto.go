package dto

import "github.com/jhoicas/rocketshoes-cart/internal/domain/entity"

// StockResponse stock disponible de un producto.
type StockResponse struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// NewStockResponse mapea la entidad.
func NewStockResponse(s *entity.Stock) StockResponse {
	return StockResponse{ID: s.ProductID, Amount: s.Amount}
}
