package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Number precio como número JSON (decimal.Decimal se serializa como string por defecto).
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
