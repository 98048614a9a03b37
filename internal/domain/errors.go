package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNotInCart         = errors.New("el producto no está en el carrito")
	ErrMalformedResponse = errors.New("respuesta del catálogo malformada")
	ErrMalformedSnapshot = errors.New("snapshot del carrito malformado")
)
