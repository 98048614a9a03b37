package cart

// Kind categoría de fallo que se muestra al usuario. La causa real solo va al log.
type Kind int

const (
	KindProductAddFailed Kind = iota + 1
	KindProductRemoveFailed
	KindInvalidAmount
	KindOutOfStock
	KindAmountUpdateFailed
)

var kindMessages = map[Kind]string{
	KindProductAddFailed:    "Error al agregar el producto",
	KindProductRemoveFailed: "Error al eliminar el producto",
	KindInvalidAmount:       "Error al modificar la cantidad del producto",
	KindOutOfStock:          "Cantidad solicitada fuera de stock",
	KindAmountUpdateFailed:  "Error al modificar la cantidad del producto",
}

var kindNames = map[Kind]string{
	KindProductAddFailed:    "product_add_failed",
	KindProductRemoveFailed: "product_remove_failed",
	KindInvalidAmount:       "invalid_amount",
	KindOutOfStock:          "out_of_stock",
	KindAmountUpdateFailed:  "amount_update_failed",
}

// Message texto fijo que ve el usuario.
func (k Kind) Message() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return "Error inesperado"
}

// String nombre estable para logs y trazas.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}
