package entity

// Stock cantidad disponible de un producto según el servicio de inventario.
// No se persiste en el carrito; se consulta en cada operación que lo necesita.
type Stock struct {
	ProductID int
	Amount    int
}
