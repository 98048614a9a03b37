package repository

// KeyValueStore almacenamiento clave-valor síncrono con semántica de localStorage:
// claves y valores string, persiste entre sesiones y Set sobrescribe el valor completo.
type KeyValueStore interface {
	// Get devuelve el valor y found=false si la clave no existe.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}
