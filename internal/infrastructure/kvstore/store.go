// Package kvstore abstrae el almacén clave/valor local del dispositivo:
// una clave conocida guarda el valor completo y cada escritura lo reemplaza
// como unidad.
package kvstore

// Store almacén clave/valor con lecturas y escrituras del valor completo.
type Store interface {
	// Get devuelve (valor, true, nil) si la clave existe; (nil, false, nil)
	// si no existe.
	Get(key string) ([]byte, bool, error)
	// Set reemplaza el valor completo de la clave.
	Set(key string, value []byte) error
	// Delete elimina la clave; borrar una clave inexistente no es error.
	Delete(key string) error
}
