package repository

import (
	"context"
	"errors"
)

// Claves del estado persistido del terminal.
const (
	KeyToken            = "token"
	KeyUser             = "user"
	KeyBusiness         = "business"
	KeyBusinessSettings = "businessSettings"
)

// ErrCorruptState el almacén existe pero no se puede leer (JSON roto o clave de cifrado incorrecta).
// Get lo devuelve; SetMany y Delete reescriben el estado desde cero.
var ErrCorruptState = errors.New("estado persistido ilegible")

// StateStorage almacén clave/valor del estado local (valores JSON crudos).
// Implementaciones: archivo JSON, Redis, tabla en Postgres.
type StateStorage interface {
	// Get devuelve ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// SetMany escribe todas las claves juntas (todas o ninguna cuando el driver lo permite).
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}
