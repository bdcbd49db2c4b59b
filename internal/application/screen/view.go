// Package screen secuencia las cargas de datos de cada pantalla.
//
// Cada carga toma un ticket creciente y cancela la carga anterior de la misma vista.
// Sólo el ticket más reciente publica su resultado: una respuesta tardía de un filtro
// viejo nunca pisa la de un filtro más nuevo.
package screen

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded la carga fue reemplazada por otra más reciente de la misma vista.
var ErrSuperseded = errors.New("screen: carga reemplazada por una más reciente")

// FetchFunc obtiene los datos de una vista para unos parámetros.
type FetchFunc[P, T any] func(ctx context.Context, params P) (T, error)

// Snapshot último resultado publicado de una vista.
type Snapshot[P, T any] struct {
	Params P
	Data   T
	Err    error
	Ticket uint64
}

// View estado de una pantalla con parámetros P (rango de fechas, búsqueda, pestaña) y datos T.
type View[P, T any] struct {
	mu      sync.Mutex
	next    uint64
	cancel  context.CancelFunc
	current Snapshot[P, T]
}

// Load ejecuta fetch para params. Cancela la carga en curso de esta vista y devuelve
// ErrSuperseded si, al terminar, ya existe una carga más reciente.
func (v *View[P, T]) Load(ctx context.Context, params P, fetch FetchFunc[P, T]) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	v.next++
	ticket := v.next
	if v.cancel != nil {
		v.cancel()
	}
	v.cancel = cancel
	v.mu.Unlock()

	data, err := fetch(ctx, params)

	v.mu.Lock()
	defer v.mu.Unlock()
	if ticket != v.next {
		var zero T
		return zero, ErrSuperseded
	}
	v.cancel = nil
	v.current = Snapshot[P, T]{Params: params, Data: data, Err: err, Ticket: ticket}
	return data, err
}

// Current devuelve el último resultado publicado (cero si nunca se cargó).
func (v *View[P, T]) Current() Snapshot[P, T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}
