// directory/directory.go
package directory

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("association directory unavailable")

// Directory resolves the Juego/Jugador associations of partidas. Those
// entities live outside this service; all we get back is partida ids.
type Directory interface {
	PartidaIDsByJuegoNombre(ctx context.Context, nombre string) ([]int64, error)
	PartidaIDsByJugadorApodo(ctx context.Context, apodo string) ([]int64, error)
}
