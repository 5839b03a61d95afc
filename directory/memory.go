// directory/memory.go
package directory

import (
	"context"
	"sync"
)

// MemoryDirectory is a static association table, handy for tests and for
// running without a directory service (every lookup is empty).
type MemoryDirectory struct {
	mu     sync.RWMutex
	juegos map[string][]int64
	apodos map[string][]int64
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		juegos: make(map[string][]int64),
		apodos: make(map[string][]int64),
	}
}

// LinkJuego records that the given partidas belong to the named game.
func (d *MemoryDirectory) LinkJuego(nombre string, partidaIDs ...int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.juegos[nombre] = append(d.juegos[nombre], partidaIDs...)
}

// LinkJugador records that the player with this nickname took part in the
// given partidas.
func (d *MemoryDirectory) LinkJugador(apodo string, partidaIDs ...int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.apodos[apodo] = append(d.apodos[apodo], partidaIDs...)
}

func (d *MemoryDirectory) PartidaIDsByJuegoNombre(ctx context.Context, nombre string) ([]int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]int64(nil), d.juegos[nombre]...), nil
}

func (d *MemoryDirectory) PartidaIDsByJugadorApodo(ctx context.Context, apodo string) ([]int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]int64(nil), d.apodos[apodo]...), nil
}
