// repository/repository.go
package repository

import (
	"context"
	"errors"

	"partidas-service/models"
)

var ErrNotFound = errors.New("partida not found")

// PartidaRepository is the storage port used by the services. It covers
// exactly what the REST resource needs and nothing more.
type PartidaRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (models.Partida, error)
	// Save inserts when p.ID is 0 (assigning it) and replaces otherwise.
	Save(ctx context.Context, p *models.Partida) error
	DeleteByID(ctx context.Context, id int64) error
	FindAll(ctx context.Context, criteria models.PartidaCriteria, pageable models.Pageable) (models.Page, error)
	Count(ctx context.Context, criteria models.PartidaCriteria) (int64, error)
	// FindByIDsOrderByGanador returns the given partidas ordered by ganador
	// ascending, then id ascending. Unknown ids are skipped.
	FindByIDsOrderByGanador(ctx context.Context, ids []int64) ([]models.Partida, error)
}
