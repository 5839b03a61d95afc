// services/partida_query_service.go
package services

import (
	"context"
	"fmt"

	"partidas-service/directory"
	"partidas-service/models"
	"partidas-service/repository"

	log "github.com/sirupsen/logrus"
)

// PartidaQueryService serves the read-only listings.
type PartidaQueryService struct {
	Repo      repository.PartidaRepository
	Directory directory.Directory
}

func NewPartidaQueryService(repo repository.PartidaRepository, dir directory.Directory) *PartidaQueryService {
	if dir == nil {
		dir = directory.NewMemoryDirectory()
	}
	return &PartidaQueryService{Repo: repo, Directory: dir}
}

func (s *PartidaQueryService) FindByCriteria(ctx context.Context, criteria models.PartidaCriteria, pageable models.Pageable) (models.Page, error) {
	for _, order := range pageable.Sort {
		if _, ok := models.SortableFields[order.Field]; !ok {
			return models.Page{}, BadRequest(fmt.Sprintf("Cannot sort by '%s'", order.Field), KeySortInvalid)
		}
	}
	if pageable.Size <= 0 {
		pageable.Size = models.DefaultPageSize
	}
	if pageable.Page < 0 {
		pageable.Page = 0
	}
	log.Debugf("[PARTIDA] find by criteria %+v page=%d size=%d", criteria, pageable.Page, pageable.Size)
	return s.Repo.FindAll(ctx, criteria, pageable)
}

func (s *PartidaQueryService) CountByCriteria(ctx context.Context, criteria models.PartidaCriteria) (int64, error) {
	log.Debugf("[PARTIDA] count by criteria %+v", criteria)
	return s.Repo.Count(ctx, criteria)
}

// FindByJuegoNombreOrderByGanadorAsc lists the partidas of the named game.
// A nil nombre means the parameter was not sent.
func (s *PartidaQueryService) FindByJuegoNombreOrderByGanadorAsc(ctx context.Context, nombre *string) ([]models.Partida, error) {
	if nombre == nil {
		return nil, BadRequest("El nombre no es correcto", KeyNombreNull)
	}
	ids, err := s.Directory.PartidaIDsByJuegoNombre(ctx, *nombre)
	if err != nil {
		return nil, fmt.Errorf("resolve partidas of juego %q: %w", *nombre, err)
	}
	return s.Repo.FindByIDsOrderByGanador(ctx, ids)
}

// FindByJugadorApodoOrderByGanadorAsc lists the partidas played by the
// jugador with the given nickname.
func (s *PartidaQueryService) FindByJugadorApodoOrderByGanadorAsc(ctx context.Context, apodo *string) ([]models.Partida, error) {
	if apodo == nil {
		return nil, BadRequest("El apodo no es correcto", KeyApodoNull)
	}
	ids, err := s.Directory.PartidaIDsByJugadorApodo(ctx, *apodo)
	if err != nil {
		return nil, fmt.Errorf("resolve partidas of jugador %q: %w", *apodo, err)
	}
	return s.Repo.FindByIDsOrderByGanador(ctx, ids)
}
