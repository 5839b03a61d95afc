// services/partida_service.go
package services

import (
	"context"
	"errors"

	"partidas-service/events"
	"partidas-service/models"
	"partidas-service/repository"

	log "github.com/sirupsen/logrus"
)

// PartidaService owns the write path and the single-record reads.
type PartidaService struct {
	Repo      repository.PartidaRepository
	Publisher events.Publisher
}

func NewPartidaService(repo repository.PartidaRepository, publisher events.Publisher) *PartidaService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &PartidaService{Repo: repo, Publisher: publisher}
}

// Create stores a new partida. The payload must not carry an id.
func (s *PartidaService) Create(ctx context.Context, in models.PartidaPayload) (models.Partida, error) {
	if in.ID != nil {
		return models.Partida{}, BadRequest("A new partida cannot already have an ID", KeyIDExists)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return models.Partida{}, invalidFields(fields)
	}

	p := in.ToPartida()
	if err := s.Repo.Save(ctx, &p); err != nil {
		return models.Partida{}, err
	}
	log.Debugf("[PARTIDA] saved %s", p)

	s.publish(ctx, events.TypePartidaCreated, p.ID, &p)
	return p, nil
}

// Update replaces the stored partida identified by id.
func (s *PartidaService) Update(ctx context.Context, id int64, in models.PartidaPayload) (models.Partida, error) {
	if err := s.checkIdentity(ctx, id, in); err != nil {
		return models.Partida{}, err
	}
	if fields := in.Validate(); len(fields) > 0 {
		return models.Partida{}, invalidFields(fields)
	}

	p := in.ToPartida()
	if err := s.Repo.Save(ctx, &p); err != nil {
		return models.Partida{}, err
	}
	log.Debugf("[PARTIDA] updated %s", p)

	s.publish(ctx, events.TypePartidaUpdated, p.ID, &p)
	return p, nil
}

// PartialUpdate merges the non-null fields of in into the stored partida.
func (s *PartidaService) PartialUpdate(ctx context.Context, id int64, in models.PartidaPayload) (models.Partida, error) {
	if err := s.checkIdentity(ctx, id, in); err != nil {
		return models.Partida{}, err
	}

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Partida{}, NotFound("Entity not found")
		}
		return models.Partida{}, err
	}

	in.MergeInto(&existing)
	if fields := existing.Validate(); len(fields) > 0 {
		return models.Partida{}, invalidFields(fields)
	}

	if err := s.Repo.Save(ctx, &existing); err != nil {
		return models.Partida{}, err
	}
	log.Debugf("[PARTIDA] partially updated %s", existing)

	s.publish(ctx, events.TypePartidaUpdated, existing.ID, &existing)
	return existing, nil
}

func (s *PartidaService) FindOne(ctx context.Context, id int64) (models.Partida, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Partida{}, NotFound("Entity not found")
		}
		return models.Partida{}, err
	}
	return p, nil
}

func (s *PartidaService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Debugf("[PARTIDA] deleted id=%d", id)

	s.publish(ctx, events.TypePartidaDeleted, id, nil)
	return nil
}

// checkIdentity enforces the update preconditions shared by PUT and PATCH.
func (s *PartidaService) checkIdentity(ctx context.Context, id int64, in models.PartidaPayload) error {
	if in.ID == nil {
		return BadRequest("Invalid id", KeyIDNull)
	}
	if *in.ID != id {
		return BadRequest("Invalid ID", KeyIDInvalid)
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return BadRequest("Entity not found", KeyIDNotFound)
	}
	return nil
}

func (s *PartidaService) publish(ctx context.Context, eventType string, id int64, p *models.Partida) {
	if err := s.Publisher.Publish(ctx, events.NewPartidaEvent(eventType, id, p)); err != nil {
		log.Warnf("[PARTIDA] failed to publish %s for id=%d: %v", eventType, id, err)
	}
}
