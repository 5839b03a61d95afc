// events/events.go
package events

import (
	"context"
	"time"

	"partidas-service/models"
)

const (
	TypePartidaCreated = "partida.created"
	TypePartidaUpdated = "partida.updated"
	TypePartidaDeleted = "partida.deleted"
)

// PartidaEvent is emitted after every successful write.
type PartidaEvent struct {
	Type      string          `json:"type"`
	ID        int64           `json:"id"`
	Partida   *models.Partida `json:"partida,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

func NewPartidaEvent(eventType string, id int64, p *models.Partida) PartidaEvent {
	return PartidaEvent{
		Type:      eventType,
		ID:        id,
		Partida:   p,
		Timestamp: time.Now().UnixMilli(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event PartidaEvent) error
}

// NoopPublisher drops events. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event PartidaEvent) error {
	return nil
}
