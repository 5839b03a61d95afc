// events/nats.go
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const DefaultSubject = "partidas.events"

type NATSPublisher struct {
	Url     string
	Subject string
	Conn    *nats.Conn
}

// ConnectNATS opens the connection used to publish partida events.
func ConnectNATS(url, token, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	opts := []nats.Option{
		nats.Name("partidas-service"),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	return &NATSPublisher{Url: url, Subject: subject, Conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, event PartidaEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	if err := p.Conn.Publish(p.Subject, payload); err != nil {
		log.Errorf("[EVENTS] error publishing to subject %s: %s", p.Subject, err)
		return err
	}
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() {
	if p.Conn == nil {
		return
	}
	if err := p.Conn.Drain(); err != nil {
		p.Conn.Close()
	}
}
