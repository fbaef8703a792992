package natsx

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

// Publisher enqueues jobs on the same stream the workers consume.
type Publisher struct {
	log *logger.Logger
	cfg Config
	nc  *nats.Conn
	js  nats.JetStreamContext
}

func NewPublisher(log *logger.Logger, cfg Config) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Publisher{
		log: log.With("service", "NatsPublisher", "stream", cfg.StreamName, "subject", cfg.StreamSubject),
		cfg: cfg,
	}, nil
}

func (p *Publisher) Connect() error {
	nc, err := nats.Connect(p.cfg.URL,
		nats.Timeout(p.cfg.ConnectTimeout),
		nats.ReconnectWait(p.cfg.ReconnectWait),
		nats.MaxReconnects(p.cfg.MaxReconnectAttempts),
	)
	if err != nil {
		return fmt.Errorf("Failed to connect to NATS at %s: %w", p.cfg.URL, err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return fmt.Errorf("Failed to create JetStream context: %w", err)
	}
	if err := ensureStream(js, p.cfg, p.log); err != nil {
		nc.Close()
		return err
	}
	p.nc = nc
	p.js = js
	return nil
}

func (p *Publisher) Publish(ctx context.Context, data []byte) error {
	if p.js == nil {
		return fmt.Errorf("publisher is not connected")
	}
	ack, err := p.js.Publish(p.cfg.StreamSubject, data, nats.Context(ctx))
	if err != nil {
		p.log.Error("Publish failed", "error", err)
		return fmt.Errorf("Failed to publish to %q: %w", p.cfg.StreamSubject, err)
	}
	p.log.Debug("Job published", "stream", ack.Stream, "seq", ack.Sequence)
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
		p.nc = nil
		p.js = nil
	}
}
