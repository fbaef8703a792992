package natsx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

const (
	durableName   = "worker"
	fetchInterval = 2 * time.Second
	fetchMaxWait  = 5 * time.Second
)

// Handler processes one delivered message and owns the ack/nak decision.
type Handler func(ctx context.Context, msg *nats.Msg) error

// Subscriber is a durable pull consumer over a work-queue stream. One
// message is in flight at a time; redelivery comes from the broker's
// ack-wait timer, not from the subscriber.
type Subscriber struct {
	log *logger.Logger
	cfg Config
	nc  *nats.Conn
	sub *nats.Subscription
}

func NewSubscriber(log *logger.Logger, cfg Config) (*Subscriber, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Subscriber{
		log: log.With("service", "NatsSubscriber", "stream", cfg.StreamName, "subject", cfg.StreamSubject),
		cfg: cfg,
	}, nil
}

func (s *Subscriber) AckWait() time.Duration {
	return s.cfg.AckWait
}

func (s *Subscriber) Connect() error {
	nc, err := nats.Connect(s.cfg.URL,
		nats.Timeout(s.cfg.ConnectTimeout),
		nats.ReconnectWait(s.cfg.ReconnectWait),
		nats.MaxReconnects(s.cfg.MaxReconnectAttempts),
	)
	if err != nil {
		return fmt.Errorf("Failed to connect to NATS at %s: %w", s.cfg.URL, err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return fmt.Errorf("Failed to create JetStream context: %w", err)
	}
	if err := ensureStream(js, s.cfg, s.log); err != nil {
		nc.Close()
		return err
	}
	sub, err := js.PullSubscribe(s.cfg.StreamSubject, durableName,
		nats.AckExplicit(),
		nats.DeliverAll(),
		nats.AckWait(s.cfg.AckWait),
		nats.MaxDeliver(s.cfg.MaxDeliver),
	)
	if err != nil {
		nc.Close()
		return fmt.Errorf("Failed to create pull subscription: %w", err)
	}
	s.nc = nc
	s.sub = sub
	s.log.Info("Subscribed to JetStream", "durable", durableName, "ack_wait", s.cfg.AckWait, "max_deliver", s.cfg.MaxDeliver)
	return nil
}

// Consume fetches one message at a time until ctx is done. Broker fetch
// timeouts are the idle path; any other fetch error is returned so the
// supervisor can reconnect.
func (s *Subscriber) Consume(ctx context.Context, handler Handler) error {
	if s.sub == nil {
		return fmt.Errorf("subscriber is not connected")
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(fetchInterval):
		}
		msgs, err := s.sub.Fetch(1, nats.MaxWait(fetchMaxWait))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			return fmt.Errorf("Fetch failed: %w", err)
		}
		for _, msg := range msgs {
			if err := handler(ctx, msg); err != nil {
				s.log.Error("Message handler failed", "error", err)
			}
		}
	}
}

func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
		s.nc = nil
		s.sub = nil
	}
}

// ensureStream creates the work-queue stream. A stream that already exists
// with a different configuration is deleted and recreated, because a
// retention mismatch silently breaks once-and-only-once consumption.
func ensureStream(js nats.JetStreamContext, cfg Config, log *logger.Logger) error {
	streamCfg := &nats.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{cfg.StreamSubject},
		Retention: nats.WorkQueuePolicy,
	}
	_, err := js.AddStream(streamCfg)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		return fmt.Errorf("Failed to add stream %q: %w", cfg.StreamName, err)
	}
	log.Warn("Stream exists with a different configuration, recreating", "error", err)
	if err := js.DeleteStream(cfg.StreamName); err != nil {
		return fmt.Errorf("Failed to delete conflicting stream %q: %w", cfg.StreamName, err)
	}
	if _, err := js.AddStream(streamCfg); err != nil {
		return fmt.Errorf("Failed to recreate stream %q: %w", cfg.StreamName, err)
	}
	log.Info("Stream recreated")
	return nil
}
