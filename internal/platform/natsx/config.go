package natsx

import (
	"fmt"
	"time"

	"github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
)

type Config struct {
	URL                  string
	ConnectTimeout       time.Duration
	ReconnectWait        time.Duration
	MaxReconnectAttempts int
	StreamName           string
	StreamSubject        string
	AckWait              time.Duration
	MaxDeliver           int
}

func ResolveConfigFromEnv() Config {
	return Config{
		URL:                  envutil.Str("NATS_CLIENT_URL", "nats://127.0.0.1:4222"),
		ConnectTimeout:       envutil.Duration("NATS_CLIENT_CONNECT_TIMEOUT", 30*time.Second),
		ReconnectWait:        envutil.Duration("NATS_CLIENT_RECONNECT_TIME_WAIT", 30*time.Second),
		MaxReconnectAttempts: envutil.Int("NATS_CLIENT_MAX_RECONNECT_ATTEMPTS", 3),
		StreamName:           envutil.Str("NATS_CLIENT_STREAM_NAME", "semantic"),
		StreamSubject:        envutil.Str("NATS_CLIENT_STREAM_SUBJECT", "chunk_activity"),
		AckWait:              envutil.Duration("NATS_CLIENT_ACK_WAIT", 3600*time.Second),
		MaxDeliver:           envutil.Int("NATS_CLIENT_MAX_DELIVER", 3),
	}
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("NATS_CLIENT_URL is required")
	}
	if c.StreamName == "" {
		return fmt.Errorf("NATS_CLIENT_STREAM_NAME is required")
	}
	if c.StreamSubject == "" {
		return fmt.Errorf("NATS_CLIENT_STREAM_SUBJECT is required")
	}
	if c.AckWait <= 0 {
		return fmt.Errorf("NATS_CLIENT_ACK_WAIT must be positive, got %s", c.AckWait)
	}
	if c.MaxDeliver <= 0 {
		return fmt.Errorf("NATS_CLIENT_MAX_DELIVER must be positive, got %d", c.MaxDeliver)
	}
	return nil
}
