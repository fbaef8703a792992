package natsx

import (
	"testing"
	"time"
)

func TestResolveConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"NATS_CLIENT_URL",
		"NATS_CLIENT_CONNECT_TIMEOUT",
		"NATS_CLIENT_RECONNECT_TIME_WAIT",
		"NATS_CLIENT_MAX_RECONNECT_ATTEMPTS",
		"NATS_CLIENT_STREAM_NAME",
		"NATS_CLIENT_STREAM_SUBJECT",
		"NATS_CLIENT_ACK_WAIT",
		"NATS_CLIENT_MAX_DELIVER",
	} {
		t.Setenv(key, "")
	}
	cfg := ResolveConfigFromEnv()
	if cfg.URL != "nats://127.0.0.1:4222" {
		t.Fatalf("default url = %q", cfg.URL)
	}
	if cfg.StreamName != "semantic" || cfg.StreamSubject != "chunk_activity" {
		t.Fatalf("default stream = %q/%q", cfg.StreamName, cfg.StreamSubject)
	}
	if cfg.AckWait != 3600*time.Second {
		t.Fatalf("default ack wait = %s", cfg.AckWait)
	}
	if cfg.MaxDeliver != 3 {
		t.Fatalf("default max deliver = %d", cfg.MaxDeliver)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestResolveConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("NATS_CLIENT_URL", "nats://broker:4222")
	t.Setenv("NATS_CLIENT_STREAM_NAME", "ingest")
	t.Setenv("NATS_CLIENT_ACK_WAIT", "120")
	t.Setenv("NATS_CLIENT_MAX_DELIVER", "5")
	cfg := ResolveConfigFromEnv()
	if cfg.URL != "nats://broker:4222" || cfg.StreamName != "ingest" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.AckWait != 120*time.Second {
		t.Fatalf("ack wait override = %s", cfg.AckWait)
	}
	if cfg.MaxDeliver != 5 {
		t.Fatalf("max deliver override = %d", cfg.MaxDeliver)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		URL:           "nats://127.0.0.1:4222",
		StreamName:    "semantic",
		StreamSubject: "chunk_activity",
		AckWait:       time.Hour,
		MaxDeliver:    3,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing url", func(c *Config) { c.URL = "" }},
		{"missing stream", func(c *Config) { c.StreamName = "" }},
		{"missing subject", func(c *Config) { c.StreamSubject = "" }},
		{"zero ack wait", func(c *Config) { c.AckWait = 0 }},
		{"zero max deliver", func(c *Config) { c.MaxDeliver = 0 }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
