package milvus

import (
	"errors"
	"testing"
)

func TestResolveConfigFromEnv(t *testing.T) {
	t.Setenv("MILVUS_HOST", "milvus.local")
	t.Setenv("MILVUS_PORT", "")
	t.Setenv("MILVUS_INDEX_TYPE", "")
	t.Setenv("MILVUS_METRIC_TYPE", "")

	cfg, err := ResolveConfigFromEnv()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Port != "19530" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.IndexType != IndexTypeDISKANN || cfg.MetricType != "COSINE" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.Address() != "milvus.local:19530" {
		t.Fatalf("address = %q", cfg.Address())
	}
}

func TestResolveConfigFromEnvMissingHost(t *testing.T) {
	t.Setenv("MILVUS_HOST", "")
	_, err := ResolveConfigFromEnv()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Code != ConfigErrorMissingHost {
		t.Fatalf("expected missing_host config error, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	base := Config{Host: "h", Port: "19530", IndexType: IndexTypeDISKANN, MetricType: "COSINE"}
	if err := ValidateConfig(base); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.IndexType = "HNSW"
	var cfgErr *ConfigError
	if err := ValidateConfig(bad); !errors.As(err, &cfgErr) || cfgErr.Code != ConfigErrorUnsupportedIndex {
		t.Fatalf("expected unsupported index error, got %v", err)
	}

	bad = base
	bad.MetricType = "L2"
	if err := ValidateConfig(bad); !errors.As(err, &cfgErr) || cfgErr.Code != ConfigErrorUnsupportedMetric {
		t.Fatalf("expected unsupported metric error, got %v", err)
	}

	lower := base
	lower.MetricType = "cosine"
	if err := ValidateConfig(lower); err != nil {
		t.Fatalf("metric type comparison must be case-insensitive: %v", err)
	}
}
