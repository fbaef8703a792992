package milvus

import (
	"fmt"
	"os"
	"strings"
)

const IndexTypeDISKANN = "DISKANN"

type Config struct {
	Host       string
	Port       string
	Username   string
	Password   string
	IndexType  string
	MetricType string
}

type ConfigErrorCode string

const (
	ConfigErrorMissingHost       ConfigErrorCode = "missing_host"
	ConfigErrorUnsupportedIndex  ConfigErrorCode = "unsupported_index_type"
	ConfigErrorUnsupportedMetric ConfigErrorCode = "unsupported_metric_type"
)

type ConfigError struct {
	Code  ConfigErrorCode
	Value string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid milvus config"
	}
	switch e.Code {
	case ConfigErrorMissingHost:
		return "MILVUS_HOST is required"
	case ConfigErrorUnsupportedIndex:
		return fmt.Sprintf("unsupported MILVUS_INDEX_TYPE=%q; expected %s", e.Value, IndexTypeDISKANN)
	case ConfigErrorUnsupportedMetric:
		return fmt.Sprintf("unsupported MILVUS_METRIC_TYPE=%q; expected COSINE", e.Value)
	default:
		return "invalid milvus config"
	}
}

func ResolveConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:       strings.TrimSpace(os.Getenv("MILVUS_HOST")),
		Port:       strings.TrimSpace(os.Getenv("MILVUS_PORT")),
		Username:   strings.TrimSpace(os.Getenv("MILVUS_USER")),
		Password:   os.Getenv("MILVUS_PASSWORD"),
		IndexType:  strings.TrimSpace(os.Getenv("MILVUS_INDEX_TYPE")),
		MetricType: strings.TrimSpace(os.Getenv("MILVUS_METRIC_TYPE")),
	}
	if cfg.Port == "" {
		cfg.Port = "19530"
	}
	if cfg.IndexType == "" {
		cfg.IndexType = IndexTypeDISKANN
	}
	if cfg.MetricType == "" {
		cfg.MetricType = "COSINE"
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.Host == "" {
		return &ConfigError{Code: ConfigErrorMissingHost}
	}
	if cfg.IndexType != IndexTypeDISKANN {
		return &ConfigError{Code: ConfigErrorUnsupportedIndex, Value: cfg.IndexType}
	}
	if !strings.EqualFold(cfg.MetricType, "COSINE") {
		return &ConfigError{Code: ConfigErrorUnsupportedMetric, Value: cfg.MetricType}
	}
	return nil
}

func (c Config) Address() string {
	return c.Host + ":" + c.Port
}
