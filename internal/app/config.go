package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	CatalogPath string // .hcl catalog files
	SegmentPath string // DuckDB segment database; empty means in-memory

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
