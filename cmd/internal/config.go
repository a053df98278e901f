package internal

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the specgen defaults read from SPECGEN_* environment
// variables. Command line flags override them.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" json:"log_level"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console" json:"log_format"`
	Manifest  string `envconfig:"MANIFEST" default:"" json:"manifest,omitempty"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	err := envconfig.Process("specgen", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse specgen configuration: %w", err)
	}

	return cfg, nil
}
