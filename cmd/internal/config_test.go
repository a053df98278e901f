package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "info", LogFormat: "console"}, cfg)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SPECGEN_LOG_LEVEL", "debug")
	t.Setenv("SPECGEN_LOG_FORMAT", "json")
	t.Setenv("SPECGEN_MANIFEST", "specgen.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "debug", LogFormat: "json", Manifest: "specgen.yaml"}, cfg)
}
