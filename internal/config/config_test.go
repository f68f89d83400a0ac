package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.GetAPIBaseUrl())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:8000", cfg.GetServerAddr())
	assert.NotEmpty(t, cfg.GetSecret())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	payload := `
api:
  endpoint: https://api.freelancehq.io
  base: /api/v2
logging:
  level: warning
session:
  path: /tmp/fhq-session.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.freelancehq.io/api/v2", cfg.GetAPIBaseUrl())
	assert.Equal(t, "warning", cfg.Logging.Level)
	assert.Equal(t, "/tmp/fhq-session.yaml", cfg.GetSessionPath())
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("FREELANCEHQ_API_ENDPOINT", "http://10.0.0.5:9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:9000/api", cfg.GetAPIBaseUrl())
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FREELANCEHQ_LOGGING_LEVEL", "chatty")

	_, err := Load("")
	assert.Error(t, err)
}

func TestGetAPIBaseUrl_TrailingSlashes(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		base     string
		expected string
	}{
		{name: "both slashed", endpoint: "http://x/", base: "/api/", expected: "http://x/api"},
		{name: "no base", endpoint: "http://x", base: "", expected: "http://x"},
		{name: "base only slash", endpoint: "http://x/", base: "/", expected: "http://x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{API: APIConfig{Endpoint: tt.endpoint, Base: tt.base}}
			assert.Equal(t, tt.expected, cfg.GetAPIBaseUrl())
		})
	}
}
