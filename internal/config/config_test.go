package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, true, cfg.GRPC.Enabled)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, false, cfg.TLS.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.TLS.CertFileName)
	assert.Equal(t, "key.pem", cfg.TLS.PrivateKeyFileName)
	assert.Equal(t, "", cfg.Seed.File)
	assert.Equal(t, false, cfg.Seed.Disabled)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                "9090",
				"HTTP_MAX_BODY_BYTES":      "2048",
				"HTTP_READ_HEADER_TIMEOUT": "250ms",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.HTTP.Port)
				assert.Equal(t, int64(2048), cfg.HTTP.MaxBodyBytes)
				assert.Equal(t, 250*time.Millisecond, cfg.HTTP.ReadHeaderTimeout)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_ENABLED": "false",
				"GRPC_PORT":    "6000",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, false, cfg.GRPC.Enabled)
				assert.Equal(t, "6000", cfg.GRPC.Port)
			},
		},
		{
			name: "tls config override",
			envVars: map[string]string{
				"TLS_ENABLE_HTTPS":          "true",
				"TLS_CERT_FILE_NAME":        "custom.pem",
				"TLS_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.TLS.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.TLS.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.TLS.PrivateKeyFileName)
			},
		},
		{
			name: "seed config override",
			envVars: map[string]string{
				"SEED_FILE":     "/etc/playground/seed.yaml",
				"SEED_DISABLED": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/etc/playground/seed.yaml", cfg.Seed.File)
				assert.Equal(t, true, cfg.Seed.Disabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidValues(t *testing.T) {
	t.Run("unparsable bool", func(t *testing.T) {
		t.Setenv("GRPC_ENABLED", "maybe")
		_, err := NewConfig()
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("non-positive body limit", func(t *testing.T) {
		t.Setenv("HTTP_MAX_BODY_BYTES", "0")
		_, err := NewConfig()
		assert.ErrorContains(t, err, "HTTP_MAX_BODY_BYTES")
	})
}
