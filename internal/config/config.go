package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int  `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP `envPrefix:"HTTP_"`
	GRPC     GRPC `envPrefix:"GRPC_"`
	TLS      TLS  `envPrefix:"TLS_"`
	Seed     Seed `envPrefix:"SEED_"`
}

// HTTP contains REST API server parameters.
type HTTP struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
}

// GRPC contains parameters of the health/reflection gRPC listener.
type GRPC struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Port    string `env:"PORT" envDefault:"50051"`
}

// TLS contains listener encryption parameters shared by both servers.
type TLS struct {
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Seed controls the initial collection contents.
type Seed struct {
	File     string `env:"FILE"`
	Disabled bool   `env:"DISABLED" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("failed to parse config: HTTP_MAX_BODY_BYTES must be positive, got %d", cfg.HTTP.MaxBodyBytes)
	}

	return &cfg, nil
}
