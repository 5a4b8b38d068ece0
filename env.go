package rhttp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment holds the configuration this layer reads from environment
// variables. Everything below the request/response boundary (ports, TLS,
// timeouts) is the hosting runtime's to configure.
type Environment struct {
	LogLevel     zapcore.Level `env:"RHTTP_LOG_LEVEL"      envDefault:"info"`
	MaxBodyBytes int64         `env:"RHTTP_MAX_BODY_BYTES" envDefault:"0"`
}

// ParseEnv parses the environment variables into an Environment.
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse environment")
	}

	return e, nil
}

// NewLogger creates a zap logger configured from the environment. Uses JSON
// encoding with ISO8601 timestamps.
func NewLogger(e Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(e.LogLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// AppOptions bridges the environment to [NewApp] options.
func (e Environment) AppOptions() []Option {
	return []Option{WithMaxBodyBytes(e.MaxBodyBytes)}
}
