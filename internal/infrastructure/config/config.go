package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	// BaseURL is the platform's API root. Fixed for the process lifetime.
	BaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// Timeout bounds every outbound request.
	Timeout  time.Duration `env:"API_TIMEOUT, default=10s"`
	LogLevel string        `env:"LOG_LEVEL,   default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Backend selects where the session cache lives: file, memory, or redis.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// File is the session cache path for the file backend.
	File string `env:"SESSION_FILE, default=.matching/session.json"`
}

type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR,        default=localhost:6379"`
	DB   int           `env:"REDIS_DB,          default=0"`
	Key  string        `env:"REDIS_SESSION_KEY, default=matching:session"`
	TTL  time.Duration `env:"REDIS_SESSION_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	switch cfg.Session.Backend {
	case BackendFile, BackendMemory, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
