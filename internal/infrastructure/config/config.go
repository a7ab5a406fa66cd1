package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=https://agrigo-backend.onrender.com"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type SessionConfig struct {
	// Secret signs the browser session cookie. Required outside development.
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=720h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file, when present, is folded into the environment first.
func Load(logger *slog.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
