package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// secretPlaceholder is the well-known unset value. Running with it would mean
// every deployment signs tokens with the same public string, so startup fails.
const secretPlaceholder = "notfound"

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET,        default=notfound"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=5m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	VerifyTTL  time.Duration `env:"VERIFY_TOKEN_TTL,  default=30m"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=petfinder"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig configures verification mail delivery. When Host is empty the
// service falls back to logging mail instead of sending it.
type SMTPConfig struct {
	Host    string `env:"SMTP_HOST"`
	Port    string `env:"SMTP_PORT, default=587"`
	From    string `env:"SMTP_FROM, default=noreply@lostpaws.example"`
	BaseURL string `env:"VERIFY_BASE_URL, default=http://localhost:8080"`
}

// Load reads configuration from environment variables using go-envconfig and
// fails fast when the signing secret is absent or left at its placeholder.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == secretPlaceholder {
		return nil, errors.New("config: JWT_SECRET is not set")
	}
	return &cfg, nil
}
