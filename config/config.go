package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env                string        `env:"ENV" env-default:"development"`
	Port               string        `env:"PORT" env-default:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL" env-required:"true"`
	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET" env-required:"true"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"4h"`
	RefreshTokenTTL    time.Duration `env:"REFRESH_TOKEN_TTL" env-default:"360h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}
