package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":3001"`
	StorePath string `env:"STORE_PATH" envDefault:"db.json"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`

	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser      string `env:"EMAIL_USER"`
	EmailPass      string `env:"EMAIL_PASS"`
	OrderRecipient string `env:"ORDER_RECIPIENT"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`

	// Catalog item ids the storefront treats as sold out regardless of the
	// persisted flag. Seed/demo override, empty by default.
	ForceSoldOutIDs []int64 `env:"FORCE_SOLD_OUT_IDS" envSeparator:","`

	// Base URL the terminal storefront talks to.
	APIURL string `env:"API_URL" envDefault:"http://localhost:3001"`
}

func (c Config) Production() bool { return c.AppEnv == "production" }

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
