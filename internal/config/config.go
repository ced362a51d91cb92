// internal/config/config.go
//
// Environment configuration. A .env file in the working directory is
// loaded first (development convenience); real environment variables win.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the server and the terminal client.
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	Port         string `env:"PORT" envDefault:"5175"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	DBPath      string `env:"DB_PATH" envDefault:"./data/pokedle.db"`
	CatalogFile string `env:"CATALOG_FILE"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	RevealDelay   time.Duration `env:"REVEAL_DELAY" envDefault:"1s"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SuggestLimit  int           `env:"SUGGEST_LIMIT" envDefault:"0"`
	SuggestSample int           `env:"SUGGEST_SAMPLE" envDefault:"0"`
}

// Production reports whether ENV=production.
func (c Config) Production() bool { return c.Env == "production" }

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}
