package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App      App
	Neople   Neople
	Redis    Redis
	Postgres Postgres
	Bot      Bot
}

// Load читает .env, если он есть, и переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.App.CatalogSource {
	case CatalogSourceEmbedded:
	case CatalogSourcePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("PG_DSN is required for postgres catalog")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.App.CatalogSource)
	}

	if c.Bot.Token != "" && c.Bot.ChatID == 0 {
		return errors.New("BOT_CHAT_ID is required when BOT_TOKEN is set")
	}

	if c.Bot.AdminID != 0 && c.Bot.Token == "" {
		return errors.New("BOT_TOKEN is required when BOT_ADMIN_ID is set")
	}

	return nil
}
