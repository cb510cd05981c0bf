// Package config loads all runtime settings from the environment. A .env
// file in the working directory is honoured.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`
	Debug    bool   `env:"BOT_DEBUG"`

	DB Database
}

// Database selects and parameterises the storage backend. Production runs
// postgres; sqlite needs only a file path.
type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"postgres"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"nyt_rankbot"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	Path string `env:"SQLITE_PATH" envDefault:"nyt_rankbot.db"`
}

// Load parses the environment. Any error here is startup-fatal in the
// caller.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDatabase parses only the storage settings, for commands that never
// talk to Telegram.
func LoadDatabase() (Database, error) {
	var db Database
	if err := env.Parse(&db); err != nil {
		return Database{}, fmt.Errorf("parse env: %w", err)
	}
	if err := db.validate(); err != nil {
		return Database{}, err
	}
	return db, nil
}

func (d Database) validate() error {
	switch d.Driver {
	case "postgres", "sqlite":
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", d.Driver)
	}
}
