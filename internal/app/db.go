package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/harryl99/nyt-rankbot/internal/config"
)

// OpenDB connects to the configured database and verifies the connection.
// Production runs PostgreSQL; sqlite backs local runs and tests.
func OpenDB(cfg config.Database) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "postgres":
		dsn := "host=" + cfg.Host +
			" port=" + cfg.Port +
			" user=" + cfg.User +
			" password=" + cfg.Password +
			" dbname=" + cfg.Name +
			" sslmode=" + cfg.SSLMode

		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil

	case "sqlite":
		dsn := cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

		db, err := sqlx.Connect("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
		}
		return db, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
