package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harryl99/nyt-rankbot/internal/config"
)

func TestOpenDB(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		db, err := OpenDB(config.Database{Driver: "sqlite", Path: t.TempDir() + "/scores.db"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, db.Ping())
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := OpenDB(config.Database{Driver: "mysql"})
		assert.Error(t, err)
	})
}
