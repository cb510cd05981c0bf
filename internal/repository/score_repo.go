package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/harryl99/nyt-rankbot/internal/domain"
)

// schema stays portable between PostgreSQL and SQLite: plain TEXT/INTEGER
// columns and a composite primary key backing the upsert.
const schema = `
CREATE TABLE IF NOT EXISTS scores (
	day    TEXT    NOT NULL,
	player TEXT    NOT NULL,
	game   TEXT    NOT NULL,
	score  INTEGER NOT NULL,
	PRIMARY KEY (day, player, game)
);`

// ScoreRepository persists one row per (day, player, game).
type ScoreRepository struct {
	DB *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// Migrate creates the scores table if it does not exist yet.
func (r *ScoreRepository) Migrate(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create scores table: %w", err)
	}
	return nil
}

// Record upserts one entry: a repeated share for the same day, player and
// game overwrites the stored score instead of adding a row.
func (r *ScoreRepository) Record(ctx context.Context, e domain.ScoreEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO scores (day, player, game, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day, player, game) DO UPDATE SET score = excluded.score
	`, e.Day, e.Player, e.Game, e.Score)
	if err != nil {
		return fmt.Errorf("failed to record %s score for %s: %w", e.Game, e.Player, err)
	}
	return nil
}

// Clear deletes one day's rows, all players or just one. Clearing a day with
// no rows is not an error.
func (r *ScoreRepository) Clear(ctx context.Context, day, player string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if player == "" {
		res, err = r.DB.ExecContext(ctx, `DELETE FROM scores WHERE day = $1`, day)
	} else {
		res, err = r.DB.ExecContext(ctx, `DELETE FROM scores WHERE day = $1 AND player = $2`, day, player)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to clear scores for %s: %w", day, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared rows: %w", err)
	}
	return removed, nil
}

// Entries returns every row with from <= day <= to (inclusive ISO days),
// optionally limited to one player.
func (r *ScoreRepository) Entries(ctx context.Context, from, to, player string) ([]domain.ScoreEntry, error) {
	query := `
		SELECT day, player, game, score
		FROM scores
		WHERE day >= $1 AND day <= $2`
	args := []interface{}{from, to}
	if player != "" {
		query += ` AND player = $3`
		args = append(args, player)
	}
	query += ` ORDER BY day ASC, game ASC, score ASC, player ASC`

	var entries []domain.ScoreEntry
	if err := r.DB.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	return entries, nil
}

// Day returns one day's rows.
func (r *ScoreRepository) Day(ctx context.Context, day string) ([]domain.ScoreEntry, error) {
	return r.Entries(ctx, day, day, "")
}
