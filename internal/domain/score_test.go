package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	t.Run("accepts any casing", func(t *testing.T) {
		for _, input := range []string{"wordle", "Wordle", "WORDLE", " wordle "} {
			game, err := ParseGame(input)
			require.NoError(t, err, input)
			assert.Equal(t, GameWordle, game)
		}
	})

	t.Run("covers all games", func(t *testing.T) {
		for _, want := range Games() {
			got, err := ParseGame(string(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown games", func(t *testing.T) {
		_, err := ParseGame("sudoku")
		assert.Error(t, err)
	})
}

func TestMonthBounds(t *testing.T) {
	t.Run("mid-year", func(t *testing.T) {
		first, last, err := MonthBounds("2026-08-25")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-01", first)
		assert.Equal(t, "2026-08-31", last)
	})

	t.Run("december", func(t *testing.T) {
		first, last, err := MonthBounds("2025-12-03")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-01", first)
		assert.Equal(t, "2025-12-31", last)
	})

	t.Run("february", func(t *testing.T) {
		first, last, err := MonthBounds("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-01", first)
		assert.Equal(t, "2024-02-29", last)
	})

	t.Run("rejects malformed days", func(t *testing.T) {
		_, _, err := MonthBounds("25/08/2026")
		assert.Error(t, err)
	})
}

func TestPointsForRank(t *testing.T) {
	assert.Equal(t, 3, PointsForRank(1))
	assert.Equal(t, 2, PointsForRank(2))
	assert.Equal(t, 1, PointsForRank(3))
	assert.Equal(t, 0, PointsForRank(4))
	assert.Equal(t, 0, PointsForRank(10))
}

func TestSentinelsRankBelowRealScores(t *testing.T) {
	assert.Greater(t, WordleFailedScore, 6)
	assert.Greater(t, ConnectionsFailedScore, 7)
}
