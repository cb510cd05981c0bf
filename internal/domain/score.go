package domain

import (
	"fmt"
	"strings"
	"time"
)

// Game identifies one of the tracked NYT daily games.
type Game string

const (
	GameConnections Game = "Connections"
	GameMini        Game = "Mini"
	GameWordle      Game = "Wordle"
)

// Games lists every tracked game in scoreboard display order.
func Games() []Game {
	return []Game{GameConnections, GameMini, GameWordle}
}

// ParseGame maps free-form input ("wordle", "Mini") to a Game.
func ParseGame(s string) (Game, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "connections":
		return GameConnections, nil
	case "mini":
		return GameMini, nil
	case "wordle":
		return GameWordle, nil
	}
	return "", fmt.Errorf("unknown game %q", s)
}

// Failed-puzzle sentinels. Every game scores lower-is-better, so a failure
// must sort below any achievable score.
const (
	WordleFailedScore      = 7
	ConnectionsFailedScore = 8
)

// DayLayout is the canonical YYYY-MM-DD form of the day column.
const DayLayout = "2006-01-02"

// Today returns the current UTC day.
func Today() string {
	return time.Now().UTC().Format(DayLayout)
}

// MonthBounds returns the first and last day of the month containing day.
func MonthBounds(day string) (first, last string, err error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return "", "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(DayLayout), end.Format(DayLayout), nil
}

// ScoreEntry is one player's result for one game on one day. At most one
// entry exists per (day, player, game); a later result overwrites it.
type ScoreEntry struct {
	Day    string `db:"day"`
	Player string `db:"player"`
	Game   Game   `db:"game"`
	Score  int    `db:"score"`
}

// PointsForRank returns the podium points for a 1-based rank within one
// day's game: 3 for first, 2 for second, 1 for third, nothing beyond.
func PointsForRank(rank int) int {
	switch rank {
	case 1:
		return 3
	case 2:
		return 2
	case 3:
		return 1
	}
	return 0
}
