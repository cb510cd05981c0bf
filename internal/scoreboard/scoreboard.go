// Package scoreboard turns stored score entries into ranked boards and
// podium-point totals. All scores are lower-is-better; points are awarded
// per game per day (3/2/1 for the top three) and summed over whatever range
// the caller queried.
package scoreboard

import (
	"sort"

	"github.com/harryl99/nyt-rankbot/internal/domain"
)

// Row is one player's line on a single game's board.
type Row struct {
	Player string
	Score  int
	Points int
}

// Board is one game's ranked rows.
type Board struct {
	Game domain.Game
	Rows []Row
}

// Total is one player's point sum over a range of days.
type Total struct {
	Player string
	Points int
}

// Boards groups one day's entries per game, ordered by score ascending and
// player name on ties, with podium points assigned.
func Boards(entries []domain.ScoreEntry) []Board {
	byGame := make(map[domain.Game][]Row)
	for _, e := range entries {
		byGame[e.Game] = append(byGame[e.Game], Row{Player: e.Player, Score: e.Score})
	}

	var boards []Board
	for _, g := range domain.Games() {
		rows, ok := byGame[g]
		if !ok {
			continue
		}
		sortRows(rows)
		assignPoints(rows)
		boards = append(boards, Board{Game: g, Rows: rows})
	}
	return boards
}

// Totals sums podium points per player, ranking every (day, game) group
// separately. Ordered by points descending, ties alphabetically by player.
func Totals(entries []domain.ScoreEntry) []Total {
	type group struct {
		day  string
		game domain.Game
	}
	groups := make(map[group][]Row)
	for _, e := range entries {
		k := group{day: e.Day, game: e.Game}
		groups[k] = append(groups[k], Row{Player: e.Player, Score: e.Score})
	}

	points := make(map[string]int)
	for _, rows := range groups {
		sortRows(rows)
		assignPoints(rows)
		for _, r := range rows {
			points[r.Player] += r.Points
		}
	}

	totals := make([]Total, 0, len(points))
	for player, pts := range points {
		totals = append(totals, Total{Player: player, Points: pts})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Points != totals[j].Points {
			return totals[i].Points > totals[j].Points
		}
		return totals[i].Player < totals[j].Player
	})
	return totals
}

// AllSubmitted reports whether, in one day's entries, every game has a score
// from at least the given number of players.
func AllSubmitted(entries []domain.ScoreEntry, players int) bool {
	if players <= 0 {
		return false
	}
	perGame := make(map[domain.Game]map[string]struct{})
	for _, e := range entries {
		if perGame[e.Game] == nil {
			perGame[e.Game] = make(map[string]struct{})
		}
		perGame[e.Game][e.Player] = struct{}{}
	}
	if len(perGame) < len(domain.Games()) {
		return false
	}
	for _, seen := range perGame {
		if len(seen) < players {
			return false
		}
	}
	return true
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score < rows[j].Score
		}
		return rows[i].Player < rows[j].Player
	})
}

// assignPoints walks rows already sorted by score and awards podium points
// by minimum rank: tied scores share the better rank and push the next
// distinct score down.
func assignPoints(rows []Row) {
	first := 0
	for i := range rows {
		if i > 0 && rows[i].Score != rows[i-1].Score {
			first = i
		}
		rows[i].Points = domain.PointsForRank(first + 1)
	}
}
