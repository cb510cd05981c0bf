// Package parser recognises the share-texts of the three tracked NYT games
// and extracts a score from each. Recognition keys on structural cues such
// as fixed header lines and badge URLs, so ordinary chat about a game never
// matches.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harryl99/nyt-rankbot/internal/domain"
)

var (
	connectionsRe = regexp.MustCompile(`Connections\s*\nPuzzle #[0-9]+`)
	miniBadgeRe   = regexp.MustCompile(`badges/games/mini\S*[?&]t=([0-9]+)`)
	// Mini scores are shared differently from the app
	miniAppRe = regexp.MustCompile(`I solved the .* New York Times Mini Crossword in ([0-9]+):([0-9]{1,2})!`)
	wordleRe  = regexp.MustCompile(`Wordle [0-9][0-9.,]* ([1-6X])/6`)
)

// connectionsColours are the four group squares of the Connections grid.
const connectionsColours = "🟨🟩🟦🟪"

// Result is a successfully recognised share.
type Result struct {
	Game  domain.Game
	Score int
}

// Match reports the game and score encoded in text, or ok=false when the
// text is not one of the known share formats.
func Match(text string) (Result, bool) {
	if r, ok := matchConnections(text); ok {
		return r, true
	}
	if r, ok := matchMiniBadge(text); ok {
		return r, true
	}
	if r, ok := matchMiniApp(text); ok {
		return r, true
	}
	return matchWordle(text)
}

// matchConnections counts guess rows in the emoji grid. A solved puzzle ends
// on a single-colour row; a mixed final row means the game was lost.
func matchConnections(text string) (Result, bool) {
	if !connectionsRe.MatchString(text) {
		return Result{}, false
	}
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsAny(line, connectionsColours) {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return Result{}, false
	}
	if !uniformRow(rows[len(rows)-1]) {
		return Result{Game: domain.GameConnections, Score: domain.ConnectionsFailedScore}, true
	}
	return Result{Game: domain.GameConnections, Score: len(rows)}, true
}

// uniformRow reports whether every colour square on the line is the same,
// ignoring any surrounding text.
func uniformRow(line string) bool {
	var first rune
	for _, r := range line {
		if !strings.ContainsRune(connectionsColours, r) {
			continue
		}
		if first == 0 {
			first = r
		} else if r != first {
			return false
		}
	}
	return first != 0
}

func matchMiniBadge(text string) (Result, bool) {
	m := miniBadgeRe.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	seconds, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{}, false
	}
	return Result{Game: domain.GameMini, Score: seconds}, true
}

func matchMiniApp(text string) (Result, bool) {
	m := miniAppRe.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{}, false
	}
	seconds, err := strconv.Atoi(m[2])
	if err != nil {
		return Result{}, false
	}
	return Result{Game: domain.GameMini, Score: minutes*60 + seconds}, true
}

func matchWordle(text string) (Result, bool) {
	m := wordleRe.FindStringSubmatch(text)
	if m == nil {
		return Result{}, false
	}
	if m[1] == "X" {
		return Result{Game: domain.GameWordle, Score: domain.WordleFailedScore}, true
	}
	attempts, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{}, false
	}
	return Result{Game: domain.GameWordle, Score: attempts}, true
}
