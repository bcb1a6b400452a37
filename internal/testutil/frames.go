package testutil

import (
	"fmt"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// ResultSetJSON renders a stats.nba.com style payload with a single result set.
func ResultSetJSON(name string, f frame.Frame) string {
	return fmt.Sprintf(`{"resource":"test","parameters":{},"resultSets":[{"name":%q,"headers":%s,"rowSet":%s}]}`,
		name, mustJSON(f.Columns), mustJSON(f.Rows))
}

// GameLogFrame builds a minimal TeamGameLogs frame; each game is listed once per team.
func GameLogFrame(measure string, rows ...GameLogRow) frame.Frame {
	cols := []string{"SEASON_YEAR", "TEAM_ID", "TEAM_ABBREVIATION", "GAME_ID", "GAME_DATE", "MATCHUP"}
	if measure == "Advanced" {
		cols = append(cols, "OFF_RATING", "DEF_RATING", "POSS")
	} else {
		cols = append(cols, "WL", "PTS")
	}
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		base := []any{r.Season, r.TeamID, r.Abbreviation, r.GameID, r.GameDate, r.Matchup}
		if measure == "Advanced" {
			base = append(base, r.OffRating, r.DefRating, r.Poss)
		} else {
			base = append(base, r.WL, r.Pts)
		}
		out = append(out, base)
	}
	return frame.New(cols, out)
}

// GameLogRow is one team line in GameLogFrame.
type GameLogRow struct {
	Season       string
	TeamID       int64
	Abbreviation string
	GameID       string
	GameDate     string
	Matchup      string
	WL           string
	Pts          int64
	OffRating    float64
	DefRating    float64
	Poss         int64
}
