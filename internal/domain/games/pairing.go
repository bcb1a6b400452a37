package games

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
)

// PairingIssue describes a row whose opponent could not be determined.
type PairingIssue struct {
	GameID    string
	TeamID    int64
	Season    int
	GroupSize int
}

// AttachOpponentStats fills OppPts and OppPoss on every row from the other team's row
// in the same game. A game must have exactly two rows with different team ids; rows of
// any other game pass through unchanged, are reported as a PairingIssue and logged.
// rows is not modified and the result keeps its order.
func AttachOpponentStats(rows []EfficiencyRow, season int, logger *slog.Logger) ([]EfficiencyRow, []PairingIssue) {
	byGame := make(map[string][]int, len(rows)/2+1)
	for i, r := range rows {
		byGame[r.GameID] = append(byGame[r.GameID], i)
	}

	out := make([]EfficiencyRow, len(rows))
	var issues []PairingIssue
	for i, r := range rows {
		out[i] = r
		group := byGame[r.GameID]
		opp, ok := opponent(rows, group, r.TeamID)
		if !ok {
			issues = append(issues, PairingIssue{
				GameID:    r.GameID,
				TeamID:    r.TeamID,
				Season:    season,
				GroupSize: len(group),
			})
			logging.Warn(logger, "unable to pair game with an opponent, skipping",
				slog.String(logging.FieldGameID, r.GameID),
				slog.Int64(logging.FieldTeamID, r.TeamID),
				slog.Int(logging.FieldSeason, season),
				slog.Int(logging.FieldCount, len(group)),
			)
			continue
		}
		pts, poss := opp.Pts, opp.Poss
		out[i].OppPts = &pts
		out[i].OppPoss = &poss
	}
	return out, issues
}

func opponent(rows []EfficiencyRow, group []int, teamID int64) (EfficiencyRow, bool) {
	if len(group) != 2 {
		return EfficiencyRow{}, false
	}
	for _, j := range group {
		if rows[j].TeamID != teamID {
			return rows[j], true
		}
	}
	return EfficiencyRow{}, false
}
