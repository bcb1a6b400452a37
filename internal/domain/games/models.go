package games

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// EfficiencyRow is one team's line in one game as consumed by the team efficiency chart.
type EfficiencyRow struct {
	GameID           string   `json:"game_id"`
	TeamID           int64    `json:"team_id"`
	TeamAbbreviation string   `json:"team_abbreviation"`
	GameDate         string   `json:"game_date"`
	Matchup          string   `json:"matchup"`
	OffRating        float64  `json:"off_rating"`
	DefRating        float64  `json:"def_rating"`
	Pts              int64    `json:"pts"`
	Poss             float64  `json:"poss"`
	OppPts           *int64   `json:"opp_pts,omitempty"`
	OppPoss          *float64 `json:"opp_poss,omitempty"`
}

// Efficiency is the payload of team_efficiency_<year>.json.
type Efficiency struct {
	Updated string          `json:"updated"`
	Games   []EfficiencyRow `json:"games"`
}

// NewEfficiency builds the efficiency payload stamped with now.
func NewEfficiency(rows []EfficiencyRow, now time.Time) Efficiency {
	if rows == nil {
		rows = []EfficiencyRow{}
	}
	return Efficiency{Updated: now.UTC().Format(time.RFC3339), Games: rows}
}

// EfficiencyColumns are the lower-cased game log columns an EfficiencyRow is read from.
var EfficiencyColumns = []string{
	"game_id",
	"team_id",
	"team_abbreviation",
	"game_date",
	"matchup",
	"off_rating",
	"def_rating",
	"pts",
	"poss",
}

// EfficiencyRowsFromFrame reads efficiency rows out of a joined, lower-cased game log frame.
func EfficiencyRowsFromFrame(f frame.Frame) ([]EfficiencyRow, error) {
	sel, err := f.Select(EfficiencyColumns...)
	if err != nil {
		return nil, fmt.Errorf("efficiency rows: %w", err)
	}
	rows := make([]EfficiencyRow, 0, sel.Len())
	for i, r := range sel.Rows {
		teamID, ok := frame.Int(r[1])
		if !ok {
			return nil, fmt.Errorf("efficiency rows: row %d: team_id %v is not an integer", i, r[1])
		}
		pts, _ := frame.Int(r[7])
		offRating, _ := frame.Float(r[5])
		defRating, _ := frame.Float(r[6])
		poss, _ := frame.Float(r[8])
		rows = append(rows, EfficiencyRow{
			GameID:           frame.String(r[0]),
			TeamID:           teamID,
			TeamAbbreviation: frame.String(r[2]),
			GameDate:         frame.String(r[3]),
			Matchup:          frame.String(r[4]),
			OffRating:        offRating,
			DefRating:        defRating,
			Pts:              pts,
			Poss:             poss,
		})
	}
	return rows, nil
}
