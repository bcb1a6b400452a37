package teams

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// SummaryColumns are the advanced team stats kept in team summary files.
var SummaryColumns = []string{
	"TEAM_ID",
	"TEAM_NAME",
	"GP",
	"W",
	"L",
	"MIN",
	"OFF_RATING",
	"DEF_RATING",
	"NET_RATING",
	"AST_PCT",
	"AST_TO",
	"AST_RATIO",
	"OREB_PCT",
	"DREB_PCT",
	"REB_PCT",
	"TM_TOV_PCT",
	"EFG_PCT",
	"TS_PCT",
	"PACE",
	"PACE_PER40",
	"POSS",
}

// Summary is the payload of team_summary_<year>.json: one stat record per team abbreviation.
type Summary struct {
	Updated string                    `json:"updated"`
	Teams   map[string]map[string]any `json:"teams"`
}

// AllSummaries is the payload of team_summary.json, keyed by season year.
type AllSummaries struct {
	Updated string                               `json:"updated"`
	Data    map[string]map[string]map[string]any `json:"data"`
}

// NewSummary reduces a LeagueDashTeamStats Advanced frame to SummaryColumns keyed by
// team abbreviation.
func NewSummary(f frame.Frame, now time.Time) (Summary, error) {
	sel, err := f.Select(SummaryColumns...)
	if err != nil {
		return Summary{}, fmt.Errorf("team summary: %w", err)
	}
	out := Summary{
		Updated: now.UTC().Format(time.RFC3339),
		Teams:   make(map[string]map[string]any, sel.Len()),
	}
	for _, rec := range sel.Records() {
		id, ok := frame.Int(rec["TEAM_ID"])
		if !ok {
			return Summary{}, fmt.Errorf("team summary: TEAM_ID %v is not an integer", rec["TEAM_ID"])
		}
		abbr := Abbreviation(id)
		if abbr == "" {
			return Summary{}, fmt.Errorf("team summary: unknown team id %d", id)
		}
		out.Teams[abbr] = rec
	}
	return out, nil
}
