package games

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

func TestEfficiencyRowJSONOmitsMissingOpponent(t *testing.T) {
	data, err := json.Marshal(EfficiencyRow{GameID: "G1", TeamID: 1, Pts: 100, Poss: 95})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "opp_pts") || !strings.Contains(string(data), `"poss":95`) {
		t.Fatalf("unexpected json %s", data)
	}

	pts, poss := int64(90), 88.0
	data, _ = json.Marshal(EfficiencyRow{GameID: "G1", OppPts: &pts, OppPoss: &poss})
	if !strings.Contains(string(data), `"opp_pts":90`) || !strings.Contains(string(data), `"opp_poss":88`) {
		t.Fatalf("expected opponent fields, got %s", data)
	}
}

func TestEfficiencyRowsFromFrame(t *testing.T) {
	f := frame.New(
		[]string{"season_year", "team_id", "team_abbreviation", "team_name", "game_id", "game_date", "matchup", "pts", "off_rating", "def_rating", "poss"},
		[][]any{
			{"2023-24", int32(1610612737), "ATL", "Atlanta Hawks", "0022300001", "2023-10-25T00:00:00", "ATL @ CHA", int32(110), 112.4, 108.1, int32(98)},
		},
	)

	rows, err := EfficiencyRowsFromFrame(f)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := EfficiencyRow{
		GameID:           "0022300001",
		TeamID:           1610612737,
		TeamAbbreviation: "ATL",
		GameDate:         "2023-10-25T00:00:00",
		Matchup:          "ATL @ CHA",
		OffRating:        112.4,
		DefRating:        108.1,
		Pts:              110,
		Poss:             98,
	}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestEfficiencyRowsFromFrameErrors(t *testing.T) {
	if _, err := EfficiencyRowsFromFrame(frame.New([]string{"game_id"}, nil)); err == nil {
		t.Fatalf("expected missing column error")
	}
	cols := append([]string(nil), EfficiencyColumns...)
	bad := frame.New(cols, [][]any{{"G1", "not-an-id"}})
	if _, err := EfficiencyRowsFromFrame(bad); err == nil {
		t.Fatalf("expected error for non-integer team id")
	}
}

func TestNewEfficiency(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	eff := NewEfficiency(nil, now)
	if eff.Updated != "2024-03-01T11:00:00Z" {
		t.Fatalf("unexpected updated stamp %s", eff.Updated)
	}
	if eff.Games == nil {
		t.Fatalf("expected empty games slice, not nil")
	}
}
