package providers

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/teststubs"
)

func TestStubImplementsStatsProvider(t *testing.T) {
	var _ StatsProvider = (*teststubs.StubStatsProvider)(nil)
}

func TestBoxScoreJoinsTraditionalAndAdvanced(t *testing.T) {
	stub := &teststubs.StubStatsProvider{
		Traditional: map[string]frame.Frame{
			"G1": frame.New([]string{"gameId", "personId", "teamTricode", "points"}, [][]any{
				{"G1", int64(1), "ATL", int64(20)},
				{"G1", int64(2), "CHA", int64(11)},
			}),
		},
		Advanced: map[string]frame.Frame{
			"G1": frame.New([]string{"gameId", "personId", "teamTricode", "offensiveRating"}, [][]any{
				{"G1", int64(2), "CHA", 101.5},
				{"G1", int64(1), "ATL", 120.0},
			}),
		},
	}

	got, err := BoxScore(context.Background(), stub, "G1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !reflect.DeepEqual(got.Columns, []string{"gameId", "personId", "teamTricode", "points", "offensiveRating"}) {
		t.Fatalf("unexpected columns %v", got.Columns)
	}
	if got.Len() != 2 || got.Rows[0][4] != 120.0 {
		t.Fatalf("unexpected rows %+v", got.Rows)
	}
	if stub.CallCount("BoxScoreTraditional") != 1 || stub.CallCount("BoxScoreAdvanced") != 1 {
		t.Fatalf("expected one call per box score endpoint, got %+v", stub.Calls())
	}
}

func TestBoxScoreStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	stub := &teststubs.StubStatsProvider{Err: boom}
	if _, err := BoxScore(context.Background(), stub, "G1"); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if stub.CallCount("BoxScoreAdvanced") != 0 {
		t.Fatalf("expected advanced box score skipped after failure")
	}
	if _, err := BoxScore(context.Background(), nil, "G1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
