package teams

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

func summaryFrame(rows ...[]any) frame.Frame {
	cols := append([]string{"TEAM_ID", "E_OFF_RATING"}, SummaryColumns[1:]...)
	return frame.New(cols, rows)
}

func TestNewSummaryKeysByAbbreviation(t *testing.T) {
	f := summaryFrame(
		[]any{int64(1610612738), 120.1, "Boston Celtics", int64(82), int64(64)},
		[]any{int64(1610612766), 101.3, "Charlotte Hornets", int64(82), int64(21)},
	)
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	s, err := NewSummary(f, now)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if s.Updated != "2024-04-15T00:00:00Z" {
		t.Fatalf("unexpected updated %s", s.Updated)
	}
	bos, ok := s.Teams["BOS"]
	if !ok || bos["TEAM_NAME"] != "Boston Celtics" || bos["W"] != int64(64) {
		t.Fatalf("unexpected BOS record %+v", bos)
	}
	if _, ok := bos["E_OFF_RATING"]; ok {
		t.Fatalf("expected estimated columns dropped")
	}
	if len(bos) != len(SummaryColumns) {
		t.Fatalf("expected %d fields, got %d", len(SummaryColumns), len(bos))
	}
	if _, ok := s.Teams["CHA"]; !ok {
		t.Fatalf("expected CHA entry")
	}
}

func TestNewSummaryErrors(t *testing.T) {
	if _, err := NewSummary(frame.New([]string{"TEAM_ID"}, nil), time.Now()); err == nil {
		t.Fatalf("expected missing column error")
	}
	if _, err := NewSummary(summaryFrame([]any{int64(42)}), time.Now()); err == nil {
		t.Fatalf("expected unknown team error")
	}
	if _, err := NewSummary(summaryFrame([]any{"x"}), time.Now()); err == nil {
		t.Fatalf("expected non-integer id error")
	}
}
