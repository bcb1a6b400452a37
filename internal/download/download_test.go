package download

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/store"
	"github.com/preston-bernstein/nba-stats-dl/internal/teststubs"
)

func TestSeasonLabel(t *testing.T) {
	cases := map[int]string{2024: "2023-24", 2010: "2009-10", 2000: "1999-00", 2026: "2025-26"}
	for year, want := range cases {
		if got := Season(year); got != want {
			t.Fatalf("Season(%d) = %s, want %s", year, got, want)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	d := New(&teststubs.StubStatsProvider{}, store.NewWriter(t.TempDir(), nil), Config{FirstSeason: 2030, CurrentSeason: 2025}, nil)
	if d.cfg.FirstSeason != 2025 || d.cfg.Freshness != time.Hour {
		t.Fatalf("unexpected config %+v", d.cfg)
	}
	if got := d.years(); len(got) != 1 || got[0] != 2025 {
		t.Fatalf("unexpected years %v", got)
	}
}

func TestCachedRules(t *testing.T) {
	d, _ := newTestDownloader(t, &teststubs.StubStatsProvider{}, 2023, 2024)
	past := store.GamelogPath(d.dir(), 2023)
	current := store.GamelogPath(d.dir(), 2024)
	if d.cached(past, 2023) || d.cached(current, 2024) {
		t.Fatalf("missing files must not count as cached")
	}
	for _, p := range []string{past, current} {
		if err := d.writer.WriteJSON(p, map[string]int{"a": 1}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if !d.cached(past, 2023) || !d.cached(current, 2024) {
		t.Fatalf("expected new files to be cached")
	}
	d.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if !d.cached(past, 2023) {
		t.Fatalf("past seasons never go stale")
	}
	if d.cached(current, 2024) {
		t.Fatalf("expected stale current season")
	}
}
