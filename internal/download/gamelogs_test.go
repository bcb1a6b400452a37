package download

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-dl/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/retry"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
	"github.com/preston-bernstein/nba-stats-dl/internal/teststubs"
)

func TestGamelogsDownloadsSeason(t *testing.T) {
	stub := &teststubs.StubStatsProvider{}
	gameLogs(stub, "2023-24", gamePair("2023-24", "0022300061", "2023-10-25T00:00:00", chaID, atlID, 116, 110)...)
	boxScores(stub, "0022300061", 1630163, 1629027)
	teamStats(stub, "2023-24", atlID, chaID)
	d, rec := newTestDownloader(t, stub, 2024, 2024)

	if err := d.Gamelogs(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	for _, p := range []string{
		store.GamelogPath(d.dir(), 2024),
		store.PlayerlogPath(d.dir(), 2024),
		store.TeamSummaryPath(d.dir(), 2024),
		store.TeamEfficiencyPath(d.dir(), 2024),
		store.ConsolidatedPath(d.dir(), store.GamelogsFile),
		store.ConsolidatedPath(d.dir(), store.PlayerGameLogsFile),
		store.ConsolidatedPath(d.dir(), store.TeamSummaryFile),
	} {
		if !store.Exists(p) {
			t.Fatalf("expected %s to be written", p)
		}
	}
	if rec.FilesWritten("parquet") != 4 {
		t.Fatalf("expected four parquet files, got %d", rec.FilesWritten("parquet"))
	}

	for _, c := range stub.Calls() {
		if c.Endpoint == "TeamGameLogs" && c.Args[1] != "" {
			t.Fatalf("expected full-season download without date filter, got %v", c.Args)
		}
	}
	if stub.CallCount("TeamGameLogs") != 2 || stub.CallCount("BoxScoreTraditional") != 1 || stub.CallCount("BoxScoreAdvanced") != 1 {
		t.Fatalf("unexpected calls %+v", stub.Calls())
	}

	gamelog, err := store.ReadParquet(store.GamelogPath(d.dir(), 2024))
	if err != nil {
		t.Fatalf("read gamelog: %v", err)
	}
	if gamelog.Len() != 2 || gamelog.Index("off_rating") < 0 || gamelog.Index("OFF_RATING") >= 0 {
		t.Fatalf("unexpected gamelog %v", gamelog.Columns)
	}
	if _, ok := gamelog.Rows[0][gamelog.Index("pts")].(int32); !ok {
		t.Fatalf("expected pts downcast to int32, got %T", gamelog.Rows[0][gamelog.Index("pts")])
	}

	playerlog, err := store.ReadParquet(store.PlayerlogPath(d.dir(), 2024))
	if err != nil {
		t.Fatalf("read playerlog: %v", err)
	}
	if playerlog.Len() != 2 || playerlog.Index("offensiveRating") < 0 {
		t.Fatalf("expected joined box score rows, got %+v", playerlog)
	}
	consolidated, err := store.ReadParquet(store.ConsolidatedPath(d.dir(), store.PlayerGameLogsFile))
	if err != nil || consolidated.Index("personId") < 0 {
		t.Fatalf("expected player game logs to hold player rows, got %v (%v)", consolidated.Columns, err)
	}

	var eff games.Efficiency
	if err := store.ReadJSON(store.TeamEfficiencyPath(d.dir(), 2024), &eff); err != nil {
		t.Fatalf("read efficiency: %v", err)
	}
	if len(eff.Games) != 2 {
		t.Fatalf("expected two efficiency rows, got %d", len(eff.Games))
	}
	for _, g := range eff.Games {
		if g.OppPts == nil || g.OppPoss == nil {
			t.Fatalf("expected opponent stats on %+v", g)
		}
	}
	if *eff.Games[0].OppPts != 110 || *eff.Games[1].OppPts != 116 {
		t.Fatalf("unexpected opponent points %d/%d", *eff.Games[0].OppPts, *eff.Games[1].OppPts)
	}

	var all teams.AllSummaries
	if err := store.ReadJSON(store.ConsolidatedPath(d.dir(), store.TeamSummaryFile), &all); err != nil {
		t.Fatalf("read team summary: %v", err)
	}
	if _, ok := all.Data["2024"]["ATL"]; !ok {
		t.Fatalf("expected ATL in 2024 summary, got %+v", all.Data)
	}
}

func TestGamelogsIncrementalKeepsNewestRows(t *testing.T) {
	stub := &teststubs.StubStatsProvider{}
	d, _ := newTestDownloader(t, stub, 2024, 2024)
	gamelogFile := store.GamelogPath(d.dir(), 2024)

	old := cachedGamelog(t, gamePair("2023-24", "G1", "2023-10-24T00:00:00", chaID, atlID, 100, 90)...)
	if err := d.writer.WriteParquet(gamelogFile, old); err != nil {
		t.Fatalf("seed gamelog: %v", err)
	}
	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(gamelogFile, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	rows := gamePair("2023-24", "G1", "2023-10-24T00:00:00", chaID, atlID, 101, 90)
	rows = append(rows, gamePair("2023-24", "G2", "2023-10-25T00:00:00", bosID, atlID, 120, 99)...)
	gameLogs(stub, "2023-24", rows...)
	boxScores(stub, "G1", 1)
	boxScores(stub, "G2", 2)
	teamStats(stub, "2023-24", atlID, bosID, chaID)

	if err := d.Gamelogs(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	for _, c := range stub.Calls() {
		if c.Endpoint == "TeamGameLogs" && c.Args[1] != "10/24/2023" {
			t.Fatalf("expected download from the latest cached date, got %v", c.Args)
		}
	}

	gamelog, err := store.ReadParquet(gamelogFile)
	if err != nil {
		t.Fatalf("read gamelog: %v", err)
	}
	if gamelog.Len() != 4 {
		t.Fatalf("expected four team rows after merge, got %d", gamelog.Len())
	}
	rec := gamelog.Records()
	if rec[0]["game_id"] != "G1" || rec[0]["pts"] != int32(101) {
		t.Fatalf("expected refreshed G1 row in place, got %+v", rec[0])
	}
	if rec[2]["game_id"] != "G2" {
		t.Fatalf("expected new game appended, got %+v", rec[2])
	}
}

func TestGamelogsReusesCachedSeasons(t *testing.T) {
	stub := &teststubs.StubStatsProvider{}
	d, _ := newTestDownloader(t, stub, 2023, 2024)

	past := cachedGamelog(t, gamePair("2022-23", "P1", "2022-10-20T00:00:00", chaID, atlID, 100, 90)...)
	if err := d.writer.WriteParquet(store.GamelogPath(d.dir(), 2023), past); err != nil {
		t.Fatalf("seed past: %v", err)
	}
	current := cachedGamelog(t, gamePair("2023-24", "C1", "2023-10-25T00:00:00", chaID, atlID, 116, 110)...)
	if err := d.writer.WriteParquet(store.GamelogPath(d.dir(), 2024), current); err != nil {
		t.Fatalf("seed current: %v", err)
	}

	if err := d.Gamelogs(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n := len(stub.Calls()); n != 0 {
		t.Fatalf("expected no downloads for cached and fresh seasons, got %+v", stub.Calls())
	}
	all, err := store.ReadParquet(store.ConsolidatedPath(d.dir(), store.GamelogsFile))
	if err != nil {
		t.Fatalf("read consolidated: %v", err)
	}
	if all.Len() != 4 {
		t.Fatalf("expected both seasons in gamelogs.parquet, got %d rows", all.Len())
	}
	if store.Exists(store.ConsolidatedPath(d.dir(), store.PlayerGameLogsFile)) {
		t.Fatalf("expected no player game logs without cached player logs")
	}
}

func TestGamelogsStopsOnRetryLimit(t *testing.T) {
	limit := &retry.RetryLimitExceededError{Operation: "TeamGameLogs", Attempts: retry.MaxAttempts, Err: errors.New("read timeout")}
	stub := &teststubs.StubStatsProvider{Err: limit}
	d, _ := newTestDownloader(t, stub, 2024, 2024)

	err := d.Gamelogs(context.Background())
	if got, ok := retry.AsRetryLimitExceeded(err); !ok || got != limit {
		t.Fatalf("expected retry limit error, got %v", err)
	}
	if store.Exists(store.GamelogPath(d.dir(), 2024)) {
		t.Fatalf("expected nothing written after failure")
	}
}

func TestUniqueGameIDs(t *testing.T) {
	a := frame.New([]string{"GAME_ID"}, [][]any{{"1"}, {"1"}, {"2"}})
	b := frame.New([]string{"GAME_ID"}, [][]any{{"2"}, {"3"}, {nil}})
	ids, err := uniqueGameIDs(a, b, frame.Frame{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(ids) != 3 || ids[0] != "1" || ids[2] != "3" {
		t.Fatalf("unexpected ids %v", ids)
	}
	if _, err := uniqueGameIDs(frame.New([]string{"X"}, [][]any{{"1"}})); err == nil {
		t.Fatalf("expected missing column error")
	}
}

func TestLatestGameDate(t *testing.T) {
	f := frame.New([]string{"game_date"}, [][]any{{"2023-11-02T00:00:00"}, {"2024-01-05T00:00:00"}, {"2023-12-31"}, {nil}})
	got, err := latestGameDate(f)
	if err != nil || got != "01/05/2024" {
		t.Fatalf("expected 01/05/2024, got %q (%v)", got, err)
	}
	if got, err := latestGameDate(frame.New([]string{"game_date"}, nil)); err != nil || got != "" {
		t.Fatalf("expected empty date for empty log, got %q (%v)", got, err)
	}
	if _, err := latestGameDate(frame.New([]string{"game_date"}, [][]any{{"yesterday!"}})); err == nil {
		t.Fatalf("expected parse error")
	}
}
