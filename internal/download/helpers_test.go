package download

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
	"github.com/preston-bernstein/nba-stats-dl/internal/teststubs"
	"github.com/preston-bernstein/nba-stats-dl/internal/testutil"
)

const (
	atlID = 1610612737
	bosID = 1610612738
	chaID = 1610612766
)

func newTestDownloader(t *testing.T, stub *teststubs.StubStatsProvider, first, current int) (*Downloader, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	w := store.NewWriter(t.TempDir(), rec)
	logger, _ := testutil.NewBufferLogger()
	d := New(stub, w, Config{FirstSeason: first, CurrentSeason: current, Freshness: time.Hour}, logger)
	return d, rec
}

// gameLogs registers both TeamGameLogs measures for season on the stub.
func gameLogs(stub *teststubs.StubStatsProvider, season string, rows ...testutil.GameLogRow) {
	if stub.GameLogs == nil {
		stub.GameLogs = map[string]frame.Frame{}
	}
	stub.GameLogs[season+"|"+measureBase] = testutil.GameLogFrame(measureBase, rows...)
	stub.GameLogs[season+"|"+measureAdvanced] = testutil.GameLogFrame(measureAdvanced, rows...)
}

func gamePair(season, gameID, date string, home, away int64, homePts, awayPts int64) []testutil.GameLogRow {
	homeAbbr, awayAbbr := teams.Abbreviation(home), teams.Abbreviation(away)
	return []testutil.GameLogRow{
		{Season: season, TeamID: home, Abbreviation: homeAbbr, GameID: gameID, GameDate: date, Matchup: homeAbbr + " vs. " + awayAbbr, WL: "W", Pts: homePts, OffRating: 110.5, DefRating: 101.2, Poss: 98},
		{Season: season, TeamID: away, Abbreviation: awayAbbr, GameID: gameID, GameDate: date, Matchup: awayAbbr + " @ " + homeAbbr, WL: "L", Pts: awayPts, OffRating: 101.2, DefRating: 110.5, Poss: 97},
	}
}

func boxScores(stub *teststubs.StubStatsProvider, gameID string, personIDs ...int64) {
	if stub.Traditional == nil {
		stub.Traditional = map[string]frame.Frame{}
		stub.Advanced = map[string]frame.Frame{}
	}
	var trad, adv [][]any
	for i, id := range personIDs {
		trad = append(trad, []any{gameID, id, int64(10 + i)})
		adv = append(adv, []any{gameID, id, 105.5})
	}
	stub.Traditional[gameID] = frame.New([]string{"gameId", "personId", "points"}, trad)
	stub.Advanced[gameID] = frame.New([]string{"gameId", "personId", "offensiveRating"}, adv)
}

func teamStatsFrame(ids ...int64) frame.Frame {
	var rows [][]any
	for _, id := range ids {
		team, _ := teams.ByID(id)
		row := make([]any, len(teams.SummaryColumns))
		row[0] = id
		row[1] = team.FullName
		for j := 2; j < len(row); j++ {
			row[j] = float64(j)
		}
		rows = append(rows, row)
	}
	return frame.New(teams.SummaryColumns, rows)
}

func teamStats(stub *teststubs.StubStatsProvider, season string, ids ...int64) {
	if stub.TeamStats == nil {
		stub.TeamStats = map[string]frame.Frame{}
	}
	stub.TeamStats[season] = teamStatsFrame(ids...)
}

// cachedGamelog is a lower-cased joined game log as Gamelogs writes it.
func cachedGamelog(t *testing.T, rows ...testutil.GameLogRow) frame.Frame {
	t.Helper()
	f, err := frame.Join([]frame.Frame{
		testutil.GameLogFrame(measureBase, rows...),
		testutil.GameLogFrame(measureAdvanced, rows...),
	}, gamelogKeys...)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	return f.LowerColumns().DowncastInts()
}
