package download

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
	"github.com/preston-bernstein/nba-stats-dl/internal/timeutil"
)

const (
	measureBase     = ""
	measureAdvanced = "Advanced"
)

var (
	gamelogKeys      = []string{"GAME_ID", "TEAM_ID"}
	gamelogLowerKeys = []string{"game_id", "team_id"}
)

// Gamelogs downloads team game logs and player box scores for every season, writes the
// per-season parquet and JSON outputs and then the consolidated files.
func (d *Downloader) Gamelogs(ctx context.Context) error {
	var games, players []frame.Frame
	for _, year := range d.years() {
		g, p, err := d.seasonGamelogs(ctx, year)
		if err != nil {
			return fmt.Errorf("gamelogs %d: %w", year, err)
		}
		games = append(games, g)
		if len(p.Columns) > 0 {
			players = append(players, p)
		}
	}

	if err := d.WriteAllTeamSummaries(); err != nil {
		return err
	}
	if err := d.writer.WriteParquet(store.ConsolidatedPath(d.dir(), store.GamelogsFile), frame.Concat(games...)); err != nil {
		return err
	}
	if len(players) == 0 {
		return nil
	}
	return d.writer.WriteParquet(store.ConsolidatedPath(d.dir(), store.PlayerGameLogsFile), frame.Concat(players...))
}

func (d *Downloader) seasonGamelogs(ctx context.Context, year int) (frame.Frame, frame.Frame, error) {
	gamelogFile := store.GamelogPath(d.dir(), year)
	playerlogFile := store.PlayerlogPath(d.dir(), year)

	if d.cached(gamelogFile, year) {
		games, err := store.ReadParquet(gamelogFile)
		if err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		var players frame.Frame
		if store.Exists(playerlogFile) {
			if players, err = store.ReadParquet(playerlogFile); err != nil {
				return frame.Frame{}, frame.Frame{}, err
			}
		}
		return games, players, nil
	}

	var oldGames, oldPlayers *frame.Frame
	mostRecent := ""
	if store.Exists(gamelogFile) {
		f, err := store.ReadParquet(gamelogFile)
		if err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		oldGames = &f
		if mostRecent, err = latestGameDate(f); err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
	}
	if store.Exists(playerlogFile) {
		f, err := store.ReadParquet(playerlogFile)
		if err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		oldPlayers = &f
	}

	season := Season(year)
	start := time.Now()
	logging.Info(d.logger, "downloading game logs",
		slog.String(logging.FieldSeason, season),
		slog.String(logging.FieldDate, mostRecent),
	)

	var logs []frame.Frame
	for _, measure := range []string{measureBase, measureAdvanced} {
		f, err := d.stats.TeamGameLogs(ctx, season, mostRecent, measure)
		if err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		logs = append(logs, f)
	}

	gameIDs, err := uniqueGameIDs(logs...)
	if err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	boxScores := make([]frame.Frame, 0, len(gameIDs))
	for _, id := range gameIDs {
		bs, err := providers.BoxScore(ctx, d.stats, id)
		if err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		boxScores = append(boxScores, bs)
	}

	games, err := frame.Join(logs, gamelogKeys...)
	if err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	games = games.LowerColumns()
	if oldGames != nil {
		games = frame.Concat(*oldGames, games)
	}
	if games, err = games.DropDuplicates(gamelogLowerKeys, true); err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	games = games.DowncastInts()

	players := frame.Concat(boxScores...)
	if oldPlayers != nil {
		players = frame.Concat(*oldPlayers, players)
	}
	if len(players.Columns) > 0 {
		if players, err = players.DropDuplicates(providers.BoxScoreKeys, true); err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
		players = players.DowncastInts()
	}

	if err := d.writeEfficiency(games, year); err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	if err := d.TeamSummary(ctx, year); err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	if err := d.writer.WriteParquet(gamelogFile, games); err != nil {
		return frame.Frame{}, frame.Frame{}, err
	}
	if len(players.Columns) > 0 {
		if err := d.writer.WriteParquet(playerlogFile, players); err != nil {
			return frame.Frame{}, frame.Frame{}, err
		}
	}

	logging.Info(d.logger, "game logs downloaded",
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(gameIDs)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return games, players, nil
}

// uniqueGameIDs lists the GAME_ID values of the frames once each, in first-seen order.
func uniqueGameIDs(frames ...frame.Frame) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, f := range frames {
		if f.Len() == 0 {
			continue
		}
		col, err := f.Column("GAME_ID")
		if err != nil {
			return nil, err
		}
		for _, v := range col {
			id := frame.String(v)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// latestGameDate returns the most recent game_date of a cached game log as MM/DD/YYYY,
// the format the TeamGameLogs date filter expects.
func latestGameDate(f frame.Frame) (string, error) {
	col, err := f.Column("game_date")
	if err != nil {
		return "", err
	}
	var latest time.Time
	for _, v := range col {
		s := frame.String(v)
		if len(s) < len(timeutil.DateLayout) {
			continue
		}
		t, err := timeutil.ParseDate(s[:len(timeutil.DateLayout)])
		if err != nil {
			return "", fmt.Errorf("game_date %q: %w", s, err)
		}
		if t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return "", nil
	}
	return timeutil.StatsDate(latest), nil
}
