package download

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers/espn"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
	"github.com/preston-bernstein/nba-stats-dl/internal/timeutil"
)

const (
	espnSeasonStart = "10-15"
	espnSeasonEnd   = "06-30"

	fieldPlayerDetails = "player_details"
	fieldFourFactors   = "four_factors"
)

// ESPNFeed reads the daily net points payloads. Seasons are the year a season starts.
type ESPNFeed interface {
	FetchDay(ctx context.Context, season int, day string) (json.RawMessage, error)
	FetchPlayerDetails(ctx context.Context, season int, day string) (json.RawMessage, error)
}

// ESPNSync mirrors the ESPN feed into espn/<season>/<day>.json.
type ESPNSync struct {
	feed   ESPNFeed
	writer *store.Writer
	logger *slog.Logger
	now    func() time.Time
}

// BackfillResult counts what a backfill did for one season.
type BackfillResult struct {
	Season  int
	Updated int
	Skipped int
	Errors  int
}

// NewESPNSync constructs an ESPN syncer writing under the writer's base path.
func NewESPNSync(feed ESPNFeed, writer *store.Writer, logger *slog.Logger) *ESPNSync {
	return &ESPNSync{feed: feed, writer: writer, logger: logger, now: time.Now}
}

// ESPNSeasons lists the seasons to sync: only current, or every season from first.
func ESPNSeasons(first, current int, every bool) []int {
	if !every || first > current {
		return []int{current}
	}
	seasons := make([]int, 0, current-first+1)
	for s := first; s <= current; s++ {
		seasons = append(seasons, s)
	}
	return seasons
}

// SeasonDays lists the days of a season the feed may have data for, up to now.
func SeasonDays(season int, now time.Time) ([]string, error) {
	return timeutil.DateRange(
		fmt.Sprintf("%d-%s", season, espnSeasonStart),
		fmt.Sprintf("%d-%s", season+1, espnSeasonEnd),
		now,
	)
}

// Run downloads every missing day of seasons. Days without data are logged and skipped.
func (s *ESPNSync) Run(ctx context.Context, seasons []int) error {
	for _, season := range seasons {
		days, err := SeasonDays(season, s.now())
		if err != nil {
			return err
		}
		logging.Info(s.logger, "downloading espn days",
			slog.Int(logging.FieldSeason, season),
			slog.Int(logging.FieldCount, len(days)),
		)
		for _, day := range days {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := store.ESPNDayPath(s.writer.BasePath(), season, day)
			if store.Exists(path) {
				continue
			}
			if err := s.syncDay(ctx, season, day, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ESPNSync) syncDay(ctx context.Context, season int, day, path string) error {
	data, err := s.feed.FetchDay(ctx, season, day)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, espn.ErrNoData):
		logging.Info(s.logger, "no espn data for day, skipping", slog.String(logging.FieldDate, day))
		return nil
	default:
		logging.Warn(s.logger, "espn fetch failed, skipping",
			slog.String(logging.FieldDate, day),
			slog.Any("error", err),
		)
		return nil
	}
	if err := s.writer.WriteJSONIndent(path, data); err != nil {
		return err
	}
	logging.Info(s.logger, "espn day saved", slog.String(logging.FieldDate, day))
	return nil
}

// BackfillPlayerDetails adds player_details to downloaded days that lack them. Days with
// no player file on the feed get an empty list so they are not fetched again.
func (s *ESPNSync) BackfillPlayerDetails(ctx context.Context, seasons []int) ([]BackfillResult, error) {
	var results []BackfillResult
	for _, season := range seasons {
		dir := store.ESPNSeasonDir(s.writer.BasePath(), season)
		if _, err := os.Stat(dir); err != nil {
			logging.Info(s.logger, "espn season directory missing, skipping",
				slog.Int(logging.FieldSeason, season),
				slog.String(logging.FieldPath, dir),
			)
			continue
		}
		files, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return results, err
		}
		res := BackfillResult{Season: season}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			s.backfillDay(ctx, season, file, &res)
		}
		logging.Info(s.logger, "espn player details backfilled",
			slog.Int(logging.FieldSeason, season),
			slog.Int("updated", res.Updated),
			slog.Int("skipped", res.Skipped),
			slog.Int("errors", res.Errors),
		)
		results = append(results, res)
	}
	return results, nil
}

func (s *ESPNSync) backfillDay(ctx context.Context, season int, file string, res *BackfillResult) {
	day := strings.TrimSuffix(filepath.Base(file), ".json")
	var data map[string]json.RawMessage
	if err := store.ReadJSON(file, &data); err != nil {
		logging.Warn(s.logger, "espn day unreadable", slog.String(logging.FieldPath, file), slog.Any("error", err))
		res.Errors++
		return
	}
	if !emptyJSON(data[fieldPlayerDetails]) {
		res.Skipped++
		return
	}

	details, err := s.feed.FetchPlayerDetails(ctx, season, day)
	switch {
	case err == nil:
		data[fieldPlayerDetails] = details
		if err := s.writer.WriteJSONIndent(file, data); err != nil {
			logging.Warn(s.logger, "espn day write failed", slog.String(logging.FieldPath, file), slog.Any("error", err))
			res.Errors++
			return
		}
		res.Updated++
		if res.Updated%50 == 0 {
			logging.Info(s.logger, "espn backfill progress", slog.Int(logging.FieldSeason, season), slog.Int(logging.FieldCount, res.Updated))
		}
	case errors.Is(err, espn.ErrNoData),
		errors.Is(err, espn.ErrAccessDenied) && emptyJSON(data[fieldFourFactors]):
		// no games that day
		data[fieldPlayerDetails] = json.RawMessage("[]")
		if err := s.writer.WriteJSONIndent(file, data); err != nil {
			logging.Warn(s.logger, "espn day write failed", slog.String(logging.FieldPath, file), slog.Any("error", err))
			res.Errors++
			return
		}
		res.Skipped++
	default:
		logging.Warn(s.logger, "espn player details fetch failed",
			slog.String(logging.FieldDate, day),
			slog.Any("error", err),
		)
		res.Errors++
	}
}

// emptyJSON reports whether raw is absent or an empty list, object or null.
func emptyJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return true
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}
