package download

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
)

const perModeTotals = "Totals"

var (
	perModes            = []string{perModeTotals, "PerGame", "Per36", "Per100Possessions"}
	playerStatsMeasures = []string{"Base", "Defense"}
	playerKeys          = []string{"PLAYER_ID"}
)

// suffixedColumns differ between per modes. Their Totals values keep the bare name, the
// other per modes get "_<PerMode>" appended.
var suffixedColumns = []string{
	"MIN",
	"FGM",
	"FGA",
	"FG3M",
	"FG3A",
	"FTM",
	"FTA",
	"OREB",
	"DREB",
	"REB",
	"AST",
	"TOV",
	"STL",
	"BLK",
	"BLKA",
	"PF",
	"PFD",
	"PTS",
	"PLUS_MINUS",
	"NBA_FANTASY_PTS",
	"DEF_WS",
	"OPP_PTS_OFF_TOV",
	"OPP_PTS_2ND_CHANCE",
	"OPP_PTS_FB",
	"OPP_PTS_PAINT",
}

// PlayerStats downloads the player dashboards of every season into players_<year>.parquet,
// then writes playerstats.parquet and metadata.json.
func (d *Downloader) PlayerStats(ctx context.Context) error {
	var seasons []frame.Frame
	for _, year := range d.years() {
		f, err := d.seasonPlayerStats(ctx, year)
		if err != nil {
			return fmt.Errorf("player stats %d: %w", year, err)
		}
		seasons = append(seasons, f)
	}
	if err := d.writer.WriteParquet(store.ConsolidatedPath(d.dir(), store.PlayerStatsFile), frame.Concat(seasons...)); err != nil {
		return err
	}
	return d.writer.WriteMetadata()
}

func (d *Downloader) seasonPlayerStats(ctx context.Context, year int) (frame.Frame, error) {
	file := store.PlayersPath(d.dir(), year)
	if d.cached(file, year) {
		return store.ReadParquet(file)
	}

	season := Season(year)
	start := time.Now()
	logging.Info(d.logger, "downloading player stats", slog.String(logging.FieldSeason, season))

	var stats []frame.Frame
	for _, per := range perModes {
		for _, measure := range playerStatsMeasures {
			f, err := d.stats.LeagueDashPlayerStats(ctx, season, measure, per)
			if err != nil {
				return frame.Frame{}, err
			}
			f = f.WithColumn("year", int64(year))
			if per != perModeTotals {
				f = f.RenameColumns(suffixMapping(per))
			}
			stats = append(stats, f)
		}
	}

	advanced, err := d.stats.LeagueDashPlayerStats(ctx, season, "Advanced", perModeTotals)
	if err != nil {
		return frame.Frame{}, err
	}
	shots, err := d.stats.LeagueDashPlayerPtShot(ctx, season)
	if err != nil {
		return frame.Frame{}, err
	}
	bio, err := d.stats.LeagueDashPlayerBioStats(ctx, season)
	if err != nil {
		return frame.Frame{}, err
	}
	stats = append(stats, advanced, shots, bio)

	all, err := frame.Join(stats, playerKeys...)
	if err != nil {
		return frame.Frame{}, err
	}
	all = all.DowncastInts().LowerColumns()
	if err := d.writer.WriteParquet(file, all); err != nil {
		return frame.Frame{}, err
	}

	logging.Info(d.logger, "player stats downloaded",
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, all.Len()),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return all, nil
}

func suffixMapping(perMode string) map[string]string {
	m := make(map[string]string, len(suffixedColumns))
	for _, c := range suffixedColumns {
		m[c] = c + "_" + perMode
	}
	return m
}
