package download

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-dl/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
)

// TeamSummary writes team_summary_<year>.json from the season's advanced team stats.
func (d *Downloader) TeamSummary(ctx context.Context, year int) error {
	f, err := d.stats.LeagueDashTeamStats(ctx, Season(year), measureAdvanced)
	if err != nil {
		return err
	}
	summary, err := teams.NewSummary(f, d.now())
	if err != nil {
		return fmt.Errorf("season %s: %w", Season(year), err)
	}
	return d.writer.WriteJSON(store.TeamSummaryPath(d.dir(), year), summary)
}

// WriteAllTeamSummaries gathers every team_summary_<year>.json in the data directory into
// team_summary.json keyed by year.
func (d *Downloader) WriteAllTeamSummaries() error {
	paths, err := filepath.Glob(filepath.Join(d.dir(), "team_summary_*.json"))
	if err != nil {
		return err
	}
	all := teams.AllSummaries{
		Updated: d.now().UTC().Format(time.RFC3339),
		Data:    make(map[string]map[string]map[string]any, len(paths)),
	}
	for _, p := range paths {
		var year int
		if _, err := fmt.Sscanf(filepath.Base(p), "team_summary_%d.json", &year); err != nil {
			continue
		}
		var s teams.Summary
		if err := store.ReadJSON(p, &s); err != nil {
			return err
		}
		all.Data[strconv.Itoa(year)] = s.Teams
	}
	return d.writer.WriteJSON(store.ConsolidatedPath(d.dir(), store.TeamSummaryFile), all)
}

// writeEfficiency writes team_efficiency_<year>.json from a lower-cased game log with
// each row's opponent points and possessions attached.
func (d *Downloader) writeEfficiency(gamelog frame.Frame, year int) error {
	rows, err := games.EfficiencyRowsFromFrame(gamelog)
	if err != nil {
		return fmt.Errorf("season %s: %w", Season(year), err)
	}
	paired, issues := games.AttachOpponentStats(rows, year, d.logger)
	if len(issues) > 0 {
		logging.Warn(d.logger, "team efficiency has unpaired games",
			slog.Int(logging.FieldYear, year),
			slog.Int(logging.FieldCount, len(issues)),
		)
	}
	return d.writer.WriteJSON(store.TeamEfficiencyPath(d.dir(), year), games.NewEfficiency(paired, d.now()))
}

// UpdateJSON rebuilds the efficiency and team summary JSON of every season from the
// cached game logs without downloading game data again.
func (d *Downloader) UpdateJSON(ctx context.Context) error {
	for _, year := range d.years() {
		gamelog, err := store.ReadParquet(store.GamelogPath(d.dir(), year))
		if err != nil {
			return fmt.Errorf("update json %d: %w", year, err)
		}
		if err := d.writeEfficiency(gamelog, year); err != nil {
			return err
		}
		if err := d.TeamSummary(ctx, year); err != nil {
			return fmt.Errorf("update json %d: %w", year, err)
		}
	}
	return d.WriteAllTeamSummaries()
}
