package runner

import (
	"context"

	"github.com/preston-bernstein/nba-stats-dl/internal/config"
	"github.com/preston-bernstein/nba-stats-dl/internal/download"
	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers/espn"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
)

type dlJobs interface {
	Gamelogs(ctx context.Context) error
	PlayerStats(ctx context.Context) error
	UpdateJSON(ctx context.Context) error
}

type espnJobs interface {
	Run(ctx context.Context, seasons []int) error
	BackfillPlayerDetails(ctx context.Context, seasons []int) ([]download.BackfillResult, error)
}

// DL runs the stats.nba.com downloads selected by opts.
func (r *Runner) DL(ctx context.Context, opts config.DLOptions) error {
	logger := logging.FromContext(ctx, r.logger)
	stats := newProviderFactory(logger, r.metrics).build(r.cfg.Stats)
	d := download.New(stats, store.NewWriter(r.cfg.DataDir, r.metrics), download.Config{
		FirstSeason:   r.cfg.Seasons.First,
		CurrentSeason: r.cfg.Seasons.Current,
		Freshness:     r.cfg.Freshness,
	}, logger)
	return runDL(ctx, d, opts)
}

func runDL(ctx context.Context, jobs dlJobs, opts config.DLOptions) error {
	if opts.UpdateJSONOnly {
		return jobs.UpdateJSON(ctx)
	}
	if opts.Gamelogs || opts.RunAll() {
		if err := jobs.Gamelogs(ctx); err != nil {
			return err
		}
	}
	if opts.PlayerStats || opts.RunAll() {
		return jobs.PlayerStats(ctx)
	}
	return nil
}

// ESPN downloads or backfills the ESPN feed as selected by opts.
func (r *Runner) ESPN(ctx context.Context, opts config.ESPNOptions) error {
	objects, err := espn.NewS3Objects(ctx, espn.Config{
		Region:     r.cfg.ESPN.Region,
		IdentityID: r.cfg.ESPN.IdentityID,
		Bucket:     r.cfg.ESPN.Bucket,
	})
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx, r.logger)
	sync := download.NewESPNSync(espn.NewFeed(objects), store.NewWriter(r.cfg.DataDir, r.metrics), logger)
	return runESPN(ctx, sync, opts, r.cfg.ESPN)
}

func runESPN(ctx context.Context, jobs espnJobs, opts config.ESPNOptions, cfg config.ESPNConfig) error {
	if opts.BackfillPlayerDetails {
		_, err := jobs.BackfillPlayerDetails(ctx, download.ESPNSeasons(cfg.FirstSeason, cfg.CurrentSeason, true))
		return err
	}
	return jobs.Run(ctx, download.ESPNSeasons(cfg.FirstSeason, cfg.CurrentSeason, opts.EverySeason))
}
