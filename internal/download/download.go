// Package download runs the batch jobs that mirror stats.nba.com and the ESPN feed into
// the data directory.
package download

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-dl/internal/providers"
	"github.com/preston-bernstein/nba-stats-dl/internal/store"
)

// Config bounds the seasons a Downloader covers. Years name the calendar year a season ends.
type Config struct {
	FirstSeason   int
	CurrentSeason int
	// Freshness is how long a current-season file is reused before downloading again.
	Freshness time.Duration
}

// Downloader fetches stats.nba.com data season by season and caches it under the
// writer's base path.
type Downloader struct {
	stats  providers.StatsProvider
	writer *store.Writer
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a downloader. stats is expected to already retry failed calls.
func New(stats providers.StatsProvider, writer *store.Writer, cfg Config, logger *slog.Logger) *Downloader {
	if cfg.CurrentSeason <= 0 {
		cfg.CurrentSeason = time.Now().Year()
	}
	if cfg.FirstSeason <= 0 || cfg.FirstSeason > cfg.CurrentSeason {
		cfg.FirstSeason = cfg.CurrentSeason
	}
	if cfg.Freshness <= 0 {
		cfg.Freshness = time.Hour
	}
	return &Downloader{
		stats:  stats,
		writer: writer,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Season returns the stats.nba.com label of the season ending in year, e.g. 2024 => "2023-24".
func Season(year int) string {
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}

func (d *Downloader) years() []int {
	years := make([]int, 0, d.cfg.CurrentSeason-d.cfg.FirstSeason+1)
	for y := d.cfg.FirstSeason; y <= d.cfg.CurrentSeason; y++ {
		years = append(years, y)
	}
	return years
}

// cached reports whether the file at path can be reused: past seasons never change,
// the current one is reused while fresh.
func (d *Downloader) cached(path string, year int) bool {
	if year != d.cfg.CurrentSeason {
		return store.Exists(path)
	}
	return store.Fresh(path, d.cfg.Freshness, d.now())
}

func (d *Downloader) dir() string {
	return d.writer.BasePath()
}
