package runner

import (
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-stats-dl/internal/config"
	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers"
	"github.com/preston-bernstein/nba-stats-dl/internal/providers/nbastats"
	"github.com/preston-bernstein/nba-stats-dl/internal/retry"
)

// providerFactory assembles the stats provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.StatsConfig) providers.StatsProvider {
	client := nbastats.NewClient(nbastats.Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Recorder: f.metrics,
	})
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	limited := providers.NewRateLimitedProvider(client, limiter, f.logger, client.Name())
	return providers.NewRetryingProvider(limited, retry.New(f.logger, f.metrics, client.Name()))
}
