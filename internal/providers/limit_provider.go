package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// rateLimitedProvider paces calls to a StatsProvider with a token bucket.
type rateLimitedProvider struct {
	next    StatsProvider
	limiter *rate.Limiter
	logger  *slog.Logger
	name    string
}

// NewRateLimitedProvider returns a StatsProvider that waits on limiter before every call.
// A nil limiter allows one request per second.
func NewRateLimitedProvider(next StatsProvider, limiter *rate.Limiter, logger *slog.Logger, name string) StatsProvider {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(1), 1)
	}
	if name == "" {
		name = "rate-limited"
	}
	return &rateLimitedProvider{next: next, limiter: limiter, logger: logger, name: name}
}

func (p *rateLimitedProvider) wait(ctx context.Context, endpoint string) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable", slog.String("endpoint", endpoint))
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited call canceled", slog.String("endpoint", endpoint))
		return err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "rate-limited provider call", slog.String("endpoint", endpoint))
	return nil
}

func (p *rateLimitedProvider) TeamGameLogs(ctx context.Context, season, dateFrom, measure string) (frame.Frame, error) {
	if err := p.wait(ctx, "TeamGameLogs"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.TeamGameLogs(ctx, season, dateFrom, measure)
}

func (p *rateLimitedProvider) BoxScoreTraditional(ctx context.Context, gameID string) (frame.Frame, error) {
	if err := p.wait(ctx, "BoxScoreTraditionalV3"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.BoxScoreTraditional(ctx, gameID)
}

func (p *rateLimitedProvider) BoxScoreAdvanced(ctx context.Context, gameID string) (frame.Frame, error) {
	if err := p.wait(ctx, "BoxScoreAdvancedV3"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.BoxScoreAdvanced(ctx, gameID)
}

func (p *rateLimitedProvider) LeagueDashPlayerStats(ctx context.Context, season, measure, perMode string) (frame.Frame, error) {
	if err := p.wait(ctx, "LeagueDashPlayerStats"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.LeagueDashPlayerStats(ctx, season, measure, perMode)
}

func (p *rateLimitedProvider) LeagueDashPlayerPtShot(ctx context.Context, season string) (frame.Frame, error) {
	if err := p.wait(ctx, "LeagueDashPlayerPtShot"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.LeagueDashPlayerPtShot(ctx, season)
}

func (p *rateLimitedProvider) LeagueDashPlayerBioStats(ctx context.Context, season string) (frame.Frame, error) {
	if err := p.wait(ctx, "LeagueDashPlayerBioStats"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.LeagueDashPlayerBioStats(ctx, season)
}

func (p *rateLimitedProvider) LeagueDashTeamStats(ctx context.Context, season, measure string) (frame.Frame, error) {
	if err := p.wait(ctx, "LeagueDashTeamStats"); err != nil {
		return frame.Frame{}, err
	}
	return p.next.LeagueDashTeamStats(ctx, season, measure)
}
