package providers

import (
	"context"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
	"github.com/preston-bernstein/nba-stats-dl/internal/retry"
)

// retryingProvider wraps a StatsProvider so every endpoint call goes through retry.Do.
type retryingProvider struct {
	inner   StatsProvider
	retrier *retry.Retrier
}

// NewRetryingProvider wraps inner with the fixed backoff schedule. Each call is retried
// under its endpoint name with the request parameters as arguments.
func NewRetryingProvider(inner StatsProvider, retrier *retry.Retrier) StatsProvider {
	return &retryingProvider{inner: inner, retrier: retrier}
}

func (r *retryingProvider) call(ctx context.Context, op retry.Operation, fn func(context.Context, StatsProvider) (frame.Frame, error)) (frame.Frame, error) {
	if r.inner == nil {
		return frame.Frame{}, ErrProviderUnavailable
	}
	return retry.Do(ctx, r.retrier, op, func(ctx context.Context) (frame.Frame, error) {
		return fn(ctx, r.inner)
	})
}

func (r *retryingProvider) TeamGameLogs(ctx context.Context, season, dateFrom, measure string) (frame.Frame, error) {
	op := retry.Operation{Name: "TeamGameLogs", Args: retry.Args{"season": season, "date_from": dateFrom, "measure_type": measure}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.TeamGameLogs(ctx, season, dateFrom, measure)
	})
}

func (r *retryingProvider) BoxScoreTraditional(ctx context.Context, gameID string) (frame.Frame, error) {
	op := retry.Operation{Name: "BoxScoreTraditionalV3", Args: retry.Args{"game_id": gameID}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.BoxScoreTraditional(ctx, gameID)
	})
}

func (r *retryingProvider) BoxScoreAdvanced(ctx context.Context, gameID string) (frame.Frame, error) {
	op := retry.Operation{Name: "BoxScoreAdvancedV3", Args: retry.Args{"game_id": gameID}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.BoxScoreAdvanced(ctx, gameID)
	})
}

func (r *retryingProvider) LeagueDashPlayerStats(ctx context.Context, season, measure, perMode string) (frame.Frame, error) {
	op := retry.Operation{Name: "LeagueDashPlayerStats", Args: retry.Args{"season": season, "measure_type": measure, "per_mode": perMode}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.LeagueDashPlayerStats(ctx, season, measure, perMode)
	})
}

func (r *retryingProvider) LeagueDashPlayerPtShot(ctx context.Context, season string) (frame.Frame, error) {
	op := retry.Operation{Name: "LeagueDashPlayerPtShot", Args: retry.Args{"season": season}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.LeagueDashPlayerPtShot(ctx, season)
	})
}

func (r *retryingProvider) LeagueDashPlayerBioStats(ctx context.Context, season string) (frame.Frame, error) {
	op := retry.Operation{Name: "LeagueDashPlayerBioStats", Args: retry.Args{"season": season}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.LeagueDashPlayerBioStats(ctx, season)
	})
}

func (r *retryingProvider) LeagueDashTeamStats(ctx context.Context, season, measure string) (frame.Frame, error) {
	op := retry.Operation{Name: "LeagueDashTeamStats", Args: retry.Args{"season": season, "measure_type": measure}}
	return r.call(ctx, op, func(ctx context.Context, p StatsProvider) (frame.Frame, error) {
		return p.LeagueDashTeamStats(ctx, season, measure)
	})
}
