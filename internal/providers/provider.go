package providers

import (
	"context"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// StatsProvider fetches stats.nba.com result sets as frames. Seasons are labels such as
// "2023-24"; measure and per mode use the values stats.nba.com accepts.
type StatsProvider interface {
	TeamGameLogs(ctx context.Context, season, dateFrom, measure string) (frame.Frame, error)
	BoxScoreTraditional(ctx context.Context, gameID string) (frame.Frame, error)
	BoxScoreAdvanced(ctx context.Context, gameID string) (frame.Frame, error)
	LeagueDashPlayerStats(ctx context.Context, season, measure, perMode string) (frame.Frame, error)
	LeagueDashPlayerPtShot(ctx context.Context, season string) (frame.Frame, error)
	LeagueDashPlayerBioStats(ctx context.Context, season string) (frame.Frame, error)
	LeagueDashTeamStats(ctx context.Context, season, measure string) (frame.Frame, error)
}

// BoxScoreKeys identify one player line in a V3 box score.
var BoxScoreKeys = []string{"gameId", "personId"}

// BoxScore fetches the traditional and advanced box scores of a game and joins them
// per player.
func BoxScore(ctx context.Context, p StatsProvider, gameID string) (frame.Frame, error) {
	if p == nil {
		return frame.Frame{}, ErrProviderUnavailable
	}
	trad, err := p.BoxScoreTraditional(ctx, gameID)
	if err != nil {
		return frame.Frame{}, err
	}
	adv, err := p.BoxScoreAdvanced(ctx, gameID)
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Join([]frame.Frame{trad, adv}, BoxScoreKeys...)
}
