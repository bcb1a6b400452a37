package teststubs

import (
	"context"
	"fmt"
	"sync"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

// Call records one invocation of a stub endpoint.
type Call struct {
	Endpoint string
	Args     []string
}

// StubStatsProvider is a test double for providers.StatsProvider. Responses are looked up
// by their arguments; a missing entry yields an empty frame.
type StubStatsProvider struct {
	// GameLogs is keyed by season + "|" + measure.
	GameLogs map[string]frame.Frame
	// Traditional and Advanced box scores are keyed by game id.
	Traditional map[string]frame.Frame
	Advanced    map[string]frame.Frame
	// PlayerStats builds LeagueDashPlayerStats responses.
	PlayerStats func(season, measure, perMode string) frame.Frame
	PtShot      frame.Frame
	Bio         frame.Frame
	// TeamStats is keyed by season.
	TeamStats map[string]frame.Frame
	// Err, when set, is returned by every endpoint.
	Err error

	mu    sync.Mutex
	calls []Call
}

func (s *StubStatsProvider) record(endpoint string, args ...string) error {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Endpoint: endpoint, Args: args})
	s.mu.Unlock()
	return s.Err
}

// Calls returns every recorded call.
func (s *StubStatsProvider) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns how often endpoint was invoked.
func (s *StubStatsProvider) CallCount(endpoint string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Endpoint == endpoint {
			n++
		}
	}
	return n
}

func (s *StubStatsProvider) TeamGameLogs(ctx context.Context, season, dateFrom, measure string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("TeamGameLogs", season, dateFrom, measure); err != nil {
		return frame.Frame{}, err
	}
	return s.GameLogs[season+"|"+measure], nil
}

func (s *StubStatsProvider) BoxScoreTraditional(ctx context.Context, gameID string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("BoxScoreTraditional", gameID); err != nil {
		return frame.Frame{}, err
	}
	return boxScoreOrEmpty(s.Traditional, gameID), nil
}

func (s *StubStatsProvider) BoxScoreAdvanced(ctx context.Context, gameID string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("BoxScoreAdvanced", gameID); err != nil {
		return frame.Frame{}, err
	}
	return boxScoreOrEmpty(s.Advanced, gameID), nil
}

func (s *StubStatsProvider) LeagueDashPlayerStats(ctx context.Context, season, measure, perMode string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("LeagueDashPlayerStats", season, measure, perMode); err != nil {
		return frame.Frame{}, err
	}
	if s.PlayerStats == nil {
		return frame.Frame{}, nil
	}
	return s.PlayerStats(season, measure, perMode), nil
}

func (s *StubStatsProvider) LeagueDashPlayerPtShot(ctx context.Context, season string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("LeagueDashPlayerPtShot", season); err != nil {
		return frame.Frame{}, err
	}
	return s.PtShot, nil
}

func (s *StubStatsProvider) LeagueDashPlayerBioStats(ctx context.Context, season string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("LeagueDashPlayerBioStats", season); err != nil {
		return frame.Frame{}, err
	}
	return s.Bio, nil
}

func (s *StubStatsProvider) LeagueDashTeamStats(ctx context.Context, season, measure string) (frame.Frame, error) {
	_ = ctx
	if err := s.record("LeagueDashTeamStats", season, measure); err != nil {
		return frame.Frame{}, err
	}
	return s.TeamStats[season], nil
}

func boxScoreOrEmpty(m map[string]frame.Frame, gameID string) frame.Frame {
	if f, ok := m[gameID]; ok {
		return f
	}
	return frame.New([]string{"gameId", "personId"}, nil)
}

// StubObjects is a test double for the ESPN object source: bodies keyed by object key.
type StubObjects struct {
	Objects map[string][]byte
	// Errs overrides the result for a key.
	Errs map[string]error
	// Missing is returned for keys with no object and no error.
	Missing error

	mu   sync.Mutex
	keys []string
}

// Get returns the stored object body for key.
func (s *StubObjects) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx
	s.mu.Lock()
	s.keys = append(s.keys, key)
	s.mu.Unlock()
	if err, ok := s.Errs[key]; ok {
		return nil, err
	}
	if body, ok := s.Objects[key]; ok {
		return body, nil
	}
	if s.Missing != nil {
		return nil, s.Missing
	}
	return nil, fmt.Errorf("no object %q", key)
}

// Keys returns the keys requested so far.
func (s *StubObjects) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.keys...)
}
