package espn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoData means the feed has nothing for the requested day.
	ErrNoData = errors.New("espn: no data")
	// ErrAccessDenied is what S3 answers instead of NoSuchKey when listing is not permitted.
	ErrAccessDenied = errors.New("espn: access denied")
)

const keyPrefix = "NBA/netpts"

// Objects reads raw objects from the feed.
type Objects interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Feed fetches the daily net points payloads. Seasons are identified by the year they start.
type Feed struct {
	objects Objects
}

// NewFeed constructs a feed reader over objects.
func NewFeed(objects Objects) *Feed {
	return &Feed{objects: objects}
}

// DayKey is the object key of a day's payload.
func DayKey(season int, day string) string {
	return fmt.Sprintf("%s/%d/%s.json", keyPrefix, season, day)
}

// PlayerDetailsKey is the object key of a day's player details.
func PlayerDetailsKey(season int, day string) string {
	return fmt.Sprintf("%s/%d/%s_player.json", keyPrefix, season, day)
}

// FetchDay returns the payload for day (YYYY-MM-DD). Empty payloads count as no data.
func (f *Feed) FetchDay(ctx context.Context, season int, day string) (json.RawMessage, error) {
	return f.fetch(ctx, DayKey(season, day))
}

// FetchPlayerDetails returns the player details for day.
func (f *Feed) FetchPlayerDetails(ctx context.Context, season int, day string) (json.RawMessage, error) {
	return f.fetch(ctx, PlayerDetailsKey(season, day))
}

func (f *Feed) fetch(ctx context.Context, key string) (json.RawMessage, error) {
	if f == nil || f.objects == nil {
		return nil, errors.New("espn feed not configured")
	}
	body, err := f.objects.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: invalid json", key)
	}
	if isEmpty(body) {
		return nil, fmt.Errorf("%s: %w", key, ErrNoData)
	}
	return json.RawMessage(body), nil
}

func isEmpty(body []byte) bool {
	switch string(body) {
	case "null", "{}", "[]", `""`, "false", "0":
		return true
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	return false
}
