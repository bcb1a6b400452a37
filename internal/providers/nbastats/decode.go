package nbastats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/preston-bernstein/nba-stats-dl/internal/frame"
)

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

type resultSetsPayload struct {
	ResultSets json.RawMessage `json:"resultSets"`
	ResultSet  json.RawMessage `json:"resultSet"`
}

// decodeResultSet reads the first result set of a stats.nba.com response. Some endpoints
// send "resultSets" as a list, others as a single object or under "resultSet".
func decodeResultSet(r io.Reader) (frame.Frame, error) {
	var payload resultSetsPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return frame.Frame{}, fmt.Errorf("decode result sets: %w", err)
	}
	raw := payload.ResultSets
	if len(raw) == 0 || string(raw) == "null" {
		raw = payload.ResultSet
	}
	if len(raw) == 0 || string(raw) == "null" {
		return frame.Frame{}, errors.New("decode result sets: response has no result set")
	}

	var sets []resultSet
	if raw[0] == '[' {
		if err := unmarshalNumbers(raw, &sets); err != nil {
			return frame.Frame{}, fmt.Errorf("decode result sets: %w", err)
		}
	} else {
		var one resultSet
		if err := unmarshalNumbers(raw, &one); err != nil {
			return frame.Frame{}, fmt.Errorf("decode result set: %w", err)
		}
		sets = []resultSet{one}
	}
	if len(sets) == 0 {
		return frame.Frame{}, errors.New("decode result sets: empty result set list")
	}

	set := sets[0]
	rows := make([][]any, len(set.RowSet))
	for i, row := range set.RowSet {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = frame.Normalize(v)
		}
		rows[i] = cells
	}
	return frame.New(set.Headers, rows), nil
}

func unmarshalNumbers(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dest)
}

// orderedObject keeps the key order of a JSON object.
type orderedObject struct {
	keys   []string
	values map[string]any
}

func (o *orderedObject) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = map[string]any{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if _, seen := o.values[key]; !seen {
			o.keys = append(o.keys, key)
		}
		o.values[key] = v
	}
	_, err = dec.Token()
	return err
}

type v3Player struct {
	PersonID   json.Number   `json:"personId"`
	FirstName  string        `json:"firstName"`
	FamilyName string        `json:"familyName"`
	NameI      string        `json:"nameI"`
	PlayerSlug string        `json:"playerSlug"`
	Position   string        `json:"position"`
	Comment    string        `json:"comment"`
	JerseyNum  string        `json:"jerseyNum"`
	Statistics orderedObject `json:"statistics"`
}

type v3Team struct {
	TeamID      json.Number `json:"teamId"`
	TeamCity    string      `json:"teamCity"`
	TeamName    string      `json:"teamName"`
	TeamTricode string      `json:"teamTricode"`
	TeamSlug    string      `json:"teamSlug"`
	Players     []v3Player  `json:"players"`
}

type v3BoxScore struct {
	GameID   string `json:"gameId"`
	HomeTeam v3Team `json:"homeTeam"`
	AwayTeam v3Team `json:"awayTeam"`
}

var v3PlayerColumns = []string{
	"gameId", "teamId", "teamCity", "teamName", "teamTricode", "teamSlug",
	"personId", "firstName", "familyName", "nameI", "playerSlug", "position", "comment", "jerseyNum",
}

// decodeBoxScoreV3 flattens the player lines of a V3 box score found under root into one
// row per player, home team first, with the nested statistics as trailing columns.
func decodeBoxScoreV3(r io.Reader, root string) (frame.Frame, error) {
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return frame.Frame{}, fmt.Errorf("decode box score: %w", err)
	}
	raw, ok := payload[root]
	if !ok {
		return frame.Frame{}, fmt.Errorf("decode box score: missing %q", root)
	}
	var box v3BoxScore
	if err := json.Unmarshal(raw, &box); err != nil {
		return frame.Frame{}, fmt.Errorf("decode box score: %w", err)
	}

	var statKeys []string
	seen := map[string]bool{}
	for _, team := range []v3Team{box.HomeTeam, box.AwayTeam} {
		for _, p := range team.Players {
			for _, k := range p.Statistics.keys {
				if !seen[k] {
					seen[k] = true
					statKeys = append(statKeys, k)
				}
			}
		}
	}

	columns := append(append([]string(nil), v3PlayerColumns...), statKeys...)
	var rows [][]any
	for _, team := range []v3Team{box.HomeTeam, box.AwayTeam} {
		for _, p := range team.Players {
			row := []any{
				box.GameID,
				frame.Normalize(team.TeamID),
				team.TeamCity,
				team.TeamName,
				team.TeamTricode,
				team.TeamSlug,
				frame.Normalize(p.PersonID),
				p.FirstName,
				p.FamilyName,
				p.NameI,
				p.PlayerSlug,
				p.Position,
				p.Comment,
				p.JerseyNum,
			}
			for _, k := range statKeys {
				row = append(row, frame.Normalize(p.Statistics.values[k]))
			}
			rows = append(rows, row)
		}
	}
	return frame.New(columns, rows), nil
}
