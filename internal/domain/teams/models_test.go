package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Abbreviation", "abbreviation"},
		{"Nickname", "nickname"},
		{"City", "city"},
		{"FullName", "fullName"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestTableCoversThirtyUniqueTeams(t *testing.T) {
	teams := All()
	if len(teams) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(teams))
	}
	seenAbbr := map[string]bool{}
	for i, tm := range teams {
		if tm.ID != int64(1610612737+i) {
			t.Fatalf("expected contiguous ids, got %d at %d", tm.ID, i)
		}
		if seenAbbr[tm.Abbreviation] {
			t.Fatalf("duplicate abbreviation %s", tm.Abbreviation)
		}
		seenAbbr[tm.Abbreviation] = true
	}
}

func TestLookup(t *testing.T) {
	cases := map[int64]string{
		1610612737: "ATL",
		1610612744: "GSW",
		1610612766: "CHA",
		1:          "",
	}
	for id, want := range cases {
		if got := Abbreviation(id); got != want {
			t.Fatalf("Abbreviation(%d) = %q, want %q", id, got, want)
		}
	}
	if tm, ok := ByID(1610612747); !ok || tm.FullName != "Los Angeles Lakers" {
		t.Fatalf("unexpected team %+v", tm)
	}
	if _, ok := ByID(0); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Abbreviation = "XXX"
	if Abbreviation(1610612737) != "ATL" {
		t.Fatalf("expected table unchanged by caller mutation")
	}
}
