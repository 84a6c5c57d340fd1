package scale

import (
	"encoding/json"
	"math"
	"testing"
)

func intp(i int) *int { return &i }

func TestLevels_PlainAndOrderedShapesNormalizeIdentically(t *testing.T) {
	plain := Scale{Kind: KindQualitative, Values: []Value{
		{Label: "Beginner"}, {Label: "Intermediate"}, {Label: "Advanced"}, {Label: "Expert"},
	}}
	ordered := Scale{Kind: KindQualitative, Values: []Value{
		{Label: "Expert", Order: intp(4)},
		{Label: "Beginner", Order: intp(1)},
		{Label: "Advanced", Order: intp(3)},
		{Label: "Intermediate", Order: intp(2)},
	}}

	a := plain.Levels()
	b := ordered.Levels()
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("expected 4 levels, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d: %q != %q", i, a[i], b[i])
		}
	}
}

func TestLevels_EqualOrdersKeepInsertionOrder(t *testing.T) {
	s := Scale{Values: []Value{
		{Label: "B", Order: intp(1)},
		{Label: "A", Order: intp(1)},
	}}
	got := s.Levels()
	if got[0] != "B" || got[1] != "A" {
		t.Fatalf("expected stable order [B A], got %v", got)
	}
}

func TestLevels_MalformedValuesYieldEmptyList(t *testing.T) {
	if got := (Scale{}).Levels(); len(got) != 0 {
		t.Fatalf("expected empty levels, got %v", got)
	}
	s := Scale{Values: []Value{{Label: "  "}, {Label: ""}}}
	if got := s.Levels(); len(got) != 0 {
		t.Fatalf("expected empty levels for blank labels, got %v", got)
	}
}

func TestValue_UnmarshalBothShapes(t *testing.T) {
	var vals []Value
	raw := `["Beginner", {"value":"Expert","order":2}]`
	if err := json.Unmarshal([]byte(raw), &vals); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if vals[0].Label != "Beginner" || vals[0].Order != nil {
		t.Fatalf("unexpected plain value: %+v", vals[0])
	}
	if vals[1].Label != "Expert" || vals[1].Order == nil || *vals[1].Order != 2 {
		t.Fatalf("unexpected object value: %+v", vals[1])
	}
}

func TestScore_QualitativeBoundaries(t *testing.T) {
	s := Scale{Kind: KindQualitative, Values: []Value{
		{Label: "Beginner"}, {Label: "Intermediate"}, {Label: "Advanced"}, {Label: "Expert"},
	}}

	if got := s.Score("Expert"); got != 100 {
		t.Fatalf("expected top level to score 100, got %v", got)
	}
	if got := s.Score("Beginner"); got != 25 {
		t.Fatalf("expected bottom level to score 25, got %v", got)
	}
	if got := s.Score("Wizard"); got != 0 {
		t.Fatalf("expected unresolvable level to score 0, got %v", got)
	}
}

func TestScore_Numeric(t *testing.T) {
	s := Scale{Kind: KindNumeric, Values: []Value{
		{Label: "1"}, {Label: "2"}, {Label: "3"}, {Label: "4"}, {Label: "5"},
	}}
	if got := s.Score("5"); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := s.Score("2"); math.Abs(got-40) > 1e-9 {
		t.Fatalf("expected 40, got %v", got)
	}
	if got := s.Score("not-a-number"); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestPosition(t *testing.T) {
	s := Scale{Values: []Value{{Label: "Low"}, {Label: "High"}}}
	pos, ok := s.Position("High")
	if !ok || pos != 1 {
		t.Fatalf("expected position 1, got %d ok=%v", pos, ok)
	}
	if _, ok := s.Position("Middle"); ok {
		t.Fatalf("expected Middle to be absent")
	}
}
