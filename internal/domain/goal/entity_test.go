package goal

import (
	"reflect"
	"testing"
)

func TestValidTargetLevels(t *testing.T) {
	levels := []string{"Beginner", "Intermediate", "Advanced", "Expert"}

	tests := []struct {
		name    string
		current string
		graded  bool
		want    []string
	}{
		{name: "ungraded targets lowest only", graded: false, want: []string{"Beginner"}},
		{name: "graded at bottom", current: "Beginner", graded: true, want: levels},
		{name: "graded mid-scale", current: "Advanced", graded: true, want: []string{"Advanced", "Expert"}},
		{name: "graded at top", current: "Expert", graded: true, want: []string{"Expert"}},
		{name: "stale level falls open to full list", current: "Guru", graded: true, want: levels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidTargetLevels(levels, tt.current, tt.graded)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidTargetLevels_EmptyScale(t *testing.T) {
	if got := ValidTargetLevels(nil, "", false); len(got) != 0 {
		t.Fatalf("expected no targets on empty scale, got %v", got)
	}
	if got := ValidTargetLevels(nil, "Advanced", true); len(got) != 0 {
		t.Fatalf("expected no targets on empty scale, got %v", got)
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusActive},
		{StatusActive, StatusOnHold},
		{StatusOnHold, StatusActive},
		{StatusActive, StatusComplete},
		{StatusPending, StatusPending},
		{StatusComplete, StatusComplete},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransition(tr.to) {
			t.Fatalf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusComplete, StatusActive},
		{StatusComplete, StatusPending},
		{StatusActive, StatusPending},
		{StatusOnHold, StatusComplete},
		{StatusPending, StatusComplete},
		{StatusOnHold, StatusPending},
	}
	for _, tr := range denied {
		if tr.from.CanTransition(tr.to) {
			t.Fatalf("expected %s -> %s to be rejected", tr.from, tr.to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus(StatusOnHold) {
		t.Fatalf("On Hold should be valid")
	}
	if IsValidStatus("Paused") {
		t.Fatalf("Paused should be invalid")
	}
}
