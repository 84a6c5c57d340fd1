package member

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datep(s string) *time.Time {
	t := date(s)
	return &t
}

func TestCurrentClient_LatestOpenEntryWins(t *testing.T) {
	directory := map[int64]string{1: "Acme", 2: "Globex"}
	history := []Engagement{
		{ID: 10, ClientID: 1, StartDate: date("2023-01-01")},
		{ID: 11, ClientID: 2, StartDate: date("2024-01-01")},
	}

	if got := CurrentClient(history, directory); got != "Globex" {
		t.Fatalf("expected Globex, got %q", got)
	}

	// Order of the input slice must not matter.
	reversed := []Engagement{history[1], history[0]}
	if got := CurrentClient(reversed, directory); got != "Globex" {
		t.Fatalf("expected Globex regardless of input order, got %q", got)
	}
}

func TestCurrentClient_NoOpenEntryFallsBackToTalentPool(t *testing.T) {
	directory := map[int64]string{1: "Acme"}
	history := []Engagement{
		{ID: 10, ClientID: 1, StartDate: date("2023-01-01"), EndDate: datep("2023-06-01")},
	}
	if got := CurrentClient(history, directory); got != TalentPool {
		t.Fatalf("expected %q, got %q", TalentPool, got)
	}
	if got := CurrentClient(nil, directory); got != TalentPool {
		t.Fatalf("expected %q for empty history, got %q", TalentPool, got)
	}
}

func TestCurrentClient_DanglingClientIDDegradesToUnknown(t *testing.T) {
	history := []Engagement{
		{ID: 10, ClientID: 99, StartDate: date("2024-01-01")},
	}
	if got := CurrentClient(history, map[int64]string{}); got != UnknownClient {
		t.Fatalf("expected %q, got %q", UnknownClient, got)
	}
}

func TestCurrentClient_TiedStartDatesKeepInsertionOrder(t *testing.T) {
	directory := map[int64]string{1: "Acme", 2: "Globex"}
	history := []Engagement{
		{ID: 10, ClientID: 1, StartDate: date("2024-01-01")},
		{ID: 11, ClientID: 2, StartDate: date("2024-01-01")},
	}
	if got := CurrentClient(history, directory); got != "Acme" {
		t.Fatalf("expected earliest-inserted entry to win the tie, got %q", got)
	}
}

func TestValidateEngagements(t *testing.T) {
	history := []Engagement{
		{ID: 1, ClientID: 1, StartDate: date("2023-01-01"), EndDate: datep("2023-06-01")},
		{ID: 2, ClientID: 2, StartDate: date("2023-03-01"), EndDate: datep("2023-09-01")},
		{ID: 3, ClientID: 3, StartDate: date("2024-01-01")},
	}

	findings := ValidateEngagements(history)
	if len(findings) != 1 {
		t.Fatalf("expected 1 overlap, got %d: %+v", len(findings), findings)
	}
	if findings[0].FirstID != 1 || findings[0].SecondID != 2 {
		t.Fatalf("unexpected overlap pair: %+v", findings[0])
	}
}

func TestValidateEngagements_AdjacentRangesDoNotOverlap(t *testing.T) {
	history := []Engagement{
		{ID: 1, ClientID: 1, StartDate: date("2023-01-01"), EndDate: datep("2023-06-01")},
		{ID: 2, ClientID: 2, StartDate: date("2023-06-01"), EndDate: datep("2023-12-01")},
	}
	if findings := ValidateEngagements(history); len(findings) != 0 {
		t.Fatalf("expected no overlap for adjacent ranges, got %+v", findings)
	}
}
