package member

import "sort"

const (
	// TalentPool is the sentinel current client for members with no
	// open-ended engagement.
	TalentPool = "Talent Pool"
	// UnknownClient is returned when an open engagement references a client
	// id missing from the directory.
	UnknownClient = "Unknown Client"
)

// CurrentClient resolves a member's current client from their engagement
// history: the open-ended entry with the latest start date wins. The sort is
// stable, so among open entries sharing a start date the earliest-inserted
// one wins. With no open entry the member sits in the Talent Pool.
func CurrentClient(history []Engagement, directory map[int64]string) string {
	entries := make([]Engagement, len(history))
	copy(entries, history)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate.After(entries[j].StartDate)
	})

	for _, e := range entries {
		if e.EndDate != nil {
			continue
		}
		name, ok := directory[e.ClientID]
		if !ok || name == "" {
			return UnknownClient
		}
		return name
	}
	return TalentPool
}

// OverlapFinding reports two engagements of one member whose date ranges
// intersect. Overlaps are representable and never rejected; this hook exists
// for deployments that want to surface double-bookings.
type OverlapFinding struct {
	FirstID  int64 `json:"first_id"`
	SecondID int64 `json:"second_id"`
}

func ValidateEngagements(history []Engagement) []OverlapFinding {
	var findings []OverlapFinding
	for i := 0; i < len(history); i++ {
		for j := i + 1; j < len(history); j++ {
			if engagementsOverlap(history[i], history[j]) {
				findings = append(findings, OverlapFinding{FirstID: history[i].ID, SecondID: history[j].ID})
			}
		}
	}
	return findings
}

func engagementsOverlap(a, b Engagement) bool {
	aOpen := a.EndDate == nil
	bOpen := b.EndDate == nil

	if !aOpen && !a.EndDate.After(b.StartDate) {
		return false
	}
	if !bOpen && !b.EndDate.After(a.StartDate) {
		return false
	}
	return true
}
