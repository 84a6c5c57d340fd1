package goal

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusActive   Status = "Active"
	StatusOnHold   Status = "On Hold"
	StatusComplete Status = "Complete"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusOnHold, StatusComplete:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal step:
// Pending -> Active -> {On Hold <-> Active} -> Complete. Complete is terminal
// and Pending is never re-entered. Keeping the status unchanged is always
// allowed so field-only updates pass through.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusActive
	case StatusActive:
		return next == StatusOnHold || next == StatusComplete
	case StatusOnHold:
		return next == StatusActive
	}
	return false
}

type Goal struct {
	ID          int64     `json:"id"`
	MemberID    int64     `json:"member_id"`
	SkillID     int64     `json:"skill_id"`
	Description string    `json:"description,omitempty"`
	TargetLevel string    `json:"target_level"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidTargetLevels computes the legal learning-goal targets for a skill
// graded on the given ordered levels.
//
// Ungraded members may only target the lowest level (no skipping). A member
// graded at position p may maintain or advance: levels[p:]. A recorded level
// missing from the scale (the scale was edited after grading) yields the full
// list, since no safe restriction can be computed.
func ValidTargetLevels(levels []string, currentLevel string, graded bool) []string {
	if len(levels) == 0 {
		return nil
	}
	if !graded {
		return levels[:1]
	}
	for p, l := range levels {
		if l == currentLevel {
			return levels[p:]
		}
	}
	return levels
}
