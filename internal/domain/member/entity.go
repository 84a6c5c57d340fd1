package member

import "time"

// Tier is the organization-wide proficiency label of a member, distinct from
// any per-skill grading.
type Tier string

const (
	TierStarter Tier = "Starter"
	TierBuilder Tier = "Builder"
	TierSolver  Tier = "Solver"
	TierWizard  Tier = "Wizard"
)

func Tiers() []Tier {
	return []Tier{TierStarter, TierBuilder, TierSolver, TierWizard}
}

func IsValidTier(t Tier) bool {
	for _, v := range Tiers() {
		if v == t {
			return true
		}
	}
	return false
}

type Member struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HireDate   time.Time `json:"hire_date"`
	Tier       Tier      `json:"tier"`
	Location   string    `json:"location,omitempty"`
	PictureURL string    `json:"picture_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Client struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Assignment struct {
	ID          int64      `json:"id"`
	MemberID    int64      `json:"member_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type Role struct {
	ID          int64  `json:"id"`
	MemberID    int64  `json:"member_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Appreciation struct {
	ID       int64     `json:"id"`
	MemberID int64     `json:"member_id"`
	Author   string    `json:"author"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
}

type Feedback struct {
	ID       int64     `json:"id"`
	MemberID int64     `json:"member_id"`
	Author   string    `json:"author"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Engagement is one client-history entry. A nil EndDate marks an ongoing
// engagement. Entries for one member may overlap in time.
type Engagement struct {
	ID        int64      `json:"id"`
	MemberID  int64      `json:"member_id"`
	ClientID  int64      `json:"client_id"`
	Role      string     `json:"role,omitempty"`
	Status    string     `json:"status,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Grading records that a member holds a skill at a level. ScaleID overrides
// the skill's category scale when set; levels absent from the resolved scale
// are representable (fail-open, see the engagement resolver for the same
// policy on dangling client ids).
type Grading struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	SkillID   int64     `json:"skill_id"`
	Level     string    `json:"level"`
	ScaleID   *int64    `json:"scale_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
