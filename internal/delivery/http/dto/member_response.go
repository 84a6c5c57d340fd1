package dto

import (
	"time"

	"talent-hub/internal/domain/goal"
	"talent-hub/internal/domain/member"
	"talent-hub/internal/usecase"
)

type MemberResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	HireDate      time.Time `json:"hire_date"`
	Tier          string    `json:"tier"`
	Location      string    `json:"location,omitempty"`
	PictureURL    string    `json:"picture_url,omitempty"`
	CurrentClient string    `json:"current_client"`
}

type GradingResponse struct {
	ID        int64   `json:"id"`
	SkillID   int64   `json:"skill_id"`
	SkillName string  `json:"skill_name,omitempty"`
	Level     string  `json:"level"`
	Score     float64 `json:"score"`
}

type GoalResponse struct {
	ID          int64  `json:"id"`
	SkillID     int64  `json:"skill_id"`
	Description string `json:"description,omitempty"`
	TargetLevel string `json:"target_level"`
	Status      string `json:"status"`
}

type OverlapResponse struct {
	FirstEngagementID  int64 `json:"first_engagement_id"`
	SecondEngagementID int64 `json:"second_engagement_id"`
}

type MemberDetailResponse struct {
	MemberResponse

	Gradings      []GradingResponse     `json:"gradings"`
	Goals         []GoalResponse        `json:"goals"`
	Assignments   []member.Assignment   `json:"assignments"`
	Roles         []member.Role         `json:"roles"`
	Appreciations []member.Appreciation `json:"appreciations"`
	Feedback      []member.Feedback     `json:"feedback"`
	Engagements   []member.Engagement   `json:"engagements"`
	Overlaps      []OverlapResponse     `json:"engagement_overlaps,omitempty"`
}

func NewMemberResponse(d usecase.MemberDetail) MemberResponse {
	m := d.Member
	return MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		HireDate:      m.HireDate,
		Tier:          string(m.Tier),
		Location:      m.Location,
		PictureURL:    m.PictureURL,
		CurrentClient: d.CurrentClient,
	}
}

func NewMemberDetailResponse(d usecase.MemberDetail) MemberDetailResponse {
	out := MemberDetailResponse{
		MemberResponse: NewMemberResponse(d),
		Gradings:       make([]GradingResponse, 0, len(d.Gradings)),
		Goals:          make([]GoalResponse, 0, len(d.Goals)),
		Assignments:    d.Assignments,
		Roles:          d.Roles,
		Appreciations:  d.Appreciations,
		Feedback:       d.Feedback,
		Engagements:    d.Engagements,
	}
	for _, g := range d.Gradings {
		out.Gradings = append(out.Gradings, NewGradingResponse(g))
	}
	for _, g := range d.Goals {
		out.Goals = append(out.Goals, NewGoalResponse(g))
	}
	for _, o := range d.Overlaps {
		out.Overlaps = append(out.Overlaps, OverlapResponse{FirstEngagementID: o.FirstID, SecondEngagementID: o.SecondID})
	}
	return out
}

func NewGradingResponse(g usecase.GradingItem) GradingResponse {
	return GradingResponse{ID: g.ID, SkillID: g.SkillID, SkillName: g.SkillName, Level: g.Level, Score: g.Score}
}

func NewGoalResponse(g goal.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		SkillID:     g.SkillID,
		Description: g.Description,
		TargetLevel: g.TargetLevel,
		Status:      string(g.Status),
	}
}
