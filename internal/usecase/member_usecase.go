package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-hub/internal/domain/goal"
	"talent-hub/internal/domain/member"
	"talent-hub/internal/repository"
)

var ErrEmailTaken = errors.New("email already in use")

type MemberInput struct {
	Name       string
	Email      string
	HireDate   time.Time
	Tier       member.Tier
	Location   string
	PictureURL string
}

// UpdateMemberInput carries only the fields the caller wants to change; nil
// fields keep the stored value.
type UpdateMemberInput struct {
	Name       *string
	Email      *string
	HireDate   *time.Time
	Tier       *member.Tier
	Location   *string
	PictureURL *string
}

// MemberDetail is a member joined with everything the dashboard shows:
// derived current client, gradings, goals and the profile sub-records.
// Overlaps reports simultaneous engagements; they are informational, never an
// error.
type MemberDetail struct {
	Member        member.Member
	CurrentClient string
	Gradings      []GradingItem
	Goals         []goal.Goal
	Assignments   []member.Assignment
	Roles         []member.Role
	Appreciations []member.Appreciation
	Feedback      []member.Feedback
	Engagements   []member.Engagement
	Overlaps      []member.OverlapFinding
}

type MemberUsecase interface {
	ListMembers(ctx context.Context, f repository.MemberFilter) ([]MemberDetail, error)
	GetMember(ctx context.Context, id int64) (MemberDetail, error)
	CreateMember(ctx context.Context, in MemberInput) (MemberDetail, error)
	UpdateMember(ctx context.Context, id int64, in UpdateMemberInput) (MemberDetail, error)
	DeleteMember(ctx context.Context, id int64) error
}

type Member struct {
	members  repository.MemberRepository
	profiles repository.ProfileRepository
	goals    repository.GoalRepository
	grading  *Grading
	notify   ChangeNotifier
}

func NewMemberUsecase(
	members repository.MemberRepository,
	profiles repository.ProfileRepository,
	goals repository.GoalRepository,
	grading *Grading,
	notify ChangeNotifier,
) *Member {
	return &Member{
		members:  members,
		profiles: profiles,
		goals:    goals,
		grading:  grading,
		notify:   notifierOrNop(notify),
	}
}

func (u *Member) ListMembers(ctx context.Context, f repository.MemberFilter) ([]MemberDetail, error) {
	items, err := u.members.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]MemberDetail, 0, len(items))
	for _, m := range items {
		detail, err := u.assemble(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *Member) GetMember(ctx context.Context, id int64) (MemberDetail, error) {
	m, err := u.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return MemberDetail{}, ErrMemberNotFound
		}
		return MemberDetail{}, ErrInternal
	}
	return u.assemble(ctx, m)
}

func (u *Member) CreateMember(ctx context.Context, in MemberInput) (MemberDetail, error) {
	if err := validateMemberInput(in); err != nil {
		return MemberDetail{}, err
	}
	created, err := u.members.Create(ctx, member.Member{
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		HireDate:   in.HireDate,
		Tier:       in.Tier,
		Location:   in.Location,
		PictureURL: in.PictureURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return MemberDetail{}, ErrEmailTaken
		}
		return MemberDetail{}, ErrInternal
	}
	u.notify.EntityChanged("member", "created", created.ID)
	return u.assemble(ctx, created)
}

func (u *Member) UpdateMember(ctx context.Context, id int64, in UpdateMemberInput) (MemberDetail, error) {
	current, err := u.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return MemberDetail{}, ErrMemberNotFound
		}
		return MemberDetail{}, ErrInternal
	}

	merged := MemberInput{
		Name:       current.Name,
		Email:      current.Email,
		HireDate:   current.HireDate,
		Tier:       current.Tier,
		Location:   current.Location,
		PictureURL: current.PictureURL,
	}
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.HireDate != nil {
		merged.HireDate = *in.HireDate
	}
	if in.Tier != nil {
		merged.Tier = *in.Tier
	}
	if in.Location != nil {
		merged.Location = *in.Location
	}
	if in.PictureURL != nil {
		merged.PictureURL = *in.PictureURL
	}
	if err := validateMemberInput(merged); err != nil {
		return MemberDetail{}, err
	}

	updated, err := u.members.Update(ctx, member.Member{
		ID:         id,
		Name:       strings.TrimSpace(merged.Name),
		Email:      strings.ToLower(strings.TrimSpace(merged.Email)),
		HireDate:   merged.HireDate,
		Tier:       merged.Tier,
		Location:   merged.Location,
		PictureURL: merged.PictureURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberNotFound):
			return MemberDetail{}, ErrMemberNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return MemberDetail{}, ErrEmailTaken
		}
		return MemberDetail{}, ErrInternal
	}
	u.notify.EntityChanged("member", "updated", id)
	return u.assemble(ctx, updated)
}

func (u *Member) DeleteMember(ctx context.Context, id int64) error {
	if err := u.members.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("member", "deleted", id)
	return nil
}

func (u *Member) assemble(ctx context.Context, m member.Member) (MemberDetail, error) {
	detail := MemberDetail{Member: m}

	current, err := u.members.CurrentClient(ctx, m.ID)
	if err != nil {
		return MemberDetail{}, ErrInternal
	}
	detail.CurrentClient = current

	if detail.Gradings, err = u.grading.ListGradings(ctx, m.ID); err != nil {
		return MemberDetail{}, err
	}
	if detail.Goals, err = u.goals.FindByMemberID(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	if detail.Assignments, err = u.profiles.ListAssignments(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	if detail.Roles, err = u.profiles.ListRoles(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	if detail.Appreciations, err = u.profiles.ListAppreciations(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	if detail.Feedback, err = u.profiles.ListFeedback(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	if detail.Engagements, err = u.profiles.ListEngagements(ctx, m.ID); err != nil {
		return MemberDetail{}, ErrInternal
	}
	detail.Overlaps = member.ValidateEngagements(detail.Engagements)

	return detail, nil
}

func validateMemberInput(in MemberInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidInput
	}
	if in.HireDate.IsZero() {
		return ErrInvalidInput
	}
	if !member.IsValidTier(in.Tier) {
		return ErrInvalidInput
	}
	return nil
}
