package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-hub/internal/domain/member"
	"talent-hub/internal/repository"
)

var ErrProfileRecordNotFound = errors.New("profile record not found")

type AssignmentInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

type RoleInput struct {
	Name        string
	Description string
}

type AppreciationInput struct {
	Author  string
	Message string
	Date    time.Time
}

type FeedbackInput struct {
	Author  string
	Comment string
	Date    time.Time
}

type EngagementInput struct {
	ClientID  int64
	Role      string
	Status    string
	StartDate time.Time
	EndDate   *time.Time
}

// EngagementResult reports the stored entry together with the overlap
// findings recomputed over the member's full history, so callers can surface
// a warning without a second request.
type EngagementResult struct {
	Engagement member.Engagement
	Overlaps   []member.OverlapFinding
}

type ProfileUsecase interface {
	AddAssignment(ctx context.Context, memberID int64, in AssignmentInput) (member.Assignment, error)
	UpdateAssignment(ctx context.Context, memberID, id int64, in AssignmentInput) (member.Assignment, error)
	DeleteAssignment(ctx context.Context, memberID, id int64) error

	AddRole(ctx context.Context, memberID int64, in RoleInput) (member.Role, error)
	UpdateRole(ctx context.Context, memberID, id int64, in RoleInput) (member.Role, error)
	DeleteRole(ctx context.Context, memberID, id int64) error

	AddAppreciation(ctx context.Context, memberID int64, in AppreciationInput) (member.Appreciation, error)
	UpdateAppreciation(ctx context.Context, memberID, id int64, in AppreciationInput) (member.Appreciation, error)
	DeleteAppreciation(ctx context.Context, memberID, id int64) error

	AddFeedback(ctx context.Context, memberID int64, in FeedbackInput) (member.Feedback, error)
	UpdateFeedback(ctx context.Context, memberID, id int64, in FeedbackInput) (member.Feedback, error)
	DeleteFeedback(ctx context.Context, memberID, id int64) error

	AddEngagement(ctx context.Context, memberID int64, in EngagementInput) (EngagementResult, error)
	UpdateEngagement(ctx context.Context, memberID, id int64, in EngagementInput) (EngagementResult, error)
	DeleteEngagement(ctx context.Context, memberID, id int64) error
}

type Profile struct {
	profiles repository.ProfileRepository
	clients  repository.ClientRepository
	notify   ChangeNotifier
}

func NewProfileUsecase(profiles repository.ProfileRepository, clients repository.ClientRepository, notify ChangeNotifier) *Profile {
	return &Profile{profiles: profiles, clients: clients, notify: notifierOrNop(notify)}
}

func (u *Profile) AddAssignment(ctx context.Context, memberID int64, in AssignmentInput) (member.Assignment, error) {
	if strings.TrimSpace(in.Title) == "" || in.StartDate.IsZero() {
		return member.Assignment{}, ErrInvalidInput
	}
	out, err := u.profiles.AddAssignment(ctx, member.Assignment{
		MemberID:    memberID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	})
	if err != nil {
		return member.Assignment{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("assignment", "created", out.ID)
	return out, nil
}

func (u *Profile) UpdateAssignment(ctx context.Context, memberID, id int64, in AssignmentInput) (member.Assignment, error) {
	if strings.TrimSpace(in.Title) == "" || in.StartDate.IsZero() {
		return member.Assignment{}, ErrInvalidInput
	}
	out, err := u.profiles.UpdateAssignment(ctx, member.Assignment{
		ID:          id,
		MemberID:    memberID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	})
	if err != nil {
		return member.Assignment{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("assignment", "updated", id)
	return out, nil
}

func (u *Profile) DeleteAssignment(ctx context.Context, memberID, id int64) error {
	if err := u.profiles.DeleteAssignment(ctx, memberID, id); err != nil {
		return mapProfileErr(err)
	}
	u.notify.EntityChanged("assignment", "deleted", id)
	return nil
}

func (u *Profile) AddRole(ctx context.Context, memberID int64, in RoleInput) (member.Role, error) {
	if strings.TrimSpace(in.Name) == "" {
		return member.Role{}, ErrInvalidInput
	}
	out, err := u.profiles.AddRole(ctx, member.Role{
		MemberID:    memberID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if err != nil {
		return member.Role{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("role", "created", out.ID)
	return out, nil
}

func (u *Profile) UpdateRole(ctx context.Context, memberID, id int64, in RoleInput) (member.Role, error) {
	if strings.TrimSpace(in.Name) == "" {
		return member.Role{}, ErrInvalidInput
	}
	out, err := u.profiles.UpdateRole(ctx, member.Role{
		ID:          id,
		MemberID:    memberID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if err != nil {
		return member.Role{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("role", "updated", id)
	return out, nil
}

func (u *Profile) DeleteRole(ctx context.Context, memberID, id int64) error {
	if err := u.profiles.DeleteRole(ctx, memberID, id); err != nil {
		return mapProfileErr(err)
	}
	u.notify.EntityChanged("role", "deleted", id)
	return nil
}

func (u *Profile) AddAppreciation(ctx context.Context, memberID int64, in AppreciationInput) (member.Appreciation, error) {
	if strings.TrimSpace(in.Message) == "" {
		return member.Appreciation{}, ErrInvalidInput
	}
	out, err := u.profiles.AddAppreciation(ctx, member.Appreciation{
		MemberID: memberID,
		Author:   in.Author,
		Message:  strings.TrimSpace(in.Message),
		Date:     appreciationDate(in.Date),
	})
	if err != nil {
		return member.Appreciation{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("appreciation", "created", out.ID)
	return out, nil
}

func (u *Profile) UpdateAppreciation(ctx context.Context, memberID, id int64, in AppreciationInput) (member.Appreciation, error) {
	if strings.TrimSpace(in.Message) == "" {
		return member.Appreciation{}, ErrInvalidInput
	}
	out, err := u.profiles.UpdateAppreciation(ctx, member.Appreciation{
		ID:       id,
		MemberID: memberID,
		Author:   in.Author,
		Message:  strings.TrimSpace(in.Message),
		Date:     appreciationDate(in.Date),
	})
	if err != nil {
		return member.Appreciation{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("appreciation", "updated", id)
	return out, nil
}

func (u *Profile) DeleteAppreciation(ctx context.Context, memberID, id int64) error {
	if err := u.profiles.DeleteAppreciation(ctx, memberID, id); err != nil {
		return mapProfileErr(err)
	}
	u.notify.EntityChanged("appreciation", "deleted", id)
	return nil
}

func (u *Profile) AddFeedback(ctx context.Context, memberID int64, in FeedbackInput) (member.Feedback, error) {
	if strings.TrimSpace(in.Comment) == "" {
		return member.Feedback{}, ErrInvalidInput
	}
	out, err := u.profiles.AddFeedback(ctx, member.Feedback{
		MemberID: memberID,
		Author:   in.Author,
		Comment:  strings.TrimSpace(in.Comment),
		Date:     appreciationDate(in.Date),
	})
	if err != nil {
		return member.Feedback{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("feedback", "created", out.ID)
	return out, nil
}

func (u *Profile) UpdateFeedback(ctx context.Context, memberID, id int64, in FeedbackInput) (member.Feedback, error) {
	if strings.TrimSpace(in.Comment) == "" {
		return member.Feedback{}, ErrInvalidInput
	}
	out, err := u.profiles.UpdateFeedback(ctx, member.Feedback{
		ID:       id,
		MemberID: memberID,
		Author:   in.Author,
		Comment:  strings.TrimSpace(in.Comment),
		Date:     appreciationDate(in.Date),
	})
	if err != nil {
		return member.Feedback{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("feedback", "updated", id)
	return out, nil
}

func (u *Profile) DeleteFeedback(ctx context.Context, memberID, id int64) error {
	if err := u.profiles.DeleteFeedback(ctx, memberID, id); err != nil {
		return mapProfileErr(err)
	}
	u.notify.EntityChanged("feedback", "deleted", id)
	return nil
}

func (u *Profile) AddEngagement(ctx context.Context, memberID int64, in EngagementInput) (EngagementResult, error) {
	if err := u.validateEngagement(ctx, in); err != nil {
		return EngagementResult{}, err
	}
	out, err := u.profiles.AddEngagement(ctx, member.Engagement{
		MemberID:  memberID,
		ClientID:  in.ClientID,
		Role:      in.Role,
		Status:    in.Status,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return EngagementResult{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("engagement", "created", out.ID)
	return u.engagementResult(ctx, out)
}

func (u *Profile) UpdateEngagement(ctx context.Context, memberID, id int64, in EngagementInput) (EngagementResult, error) {
	if err := u.validateEngagement(ctx, in); err != nil {
		return EngagementResult{}, err
	}
	out, err := u.profiles.UpdateEngagement(ctx, member.Engagement{
		ID:        id,
		MemberID:  memberID,
		ClientID:  in.ClientID,
		Role:      in.Role,
		Status:    in.Status,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return EngagementResult{}, mapProfileErr(err)
	}
	u.notify.EntityChanged("engagement", "updated", id)
	return u.engagementResult(ctx, out)
}

func (u *Profile) DeleteEngagement(ctx context.Context, memberID, id int64) error {
	if err := u.profiles.DeleteEngagement(ctx, memberID, id); err != nil {
		return mapProfileErr(err)
	}
	u.notify.EntityChanged("engagement", "deleted", id)
	return nil
}

func (u *Profile) validateEngagement(ctx context.Context, in EngagementInput) error {
	if in.StartDate.IsZero() {
		return ErrInvalidInput
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return ErrInvalidInput
	}
	dir, err := u.clients.Directory(ctx)
	if err != nil {
		return ErrInternal
	}
	if _, ok := dir[in.ClientID]; !ok {
		return ErrClientNotFound
	}
	return nil
}

func (u *Profile) engagementResult(ctx context.Context, e member.Engagement) (EngagementResult, error) {
	history, err := u.profiles.ListEngagements(ctx, e.MemberID)
	if err != nil {
		return EngagementResult{}, ErrInternal
	}
	return EngagementResult{Engagement: e, Overlaps: member.ValidateEngagements(history)}, nil
}

func appreciationDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now().UTC()
	}
	return d
}

func mapProfileErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrMemberNotFound):
		return ErrMemberNotFound
	case errors.Is(err, repository.ErrProfileRecordNotFound):
		return ErrProfileRecordNotFound
	}
	return ErrInternal
}
