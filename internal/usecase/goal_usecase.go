package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/goal"
	"talent-hub/internal/repository"
)

var (
	ErrGoalNotFound      = errors.New("learning goal not found")
	ErrInvalidTarget     = errors.New("target level not reachable")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type CreateGoalInput struct {
	SkillID     int64
	Description string
	TargetLevel string
	Status      goal.Status
}

type UpdateGoalInput struct {
	Description *string
	TargetLevel *string
	Status      *goal.Status
}

type GoalUsecase interface {
	ListGoals(ctx context.Context, memberID int64) ([]goal.Goal, error)
	ValidTargets(ctx context.Context, memberID, skillID int64) ([]string, error)
	CreateGoal(ctx context.Context, memberID int64, in CreateGoalInput) (goal.Goal, error)
	UpdateGoal(ctx context.Context, memberID, goalID int64, in UpdateGoalInput) (goal.Goal, error)
	DeleteGoal(ctx context.Context, memberID, goalID int64) error
}

type Goal struct {
	goals    repository.GoalRepository
	gradings repository.GradingRepository
	grading  *Grading
	notify   ChangeNotifier
}

func NewGoalUsecase(
	goals repository.GoalRepository,
	gradings repository.GradingRepository,
	grading *Grading,
	notify ChangeNotifier,
) *Goal {
	return &Goal{
		goals:    goals,
		gradings: gradings,
		grading:  grading,
		notify:   notifierOrNop(notify),
	}
}

func (u *Goal) ListGoals(ctx context.Context, memberID int64) ([]goal.Goal, error) {
	out, err := u.goals.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ValidTargets computes the legal learning-goal target levels for a member
// and skill under the scale-ordering rule. A skill whose scale cannot be
// resolved yields no targets.
func (u *Goal) ValidTargets(ctx context.Context, memberID, skillID int64) ([]string, error) {
	exists, err := u.grading.skills.SkillExistsByID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrSkillNotFound
	}

	current, graded, err := u.currentLevel(ctx, memberID, skillID)
	if err != nil {
		return nil, err
	}

	levels := u.resolvedLevels(ctx, memberID, skillID)
	return goal.ValidTargetLevels(levels, current, graded), nil
}

func (u *Goal) CreateGoal(ctx context.Context, memberID int64, in CreateGoalInput) (goal.Goal, error) {
	if in.SkillID == 0 || strings.TrimSpace(in.TargetLevel) == "" {
		return goal.Goal{}, ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = goal.StatusPending
	}
	if !goal.IsValidStatus(status) {
		return goal.Goal{}, ErrInvalidInput
	}
	// A goal starts at the head of the state machine; it cannot be born
	// On Hold or Complete.
	if status != goal.StatusPending && status != goal.StatusActive {
		return goal.Goal{}, ErrInvalidTransition
	}

	targets, err := u.ValidTargets(ctx, memberID, in.SkillID)
	if err != nil {
		return goal.Goal{}, err
	}
	if !containsLevel(targets, in.TargetLevel) {
		return goal.Goal{}, ErrInvalidTarget
	}

	created, err := u.goals.Create(ctx, goal.Goal{
		MemberID:    memberID,
		SkillID:     in.SkillID,
		Description: in.Description,
		TargetLevel: strings.TrimSpace(in.TargetLevel),
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return goal.Goal{}, ErrMemberNotFound
		}
		return goal.Goal{}, ErrInternal
	}

	u.notify.EntityChanged("goal", "created", created.ID)
	return created, nil
}

func (u *Goal) UpdateGoal(ctx context.Context, memberID, goalID int64, in UpdateGoalInput) (goal.Goal, error) {
	current, err := u.goals.GetByID(ctx, memberID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return goal.Goal{}, ErrGoalNotFound
		}
		return goal.Goal{}, ErrInternal
	}

	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.TargetLevel != nil {
		target := strings.TrimSpace(*in.TargetLevel)
		if target == "" {
			return goal.Goal{}, ErrInvalidInput
		}
		targets, err := u.ValidTargets(ctx, memberID, current.SkillID)
		if err != nil {
			return goal.Goal{}, err
		}
		if !containsLevel(targets, target) {
			return goal.Goal{}, ErrInvalidTarget
		}
		current.TargetLevel = target
	}
	if in.Status != nil {
		next := *in.Status
		if !goal.IsValidStatus(next) {
			return goal.Goal{}, ErrInvalidInput
		}
		if !current.Status.CanTransition(next) {
			return goal.Goal{}, ErrInvalidTransition
		}
		current.Status = next
	}

	updated, err := u.goals.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return goal.Goal{}, ErrGoalNotFound
		}
		return goal.Goal{}, ErrInternal
	}

	u.notify.EntityChanged("goal", "updated", goalID)
	return updated, nil
}

func (u *Goal) DeleteGoal(ctx context.Context, memberID, goalID int64) error {
	if err := u.goals.Delete(ctx, memberID, goalID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("goal", "deleted", goalID)
	return nil
}

func (u *Goal) currentLevel(ctx context.Context, memberID, skillID int64) (string, bool, error) {
	g, err := u.gradings.FindByMemberAndSkill(ctx, memberID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrGradingNotFound) {
			return "", false, nil
		}
		return "", false, ErrInternal
	}
	return g.Level, true, nil
}

func (u *Goal) resolvedLevels(ctx context.Context, memberID, skillID int64) []string {
	var override *int64
	if g, err := u.gradings.FindByMemberAndSkill(ctx, memberID, skillID); err == nil {
		override = g.ScaleID
	}
	sc, ok := u.grading.resolveScale(ctx, skillID, override)
	if !ok {
		return nil
	}
	return sc.Levels()
}

func containsLevel(levels []string, level string) bool {
	for _, l := range levels {
		if l == strings.TrimSpace(level) {
			return true
		}
	}
	return false
}
