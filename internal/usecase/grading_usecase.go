package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/member"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/repository"
)

var (
	ErrGradingNotFound = errors.New("grading not found")
	ErrGradingExists   = errors.New("member already graded for skill")
	ErrInvalidLevel    = errors.New("level not on scale")
	ErrMemberNotFound  = errors.New("member not found")
)

type GradingItem struct {
	ID        int64
	MemberID  int64
	SkillID   int64
	SkillName string
	Level     string
	Score     float64
}

type AddGradingInput struct {
	SkillID int64
	Level   string
	ScaleID *int64
}

type GradingUsecase interface {
	ListGradings(ctx context.Context, memberID int64) ([]GradingItem, error)
	AddGrading(ctx context.Context, memberID int64, in AddGradingInput) (GradingItem, error)
	UpdateGrading(ctx context.Context, memberID, gradingID int64, level string) (GradingItem, error)
	RemoveGrading(ctx context.Context, memberID, gradingID int64) error
}

type Grading struct {
	gradings repository.GradingRepository
	skills   repository.SkillRepository
	scales   repository.ScaleRepository
	members  repository.MemberRepository
	notify   ChangeNotifier

	// strict rejects levels absent from the resolved scale instead of
	// recording them fail-open.
	strict bool
}

func NewGradingUsecase(
	gradings repository.GradingRepository,
	skills repository.SkillRepository,
	scales repository.ScaleRepository,
	members repository.MemberRepository,
	notify ChangeNotifier,
	strict bool,
) *Grading {
	return &Grading{
		gradings: gradings,
		skills:   skills,
		scales:   scales,
		members:  members,
		notify:   notifierOrNop(notify),
		strict:   strict,
	}
}

func (u *Grading) ListGradings(ctx context.Context, memberID int64) ([]GradingItem, error) {
	items, err := u.gradings.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]GradingItem, 0, len(items))
	for _, g := range items {
		out = append(out, u.toItem(ctx, g))
	}
	return out, nil
}

func (u *Grading) AddGrading(ctx context.Context, memberID int64, in AddGradingInput) (GradingItem, error) {
	if strings.TrimSpace(in.Level) == "" || in.SkillID == 0 {
		return GradingItem{}, ErrInvalidInput
	}

	exists, err := u.members.ExistsByID(ctx, memberID)
	if err != nil {
		return GradingItem{}, ErrInternal
	}
	if !exists {
		return GradingItem{}, ErrMemberNotFound
	}

	exists, err = u.skills.SkillExistsByID(ctx, in.SkillID)
	if err != nil {
		return GradingItem{}, ErrInternal
	}
	if !exists {
		return GradingItem{}, ErrSkillNotFound
	}

	if u.strict {
		sc, ok := u.resolveScale(ctx, in.SkillID, in.ScaleID)
		if ok {
			if _, found := sc.Position(in.Level); !found {
				return GradingItem{}, ErrInvalidLevel
			}
		}
	}

	created, err := u.gradings.Create(ctx, member.Grading{
		MemberID: memberID,
		SkillID:  in.SkillID,
		Level:    strings.TrimSpace(in.Level),
		ScaleID:  in.ScaleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrGradingExists):
			return GradingItem{}, ErrGradingExists
		case errors.Is(err, repository.ErrMemberNotFound):
			return GradingItem{}, ErrMemberNotFound
		}
		return GradingItem{}, ErrInternal
	}

	u.notify.EntityChanged("grading", "created", created.ID)
	return u.toItem(ctx, created), nil
}

func (u *Grading) UpdateGrading(ctx context.Context, memberID, gradingID int64, level string) (GradingItem, error) {
	if strings.TrimSpace(level) == "" {
		return GradingItem{}, ErrInvalidInput
	}

	current, err := u.findByID(ctx, memberID, gradingID)
	if err != nil {
		return GradingItem{}, err
	}

	if u.strict {
		sc, ok := u.resolveScale(ctx, current.SkillID, current.ScaleID)
		if ok {
			if _, found := sc.Position(level); !found {
				return GradingItem{}, ErrInvalidLevel
			}
		}
	}

	current.Level = strings.TrimSpace(level)
	updated, err := u.gradings.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrGradingNotFound) {
			return GradingItem{}, ErrGradingNotFound
		}
		return GradingItem{}, ErrInternal
	}

	u.notify.EntityChanged("grading", "updated", gradingID)
	return u.toItem(ctx, updated), nil
}

func (u *Grading) RemoveGrading(ctx context.Context, memberID, gradingID int64) error {
	if err := u.gradings.Delete(ctx, memberID, gradingID); err != nil {
		if errors.Is(err, repository.ErrGradingNotFound) {
			return ErrGradingNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("grading", "deleted", gradingID)
	return nil
}

func (u *Grading) findByID(ctx context.Context, memberID, gradingID int64) (member.Grading, error) {
	items, err := u.gradings.FindByMemberID(ctx, memberID)
	if err != nil {
		return member.Grading{}, ErrInternal
	}
	for _, g := range items {
		if g.ID == gradingID {
			return g, nil
		}
	}
	return member.Grading{}, ErrGradingNotFound
}

// resolveScale returns the grading's effective scale: its explicit override
// when set, otherwise the skill's category scale. ok=false means no scale
// could be resolved and validation/ranking must be skipped.
func (u *Grading) resolveScale(ctx context.Context, skillID int64, override *int64) (scale.Scale, bool) {
	if override != nil {
		sc, err := u.scales.GetByID(ctx, *override)
		if err != nil {
			return scale.Scale{}, false
		}
		return sc, true
	}

	sk, err := u.skills.GetSkillByID(ctx, skillID)
	if err != nil {
		return scale.Scale{}, false
	}
	cat, err := u.skills.GetCategoryByID(ctx, sk.CategoryID)
	if err != nil {
		return scale.Scale{}, false
	}
	sc, err := u.scales.GetByID(ctx, cat.ScaleID)
	if err != nil {
		return scale.Scale{}, false
	}
	return sc, true
}

func (u *Grading) toItem(ctx context.Context, g member.Grading) GradingItem {
	item := GradingItem{
		ID:       g.ID,
		MemberID: g.MemberID,
		SkillID:  g.SkillID,
		Level:    g.Level,
	}
	if sk, err := u.skills.GetSkillByID(ctx, g.SkillID); err == nil {
		item.SkillName = sk.Name
	}
	if sc, ok := u.resolveScale(ctx, g.SkillID, g.ScaleID); ok {
		item.Score = sc.Score(g.Level)
	}
	return item
}
