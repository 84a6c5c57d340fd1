package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/skill"
	"talent-hub/internal/repository"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrCategoryNotFound = errors.New("skill category not found")
	ErrAreaNotFound     = errors.New("knowledge area not found")
)

type SkillItem struct {
	ID           int64
	Name         string
	Purpose      string
	CategoryID   int64
	CategoryName string
	AreaID       int64
	AreaName     string
	ScaleID      int64
}

type SkillInput struct {
	Name       string
	Purpose    string
	CategoryID int64
	AreaID     int64
}

type CategoryInput struct {
	Name     string
	Criteria string
	ScaleID  int64
}

type CatalogUsecase interface {
	ListAreas(ctx context.Context) ([]skill.KnowledgeArea, error)
	CreateArea(ctx context.Context, name string) (skill.KnowledgeArea, error)
	UpdateArea(ctx context.Context, id int64, name string) (skill.KnowledgeArea, error)
	DeleteArea(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]skill.Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (skill.Category, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (skill.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]SkillItem, error)
	CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error)
	UpdateSkill(ctx context.Context, id int64, in SkillInput) (SkillItem, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type Catalog struct {
	skills repository.SkillRepository
	scales repository.ScaleRepository
	notify ChangeNotifier
}

func NewCatalogUsecase(skills repository.SkillRepository, scales repository.ScaleRepository, notify ChangeNotifier) *Catalog {
	return &Catalog{skills: skills, scales: scales, notify: notifierOrNop(notify)}
}

func (u *Catalog) ListAreas(ctx context.Context) ([]skill.KnowledgeArea, error) {
	out, err := u.skills.ListAreas(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Catalog) CreateArea(ctx context.Context, name string) (skill.KnowledgeArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.KnowledgeArea{}, ErrInvalidInput
	}
	created, err := u.skills.CreateArea(ctx, skill.KnowledgeArea{Name: name})
	if err != nil {
		return skill.KnowledgeArea{}, ErrInternal
	}
	u.notify.EntityChanged("knowledge_area", "created", created.ID)
	return created, nil
}

func (u *Catalog) UpdateArea(ctx context.Context, id int64, name string) (skill.KnowledgeArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.KnowledgeArea{}, ErrInvalidInput
	}
	updated, err := u.skills.UpdateArea(ctx, skill.KnowledgeArea{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return skill.KnowledgeArea{}, ErrAreaNotFound
		}
		return skill.KnowledgeArea{}, ErrInternal
	}
	u.notify.EntityChanged("knowledge_area", "updated", id)
	return updated, nil
}

func (u *Catalog) DeleteArea(ctx context.Context, id int64) error {
	if err := u.skills.DeleteArea(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return ErrAreaNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("knowledge_area", "deleted", id)
	return nil
}

func (u *Catalog) ListCategories(ctx context.Context) ([]skill.Category, error) {
	out, err := u.skills.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Catalog) CreateCategory(ctx context.Context, in CategoryInput) (skill.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return skill.Category{}, ErrInvalidInput
	}
	if _, err := u.scales.GetByID(ctx, in.ScaleID); err != nil {
		if errors.Is(err, repository.ErrScaleNotFound) {
			return skill.Category{}, ErrScaleNotFound
		}
		return skill.Category{}, ErrInternal
	}
	created, err := u.skills.CreateCategory(ctx, skill.Category{
		Name:     strings.TrimSpace(in.Name),
		Criteria: in.Criteria,
		ScaleID:  in.ScaleID,
	})
	if err != nil {
		return skill.Category{}, ErrInternal
	}
	u.notify.EntityChanged("category", "created", created.ID)
	return created, nil
}

func (u *Catalog) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (skill.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return skill.Category{}, ErrInvalidInput
	}
	if _, err := u.scales.GetByID(ctx, in.ScaleID); err != nil {
		if errors.Is(err, repository.ErrScaleNotFound) {
			return skill.Category{}, ErrScaleNotFound
		}
		return skill.Category{}, ErrInternal
	}
	updated, err := u.skills.UpdateCategory(ctx, skill.Category{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		Criteria: in.Criteria,
		ScaleID:  in.ScaleID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return skill.Category{}, ErrCategoryNotFound
		}
		return skill.Category{}, ErrInternal
	}
	u.notify.EntityChanged("category", "updated", id)
	return updated, nil
}

func (u *Catalog) DeleteCategory(ctx context.Context, id int64) error {
	if err := u.skills.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("category", "deleted", id)
	return nil
}

func (u *Catalog) ListSkills(ctx context.Context) ([]SkillItem, error) {
	rows, err := u.skills.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, SkillItem{
			ID:           r.ID,
			Name:         r.Name,
			Purpose:      r.Purpose,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			AreaID:       r.AreaID,
			AreaName:     r.AreaName,
			ScaleID:      r.ScaleID,
		})
	}
	return out, nil
}

func (u *Catalog) CreateSkill(ctx context.Context, in SkillInput) (SkillItem, error) {
	if err := u.validateSkillInput(ctx, in); err != nil {
		return SkillItem{}, err
	}
	created, err := u.skills.CreateSkill(ctx, skill.Skill{
		Name:       strings.TrimSpace(in.Name),
		Purpose:    in.Purpose,
		CategoryID: in.CategoryID,
		AreaID:     in.AreaID,
	})
	if err != nil {
		return SkillItem{}, ErrInternal
	}
	u.notify.EntityChanged("skill", "created", created.ID)
	return SkillItem{ID: created.ID, Name: created.Name, Purpose: created.Purpose, CategoryID: created.CategoryID, AreaID: created.AreaID}, nil
}

func (u *Catalog) UpdateSkill(ctx context.Context, id int64, in SkillInput) (SkillItem, error) {
	if err := u.validateSkillInput(ctx, in); err != nil {
		return SkillItem{}, err
	}
	updated, err := u.skills.UpdateSkill(ctx, skill.Skill{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		Purpose:    in.Purpose,
		CategoryID: in.CategoryID,
		AreaID:     in.AreaID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}
	u.notify.EntityChanged("skill", "updated", id)
	return SkillItem{ID: updated.ID, Name: updated.Name, Purpose: updated.Purpose, CategoryID: updated.CategoryID, AreaID: updated.AreaID}, nil
}

func (u *Catalog) DeleteSkill(ctx context.Context, id int64) error {
	if err := u.skills.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	u.notify.EntityChanged("skill", "deleted", id)
	return nil
}

func (u *Catalog) validateSkillInput(ctx context.Context, in SkillInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if _, err := u.skills.GetCategoryByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return ErrInternal
	}
	return nil
}
