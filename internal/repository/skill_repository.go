package repository

import (
	"context"
	"errors"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/skill"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrCategoryNotFound = errors.New("skill category not found")
	ErrAreaNotFound     = errors.New("knowledge area not found")
)

// SkillRow is a skill joined with its category, knowledge area and the
// category's scale id for listing.
type SkillRow struct {
	skill.Skill
	CategoryName string
	AreaName     string
	ScaleID      int64
}

type SkillRepository interface {
	ListAreas(ctx context.Context) ([]skill.KnowledgeArea, error)
	CreateArea(ctx context.Context, a skill.KnowledgeArea) (skill.KnowledgeArea, error)
	UpdateArea(ctx context.Context, a skill.KnowledgeArea) (skill.KnowledgeArea, error)
	DeleteArea(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]skill.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (skill.Category, error)
	CreateCategory(ctx context.Context, c skill.Category) (skill.Category, error)
	UpdateCategory(ctx context.Context, c skill.Category) (skill.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]SkillRow, error)
	GetSkillByID(ctx context.Context, id int64) (skill.Skill, error)
	SkillExistsByID(ctx context.Context, id int64) (bool, error)
	CreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	UpdateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type SnapshotSkillRepository struct {
	store *Store
}

func NewSnapshotSkillRepository(store *Store) *SnapshotSkillRepository {
	return &SnapshotSkillRepository{store: store}
}

func (r *SnapshotSkillRepository) ListAreas(_ context.Context) ([]skill.KnowledgeArea, error) {
	var out []skill.KnowledgeArea
	err := r.store.View(func(doc *database.Snapshot) error {
		out = append(out, doc.KnowledgeAreas...)
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) CreateArea(ctx context.Context, in skill.KnowledgeArea) (skill.KnowledgeArea, error) {
	var out skill.KnowledgeArea
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		in.ID = doc.NextID("knowledge_areas")
		doc.KnowledgeAreas = append(doc.KnowledgeAreas, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) UpdateArea(ctx context.Context, in skill.KnowledgeArea) (skill.KnowledgeArea, error) {
	var out skill.KnowledgeArea
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, a := range doc.KnowledgeAreas {
			if a.ID == in.ID {
				doc.KnowledgeAreas[i] = in
				out = in
				return nil
			}
		}
		return ErrAreaNotFound
	})
	return out, err
}

func (r *SnapshotSkillRepository) DeleteArea(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, a := range doc.KnowledgeAreas {
			if a.ID == id {
				doc.KnowledgeAreas = append(doc.KnowledgeAreas[:i], doc.KnowledgeAreas[i+1:]...)
				return nil
			}
		}
		return ErrAreaNotFound
	})
}

func (r *SnapshotSkillRepository) ListCategories(_ context.Context) ([]skill.Category, error) {
	var out []skill.Category
	err := r.store.View(func(doc *database.Snapshot) error {
		out = append(out, doc.Categories...)
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) GetCategoryByID(_ context.Context, id int64) (skill.Category, error) {
	var out skill.Category
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, c := range doc.Categories {
			if c.ID == id {
				out = c
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	return out, err
}

func (r *SnapshotSkillRepository) CreateCategory(ctx context.Context, in skill.Category) (skill.Category, error) {
	var out skill.Category
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		in.ID = doc.NextID("categories")
		doc.Categories = append(doc.Categories, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) UpdateCategory(ctx context.Context, in skill.Category) (skill.Category, error) {
	var out skill.Category
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, c := range doc.Categories {
			if c.ID == in.ID {
				doc.Categories[i] = in
				out = in
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	return out, err
}

func (r *SnapshotSkillRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, c := range doc.Categories {
			if c.ID == id {
				doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
				return nil
			}
		}
		return ErrCategoryNotFound
	})
}

func (r *SnapshotSkillRepository) ListSkills(_ context.Context) ([]SkillRow, error) {
	var out []SkillRow
	err := r.store.View(func(doc *database.Snapshot) error {
		categories := make(map[int64]skill.Category, len(doc.Categories))
		for _, c := range doc.Categories {
			categories[c.ID] = c
		}
		areas := make(map[int64]string, len(doc.KnowledgeAreas))
		for _, a := range doc.KnowledgeAreas {
			areas[a.ID] = a.Name
		}

		for _, s := range doc.Skills {
			row := SkillRow{Skill: s, AreaName: areas[s.AreaID]}
			if c, ok := categories[s.CategoryID]; ok {
				row.CategoryName = c.Name
				row.ScaleID = c.ScaleID
			}
			out = append(out, row)
		}
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) GetSkillByID(_ context.Context, id int64) (skill.Skill, error) {
	var out skill.Skill
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, s := range doc.Skills {
			if s.ID == id {
				out = s
				return nil
			}
		}
		return ErrSkillNotFound
	})
	return out, err
}

func (r *SnapshotSkillRepository) SkillExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetSkillByID(ctx, id)
	if errors.Is(err, ErrSkillNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SnapshotSkillRepository) CreateSkill(ctx context.Context, in skill.Skill) (skill.Skill, error) {
	var out skill.Skill
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		in.ID = doc.NextID("skills")
		in.CreatedAt = time.Now().UTC()
		doc.Skills = append(doc.Skills, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotSkillRepository) UpdateSkill(ctx context.Context, in skill.Skill) (skill.Skill, error) {
	var out skill.Skill
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, s := range doc.Skills {
			if s.ID == in.ID {
				in.CreatedAt = s.CreatedAt
				doc.Skills[i] = in
				out = in
				return nil
			}
		}
		return ErrSkillNotFound
	})
	return out, err
}

func (r *SnapshotSkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, s := range doc.Skills {
			if s.ID == id {
				doc.Skills = append(doc.Skills[:i], doc.Skills[i+1:]...)
				return nil
			}
		}
		return ErrSkillNotFound
	})
}
