package repository

import (
	"context"
	"errors"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/member"
)

var (
	ErrGradingNotFound = errors.New("grading not found")
	ErrGradingExists   = errors.New("member already graded for skill")
)

type GradingRepository interface {
	FindByMemberID(ctx context.Context, memberID int64) ([]member.Grading, error)
	FindByMemberAndSkill(ctx context.Context, memberID, skillID int64) (member.Grading, error)
	Create(ctx context.Context, g member.Grading) (member.Grading, error)
	Update(ctx context.Context, g member.Grading) (member.Grading, error)
	Delete(ctx context.Context, memberID, id int64) error
}

type SnapshotGradingRepository struct {
	store *Store
}

func NewSnapshotGradingRepository(store *Store) *SnapshotGradingRepository {
	return &SnapshotGradingRepository{store: store}
}

func (r *SnapshotGradingRepository) FindByMemberID(_ context.Context, memberID int64) ([]member.Grading, error) {
	var out []member.Grading
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, g := range doc.Gradings {
			if g.MemberID == memberID {
				out = append(out, g)
			}
		}
		return nil
	})
	return out, err
}

func (r *SnapshotGradingRepository) FindByMemberAndSkill(_ context.Context, memberID, skillID int64) (member.Grading, error) {
	var out member.Grading
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, g := range doc.Gradings {
			if g.MemberID == memberID && g.SkillID == skillID {
				out = g
				return nil
			}
		}
		return ErrGradingNotFound
	})
	return out, err
}

func (r *SnapshotGradingRepository) Create(ctx context.Context, in member.Grading) (member.Grading, error) {
	var out member.Grading
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		if !memberExists(doc, in.MemberID) {
			return ErrMemberNotFound
		}
		for _, g := range doc.Gradings {
			if g.MemberID == in.MemberID && g.SkillID == in.SkillID {
				return ErrGradingExists
			}
		}
		now := time.Now().UTC()
		in.ID = doc.NextID("gradings")
		in.CreatedAt = now
		in.UpdatedAt = now
		doc.Gradings = append(doc.Gradings, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotGradingRepository) Update(ctx context.Context, in member.Grading) (member.Grading, error) {
	var out member.Grading
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, g := range doc.Gradings {
			if g.ID == in.ID && g.MemberID == in.MemberID {
				in.SkillID = g.SkillID
				in.CreatedAt = g.CreatedAt
				in.UpdatedAt = time.Now().UTC()
				doc.Gradings[i] = in
				out = in
				return nil
			}
		}
		return ErrGradingNotFound
	})
	return out, err
}

func (r *SnapshotGradingRepository) Delete(ctx context.Context, memberID, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, g := range doc.Gradings {
			if g.ID == id && g.MemberID == memberID {
				doc.Gradings = append(doc.Gradings[:i], doc.Gradings[i+1:]...)
				return nil
			}
		}
		return ErrGradingNotFound
	})
}
