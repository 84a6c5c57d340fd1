package repository

import (
	"context"
	"errors"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/goal"
)

var ErrGoalNotFound = errors.New("learning goal not found")

type GoalRepository interface {
	FindByMemberID(ctx context.Context, memberID int64) ([]goal.Goal, error)
	GetByID(ctx context.Context, memberID, id int64) (goal.Goal, error)
	Create(ctx context.Context, g goal.Goal) (goal.Goal, error)
	Update(ctx context.Context, g goal.Goal) (goal.Goal, error)
	Delete(ctx context.Context, memberID, id int64) error
}

type SnapshotGoalRepository struct {
	store *Store
}

func NewSnapshotGoalRepository(store *Store) *SnapshotGoalRepository {
	return &SnapshotGoalRepository{store: store}
}

func (r *SnapshotGoalRepository) FindByMemberID(_ context.Context, memberID int64) ([]goal.Goal, error) {
	var out []goal.Goal
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, g := range doc.Goals {
			if g.MemberID == memberID {
				out = append(out, g)
			}
		}
		return nil
	})
	return out, err
}

func (r *SnapshotGoalRepository) GetByID(_ context.Context, memberID, id int64) (goal.Goal, error) {
	var out goal.Goal
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, g := range doc.Goals {
			if g.ID == id && g.MemberID == memberID {
				out = g
				return nil
			}
		}
		return ErrGoalNotFound
	})
	return out, err
}

func (r *SnapshotGoalRepository) Create(ctx context.Context, in goal.Goal) (goal.Goal, error) {
	var out goal.Goal
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		if !memberExists(doc, in.MemberID) {
			return ErrMemberNotFound
		}
		now := time.Now().UTC()
		in.ID = doc.NextID("goals")
		in.CreatedAt = now
		in.UpdatedAt = now
		doc.Goals = append(doc.Goals, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotGoalRepository) Update(ctx context.Context, in goal.Goal) (goal.Goal, error) {
	var out goal.Goal
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, g := range doc.Goals {
			if g.ID == in.ID && g.MemberID == in.MemberID {
				in.CreatedAt = g.CreatedAt
				in.UpdatedAt = time.Now().UTC()
				doc.Goals[i] = in
				out = in
				return nil
			}
		}
		return ErrGoalNotFound
	})
	return out, err
}

func (r *SnapshotGoalRepository) Delete(ctx context.Context, memberID, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, g := range doc.Goals {
			if g.ID == id && g.MemberID == memberID {
				doc.Goals = append(doc.Goals[:i], doc.Goals[i+1:]...)
				return nil
			}
		}
		return ErrGoalNotFound
	})
}
