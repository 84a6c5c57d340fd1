package repository

import (
	"context"
	"errors"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/scale"
)

var ErrScaleNotFound = errors.New("scale not found")

type ScaleRepository interface {
	List(ctx context.Context) ([]scale.Scale, error)
	GetByID(ctx context.Context, id int64) (scale.Scale, error)
	Create(ctx context.Context, s scale.Scale) (scale.Scale, error)
	Update(ctx context.Context, s scale.Scale) (scale.Scale, error)
	Delete(ctx context.Context, id int64) error
}

type SnapshotScaleRepository struct {
	store *Store
}

func NewSnapshotScaleRepository(store *Store) *SnapshotScaleRepository {
	return &SnapshotScaleRepository{store: store}
}

func (r *SnapshotScaleRepository) List(_ context.Context) ([]scale.Scale, error) {
	var out []scale.Scale
	err := r.store.View(func(doc *database.Snapshot) error {
		out = append(out, doc.Scales...)
		return nil
	})
	return out, err
}

func (r *SnapshotScaleRepository) GetByID(_ context.Context, id int64) (scale.Scale, error) {
	var out scale.Scale
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, s := range doc.Scales {
			if s.ID == id {
				out = s
				return nil
			}
		}
		return ErrScaleNotFound
	})
	return out, err
}

func (r *SnapshotScaleRepository) Create(ctx context.Context, in scale.Scale) (scale.Scale, error) {
	var out scale.Scale
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		in.ID = doc.NextID("scales")
		in.CreatedAt = time.Now().UTC()
		doc.Scales = append(doc.Scales, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotScaleRepository) Update(ctx context.Context, in scale.Scale) (scale.Scale, error) {
	var out scale.Scale
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, s := range doc.Scales {
			if s.ID == in.ID {
				in.CreatedAt = s.CreatedAt
				doc.Scales[i] = in
				out = in
				return nil
			}
		}
		return ErrScaleNotFound
	})
	return out, err
}

// Delete removes the scale only. Categories and gradings that reference it
// keep their reference and degrade to "no ordering available" on read.
func (r *SnapshotScaleRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, s := range doc.Scales {
			if s.ID == id {
				doc.Scales = append(doc.Scales[:i], doc.Scales[i+1:]...)
				return nil
			}
		}
		return ErrScaleNotFound
	})
}
