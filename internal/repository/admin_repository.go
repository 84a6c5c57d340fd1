package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/admin"

	"github.com/google/uuid"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error)
	GetByEmail(ctx context.Context, email string) (admin.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a admin.Admin) error
}

type SnapshotAdminRepository struct {
	store *Store
}

func NewSnapshotAdminRepository(store *Store) *SnapshotAdminRepository {
	return &SnapshotAdminRepository{store: store}
}

func (r *SnapshotAdminRepository) GetByID(_ context.Context, id uuid.UUID) (admin.Admin, error) {
	var out admin.Admin
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, a := range doc.Admins {
			if a.ID == id {
				out = a
				return nil
			}
		}
		return ErrAdminNotFound
	})
	return out, err
}

func (r *SnapshotAdminRepository) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	var out admin.Admin
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, a := range doc.Admins {
			if strings.EqualFold(a.Email, email) {
				out = a
				return nil
			}
		}
		return ErrAdminNotFound
	})
	return out, err
}

func (r *SnapshotAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, ErrAdminNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SnapshotAdminRepository) Create(ctx context.Context, in admin.Admin) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for _, a := range doc.Admins {
			if strings.EqualFold(a.Email, in.Email) {
				return errors.New("admin email already registered")
			}
		}
		if in.CreatedAt.IsZero() {
			in.CreatedAt = time.Now().UTC()
		}
		doc.Admins = append(doc.Admins, in)
		return nil
	})
}
