package repository

import (
	"context"
	"errors"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/member"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	List(ctx context.Context) ([]member.Client, error)
	Directory(ctx context.Context) (map[int64]string, error)
	Create(ctx context.Context, c member.Client) (member.Client, error)
	Update(ctx context.Context, c member.Client) (member.Client, error)
	Delete(ctx context.Context, id int64) error
}

type SnapshotClientRepository struct {
	store *Store
}

func NewSnapshotClientRepository(store *Store) *SnapshotClientRepository {
	return &SnapshotClientRepository{store: store}
}

func (r *SnapshotClientRepository) List(_ context.Context) ([]member.Client, error) {
	var out []member.Client
	err := r.store.View(func(doc *database.Snapshot) error {
		out = append(out, doc.Clients...)
		return nil
	})
	return out, err
}

func (r *SnapshotClientRepository) Directory(_ context.Context) (map[int64]string, error) {
	out := make(map[int64]string)
	err := r.store.View(func(doc *database.Snapshot) error {
		for _, c := range doc.Clients {
			out[c.ID] = c.Name
		}
		return nil
	})
	return out, err
}

func (r *SnapshotClientRepository) Create(ctx context.Context, in member.Client) (member.Client, error) {
	var out member.Client
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		in.ID = doc.NextID("clients")
		doc.Clients = append(doc.Clients, in)
		out = in
		return nil
	})
	return out, err
}

func (r *SnapshotClientRepository) Update(ctx context.Context, in member.Client) (member.Client, error) {
	var out member.Client
	err := r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, c := range doc.Clients {
			if c.ID == in.ID {
				doc.Clients[i] = in
				out = in
				return nil
			}
		}
		return ErrClientNotFound
	})
	return out, err
}

// Delete removes the client only. Engagement entries keep their client id and
// resolve to "Unknown Client" from then on.
func (r *SnapshotClientRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Update(ctx, func(doc *database.Snapshot) error {
		for i, c := range doc.Clients {
			if c.ID == id {
				doc.Clients = append(doc.Clients[:i], doc.Clients[i+1:]...)
				return nil
			}
		}
		return ErrClientNotFound
	})
}
