package seeder

import (
	"context"
	"fmt"

	"talent-hub/internal/database"
)

// Seeder mutates the snapshot document in place. Seeders must be idempotent:
// running them against an already-seeded document is a no-op.
type Seeder interface {
	Name() string
	Run(ctx context.Context, doc *database.Snapshot) error
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, doc *database.Snapshot) error {
	if doc == nil {
		return fmt.Errorf("nil snapshot")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, doc); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
