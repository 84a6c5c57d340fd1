package filestore

import (
	"context"
	"path/filepath"
	"testing"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/scale"
)

func TestLoad_MissingFileYieldsEmptySnapshot(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	snap, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Version != database.SnapshotVersion {
		t.Fatalf("expected version %d, got %d", database.SnapshotVersion, snap.Version)
	}
	if len(snap.Members) != 0 || len(snap.Scales) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	snap := database.NewSnapshot()
	id := snap.NextID("scales")
	order := 1
	snap.Scales = append(snap.Scales, scale.Scale{
		ID:   id,
		Name: "Proficiency",
		Kind: scale.KindQualitative,
		Values: []scale.Value{
			{Label: "Beginner", Order: &order},
			{Label: "Expert"},
		},
	})

	if err := st.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Sequences["scales"] != 1 {
		t.Fatalf("sequence lost: %+v", got.Sequences)
	}
	if len(got.Scales) != 1 || got.Scales[0].Name != "Proficiency" {
		t.Fatalf("scale lost: %+v", got.Scales)
	}
	// The mixed value shapes must survive the round trip.
	levels := got.Scales[0].Levels()
	if len(levels) != 2 || levels[0] != "Beginner" || levels[1] != "Expert" {
		t.Fatalf("unexpected levels after round trip: %v", levels)
	}
}
