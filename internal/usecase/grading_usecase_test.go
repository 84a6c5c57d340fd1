package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestAddGradingStrictRejectsUnknownLevel(t *testing.T) {
	e := newEnv(t, true)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Ninja"}); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	item, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Advanced"})
	if err != nil {
		t.Fatalf("add grading: %v", err)
	}
	if item.SkillName != "Go" {
		t.Fatalf("skill name = %q, want Go", item.SkillName)
	}
	if item.Score != 75 {
		t.Fatalf("score = %v, want 75", item.Score)
	}
}

func TestAddGradingPermissiveKeepsUnknownLevel(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	item, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Ninja"})
	if err != nil {
		t.Fatalf("add grading: %v", err)
	}
	if item.Level != "Ninja" {
		t.Fatalf("level = %q, want Ninja", item.Level)
	}
	if item.Score != 0 {
		t.Fatalf("score = %v, want 0 for a level off the scale", item.Score)
	}
}

func TestAddGradingRejectsDuplicateSkill(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Beginner"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}
	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Expert"}); !errors.Is(err, ErrGradingExists) {
		t.Fatalf("expected ErrGradingExists, got %v", err)
	}
}

func TestAddGradingUnknownMemberAndSkill(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Expert")

	if _, err := e.gradings.AddGrading(ctx, 404, AddGradingInput{SkillID: skillID, Level: "Beginner"}); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}

	memberID := e.seedMember(t, "Dana", "dana@example.com")
	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: 404, Level: "Beginner"}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestUpdateAndRemoveGrading(t *testing.T) {
	e := newEnv(t, true)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	created, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Beginner"})
	if err != nil {
		t.Fatalf("add grading: %v", err)
	}

	if _, err := e.gradings.UpdateGrading(ctx, memberID, created.ID, "Ninja"); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	updated, err := e.gradings.UpdateGrading(ctx, memberID, created.ID, "Expert")
	if err != nil {
		t.Fatalf("update grading: %v", err)
	}
	if updated.Score != 100 {
		t.Fatalf("score = %v, want 100", updated.Score)
	}

	if err := e.gradings.RemoveGrading(ctx, memberID, created.ID); err != nil {
		t.Fatalf("remove grading: %v", err)
	}
	items, err := e.gradings.ListGradings(ctx, memberID)
	if err != nil {
		t.Fatalf("list gradings: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("gradings left after removal: %d", len(items))
	}
}
