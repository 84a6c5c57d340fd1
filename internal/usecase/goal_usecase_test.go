package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"talent-hub/internal/domain/goal"
)

func TestValidTargetsForGradedMember(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Advanced"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}

	targets, err := e.goals.ValidTargets(ctx, memberID, skillID)
	if err != nil {
		t.Fatalf("valid targets: %v", err)
	}
	want := []string{"Advanced", "Expert"}
	if !reflect.DeepEqual(targets, want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
}

func TestValidTargetsForUngradedMember(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Rio", "rio@example.com")

	targets, err := e.goals.ValidTargets(ctx, memberID, skillID)
	if err != nil {
		t.Fatalf("valid targets: %v", err)
	}
	want := []string{"Beginner"}
	if !reflect.DeepEqual(targets, want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
}

func TestValidTargetsForStaleLevel(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Sam", "sam@example.com")

	// A level recorded before the scale was reworked no longer appears on it.
	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Ninja"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}

	targets, err := e.goals.ValidTargets(ctx, memberID, skillID)
	if err != nil {
		t.Fatalf("valid targets: %v", err)
	}
	want := []string{"Beginner", "Intermediate", "Advanced", "Expert"}
	if !reflect.DeepEqual(targets, want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
}

func TestValidTargetsUnknownSkill(t *testing.T) {
	e := newEnv(t, false)
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.goals.ValidTargets(context.Background(), memberID, 404); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestCreateGoalRejectsUnreachableTarget(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Advanced"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}

	_, err := e.goals.CreateGoal(ctx, memberID, CreateGoalInput{SkillID: skillID, TargetLevel: "Beginner"})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestCreateGoalRejectsNonInitialStatus(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	for _, status := range []goal.Status{goal.StatusComplete, goal.StatusOnHold} {
		_, err := e.goals.CreateGoal(ctx, memberID, CreateGoalInput{
			SkillID:     skillID,
			TargetLevel: "Beginner",
			Status:      status,
		})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("status %q: expected ErrInvalidTransition, got %v", status, err)
		}
	}

	created, err := e.goals.CreateGoal(ctx, memberID, CreateGoalInput{
		SkillID:     skillID,
		TargetLevel: "Beginner",
		Status:      goal.StatusActive,
	})
	if err != nil {
		t.Fatalf("create active goal: %v", err)
	}
	if created.Status != goal.StatusActive {
		t.Fatalf("status = %q, want %q", created.Status, goal.StatusActive)
	}
}

func TestGoalLifecycle(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Advanced"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}

	created, err := e.goals.CreateGoal(ctx, memberID, CreateGoalInput{
		SkillID:     skillID,
		Description: "close the last gap",
		TargetLevel: "Expert",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if created.Status != goal.StatusPending {
		t.Fatalf("new goal status = %q, want %q", created.Status, goal.StatusPending)
	}

	// Pending cannot jump straight to Complete.
	complete := goal.StatusComplete
	if _, err := e.goals.UpdateGoal(ctx, memberID, created.ID, UpdateGoalInput{Status: &complete}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	active := goal.StatusActive
	if _, err := e.goals.UpdateGoal(ctx, memberID, created.ID, UpdateGoalInput{Status: &active}); err != nil {
		t.Fatalf("activate goal: %v", err)
	}
	updated, err := e.goals.UpdateGoal(ctx, memberID, created.ID, UpdateGoalInput{Status: &complete})
	if err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	if updated.Status != goal.StatusComplete {
		t.Fatalf("goal status = %q, want %q", updated.Status, goal.StatusComplete)
	}

	if err := e.goals.DeleteGoal(ctx, memberID, created.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if err := e.goals.DeleteGoal(ctx, memberID, created.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestUpdateGoalRevalidatesTarget(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")

	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Intermediate"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}
	created, err := e.goals.CreateGoal(ctx, memberID, CreateGoalInput{SkillID: skillID, TargetLevel: "Expert"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	below := "Beginner"
	if _, err := e.goals.UpdateGoal(ctx, memberID, created.ID, UpdateGoalInput{TargetLevel: &below}); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	ok := "Advanced"
	updated, err := e.goals.UpdateGoal(ctx, memberID, created.ID, UpdateGoalInput{TargetLevel: &ok})
	if err != nil {
		t.Fatalf("retarget goal: %v", err)
	}
	if updated.TargetLevel != "Advanced" {
		t.Fatalf("target = %q, want Advanced", updated.TargetLevel)
	}
}
