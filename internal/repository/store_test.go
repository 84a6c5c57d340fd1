package repository

import (
	"context"
	"errors"
	"testing"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/goal"
	"talent-hub/internal/domain/member"
)

type memoryBackend struct {
	snap    *database.Snapshot
	saves   int
	saveErr error
}

func (b *memoryBackend) Load(context.Context) (*database.Snapshot, error) {
	if b.snap == nil {
		return database.NewSnapshot(), nil
	}
	return b.snap, nil
}

func (b *memoryBackend) Save(_ context.Context, snap *database.Snapshot) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.saves++
	b.snap = snap
	return nil
}

func (b *memoryBackend) Ping(context.Context) error { return nil }
func (b *memoryBackend) Close() error               { return nil }

func newTestStore(t *testing.T) (*Store, *memoryBackend) {
	t.Helper()
	backend := &memoryBackend{}
	store, err := Open(context.Background(), backend, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, backend
}

func TestUpdate_PersistFailureLeavesStateUntouched(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()
	members := NewSnapshotMemberRepository(store)

	backend.saveErr = errors.New("disk full")
	_, err := members.Create(ctx, member.Member{Name: "Dana", Email: "dana@example.com"})
	if err == nil {
		t.Fatalf("expected persist error")
	}

	backend.saveErr = nil
	got, err := members.List(ctx, MemberFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("failed write must not leak into state, got %+v", got)
	}
}

func TestSequences_AreMonotonicPerEntity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	members := NewSnapshotMemberRepository(store)

	a, err := members.Create(ctx, member.Member{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := members.Create(ctx, member.Member{Name: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", a.ID, b.ID)
	}

	if err := members.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c, err := members.Create(ctx, member.Member{Name: "C", Email: "c@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 3 {
		t.Fatalf("ids must never be reused, got %d", c.ID)
	}
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	members := NewSnapshotMemberRepository(store)

	if _, err := members.Create(ctx, member.Member{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := members.Create(ctx, member.Member{Name: "B", Email: "A@Example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestDelete_CascadesToEverythingOwned(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	members := NewSnapshotMemberRepository(store)
	profiles := NewSnapshotProfileRepository(store)
	gradings := NewSnapshotGradingRepository(store)
	goals := NewSnapshotGoalRepository(store)

	m, err := members.Create(ctx, member.Member{Name: "Dana", Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	keep, err := members.Create(ctx, member.Member{Name: "Kim", Email: "kim@example.com"})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}

	if _, err := gradings.Create(ctx, member.Grading{MemberID: m.ID, SkillID: 1, Level: "Expert"}); err != nil {
		t.Fatalf("create grading: %v", err)
	}
	if _, err := gradings.Create(ctx, member.Grading{MemberID: keep.ID, SkillID: 1, Level: "Beginner"}); err != nil {
		t.Fatalf("create grading: %v", err)
	}
	if _, err := goals.Create(ctx, goal.Goal{MemberID: m.ID, SkillID: 1, TargetLevel: "Expert", Status: goal.StatusPending}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := profiles.AddRole(ctx, member.Role{MemberID: m.ID, Name: "Tech Lead"}); err != nil {
		t.Fatalf("add role: %v", err)
	}
	if _, err := profiles.AddEngagement(ctx, member.Engagement{MemberID: m.ID, ClientID: 1}); err != nil {
		t.Fatalf("add engagement: %v", err)
	}
	if _, err := profiles.AddFeedback(ctx, member.Feedback{MemberID: m.ID, Author: "Kim", Comment: "solid"}); err != nil {
		t.Fatalf("add feedback: %v", err)
	}

	if err := members.Delete(ctx, m.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}

	if gs, _ := gradings.FindByMemberID(ctx, m.ID); len(gs) != 0 {
		t.Fatalf("gradings survived cascade: %+v", gs)
	}
	if gls, _ := goals.FindByMemberID(ctx, m.ID); len(gls) != 0 {
		t.Fatalf("goals survived cascade: %+v", gls)
	}
	if rs, _ := profiles.ListRoles(ctx, m.ID); len(rs) != 0 {
		t.Fatalf("roles survived cascade: %+v", rs)
	}
	if es, _ := profiles.ListEngagements(ctx, m.ID); len(es) != 0 {
		t.Fatalf("engagements survived cascade: %+v", es)
	}
	if fs, _ := profiles.ListFeedback(ctx, m.ID); len(fs) != 0 {
		t.Fatalf("feedback survived cascade: %+v", fs)
	}

	// The other member's data is untouched.
	if gs, _ := gradings.FindByMemberID(ctx, keep.ID); len(gs) != 1 {
		t.Fatalf("unrelated gradings affected by cascade")
	}
}

func TestMemberList_Filters(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	members := NewSnapshotMemberRepository(store)
	clients := NewSnapshotClientRepository(store)
	profiles := NewSnapshotProfileRepository(store)
	gradings := NewSnapshotGradingRepository(store)

	dana, _ := members.Create(ctx, member.Member{Name: "Dana Doe", Email: "dana@example.com", Tier: member.TierWizard})
	kim, _ := members.Create(ctx, member.Member{Name: "Kim Lee", Email: "kim@example.com", Tier: member.TierStarter})

	acme, _ := clients.Create(ctx, member.Client{Name: "Acme"})
	if _, err := profiles.AddEngagement(ctx, member.Engagement{MemberID: dana.ID, ClientID: acme.ID}); err != nil {
		t.Fatalf("add engagement: %v", err)
	}
	if _, err := gradings.Create(ctx, member.Grading{MemberID: kim.ID, SkillID: 7, Level: "Beginner"}); err != nil {
		t.Fatalf("create grading: %v", err)
	}

	byName, _ := members.List(ctx, MemberFilter{Name: "dana"})
	if len(byName) != 1 || byName[0].ID != dana.ID {
		t.Fatalf("name filter failed: %+v", byName)
	}

	byTier, _ := members.List(ctx, MemberFilter{Tier: member.TierStarter})
	if len(byTier) != 1 || byTier[0].ID != kim.ID {
		t.Fatalf("tier filter failed: %+v", byTier)
	}

	byClient, _ := members.List(ctx, MemberFilter{ClientID: acme.ID})
	if len(byClient) != 1 || byClient[0].ID != dana.ID {
		t.Fatalf("client filter failed: %+v", byClient)
	}

	bySkill, _ := members.List(ctx, MemberFilter{SkillID: 7})
	if len(bySkill) != 1 || bySkill[0].ID != kim.ID {
		t.Fatalf("skill filter failed: %+v", bySkill)
	}
}
