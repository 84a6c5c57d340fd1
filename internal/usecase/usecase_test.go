package usecase

import (
	"context"
	"testing"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/member"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/repository"
)

type memoryBackend struct {
	doc *database.Snapshot
}

func (m *memoryBackend) Load(context.Context) (*database.Snapshot, error) {
	if m.doc == nil {
		return database.NewSnapshot(), nil
	}
	return m.doc, nil
}

func (m *memoryBackend) Save(_ context.Context, snap *database.Snapshot) error {
	c, err := snap.Clone()
	if err != nil {
		return err
	}
	m.doc = c
	return nil
}

func (m *memoryBackend) Ping(context.Context) error { return nil }

func (m *memoryBackend) Close() error { return nil }

type env struct {
	scales    *Scale
	catalog   *Catalog
	clients   *Client
	members   *Member
	profiles  *Profile
	gradings  *Grading
	goals     *Goal
	analytics *Analytics
}

func newEnv(t *testing.T, strict bool) *env {
	t.Helper()

	store, err := repository.Open(context.Background(), &memoryBackend{}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	scaleRepo := repository.NewSnapshotScaleRepository(store)
	skillRepo := repository.NewSnapshotSkillRepository(store)
	clientRepo := repository.NewSnapshotClientRepository(store)
	memberRepo := repository.NewSnapshotMemberRepository(store)
	profileRepo := repository.NewSnapshotProfileRepository(store)
	gradingRepo := repository.NewSnapshotGradingRepository(store)
	goalRepo := repository.NewSnapshotGoalRepository(store)
	analyticsRepo := repository.NewSnapshotAnalyticsRepository(store)

	grading := NewGradingUsecase(gradingRepo, skillRepo, scaleRepo, memberRepo, nil, strict)
	return &env{
		scales:    NewScaleUsecase(scaleRepo, nil),
		catalog:   NewCatalogUsecase(skillRepo, scaleRepo, nil),
		clients:   NewClientUsecase(clientRepo, nil),
		members:   NewMemberUsecase(memberRepo, profileRepo, goalRepo, grading, nil),
		profiles:  NewProfileUsecase(profileRepo, clientRepo, nil),
		gradings:  grading,
		goals:     NewGoalUsecase(goalRepo, gradingRepo, grading, nil),
		analytics: NewAnalyticsUsecase(analyticsRepo, memberRepo, nil, 0),
	}
}

func qualitativeValues(labels ...string) []scale.Value {
	out := make([]scale.Value, 0, len(labels))
	for _, l := range labels {
		out = append(out, scale.Value{Label: l})
	}
	return out
}

// seedCatalog builds one scale, area, category and skill and returns the
// skill id.
func (e *env) seedCatalog(t *testing.T, levels ...string) int64 {
	t.Helper()
	ctx := context.Background()

	sc, err := e.scales.CreateScale(ctx, ScaleInput{
		Name:   "Proficiency",
		Kind:   scale.KindQualitative,
		Values: qualitativeValues(levels...),
	})
	if err != nil {
		t.Fatalf("create scale: %v", err)
	}
	area, err := e.catalog.CreateArea(ctx, "Engineering")
	if err != nil {
		t.Fatalf("create area: %v", err)
	}
	cat, err := e.catalog.CreateCategory(ctx, CategoryInput{Name: "Languages", ScaleID: sc.ID})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	sk, err := e.catalog.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: cat.ID, AreaID: area.ID})
	if err != nil {
		t.Fatalf("create skill: %v", err)
	}
	return sk.ID
}

func (e *env) seedMember(t *testing.T, name, email string) int64 {
	t.Helper()
	m, err := e.members.CreateMember(context.Background(), MemberInput{
		Name:     name,
		Email:    email,
		HireDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Tier:     member.TierSolver,
	})
	if err != nil {
		t.Fatalf("create member %s: %v", name, err)
	}
	return m.Member.ID
}
