package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talent-hub/internal/domain/analytics"
	"talent-hub/internal/domain/scale"
)

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func seedGradedPair(t *testing.T, e *env) (skillID int64) {
	t.Helper()
	ctx := context.Background()

	skillID = e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	alice := e.seedMember(t, "Alice", "alice@example.com")
	bob := e.seedMember(t, "Bob", "bob@example.com")

	if _, err := e.gradings.AddGrading(ctx, alice, AddGradingInput{SkillID: skillID, Level: "Advanced"}); err != nil {
		t.Fatalf("grade alice: %v", err)
	}
	if _, err := e.gradings.AddGrading(ctx, bob, AddGradingInput{SkillID: skillID, Level: "Beginner"}); err != nil {
		t.Fatalf("grade bob: %v", err)
	}
	return skillID
}

func TestAnalyticsOverview(t *testing.T) {
	e := newEnv(t, false)
	seedGradedPair(t, e)

	out, err := e.analytics.Overview(context.Background(), analytics.Filter{})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(out.ByKnowledgeArea) != 1 {
		t.Fatalf("areas = %d, want 1", len(out.ByKnowledgeArea))
	}
	area := out.ByKnowledgeArea[0]
	if area.Label != "Engineering" || area.AverageScore != 50 || area.MemberCount != 2 {
		t.Fatalf("area stat = %+v", area)
	}

	if len(out.TopSkills) != 1 || out.TopSkills[0].Label != "Go" {
		t.Fatalf("top skills = %+v", out.TopSkills)
	}
}

func TestAnalyticsOverviewAreaFilterOnlyNarrowsSkills(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	seedGradedPair(t, e)

	sc, err := e.scales.CreateScale(ctx, ScaleInput{
		Name:   "Design Levels",
		Kind:   scale.KindQualitative,
		Values: qualitativeValues("Novice", "Pro"),
	})
	if err != nil {
		t.Fatalf("create scale: %v", err)
	}
	designArea, err := e.catalog.CreateArea(ctx, "Design")
	if err != nil {
		t.Fatalf("create area: %v", err)
	}
	tools, err := e.catalog.CreateCategory(ctx, CategoryInput{Name: "Tools", ScaleID: sc.ID})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	figma, err := e.catalog.CreateSkill(ctx, SkillInput{Name: "Figma", CategoryID: tools.ID, AreaID: designArea.ID})
	if err != nil {
		t.Fatalf("create skill: %v", err)
	}
	carol := e.seedMember(t, "Carol", "carol@example.com")
	if _, err := e.gradings.AddGrading(ctx, carol, AddGradingInput{SkillID: figma.ID, Level: "Pro"}); err != nil {
		t.Fatalf("grade carol: %v", err)
	}

	areas, err := e.catalog.ListAreas(ctx)
	if err != nil {
		t.Fatalf("list areas: %v", err)
	}
	var engineeringID int64
	for _, a := range areas {
		if a.Name == "Engineering" {
			engineeringID = a.ID
		}
	}
	if engineeringID == 0 {
		t.Fatal("missing Engineering area")
	}

	out, err := e.analytics.Overview(ctx, analytics.Filter{AreaID: engineeringID})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// The area filter narrows only the individual-skills view; the area and
	// category breakdowns keep every group.
	if len(out.ByKnowledgeArea) != 2 {
		t.Fatalf("areas = %+v, want both groups", out.ByKnowledgeArea)
	}
	if len(out.ByCategory) != 2 {
		t.Fatalf("categories = %+v, want both groups", out.ByCategory)
	}
	if len(out.TopSkills) != 1 || out.TopSkills[0].Label != "Go" {
		t.Fatalf("top skills = %+v, want only Go", out.TopSkills)
	}
}

func TestAnalyticsHighlights(t *testing.T) {
	e := newEnv(t, false)
	seedGradedPair(t, e)

	out, err := e.analytics.Highlights(context.Background())
	if err != nil {
		t.Fatalf("highlights: %v", err)
	}

	if len(out.Strengths) != 1 {
		t.Fatalf("strengths = %+v", out.Strengths)
	}
	if s := out.Strengths[0]; s.SkillName != "Go" || s.MemberCount != 1 || s.Percentage != 50 {
		t.Fatalf("strength = %+v", s)
	}
	if len(out.Gaps) != 1 {
		t.Fatalf("gaps = %+v", out.Gaps)
	}
	if g := out.Gaps[0]; g.SkillName != "Go" || g.MemberCount != 1 || g.Percentage != 50 {
		t.Fatalf("gap = %+v", g)
	}
}

func TestAnalyticsMemberRadar(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	skillID := e.seedCatalog(t, "Beginner", "Intermediate", "Advanced", "Expert")
	memberID := e.seedMember(t, "Dana", "dana@example.com")
	if _, err := e.gradings.AddGrading(ctx, memberID, AddGradingInput{SkillID: skillID, Level: "Expert"}); err != nil {
		t.Fatalf("add grading: %v", err)
	}

	radar, err := e.analytics.MemberRadar(ctx, memberID)
	if err != nil {
		t.Fatalf("radar: %v", err)
	}
	if len(radar) != 1 || radar[0].Label != "Languages" || radar[0].AverageScore != 100 {
		t.Fatalf("radar = %+v", radar)
	}

	if _, err := e.analytics.MemberRadar(ctx, 404); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestAnalyticsOverviewServesFromCache(t *testing.T) {
	e := newEnv(t, false)
	ctx := context.Background()

	seedGradedPair(t, e)

	cache := newFakeCache()
	e.analytics.cache = cache
	e.analytics.ttl = time.Minute

	first, err := e.analytics.Overview(ctx, analytics.Filter{})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// A third graded member changes the recomputed numbers but not the
	// cached entry.
	carol := e.seedMember(t, "Carol", "carol@example.com")
	skills, err := e.catalog.ListSkills(ctx)
	if err != nil || len(skills) == 0 {
		t.Fatalf("list skills: %v", err)
	}
	if _, err := e.gradings.AddGrading(ctx, carol, AddGradingInput{SkillID: skills[0].ID, Level: "Expert"}); err != nil {
		t.Fatalf("grade carol: %v", err)
	}

	second, err := e.analytics.Overview(ctx, analytics.Filter{})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if second.ByKnowledgeArea[0] != first.ByKnowledgeArea[0] {
		t.Fatalf("cached overview changed: %+v vs %+v", second.ByKnowledgeArea[0], first.ByKnowledgeArea[0])
	}

	cache.entries = make(map[string][]byte)
	third, err := e.analytics.Overview(ctx, analytics.Filter{})
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if third.ByKnowledgeArea[0].MemberCount != 3 {
		t.Fatalf("recomputed member count = %d, want 3", third.ByKnowledgeArea[0].MemberCount)
	}
}
