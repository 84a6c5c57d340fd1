package usecase

import (
	"context"
	"fmt"
	"time"

	"talent-hub/internal/domain/analytics"
	"talent-hub/internal/repository"
)

// AnalyticsCache is the subset of the redis cache the analytics usecase needs.
// A nil cache means every lookup is a miss.
type AnalyticsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type StatsOverview struct {
	ByKnowledgeArea []analytics.GroupStat `json:"by_knowledge_area"`
	ByCategory      []analytics.GroupStat `json:"by_category"`
	TopSkills       []analytics.GroupStat `json:"top_skills"`
}

type SkillHighlights struct {
	Strengths []analytics.SkillShare `json:"strengths"`
	Gaps      []analytics.SkillShare `json:"gaps"`
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context, f analytics.Filter) (StatsOverview, error)
	Highlights(ctx context.Context) (SkillHighlights, error)
	MemberRadar(ctx context.Context, memberID int64) ([]analytics.GroupStat, error)
}

type Analytics struct {
	repo    repository.AnalyticsRepository
	members repository.MemberRepository
	cache   AnalyticsCache
	ttl     time.Duration
}

func NewAnalyticsUsecase(repo repository.AnalyticsRepository, members repository.MemberRepository, cache AnalyticsCache, ttl time.Duration) *Analytics {
	return &Analytics{repo: repo, members: members, cache: cache, ttl: ttl}
}

func (u *Analytics) Overview(ctx context.Context, f analytics.Filter) (StatsOverview, error) {
	key := fmt.Sprintf("analytics:overview:%s:%d:%d", f.Tier, f.AreaID, f.CategoryID)

	var cached StatsOverview
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := u.repo.CollectRows(ctx)
	if err != nil {
		return StatsOverview{}, ErrInternal
	}
	// Area and category filters only narrow the individual-skills view;
	// tier applies to all three.
	tierOnly := analytics.Filter{Tier: f.Tier}
	out := StatsOverview{
		ByKnowledgeArea: analytics.ByKnowledgeArea(rows, tierOnly),
		ByCategory:      analytics.ByCategory(rows, tierOnly),
		TopSkills:       analytics.BySkill(rows, f),
	}
	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Analytics) Highlights(ctx context.Context) (SkillHighlights, error) {
	const key = "analytics:highlights"

	var cached SkillHighlights
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := u.repo.CollectRows(ctx)
	if err != nil {
		return SkillHighlights{}, ErrInternal
	}
	total, err := u.repo.TotalMembers(ctx)
	if err != nil {
		return SkillHighlights{}, ErrInternal
	}
	out := SkillHighlights{
		Strengths: analytics.Strengths(rows, total),
		Gaps:      analytics.Gaps(rows, total),
	}
	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Analytics) MemberRadar(ctx context.Context, memberID int64) ([]analytics.GroupStat, error) {
	if _, err := u.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}

	key := fmt.Sprintf("analytics:radar:%d", memberID)

	var cached []analytics.GroupStat
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := u.repo.CollectRows(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := analytics.MemberRadar(rows, memberID)
	u.cacheSet(ctx, key, out)
	return out, nil
}

// Cache failures are never surfaced; the engine recomputes from the snapshot.

func (u *Analytics) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	return err == nil && hit
}

func (u *Analytics) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	_ = u.cache.SetJSON(ctx, key, value, u.ttl)
}
