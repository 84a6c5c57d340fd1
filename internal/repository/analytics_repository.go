package repository

import (
	"context"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/analytics"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/domain/skill"
)

type AnalyticsRepository interface {
	CollectRows(ctx context.Context) ([]analytics.Row, error)
	TotalMembers(ctx context.Context) (int, error)
}

type SnapshotAnalyticsRepository struct {
	store *Store
}

func NewSnapshotAnalyticsRepository(store *Store) *SnapshotAnalyticsRepository {
	return &SnapshotAnalyticsRepository{store: store}
}

// CollectRows joins every grading with its member, skill, category, area and
// resolved scale. Gradings whose member or skill no longer exists are
// skipped; a missing or empty scale degrades the row to score 0, position -1
// rather than failing the scan.
func (r *SnapshotAnalyticsRepository) CollectRows(_ context.Context) ([]analytics.Row, error) {
	var out []analytics.Row
	err := r.store.View(func(doc *database.Snapshot) error {
		tiers := make(map[int64]string, len(doc.Members))
		for _, m := range doc.Members {
			tiers[m.ID] = string(m.Tier)
		}
		skills := make(map[int64]skill.Skill, len(doc.Skills))
		for _, s := range doc.Skills {
			skills[s.ID] = s
		}
		categories := make(map[int64]skill.Category, len(doc.Categories))
		for _, c := range doc.Categories {
			categories[c.ID] = c
		}
		areas := make(map[int64]string, len(doc.KnowledgeAreas))
		for _, a := range doc.KnowledgeAreas {
			areas[a.ID] = a.Name
		}
		scales := make(map[int64]scale.Scale, len(doc.Scales))
		for _, s := range doc.Scales {
			scales[s.ID] = s
		}

		for _, g := range doc.Gradings {
			tier, ok := tiers[g.MemberID]
			if !ok {
				continue
			}
			sk, ok := skills[g.SkillID]
			if !ok {
				continue
			}

			row := analytics.Row{
				MemberID:   g.MemberID,
				Tier:       tier,
				SkillID:    sk.ID,
				SkillName:  sk.Name,
				CategoryID: sk.CategoryID,
				AreaID:     sk.AreaID,
				AreaName:   areas[sk.AreaID],
				Position:   -1,
			}

			cat, hasCat := categories[sk.CategoryID]
			if hasCat {
				row.CategoryName = cat.Name
			}

			scaleID := int64(0)
			if g.ScaleID != nil {
				scaleID = *g.ScaleID
			} else if hasCat {
				scaleID = cat.ScaleID
			}

			if sc, ok := scales[scaleID]; ok {
				levels := sc.Levels()
				row.LevelCount = len(levels)
				row.Score = sc.Score(g.Level)
				if pos, found := sc.Position(g.Level); found {
					row.Position = pos
				}
			}

			out = append(out, row)
		}
		return nil
	})
	return out, err
}

func (r *SnapshotAnalyticsRepository) TotalMembers(_ context.Context) (int, error) {
	var n int
	err := r.store.View(func(doc *database.Snapshot) error {
		n = len(doc.Members)
		return nil
	})
	return n, err
}
