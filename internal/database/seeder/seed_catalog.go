package seeder

import (
	"context"
	"time"

	"talent-hub/internal/database"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/domain/skill"
)

const DefaultScaleName = "Proficiency"

type ScalesSeeder struct{}

func (ScalesSeeder) Name() string { return "scales" }

func (ScalesSeeder) Run(_ context.Context, doc *database.Snapshot) error {
	seed := []scale.Scale{
		{
			Name: DefaultScaleName,
			Kind: scale.KindQualitative,
			Values: []scale.Value{
				{Label: "Beginner"}, {Label: "Intermediate"}, {Label: "Advanced"}, {Label: "Expert"},
			},
		},
		{
			Name: "Rating 1-5",
			Kind: scale.KindNumeric,
			Values: []scale.Value{
				{Label: "1"}, {Label: "2"}, {Label: "3"}, {Label: "4"}, {Label: "5"},
			},
		},
	}

	for _, s := range seed {
		if scaleByName(doc, s.Name) != 0 {
			continue
		}
		s.ID = doc.NextID("scales")
		s.CreatedAt = time.Now().UTC()
		doc.Scales = append(doc.Scales, s)
	}
	return nil
}

type CatalogSeeder struct{}

func (CatalogSeeder) Name() string { return "catalog" }

func (CatalogSeeder) Run(_ context.Context, doc *database.Snapshot) error {
	areas := []string{"Engineering", "Data", "Design", "Delivery"}
	for _, name := range areas {
		if areaByName(doc, name) != 0 {
			continue
		}
		doc.KnowledgeAreas = append(doc.KnowledgeAreas, skill.KnowledgeArea{
			ID:   doc.NextID("knowledge_areas"),
			Name: name,
		})
	}

	scaleID := scaleByName(doc, DefaultScaleName)

	categories := []string{"Programming Languages", "Databases", "Cloud & DevOps", "Collaboration"}
	for _, name := range categories {
		if categoryByName(doc, name) != 0 {
			continue
		}
		doc.Categories = append(doc.Categories, skill.Category{
			ID:      doc.NextID("categories"),
			Name:    name,
			ScaleID: scaleID,
		})
	}

	skills := []struct {
		Name     string
		Category string
		Area     string
	}{
		{Name: "Go", Category: "Programming Languages", Area: "Engineering"},
		{Name: "TypeScript", Category: "Programming Languages", Area: "Engineering"},
		{Name: "PostgreSQL", Category: "Databases", Area: "Data"},
		{Name: "Redis", Category: "Databases", Area: "Data"},
		{Name: "Docker", Category: "Cloud & DevOps", Area: "Engineering"},
		{Name: "Kubernetes", Category: "Cloud & DevOps", Area: "Engineering"},
		{Name: "Facilitation", Category: "Collaboration", Area: "Delivery"},
	}
	for _, it := range skills {
		if skillByName(doc, it.Name) != 0 {
			continue
		}
		doc.Skills = append(doc.Skills, skill.Skill{
			ID:         doc.NextID("skills"),
			Name:       it.Name,
			CategoryID: categoryByName(doc, it.Category),
			AreaID:     areaByName(doc, it.Area),
			CreatedAt:  time.Now().UTC(),
		})
	}
	return nil
}

func scaleByName(doc *database.Snapshot, name string) int64 {
	for _, s := range doc.Scales {
		if s.Name == name {
			return s.ID
		}
	}
	return 0
}

func areaByName(doc *database.Snapshot, name string) int64 {
	for _, a := range doc.KnowledgeAreas {
		if a.Name == name {
			return a.ID
		}
	}
	return 0
}

func categoryByName(doc *database.Snapshot, name string) int64 {
	for _, c := range doc.Categories {
		if c.Name == name {
			return c.ID
		}
	}
	return 0
}

func skillByName(doc *database.Snapshot, name string) int64 {
	for _, s := range doc.Skills {
		if s.Name == name {
			return s.ID
		}
	}
	return 0
}
