package dto

import (
	"talent-hub/internal/domain/skill"
	"talent-hub/internal/usecase"
)

type KnowledgeAreaResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Criteria string `json:"criteria,omitempty"`
	ScaleID  int64  `json:"scale_id"`
}

type SkillResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Purpose      string `json:"purpose,omitempty"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	AreaID       int64  `json:"area_id"`
	AreaName     string `json:"area_name,omitempty"`
	ScaleID      int64  `json:"scale_id,omitempty"`
}

func NewKnowledgeAreaResponse(a skill.KnowledgeArea) KnowledgeAreaResponse {
	return KnowledgeAreaResponse{ID: a.ID, Name: a.Name}
}

func NewCategoryResponse(c skill.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Criteria: c.Criteria, ScaleID: c.ScaleID}
}

func NewSkillResponse(s usecase.SkillItem) SkillResponse {
	return SkillResponse{
		ID:           s.ID,
		Name:         s.Name,
		Purpose:      s.Purpose,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		AreaID:       s.AreaID,
		AreaName:     s.AreaName,
		ScaleID:      s.ScaleID,
	}
}
