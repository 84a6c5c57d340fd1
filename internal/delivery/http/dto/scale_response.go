package dto

import "talent-hub/internal/usecase"

type ScaleResponse struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Levels []string `json:"levels"`
}

func NewScaleResponse(s usecase.ScaleItem) ScaleResponse {
	return ScaleResponse{ID: s.ID, Name: s.Name, Kind: string(s.Kind), Levels: s.Levels}
}
