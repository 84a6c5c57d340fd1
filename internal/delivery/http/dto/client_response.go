package dto

import "talent-hub/internal/domain/member"

type ClientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewClientResponse(c member.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name}
}
