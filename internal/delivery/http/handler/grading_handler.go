package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GradingHandler struct {
	uc usecase.GradingUsecase
}

type addGradingRequest struct {
	SkillID int64  `json:"skill_id"`
	Level   string `json:"level"`
	ScaleID *int64 `json:"scale_id"`
}

type updateGradingRequest struct {
	Level string `json:"level"`
}

func NewGradingHandler(uc usecase.GradingUsecase) *GradingHandler {
	return &GradingHandler{uc: uc}
}

func (h *GradingHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/members/:id/gradings", h.List)
	guarded.Post("/members/:id/gradings", h.Add)
	guarded.Put("/members/:id/gradings/:grading_id", h.Update)
	guarded.Delete("/members/:id/gradings/:grading_id", h.Remove)
}

func (h *GradingHandler) List(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.ListGradings(c.Context(), memberID)
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.GradingResponse, 0, len(items))
	for _, g := range items {
		out = append(out, dto.NewGradingResponse(g))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *GradingHandler) Add(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req addGradingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	item, err := h.uc.AddGrading(c.Context(), memberID, usecase.AddGradingInput{
		SkillID: req.SkillID,
		Level:   req.Level,
		ScaleID: req.ScaleID,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewGradingResponse(item))
}

func (h *GradingHandler) Update(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	gradingID, err := pathID(c, "grading_id")
	if err != nil {
		return err
	}
	var req updateGradingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	item, err := h.uc.UpdateGrading(c.Context(), memberID, gradingID, req.Level)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGradingResponse(item))
}

func (h *GradingHandler) Remove(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	gradingID, err := pathID(c, "grading_id")
	if err != nil {
		return err
	}
	if err := h.uc.RemoveGrading(c.Context(), memberID, gradingID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
