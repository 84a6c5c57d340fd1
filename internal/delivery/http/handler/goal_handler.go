package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/goal"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GoalHandler struct {
	uc usecase.GoalUsecase
}

type createGoalRequest struct {
	SkillID     int64  `json:"skill_id"`
	Description string `json:"description"`
	TargetLevel string `json:"target_level"`
	Status      string `json:"status"`
}

type updateGoalRequest struct {
	Description *string `json:"description"`
	TargetLevel *string `json:"target_level"`
	Status      *string `json:"status"`
}

func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/members/:id/goals", h.List)
	public.Get("/members/:id/goals/valid-targets", h.ValidTargets)
	guarded.Post("/members/:id/goals", h.Create)
	guarded.Put("/members/:id/goals/:goal_id", h.Update)
	guarded.Delete("/members/:id/goals/:goal_id", h.Delete)
}

func (h *GoalHandler) List(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	goals, err := h.uc.ListGoals(c.Context(), memberID)
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, dto.NewGoalResponse(g))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *GoalHandler) ValidTargets(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	skillID := queryID(c, "skill_id")
	if skillID == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing skill_id", nil, nil)
	}
	targets, err := h.uc.ValidTargets(c.Context(), memberID, skillID)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"skill_id": skillID,
		"targets":  targets,
	})
}

func (h *GoalHandler) Create(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req createGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	created, err := h.uc.CreateGoal(c.Context(), memberID, usecase.CreateGoalInput{
		SkillID:     req.SkillID,
		Description: req.Description,
		TargetLevel: req.TargetLevel,
		Status:      goal.Status(req.Status),
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewGoalResponse(created))
}

func (h *GoalHandler) Update(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	goalID, err := pathID(c, "goal_id")
	if err != nil {
		return err
	}
	var req updateGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Description == nil && req.TargetLevel == nil && req.Status == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	in := usecase.UpdateGoalInput{
		Description: req.Description,
		TargetLevel: req.TargetLevel,
	}
	if req.Status != nil {
		st := goal.Status(*req.Status)
		in.Status = &st
	}

	updated, err := h.uc.UpdateGoal(c.Context(), memberID, goalID, in)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGoalResponse(updated))
}

func (h *GoalHandler) Delete(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	goalID, err := pathID(c, "goal_id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteGoal(c.Context(), memberID, goalID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
