package handler

import (
	"context"
	"time"

	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ProfileHandler serves the member-owned sub-record lists. Reads go through
// the member detail endpoint; this handler only mutates.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type assignmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type roleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type appreciationRequest struct {
	Author  string    `json:"author"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

type feedbackRequest struct {
	Author  string    `json:"author"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type engagementRequest struct {
	ClientID  int64      `json:"client_id"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(guarded fiber.Router) {
	guarded.Post("/members/:id/assignments", h.AddAssignment)
	guarded.Put("/members/:id/assignments/:record_id", h.UpdateAssignment)
	guarded.Delete("/members/:id/assignments/:record_id", h.DeleteAssignment)

	guarded.Post("/members/:id/roles", h.AddRole)
	guarded.Put("/members/:id/roles/:record_id", h.UpdateRole)
	guarded.Delete("/members/:id/roles/:record_id", h.DeleteRole)

	guarded.Post("/members/:id/appreciations", h.AddAppreciation)
	guarded.Put("/members/:id/appreciations/:record_id", h.UpdateAppreciation)
	guarded.Delete("/members/:id/appreciations/:record_id", h.DeleteAppreciation)

	guarded.Post("/members/:id/feedback", h.AddFeedback)
	guarded.Put("/members/:id/feedback/:record_id", h.UpdateFeedback)
	guarded.Delete("/members/:id/feedback/:record_id", h.DeleteFeedback)

	guarded.Post("/members/:id/engagements", h.AddEngagement)
	guarded.Put("/members/:id/engagements/:record_id", h.UpdateEngagement)
	guarded.Delete("/members/:id/engagements/:record_id", h.DeleteEngagement)
}

func (h *ProfileHandler) AddAssignment(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[assignmentRequest](c)
	if err != nil {
		return err
	}
	out, err := h.uc.AddAssignment(c.Context(), memberID, usecase.AssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *ProfileHandler) UpdateAssignment(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[assignmentRequest](c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	out, err := h.uc.UpdateAssignment(c.Context(), memberID, recordID, usecase.AssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) DeleteAssignment(c fiber.Ctx) error {
	return h.deleteRecord(c, h.uc.DeleteAssignment)
}

func (h *ProfileHandler) AddRole(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[roleRequest](c)
	if err != nil {
		return err
	}
	out, err := h.uc.AddRole(c.Context(), memberID, usecase.RoleInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *ProfileHandler) UpdateRole(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[roleRequest](c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	out, err := h.uc.UpdateRole(c.Context(), memberID, recordID, usecase.RoleInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) DeleteRole(c fiber.Ctx) error {
	return h.deleteRecord(c, h.uc.DeleteRole)
}

func (h *ProfileHandler) AddAppreciation(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[appreciationRequest](c)
	if err != nil {
		return err
	}
	out, err := h.uc.AddAppreciation(c.Context(), memberID, usecase.AppreciationInput{
		Author:  req.Author,
		Message: req.Message,
		Date:    req.Date,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *ProfileHandler) UpdateAppreciation(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[appreciationRequest](c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	out, err := h.uc.UpdateAppreciation(c.Context(), memberID, recordID, usecase.AppreciationInput{
		Author:  req.Author,
		Message: req.Message,
		Date:    req.Date,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) DeleteAppreciation(c fiber.Ctx) error {
	return h.deleteRecord(c, h.uc.DeleteAppreciation)
}

func (h *ProfileHandler) AddFeedback(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[feedbackRequest](c)
	if err != nil {
		return err
	}
	out, err := h.uc.AddFeedback(c.Context(), memberID, usecase.FeedbackInput{
		Author:  req.Author,
		Comment: req.Comment,
		Date:    req.Date,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *ProfileHandler) UpdateFeedback(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[feedbackRequest](c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	out, err := h.uc.UpdateFeedback(c.Context(), memberID, recordID, usecase.FeedbackInput{
		Author:  req.Author,
		Comment: req.Comment,
		Date:    req.Date,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) DeleteFeedback(c fiber.Ctx) error {
	return h.deleteRecord(c, h.uc.DeleteFeedback)
}

func (h *ProfileHandler) AddEngagement(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[engagementRequest](c)
	if err != nil {
		return err
	}
	out, err := h.uc.AddEngagement(c.Context(), memberID, usecase.EngagementInput{
		ClientID:  req.ClientID,
		Role:      req.Role,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *ProfileHandler) UpdateEngagement(c fiber.Ctx) error {
	memberID, req, err := bindProfileRequest[engagementRequest](c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	out, err := h.uc.UpdateEngagement(c.Context(), memberID, recordID, usecase.EngagementInput{
		ClientID:  req.ClientID,
		Role:      req.Role,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) DeleteEngagement(c fiber.Ctx) error {
	return h.deleteRecord(c, h.uc.DeleteEngagement)
}

func (h *ProfileHandler) deleteRecord(c fiber.Ctx, del func(ctx context.Context, memberID, id int64) error) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "record_id")
	if err != nil {
		return err
	}
	if err := del(c.Context(), memberID, recordID); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func bindProfileRequest[T any](c fiber.Ctx) (int64, T, error) {
	var req T
	memberID, err := pathID(c, "id")
	if err != nil {
		return 0, req, err
	}
	if err := c.Bind().Body(&req); err != nil {
		return 0, req, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return memberID, req, nil
}
