package handler

import (
	"talent-hub/internal/domain/analytics"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(public fiber.Router) {
	public.Get("/analytics/overview", h.Overview)
	public.Get("/analytics/highlights", h.Highlights)
	public.Get("/members/:id/analytics/radar", h.MemberRadar)
}

func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	filter := analytics.Filter{
		Tier:       c.Query("tier"),
		AreaID:     queryID(c, "area_id"),
		CategoryID: queryID(c, "category_id"),
	}
	out, err := h.uc.Overview(c.Context(), filter)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) Highlights(c fiber.Ctx) error {
	out, err := h.uc.Highlights(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) MemberRadar(c fiber.Ctx) error {
	memberID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.MemberRadar(c.Context(), memberID)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
