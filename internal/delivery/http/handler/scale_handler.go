package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/scale"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScaleHandler struct {
	uc usecase.ScaleUsecase
}

// scaleLevelRequest accepts either a bare label or a {value, order} pair,
// matching the persisted shapes.
type scaleLevelRequest struct {
	Value string `json:"value"`
	Order *int   `json:"order"`
}

type scaleRequest struct {
	Name   string              `json:"name"`
	Kind   string              `json:"kind"`
	Levels []scaleLevelRequest `json:"levels"`
}

func NewScaleHandler(uc usecase.ScaleUsecase) *ScaleHandler {
	return &ScaleHandler{uc: uc}
}

func (h *ScaleHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/scales", h.List)
	public.Get("/scales/:id", h.Get)
	guarded.Post("/scales", h.Create)
	guarded.Put("/scales/:id", h.Update)
	guarded.Delete("/scales/:id", h.Delete)
}

func (h *ScaleHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListScales(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.ScaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.NewScaleResponse(s))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ScaleHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.uc.GetScale(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScaleResponse(item))
}

func (h *ScaleHandler) Create(c fiber.Ctx) error {
	in, err := bindScaleInput(c)
	if err != nil {
		return err
	}
	item, err := h.uc.CreateScale(c.Context(), in)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewScaleResponse(item))
}

func (h *ScaleHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	in, err := bindScaleInput(c)
	if err != nil {
		return err
	}
	item, err := h.uc.UpdateScale(c.Context(), id, in)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewScaleResponse(item))
}

func (h *ScaleHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteScale(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func bindScaleInput(c fiber.Ctx) (usecase.ScaleInput, error) {
	var req scaleRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.ScaleInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	values := make([]scale.Value, 0, len(req.Levels))
	for _, l := range req.Levels {
		values = append(values, scale.Value{Label: l.Value, Order: l.Order})
	}
	return usecase.ScaleInput{Name: req.Name, Kind: scale.Kind(req.Kind), Values: values}, nil
}
