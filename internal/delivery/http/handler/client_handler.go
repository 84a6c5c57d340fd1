package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ClientHandler struct {
	uc usecase.ClientUsecase
}

type clientRequest struct {
	Name string `json:"name"`
}

func NewClientHandler(uc usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/clients", h.List)
	guarded.Post("/clients", h.Create)
	guarded.Put("/clients/:id", h.Update)
	guarded.Delete("/clients/:id", h.Delete)
}

func (h *ClientHandler) List(c fiber.Ctx) error {
	clients, err := h.uc.ListClients(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.NewClientResponse(cl))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ClientHandler) Create(c fiber.Ctx) error {
	var req clientRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	created, err := h.uc.CreateClient(c.Context(), req.Name)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewClientResponse(created))
}

func (h *ClientHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req clientRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	updated, err := h.uc.UpdateClient(c.Context(), id, req.Name)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewClientResponse(updated))
}

func (h *ClientHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteClient(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
