package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler serves the skill catalog: knowledge areas, categories and
// skills.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

type areaRequest struct {
	Name string `json:"name"`
}

type categoryRequest struct {
	Name     string `json:"name"`
	Criteria string `json:"criteria"`
	ScaleID  int64  `json:"scale_id"`
}

type skillRequest struct {
	Name       string `json:"name"`
	Purpose    string `json:"purpose"`
	CategoryID int64  `json:"category_id"`
	AreaID     int64  `json:"area_id"`
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/knowledge-areas", h.ListAreas)
	guarded.Post("/knowledge-areas", h.CreateArea)
	guarded.Put("/knowledge-areas/:id", h.UpdateArea)
	guarded.Delete("/knowledge-areas/:id", h.DeleteArea)

	public.Get("/categories", h.ListCategories)
	guarded.Post("/categories", h.CreateCategory)
	guarded.Put("/categories/:id", h.UpdateCategory)
	guarded.Delete("/categories/:id", h.DeleteCategory)

	public.Get("/skills", h.ListSkills)
	guarded.Post("/skills", h.CreateSkill)
	guarded.Put("/skills/:id", h.UpdateSkill)
	guarded.Delete("/skills/:id", h.DeleteSkill)
}

func (h *CatalogHandler) ListAreas(c fiber.Ctx) error {
	areas, err := h.uc.ListAreas(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.KnowledgeAreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, dto.NewKnowledgeAreaResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CatalogHandler) CreateArea(c fiber.Ctx) error {
	var req areaRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	created, err := h.uc.CreateArea(c.Context(), req.Name)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewKnowledgeAreaResponse(created))
}

func (h *CatalogHandler) UpdateArea(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req areaRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	updated, err := h.uc.UpdateArea(c.Context(), id, req.Name)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewKnowledgeAreaResponse(updated))
}

func (h *CatalogHandler) DeleteArea(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteArea(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.NewCategoryResponse(cat))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CatalogHandler) CreateCategory(c fiber.Ctx) error {
	var req categoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	created, err := h.uc.CreateCategory(c.Context(), usecase.CategoryInput{
		Name:     req.Name,
		Criteria: req.Criteria,
		ScaleID:  req.ScaleID,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCategoryResponse(created))
}

func (h *CatalogHandler) UpdateCategory(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	updated, err := h.uc.UpdateCategory(c.Context(), id, usecase.CategoryInput{
		Name:     req.Name,
		Criteria: req.Criteria,
		ScaleID:  req.ScaleID,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(updated))
}

func (h *CatalogHandler) DeleteCategory(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.NewSkillResponse(s))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CatalogHandler) CreateSkill(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	created, err := h.uc.CreateSkill(c.Context(), usecase.SkillInput{
		Name:       req.Name,
		Purpose:    req.Purpose,
		CategoryID: req.CategoryID,
		AreaID:     req.AreaID,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSkillResponse(created))
}

func (h *CatalogHandler) UpdateSkill(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	updated, err := h.uc.UpdateSkill(c.Context(), id, usecase.SkillInput{
		Name:       req.Name,
		Purpose:    req.Purpose,
		CategoryID: req.CategoryID,
		AreaID:     req.AreaID,
	})
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(updated))
}

func (h *CatalogHandler) DeleteSkill(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
