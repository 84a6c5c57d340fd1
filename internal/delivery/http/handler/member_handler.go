package handler

import (
	"time"

	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/member"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/repository"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MemberHandler struct {
	uc usecase.MemberUsecase
}

type memberRequest struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	HireDate   time.Time `json:"hire_date"`
	Tier       string    `json:"tier"`
	Location   string    `json:"location"`
	PictureURL string    `json:"picture_url"`
}

type updateMemberRequest struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email"`
	HireDate   *time.Time `json:"hire_date"`
	Tier       *string    `json:"tier"`
	Location   *string    `json:"location"`
	PictureURL *string    `json:"picture_url"`
}

func NewMemberHandler(uc usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

func (h *MemberHandler) RegisterRoutes(public, guarded fiber.Router) {
	public.Get("/members", h.List)
	public.Get("/members/:id", h.Get)
	guarded.Post("/members", h.Create)
	guarded.Put("/members/:id", h.Update)
	guarded.Delete("/members/:id", h.Delete)
}

func (h *MemberHandler) List(c fiber.Ctx) error {
	filter := repository.MemberFilter{
		Name:     c.Query("name"),
		Tier:     member.Tier(c.Query("tier")),
		ClientID: queryID(c, "client_id"),
		SkillID:  queryID(c, "skill_id"),
	}

	details, err := h.uc.ListMembers(c.Context(), filter)
	if err != nil {
		return usecaseError(err)
	}
	out := make([]dto.MemberResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.NewMemberResponse(d))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MemberHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.uc.GetMember(c.Context(), id)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMemberDetailResponse(detail))
}

func (h *MemberHandler) Create(c fiber.Ctx) error {
	in, err := bindMemberInput(c)
	if err != nil {
		return err
	}
	detail, err := h.uc.CreateMember(c.Context(), in)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMemberDetailResponse(detail))
}

func (h *MemberHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateMemberRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Name == nil && req.Email == nil && req.HireDate == nil &&
		req.Tier == nil && req.Location == nil && req.PictureURL == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	in := usecase.UpdateMemberInput{
		Name:       req.Name,
		Email:      req.Email,
		HireDate:   req.HireDate,
		Location:   req.Location,
		PictureURL: req.PictureURL,
	}
	if req.Tier != nil {
		tier := member.Tier(*req.Tier)
		in.Tier = &tier
	}

	detail, err := h.uc.UpdateMember(c.Context(), id, in)
	if err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMemberDetailResponse(detail))
}

func (h *MemberHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteMember(c.Context(), id); err != nil {
		return usecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func bindMemberInput(c fiber.Ctx) (usecase.MemberInput, error) {
	var req memberRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.MemberInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return usecase.MemberInput{
		Name:       req.Name,
		Email:      req.Email,
		HireDate:   req.HireDate,
		Tier:       member.Tier(req.Tier),
		Location:   req.Location,
		PictureURL: req.PictureURL,
	}, nil
}
