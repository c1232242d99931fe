package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OfferedSkillHandler struct {
	uc usecase.OfferedSkillUsecase
}

type offeredSkillRequest struct {
	CategoryID         uuid.UUID `json:"category_id"`
	SkillID            uuid.UUID `json:"skill_id"`
	ProficiencyLevel   string    `json:"proficiency_level"`
	Description        string    `json:"description"`
	YearsExperience    int       `json:"years_experience"`
	TeachingPreference string    `json:"teaching_preference"`
}

func NewOfferedSkillHandler(uc usecase.OfferedSkillUsecase) *OfferedSkillHandler {
	return &OfferedSkillHandler{uc: uc}
}

func (h *OfferedSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills/offered")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/toggle", h.Toggle)
}

func (h *OfferedSkillHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapSkillRecordError(err)
	}

	res := make([]dto.OfferedSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toOfferedSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *OfferedSkillHandler) Add(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req offeredSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Add(c.Context(), userID, toOfferedSkillInput(req))
	if err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Offered skill created", toOfferedSkillResponse(created))
}

func (h *OfferedSkillHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}

	var req offeredSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), userID, id, toOfferedSkillInput(req))
	if err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toOfferedSkillResponse(updated))
}

func (h *OfferedSkillHandler) Delete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *OfferedSkillHandler) Toggle(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}

	active, err := h.uc.ToggleActive(c.Context(), userID, id)
	if err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ToggleResponse{ID: id, IsActive: active})
}

// mapSkillRecordError is shared by the offered and desired handlers;
// both usecases speak the same error vocabulary.
func mapSkillRecordError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Message, fiber.Map{"kind": vErr.Kind}, err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown category", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toOfferedSkillInput(req offeredSkillRequest) usecase.OfferedSkillInput {
	return usecase.OfferedSkillInput{
		CategoryID:         req.CategoryID,
		SkillID:            req.SkillID,
		ProficiencyLevel:   req.ProficiencyLevel,
		Description:        req.Description,
		YearsExperience:    req.YearsExperience,
		TeachingPreference: req.TeachingPreference,
	}
}

func toOfferedSkillResponse(it usecase.OfferedSkillItem) dto.OfferedSkillResponse {
	return dto.OfferedSkillResponse{
		ID:                 it.ID,
		SkillID:            it.SkillID,
		SkillName:          it.SkillName,
		CategoryID:         it.CategoryID,
		CategoryName:       it.CategoryName,
		ProficiencyLevel:   it.ProficiencyLevel,
		Description:        it.Description,
		YearsExperience:    it.YearsExperience,
		TeachingPreference: it.TeachingPreference,
		IsActive:           it.IsActive,
		AverageRating:      it.AverageRating,
		TotalSessions:      it.TotalSessions,
	}
}
