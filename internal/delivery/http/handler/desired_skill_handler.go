package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DesiredSkillHandler struct {
	uc usecase.DesiredSkillUsecase
}

type desiredSkillRequest struct {
	CategoryID         uuid.UUID `json:"category_id"`
	SkillID            uuid.UUID `json:"skill_id"`
	Urgency            string    `json:"urgency"`
	Description        string    `json:"description"`
	CurrentLevel       string    `json:"current_level"`
	TargetLevel        string    `json:"target_level"`
	LearningPreference string    `json:"learning_preference"`
}

func NewDesiredSkillHandler(uc usecase.DesiredSkillUsecase) *DesiredSkillHandler {
	return &DesiredSkillHandler{uc: uc}
}

func (h *DesiredSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills/desired")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/toggle", h.Toggle)
}

func (h *DesiredSkillHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapSkillRecordError(err)
	}

	res := make([]dto.DesiredSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toDesiredSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *DesiredSkillHandler) Add(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req desiredSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Add(c.Context(), userID, toDesiredSkillInput(req))
	if err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Desired skill created", toDesiredSkillResponse(created))
}

func (h *DesiredSkillHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}

	var req desiredSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), userID, id, toDesiredSkillInput(req))
	if err != nil {
		return mapSkillRecordError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toDesiredSkillResponse(updated))
}

func (h *DesiredSkillHandler) Delete(c fiber.Ctx) error {
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

func (h *DesiredSkillHandler) Toggle(c fiber.Ctx) error {
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

func toDesiredSkillInput(req desiredSkillRequest) usecase.DesiredSkillInput {
	return usecase.DesiredSkillInput{
		CategoryID:         req.CategoryID,
		SkillID:            req.SkillID,
		Urgency:            req.Urgency,
		Description:        req.Description,
		CurrentLevel:       req.CurrentLevel,
		TargetLevel:        req.TargetLevel,
		LearningPreference: req.LearningPreference,
	}
}

func toDesiredSkillResponse(it usecase.DesiredSkillItem) dto.DesiredSkillResponse {
	return dto.DesiredSkillResponse{
		ID:                 it.ID,
		SkillID:            it.SkillID,
		SkillName:          it.SkillName,
		CategoryID:         it.CategoryID,
		CategoryName:       it.CategoryName,
		Urgency:            it.Urgency,
		Description:        it.Description,
		CurrentLevel:       it.CurrentLevel,
		TargetLevel:        it.TargetLevel,
		LearningPreference: it.LearningPreference,
		IsActive:           it.IsActive,
	}
}
