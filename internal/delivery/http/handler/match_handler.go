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

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills/matches")
	grp.Get("/", h.List)
	grp.Post("/:id/dismiss", h.Dismiss)
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListMatches(c.Context(), userID)
	if err != nil {
		return mapMatchError(err)
	}

	res := make([]dto.MatchResponse, 0, len(items))
	for _, m := range items {
		res = append(res, dto.MatchResponse{
			ID:          m.ID,
			TeacherID:   m.TeacherID,
			TeacherName: m.TeacherName,
			LearnerID:   m.LearnerID,
			LearnerName: m.LearnerName,
			SkillID:     m.SkillID,
			SkillName:   m.SkillName,
			CreatedAt:   m.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) Dismiss(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	}

	if err := h.uc.Dismiss(c.Context(), userID, id); err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapMatchError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
