package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TutorHandler struct {
	uc usecase.TutorUsecase
}

func NewTutorHandler(uc usecase.TutorUsecase) *TutorHandler {
	return &TutorHandler{uc: uc}
}

func (h *TutorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/:id/tutors/", h.ListForSkill)
	r.Get("/tutors/:user_id/", h.Profile)
}

func (h *TutorHandler) ListForSkill(c fiber.Ctx) error {
	skillID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	result, err := h.uc.TutorsForSkill(c.Context(), skillID, page)
	if err != nil {
		return mapTutorError(err)
	}

	res := dto.TutorPageResponse{
		Tutors:   toTutorResponses(result.Tutors),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *TutorHandler) Profile(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Tutor not found", nil, err)
	}

	profile, err := h.uc.Profile(c.Context(), userID)
	if err != nil {
		return mapTutorError(err)
	}

	res := dto.TutorProfileResponse{
		UserID:        profile.UserID,
		DisplayName:   profile.DisplayName,
		Skills:        toTutorResponses(profile.Skills),
		OverallRating: profile.OverallRating,
		TotalSessions: profile.TotalSessions,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapTutorError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Tutor not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func toTutorResponses(items []usecase.TutorItem) []dto.TutorResponse {
	out := make([]dto.TutorResponse, 0, len(items))
	for _, t := range items {
		out = append(out, dto.TutorResponse{
			OfferedSkillID:     t.OfferedSkillID,
			UserID:             t.UserID,
			DisplayName:        t.DisplayName,
			SkillID:            t.SkillID,
			SkillName:          t.SkillName,
			ProficiencyLevel:   t.ProficiencyLevel,
			YearsExperience:    t.YearsExperience,
			TeachingPreference: t.TeachingPreference,
			AverageRating:      t.AverageRating,
			TotalSessions:      t.TotalSessions,
		})
	}
	return out
}
