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

type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	tutors usecase.TutorUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase, tutors usecase.TutorUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc, tutors: tutors}
}

// RegisterPublicRoutes wires the routes open to visitors. Specific
// paths must be registered before the parameterized skill detail.
func (h *CatalogHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/", h.Browse)
	r.Get("/skills/categories/", h.Categories)
	r.Get("/skills/by-category/", h.SkillsByCategory)
}

func (h *CatalogHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/trending/more/", h.TrendingMore)
	r.Get("/skills/autocomplete/", h.Autocomplete)
}

func (h *CatalogHandler) RegisterDetailRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills/:id/", h.Detail)
}

func (h *CatalogHandler) Browse(c fiber.Ctx) error {
	_, authenticated := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)

	page, err := h.uc.BrowseSkills(c.Context(), usecase.BrowseParams{
		RawCategoryID: c.Query("category"),
		RawSkillID:    c.Query("skill"),
		Sort:          c.Query("sort"),
		Page:          queryInt(c, "page", 1),
		Authenticated: authenticated,
	})
	if err != nil {
		return mapCatalogError(err)
	}

	res := dto.CatalogPageResponse{
		Skills:     toSkillResponses(page.Skills),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Categories: toCategoryResponses(page.Categories),
	}
	if page.Trending != nil {
		res.Trending = toSkillResponses(page.Trending)
	}
	if page.SelectedCategory != nil {
		sel := toCategoryResponse(*page.SelectedCategory)
		res.SelectedCategory = &sel
	}
	if page.SelectedSkill != nil {
		sel := toSkillResponse(*page.SelectedSkill)
		res.SelectedSkill = &sel
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) TrendingMore(c fiber.Ctx) error {
	items, err := h.uc.TrendingMore(c.Context(), queryInt(c, "page", 1))
	if err != nil {
		return mapCatalogError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillResponses(items))
}

func (h *CatalogHandler) Categories(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapCatalogError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCategoryResponses(items))
}

func (h *CatalogHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	}

	skill, err := h.uc.SkillDetail(c.Context(), id)
	if err != nil {
		return mapCatalogError(err)
	}

	top, err := h.tutors.TopTutorsForSkill(c.Context(), id)
	if err != nil {
		return mapTutorError(err)
	}

	res := dto.SkillDetailResponse{
		Skill:     toSkillResponse(skill),
		TopTutors: toTutorResponses(top),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// SkillsByCategory keeps the cascading-select wire contract: a bare
// {"skills": [...]} object, empty on a missing or malformed id.
func (h *CatalogHandler) SkillsByCategory(c fiber.Ctx) error {
	options, err := h.uc.SkillsByCategory(c.Context(), c.Query("category_id"))
	if err != nil {
		return mapCatalogError(err)
	}

	res := dto.SkillsByCategoryResponse{Skills: make([]dto.SkillOptionResponse, 0, len(options))}
	for _, o := range options {
		res.Skills = append(res.Skills, dto.SkillOptionResponse{ID: o.ID, Name: o.Name})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// Autocomplete keeps the select2 wire contract: a bare {"results": [...]}
// object.
func (h *CatalogHandler) Autocomplete(c fiber.Ctx) error {
	options, err := h.uc.Autocomplete(c.Context(), c.Query("term"))
	if err != nil {
		return mapCatalogError(err)
	}

	res := dto.AutocompleteResponse{Results: make([]dto.AutocompleteItem, 0, len(options))}
	for _, o := range options {
		res.Results = append(res.Results, dto.AutocompleteItem{ID: o.ID, Text: o.Name})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func mapCatalogError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Category not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func toSkillResponse(s usecase.SkillItem) dto.SkillResponse {
	return dto.SkillResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		CreatedAt:    s.CreatedAt,
		OfferedCount: s.OfferedCount,
	}
}

func toSkillResponses(items []usecase.SkillItem) []dto.SkillResponse {
	out := make([]dto.SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSkillResponse(s))
	}
	return out
}

func toCategoryResponse(c usecase.CategoryItem) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, SkillCount: c.SkillCount}
}

func toCategoryResponses(items []usecase.CategoryItem) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCategoryResponse(c))
	}
	return out
}
