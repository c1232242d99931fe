package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	OfferedCount int       `json:"offered_count"`
}

type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SkillCount int       `json:"skill_count"`
}

type CatalogPageResponse struct {
	Skills     []SkillResponse    `json:"skills"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Categories []CategoryResponse `json:"categories"`

	Trending []SkillResponse `json:"trending,omitempty"`

	SelectedCategory *CategoryResponse `json:"selected_category,omitempty"`
	SelectedSkill    *SkillResponse    `json:"selected_skill,omitempty"`
}

// AutocompleteResponse matches the select2-style contract consumed by
// the frontend: {"results": [{"id", "text"}]}.
type AutocompleteResponse struct {
	Results []AutocompleteItem `json:"results"`
}

type AutocompleteItem struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// SkillsByCategoryResponse matches the cascading-select contract:
// {"skills": [{"id", "name"}]}.
type SkillsByCategoryResponse struct {
	Skills []SkillOptionResponse `json:"skills"`
}

type SkillOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
