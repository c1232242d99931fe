package dto

import "github.com/google/uuid"

type OfferedSkillResponse struct {
	ID                 uuid.UUID `json:"id"`
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	ProficiencyLevel   string    `json:"proficiency_level"`
	Description        string    `json:"description"`
	YearsExperience    int       `json:"years_experience"`
	TeachingPreference string    `json:"teaching_preference"`
	IsActive           bool      `json:"is_active"`
	AverageRating      float64   `json:"average_rating"`
	TotalSessions      int       `json:"total_sessions"`
}

type ToggleResponse struct {
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"is_active"`
}
