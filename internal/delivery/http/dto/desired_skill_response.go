package dto

import "github.com/google/uuid"

type DesiredSkillResponse struct {
	ID                 uuid.UUID `json:"id"`
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	Urgency            string    `json:"urgency"`
	Description        string    `json:"description"`
	CurrentLevel       string    `json:"current_level"`
	TargetLevel        string    `json:"target_level"`
	LearningPreference string    `json:"learning_preference"`
	IsActive           bool      `json:"is_active"`
}
