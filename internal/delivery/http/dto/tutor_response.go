package dto

import "github.com/google/uuid"

type TutorResponse struct {
	OfferedSkillID     uuid.UUID `json:"offered_skill_id"`
	UserID             uuid.UUID `json:"user_id"`
	DisplayName        string    `json:"display_name"`
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	ProficiencyLevel   string    `json:"proficiency_level"`
	YearsExperience    int       `json:"years_experience"`
	TeachingPreference string    `json:"teaching_preference"`
	AverageRating      float64   `json:"average_rating"`
	TotalSessions      int       `json:"total_sessions"`
}

type TutorPageResponse struct {
	Tutors   []TutorResponse `json:"tutors"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type TutorProfileResponse struct {
	UserID        uuid.UUID       `json:"user_id"`
	DisplayName   string          `json:"display_name"`
	Skills        []TutorResponse `json:"skills"`
	OverallRating float64         `json:"overall_rating"`
	TotalSessions int             `json:"total_sessions"`
}

type SkillDetailResponse struct {
	Skill     SkillResponse   `json:"skill"`
	TopTutors []TutorResponse `json:"top_tutors"`
}
