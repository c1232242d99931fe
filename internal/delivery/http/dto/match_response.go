package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	TeacherName string    `json:"teacher_name"`
	LearnerID   uuid.UUID `json:"learner_id"`
	LearnerName string    `json:"learner_name"`
	SkillID     uuid.UUID `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	CreatedAt   time.Time `json:"created_at"`
}
