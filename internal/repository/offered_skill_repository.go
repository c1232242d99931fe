package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

var ErrOfferedSkillNotFound = errors.New("offered skill not found")

type OfferedSkill struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	SkillID            uuid.UUID
	SkillName          string
	CategoryID         uuid.UUID
	CategoryName       string
	ProficiencyLevel   string
	Description        string
	YearsExperience    int
	TeachingPreference string
	IsActive           bool
	AverageRating      float64
	TotalSessions      int
	CreatedAt          time.Time
}

type OfferedSkillRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]OfferedSkill, error)
	// FindByID is ownership scoped: a row belonging to another user is
	// reported as not found.
	FindByID(ctx context.Context, id, userID uuid.UUID) (OfferedSkill, error)
	// ExistsForUserAndSkill reports whether the user already has a row
	// for the skill, ignoring the row identified by excludeID (pass
	// uuid.Nil on create).
	ExistsForUserAndSkill(ctx context.Context, userID, skillID, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, os OfferedSkill) (OfferedSkill, error)
	Update(ctx context.Context, os OfferedSkill) (OfferedSkill, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// ToggleActive flips is_active and returns the new value.
	ToggleActive(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

const offeredSkillSelect = `
	SELECT os.id, os.user_id, os.skill_id, s.name, s.category_id, c.name,
	       os.proficiency_level, os.description, os.years_experience,
	       os.teaching_preference, os.is_active, os.average_rating,
	       os.total_sessions, os.created_at
	FROM offered_skills os
	JOIN skills s ON s.id = os.skill_id
	JOIN skill_categories c ON c.id = s.category_id`

type PostgresOfferedSkillRepository struct {
	db database.DB
}

func NewPostgresOfferedSkillRepository(db database.DB) *PostgresOfferedSkillRepository {
	return &PostgresOfferedSkillRepository{db: db}
}

func (r *PostgresOfferedSkillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]OfferedSkill, error) {
	rows, err := r.db.Query(ctx,
		offeredSkillSelect+` WHERE os.user_id = $1 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OfferedSkill, 0)
	for rows.Next() {
		os, err := scanOfferedSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, os)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOfferedSkillRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (OfferedSkill, error) {
	row := r.db.QueryRow(ctx,
		offeredSkillSelect+` WHERE os.id = $1 AND os.user_id = $2`,
		id, userID,
	)

	os, err := scanOfferedSkill(row)
	if err != nil {
		if isNoRows(err) {
			return OfferedSkill{}, ErrOfferedSkillNotFound
		}
		return OfferedSkill{}, err
	}
	return os, nil
}

func (r *PostgresOfferedSkillRepository) ExistsForUserAndSkill(ctx context.Context, userID, skillID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM offered_skills WHERE user_id = $1 AND skill_id = $2 AND id <> $3)`,
		userID, skillID, excludeID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresOfferedSkillRepository) Create(ctx context.Context, os OfferedSkill) (OfferedSkill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO offered_skills
		 (id, user_id, skill_id, proficiency_level, description, years_experience, teaching_preference, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)`,
		os.ID, os.UserID, os.SkillID, os.ProficiencyLevel, os.Description, os.YearsExperience, os.TeachingPreference,
	)
	if err != nil {
		return OfferedSkill{}, err
	}
	return r.FindByID(ctx, os.ID, os.UserID)
}

func (r *PostgresOfferedSkillRepository) Update(ctx context.Context, os OfferedSkill) (OfferedSkill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE offered_skills
		 SET skill_id = $1, proficiency_level = $2, description = $3, years_experience = $4, teaching_preference = $5
		 WHERE id = $6 AND user_id = $7`,
		os.SkillID, os.ProficiencyLevel, os.Description, os.YearsExperience, os.TeachingPreference, os.ID, os.UserID,
	)
	if err != nil {
		return OfferedSkill{}, err
	}
	if affected == 0 {
		return OfferedSkill{}, ErrOfferedSkillNotFound
	}
	return r.FindByID(ctx, os.ID, os.UserID)
}

func (r *PostgresOfferedSkillRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM offered_skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOfferedSkillNotFound
	}
	return nil
}

func (r *PostgresOfferedSkillRepository) ToggleActive(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE offered_skills SET is_active = NOT is_active WHERE id = $1 AND user_id = $2 RETURNING is_active`,
		id, userID,
	)

	var active bool
	if err := row.Scan(&active); err != nil {
		if isNoRows(err) {
			return false, ErrOfferedSkillNotFound
		}
		return false, err
	}
	return active, nil
}

func scanOfferedSkill(row database.Row) (OfferedSkill, error) {
	var os OfferedSkill
	err := row.Scan(
		&os.ID, &os.UserID, &os.SkillID, &os.SkillName, &os.CategoryID, &os.CategoryName,
		&os.ProficiencyLevel, &os.Description, &os.YearsExperience,
		&os.TeachingPreference, &os.IsActive, &os.AverageRating,
		&os.TotalSessions, &os.CreatedAt,
	)
	return os, err
}
