package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

var ErrDesiredSkillNotFound = errors.New("desired skill not found")

type DesiredSkill struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	SkillID            uuid.UUID
	SkillName          string
	CategoryID         uuid.UUID
	CategoryName       string
	Urgency            string
	Description        string
	CurrentLevel       string
	TargetLevel        string
	LearningPreference string
	IsActive           bool
	CreatedAt          time.Time
}

type DesiredSkillRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]DesiredSkill, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (DesiredSkill, error)
	ExistsForUserAndSkill(ctx context.Context, userID, skillID, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, ds DesiredSkill) (DesiredSkill, error)
	Update(ctx context.Context, ds DesiredSkill) (DesiredSkill, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ToggleActive(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

const desiredSkillSelect = `
	SELECT ds.id, ds.user_id, ds.skill_id, s.name, s.category_id, c.name,
	       ds.urgency, ds.description, ds.current_level, ds.target_level,
	       ds.learning_preference, ds.is_active, ds.created_at
	FROM desired_skills ds
	JOIN skills s ON s.id = ds.skill_id
	JOIN skill_categories c ON c.id = s.category_id`

type PostgresDesiredSkillRepository struct {
	db database.DB
}

func NewPostgresDesiredSkillRepository(db database.DB) *PostgresDesiredSkillRepository {
	return &PostgresDesiredSkillRepository{db: db}
}

func (r *PostgresDesiredSkillRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]DesiredSkill, error) {
	rows, err := r.db.Query(ctx,
		desiredSkillSelect+` WHERE ds.user_id = $1 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DesiredSkill, 0)
	for rows.Next() {
		ds, err := scanDesiredSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDesiredSkillRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (DesiredSkill, error) {
	row := r.db.QueryRow(ctx,
		desiredSkillSelect+` WHERE ds.id = $1 AND ds.user_id = $2`,
		id, userID,
	)

	ds, err := scanDesiredSkill(row)
	if err != nil {
		if isNoRows(err) {
			return DesiredSkill{}, ErrDesiredSkillNotFound
		}
		return DesiredSkill{}, err
	}
	return ds, nil
}

func (r *PostgresDesiredSkillRepository) ExistsForUserAndSkill(ctx context.Context, userID, skillID, excludeID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM desired_skills WHERE user_id = $1 AND skill_id = $2 AND id <> $3)`,
		userID, skillID, excludeID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresDesiredSkillRepository) Create(ctx context.Context, ds DesiredSkill) (DesiredSkill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO desired_skills
		 (id, user_id, skill_id, urgency, description, current_level, target_level, learning_preference, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)`,
		ds.ID, ds.UserID, ds.SkillID, ds.Urgency, ds.Description, ds.CurrentLevel, ds.TargetLevel, ds.LearningPreference,
	)
	if err != nil {
		return DesiredSkill{}, err
	}
	return r.FindByID(ctx, ds.ID, ds.UserID)
}

func (r *PostgresDesiredSkillRepository) Update(ctx context.Context, ds DesiredSkill) (DesiredSkill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE desired_skills
		 SET skill_id = $1, urgency = $2, description = $3, current_level = $4, target_level = $5, learning_preference = $6
		 WHERE id = $7 AND user_id = $8`,
		ds.SkillID, ds.Urgency, ds.Description, ds.CurrentLevel, ds.TargetLevel, ds.LearningPreference, ds.ID, ds.UserID,
	)
	if err != nil {
		return DesiredSkill{}, err
	}
	if affected == 0 {
		return DesiredSkill{}, ErrDesiredSkillNotFound
	}
	return r.FindByID(ctx, ds.ID, ds.UserID)
}

func (r *PostgresDesiredSkillRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM desired_skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDesiredSkillNotFound
	}
	return nil
}

func (r *PostgresDesiredSkillRepository) ToggleActive(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE desired_skills SET is_active = NOT is_active WHERE id = $1 AND user_id = $2 RETURNING is_active`,
		id, userID,
	)

	var active bool
	if err := row.Scan(&active); err != nil {
		if isNoRows(err) {
			return false, ErrDesiredSkillNotFound
		}
		return false, err
	}
	return active, nil
}

func scanDesiredSkill(row database.Row) (DesiredSkill, error) {
	var ds DesiredSkill
	err := row.Scan(
		&ds.ID, &ds.UserID, &ds.SkillID, &ds.SkillName, &ds.CategoryID, &ds.CategoryName,
		&ds.Urgency, &ds.Description, &ds.CurrentLevel, &ds.TargetLevel,
		&ds.LearningPreference, &ds.IsActive, &ds.CreatedAt,
	)
	return ds, err
}
