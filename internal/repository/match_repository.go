package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

var ErrMatchNotFound = errors.New("match not found")

// SkillMatch pairs a teacher and a learner around a skill. Rows are
// produced by the matching pipeline, not by this service.
type SkillMatch struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	TeacherName string
	LearnerID   uuid.UUID
	LearnerName string
	SkillID     uuid.UUID
	SkillName   string
	IsDismissed bool
	CreatedAt   time.Time
}

type MatchRepository interface {
	// FindForUser lists non-dismissed matches where the user is either
	// the teacher or the learner.
	FindForUser(ctx context.Context, userID uuid.UUID) ([]SkillMatch, error)
	FindByID(ctx context.Context, id uuid.UUID) (SkillMatch, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

const matchSelect = `
	SELECT m.id, m.teacher_id, t.display_name, m.learner_id, l.display_name,
	       m.skill_id, s.name, m.is_dismissed, m.created_at
	FROM skill_matches m
	JOIN users t ON t.id = m.teacher_id
	JOIN users l ON l.id = m.learner_id
	JOIN skills s ON s.id = m.skill_id`

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]SkillMatch, error) {
	rows, err := r.db.Query(ctx,
		matchSelect+`
		WHERE NOT m.is_dismissed AND (m.teacher_id = $1 OR m.learner_id = $1)
		ORDER BY m.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillMatch, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (SkillMatch, error) {
	row := r.db.QueryRow(ctx, matchSelect+` WHERE m.id = $1`, id)

	m, err := scanMatch(row)
	if err != nil {
		if isNoRows(err) {
			return SkillMatch{}, ErrMatchNotFound
		}
		return SkillMatch{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skill_matches SET is_dismissed = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func scanMatch(row database.Row) (SkillMatch, error) {
	var m SkillMatch
	err := row.Scan(
		&m.ID, &m.TeacherID, &m.TeacherName, &m.LearnerID, &m.LearnerName,
		&m.SkillID, &m.SkillName, &m.IsDismissed, &m.CreatedAt,
	)
	return m, err
}
