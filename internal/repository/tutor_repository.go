package repository

import (
	"context"
	"errors"
	"strconv"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID          uuid.UUID
	DisplayName string
}

// TutorListing is one active offered-skill row joined with its tutor,
// ready for ranking display.
type TutorListing struct {
	OfferedSkillID     uuid.UUID
	UserID             uuid.UUID
	DisplayName        string
	SkillID            uuid.UUID
	SkillName          string
	ProficiencyLevel   string
	YearsExperience    int
	TeachingPreference string
	AverageRating      float64
	TotalSessions      int
}

type TutorRepository interface {
	UserByID(ctx context.Context, id uuid.UUID) (User, error)
	// TutorsForSkill lists active offered rows for the skill ordered by
	// average rating, then total sessions, both descending.
	TutorsForSkill(ctx context.Context, skillID uuid.UUID, limit, offset int) ([]TutorListing, error)
	CountTutorsForSkill(ctx context.Context, skillID uuid.UUID) (int, error)
	// ActiveSkillsForTutor lists the tutor's active offered rows for
	// profile aggregation.
	ActiveSkillsForTutor(ctx context.Context, userID uuid.UUID) ([]TutorListing, error)
}

type PostgresTutorRepository struct {
	db database.DB
}

func NewPostgresTutorRepository(db database.DB) *PostgresTutorRepository {
	return &PostgresTutorRepository{db: db}
}

func (r *PostgresTutorRepository) UserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, display_name FROM users WHERE id = $1`, id)

	var u User
	if err := row.Scan(&u.ID, &u.DisplayName); err != nil {
		if isNoRows(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

const tutorListingSelect = `
	SELECT os.id, os.user_id, u.display_name, os.skill_id, s.name,
	       os.proficiency_level, os.years_experience, os.teaching_preference,
	       os.average_rating, os.total_sessions
	FROM offered_skills os
	JOIN users u ON u.id = os.user_id
	JOIN skills s ON s.id = os.skill_id
	WHERE os.is_active`

func (r *PostgresTutorRepository) TutorsForSkill(ctx context.Context, skillID uuid.UUID, limit, offset int) ([]TutorListing, error) {
	query := tutorListingSelect + ` AND os.skill_id = $1
	ORDER BY os.average_rating DESC, os.total_sessions DESC`
	args := []any{skillID}

	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	return r.queryListings(ctx, query, args...)
}

func (r *PostgresTutorRepository) CountTutorsForSkill(ctx context.Context, skillID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM offered_skills WHERE is_active AND skill_id = $1`,
		skillID,
	)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresTutorRepository) ActiveSkillsForTutor(ctx context.Context, userID uuid.UUID) ([]TutorListing, error) {
	return r.queryListings(ctx,
		tutorListingSelect+` AND os.user_id = $1 ORDER BY s.name ASC`,
		userID,
	)
}

func (r *PostgresTutorRepository) queryListings(ctx context.Context, query string, args ...any) ([]TutorListing, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TutorListing, 0)
	for rows.Next() {
		var t TutorListing
		if err := rows.Scan(
			&t.OfferedSkillID, &t.UserID, &t.DisplayName, &t.SkillID, &t.SkillName,
			&t.ProficiencyLevel, &t.YearsExperience, &t.TeachingPreference,
			&t.AverageRating, &t.TotalSessions,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
