package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"skillswap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSkillNotFound    = errors.New("skill not found")
)

type SkillCategory struct {
	ID         uuid.UUID
	Name       string
	IsActive   bool
	SkillCount int
}

// SkillRow is a catalog skill annotated with how many users currently
// offer it. Under the (user_id, skill_id) uniqueness constraint the row
// count equals the distinct-user count.
type SkillRow struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	CreatedAt    time.Time
	OfferedCount int
}

type SkillOption struct {
	ID   uuid.UUID
	Name string
}

const (
	SortByName    = "name"
	SortByPopular = "popular"
	SortByRecent  = "recent"
)

// CatalogFilter narrows and orders the skill listing. Nil UUIDs mean
// "no filter"; an unknown Sort value falls back to name order.
type CatalogFilter struct {
	CategoryID uuid.UUID
	SkillID    uuid.UUID
	Sort       string
	Limit      int
	Offset     int
}

type CatalogRepository interface {
	ListActiveCategories(ctx context.Context) ([]SkillCategory, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (SkillCategory, error)
	ListSkills(ctx context.Context, f CatalogFilter) ([]SkillRow, error)
	CountSkills(ctx context.Context, f CatalogFilter) (int, error)
	ListTrending(ctx context.Context, limit, offset int) ([]SkillRow, error)
	SkillByID(ctx context.Context, id uuid.UUID) (SkillRow, error)
	SkillsByCategory(ctx context.Context, categoryID uuid.UUID) ([]SkillOption, error)
	SearchSkills(ctx context.Context, term string, limit int) ([]SkillOption, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListActiveCategories(ctx context.Context) ([]SkillCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.is_active, COUNT(s.id)
		 FROM skill_categories c
		 LEFT JOIN skills s ON s.category_id = c.id
		 WHERE c.is_active
		 GROUP BY c.id, c.name, c.is_active
		 ORDER BY c.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillCategory, 0)
	for rows.Next() {
		var c SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.SkillCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) CategoryByID(ctx context.Context, id uuid.UUID) (SkillCategory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT c.id, c.name, c.is_active, (SELECT COUNT(*) FROM skills s WHERE s.category_id = c.id)
		 FROM skill_categories c
		 WHERE c.id = $1`,
		id,
	)

	var c SkillCategory
	if err := row.Scan(&c.ID, &c.Name, &c.IsActive, &c.SkillCount); err != nil {
		if isNoRows(err) {
			return SkillCategory{}, ErrCategoryNotFound
		}
		return SkillCategory{}, err
	}
	return c, nil
}

const skillSelect = `
	SELECT s.id, s.name, s.category_id, c.name, s.created_at, COUNT(os.id)
	FROM skills s
	JOIN skill_categories c ON c.id = s.category_id
	LEFT JOIN offered_skills os ON os.skill_id = s.id
	WHERE c.is_active`

func (r *PostgresCatalogRepository) ListSkills(ctx context.Context, f CatalogFilter) ([]SkillRow, error) {
	query := skillSelect
	args := make([]any, 0, 4)

	if f.CategoryID != uuid.Nil {
		args = append(args, f.CategoryID)
		query += ` AND s.category_id = $` + strconv.Itoa(len(args))
	}
	if f.SkillID != uuid.Nil {
		args = append(args, f.SkillID)
		query += ` AND s.id = $` + strconv.Itoa(len(args))
	}

	query += ` GROUP BY s.id, s.name, s.category_id, c.name, s.created_at`

	switch f.Sort {
	case SortByPopular:
		query += ` ORDER BY COUNT(os.id) DESC, s.name ASC`
	case SortByRecent:
		query += ` ORDER BY s.created_at DESC, s.name ASC`
	default:
		query += ` ORDER BY s.name ASC`
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	return r.querySkillRows(ctx, query, args...)
}

func (r *PostgresCatalogRepository) CountSkills(ctx context.Context, f CatalogFilter) (int, error) {
	query := `SELECT COUNT(*) FROM skills s JOIN skill_categories c ON c.id = s.category_id WHERE c.is_active`
	args := make([]any, 0, 2)

	if f.CategoryID != uuid.Nil {
		args = append(args, f.CategoryID)
		query += ` AND s.category_id = $` + strconv.Itoa(len(args))
	}
	if f.SkillID != uuid.Nil {
		args = append(args, f.SkillID)
		query += ` AND s.id = $` + strconv.Itoa(len(args))
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresCatalogRepository) ListTrending(ctx context.Context, limit, offset int) ([]SkillRow, error) {
	query := skillSelect + `
	GROUP BY s.id, s.name, s.category_id, c.name, s.created_at
	HAVING COUNT(os.id) > 0
	ORDER BY COUNT(os.id) DESC, s.name ASC`

	args := make([]any, 0, 2)
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	return r.querySkillRows(ctx, query, args...)
}

func (r *PostgresCatalogRepository) SkillByID(ctx context.Context, id uuid.UUID) (SkillRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT s.id, s.name, s.category_id, c.name, s.created_at,
		        (SELECT COUNT(*) FROM offered_skills os WHERE os.skill_id = s.id)
		 FROM skills s
		 JOIN skill_categories c ON c.id = s.category_id
		 WHERE s.id = $1`,
		id,
	)

	var s SkillRow
	if err := row.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName, &s.CreatedAt, &s.OfferedCount); err != nil {
		if isNoRows(err) {
			return SkillRow{}, ErrSkillNotFound
		}
		return SkillRow{}, err
	}
	return s, nil
}

func (r *PostgresCatalogRepository) SkillsByCategory(ctx context.Context, categoryID uuid.UUID) ([]SkillOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM skills WHERE category_id = $1 ORDER BY name ASC`,
		categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkillOptions(rows)
}

func (r *PostgresCatalogRepository) SearchSkills(ctx context.Context, term string, limit int) ([]SkillOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM skills WHERE name ILIKE '%' || $1 || '%' ORDER BY name ASC LIMIT $2`,
		term, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkillOptions(rows)
}

func (r *PostgresCatalogRepository) querySkillRows(ctx context.Context, query string, args ...any) ([]SkillRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillRow, 0)
	for rows.Next() {
		var s SkillRow
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CategoryName, &s.CreatedAt, &s.OfferedCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkillOptions(rows database.Rows) ([]SkillOption, error) {
	out := make([]SkillOption, 0)
	for rows.Next() {
		var o SkillOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows)
}
