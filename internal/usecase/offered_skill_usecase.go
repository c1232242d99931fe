package usecase

import (
	"context"
	"errors"

	"skillswap/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// OfferedSkillInput is the immutable submission: validation reads it,
// never mutates it. The acting user always comes from the session, not
// from the payload.
type OfferedSkillInput struct {
	CategoryID         uuid.UUID
	SkillID            uuid.UUID
	ProficiencyLevel   string
	Description        string
	YearsExperience    int
	TeachingPreference string
}

type OfferedSkillItem struct {
	ID                 uuid.UUID
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
}

type OfferedSkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]OfferedSkillItem, error)
	Add(ctx context.Context, userID uuid.UUID, in OfferedSkillInput) (OfferedSkillItem, error)
	Update(ctx context.Context, userID, id uuid.UUID, in OfferedSkillInput) (OfferedSkillItem, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ToggleActive(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// TrendingInvalidator drops cached trending views after a mutation that
// changes offer counts.
type TrendingInvalidator interface {
	InvalidateTrending(ctx context.Context) error
}

type OfferedSkillService struct {
	repo    repository.OfferedSkillRepository
	catalog repository.CatalogRepository
	cache   TrendingInvalidator
}

func NewOfferedSkillUsecase(repo repository.OfferedSkillRepository, catalog repository.CatalogRepository, cache TrendingInvalidator) *OfferedSkillService {
	return &OfferedSkillService{repo: repo, catalog: catalog, cache: cache}
}

func (u *OfferedSkillService) List(ctx context.Context, userID uuid.UUID) ([]OfferedSkillItem, error) {
	rows, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]OfferedSkillItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOfferedSkillItem(row))
	}
	return out, nil
}

func (u *OfferedSkillService) Add(ctx context.Context, userID uuid.UUID, in OfferedSkillInput) (OfferedSkillItem, error) {
	skill, err := u.validate(ctx, userID, uuid.Nil, in)
	if err != nil {
		return OfferedSkillItem{}, err
	}

	created, err := u.repo.Create(ctx, repository.OfferedSkill{
		ID:                 uuid.New(),
		UserID:             userID,
		SkillID:            in.SkillID,
		ProficiencyLevel:   in.ProficiencyLevel,
		Description:        in.Description,
		YearsExperience:    in.YearsExperience,
		TeachingPreference: in.TeachingPreference,
	})
	if err != nil {
		// The storage constraint closes the validate-then-insert race.
		if isUniqueViolation(err) {
			return OfferedSkillItem{}, newDuplicateOfferedError(skill.Name)
		}
		return OfferedSkillItem{}, ErrInternal
	}

	u.invalidateTrending(ctx)
	return toOfferedSkillItem(created), nil
}

func (u *OfferedSkillService) Update(ctx context.Context, userID, id uuid.UUID, in OfferedSkillInput) (OfferedSkillItem, error) {
	if id == uuid.Nil {
		return OfferedSkillItem{}, ErrInvalidInput
	}

	skill, err := u.validate(ctx, userID, id, in)
	if err != nil {
		return OfferedSkillItem{}, err
	}

	updated, err := u.repo.Update(ctx, repository.OfferedSkill{
		ID:                 id,
		UserID:             userID,
		SkillID:            in.SkillID,
		ProficiencyLevel:   in.ProficiencyLevel,
		Description:        in.Description,
		YearsExperience:    in.YearsExperience,
		TeachingPreference: in.TeachingPreference,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOfferedSkillNotFound):
			return OfferedSkillItem{}, ErrRecordNotFound
		case isUniqueViolation(err):
			return OfferedSkillItem{}, newDuplicateOfferedError(skill.Name)
		default:
			return OfferedSkillItem{}, ErrInternal
		}
	}

	u.invalidateTrending(ctx)
	return toOfferedSkillItem(updated), nil
}

func (u *OfferedSkillService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrOfferedSkillNotFound) {
			return ErrRecordNotFound
		}
		return ErrInternal
	}
	u.invalidateTrending(ctx)
	return nil
}

func (u *OfferedSkillService) ToggleActive(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, ErrInvalidInput
	}
	active, err := u.repo.ToggleActive(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferedSkillNotFound) {
			return false, ErrRecordNotFound
		}
		return false, ErrInternal
	}
	u.invalidateTrending(ctx)
	return active, nil
}

// validate runs the submission checks in order: field validity, category
// existence and activity, skill existence, category consistency, then
// per-user uniqueness (excluding the record under edit). It returns the
// resolved skill so callers can name it in error messages.
func (u *OfferedSkillService) validate(ctx context.Context, userID, excludeID uuid.UUID, in OfferedSkillInput) (repository.SkillRow, error) {
	if in.CategoryID == uuid.Nil || in.SkillID == uuid.Nil {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if !isValidLevel(in.ProficiencyLevel) {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if !isValidPreference(in.TeachingPreference) {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if in.YearsExperience < 0 {
		return repository.SkillRow{}, ErrInvalidInput
	}

	category, err := u.catalog.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return repository.SkillRow{}, ErrCategoryNotFound
		}
		return repository.SkillRow{}, ErrInternal
	}
	if !category.IsActive {
		return repository.SkillRow{}, ErrCategoryNotFound
	}

	skill, err := u.catalog.SkillByID(ctx, in.SkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return repository.SkillRow{}, ErrSkillNotFound
		}
		return repository.SkillRow{}, ErrInternal
	}

	if skill.CategoryID != category.ID {
		return repository.SkillRow{}, newCategoryMismatchError()
	}

	exists, err := u.repo.ExistsForUserAndSkill(ctx, userID, in.SkillID, excludeID)
	if err != nil {
		return repository.SkillRow{}, ErrInternal
	}
	if exists {
		return repository.SkillRow{}, newDuplicateOfferedError(skill.Name)
	}

	return skill, nil
}

func (u *OfferedSkillService) invalidateTrending(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.InvalidateTrending(ctx)
}

func toOfferedSkillItem(row repository.OfferedSkill) OfferedSkillItem {
	return OfferedSkillItem{
		ID:                 row.ID,
		SkillID:            row.SkillID,
		SkillName:          row.SkillName,
		CategoryID:         row.CategoryID,
		CategoryName:       row.CategoryName,
		ProficiencyLevel:   row.ProficiencyLevel,
		Description:        row.Description,
		YearsExperience:    row.YearsExperience,
		TeachingPreference: row.TeachingPreference,
		IsActive:           row.IsActive,
		AverageRating:      row.AverageRating,
		TotalSessions:      row.TotalSessions,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
