package usecase

import (
	"context"
	"errors"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type DesiredSkillInput struct {
	CategoryID         uuid.UUID
	SkillID            uuid.UUID
	Urgency            string
	Description        string
	CurrentLevel       string
	TargetLevel        string
	LearningPreference string
}

type DesiredSkillItem struct {
	ID                 uuid.UUID
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
}

type DesiredSkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]DesiredSkillItem, error)
	Add(ctx context.Context, userID uuid.UUID, in DesiredSkillInput) (DesiredSkillItem, error)
	Update(ctx context.Context, userID, id uuid.UUID, in DesiredSkillInput) (DesiredSkillItem, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ToggleActive(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

type DesiredSkillService struct {
	repo    repository.DesiredSkillRepository
	catalog repository.CatalogRepository
}

func NewDesiredSkillUsecase(repo repository.DesiredSkillRepository, catalog repository.CatalogRepository) *DesiredSkillService {
	return &DesiredSkillService{repo: repo, catalog: catalog}
}

func (u *DesiredSkillService) List(ctx context.Context, userID uuid.UUID) ([]DesiredSkillItem, error) {
	rows, err := u.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]DesiredSkillItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDesiredSkillItem(row))
	}
	return out, nil
}

func (u *DesiredSkillService) Add(ctx context.Context, userID uuid.UUID, in DesiredSkillInput) (DesiredSkillItem, error) {
	skill, err := u.validate(ctx, userID, uuid.Nil, in)
	if err != nil {
		return DesiredSkillItem{}, err
	}

	created, err := u.repo.Create(ctx, repository.DesiredSkill{
		ID:                 uuid.New(),
		UserID:             userID,
		SkillID:            in.SkillID,
		Urgency:            in.Urgency,
		Description:        in.Description,
		CurrentLevel:       in.CurrentLevel,
		TargetLevel:        in.TargetLevel,
		LearningPreference: in.LearningPreference,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return DesiredSkillItem{}, newDuplicateDesiredError(skill.Name)
		}
		return DesiredSkillItem{}, ErrInternal
	}

	return toDesiredSkillItem(created), nil
}

func (u *DesiredSkillService) Update(ctx context.Context, userID, id uuid.UUID, in DesiredSkillInput) (DesiredSkillItem, error) {
	if id == uuid.Nil {
		return DesiredSkillItem{}, ErrInvalidInput
	}

	skill, err := u.validate(ctx, userID, id, in)
	if err != nil {
		return DesiredSkillItem{}, err
	}

	updated, err := u.repo.Update(ctx, repository.DesiredSkill{
		ID:                 id,
		UserID:             userID,
		SkillID:            in.SkillID,
		Urgency:            in.Urgency,
		Description:        in.Description,
		CurrentLevel:       in.CurrentLevel,
		TargetLevel:        in.TargetLevel,
		LearningPreference: in.LearningPreference,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDesiredSkillNotFound):
			return DesiredSkillItem{}, ErrRecordNotFound
		case isUniqueViolation(err):
			return DesiredSkillItem{}, newDuplicateDesiredError(skill.Name)
		default:
			return DesiredSkillItem{}, ErrInternal
		}
	}

	return toDesiredSkillItem(updated), nil
}

func (u *DesiredSkillService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrDesiredSkillNotFound) {
			return ErrRecordNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *DesiredSkillService) ToggleActive(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, ErrInvalidInput
	}
	active, err := u.repo.ToggleActive(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDesiredSkillNotFound) {
			return false, ErrRecordNotFound
		}
		return false, ErrInternal
	}
	return active, nil
}

func (u *DesiredSkillService) validate(ctx context.Context, userID, excludeID uuid.UUID, in DesiredSkillInput) (repository.SkillRow, error) {
	if in.CategoryID == uuid.Nil || in.SkillID == uuid.Nil {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if !isValidUrgency(in.Urgency) {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if !isValidLevel(in.CurrentLevel) || !isValidLevel(in.TargetLevel) {
		return repository.SkillRow{}, ErrInvalidInput
	}
	if !isValidPreference(in.LearningPreference) {
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
		return repository.SkillRow{}, newDuplicateDesiredError(skill.Name)
	}

	return skill, nil
}

func toDesiredSkillItem(row repository.DesiredSkill) DesiredSkillItem {
	return DesiredSkillItem{
		ID:                 row.ID,
		SkillID:            row.SkillID,
		SkillName:          row.SkillName,
		CategoryID:         row.CategoryID,
		CategoryName:       row.CategoryName,
		Urgency:            row.Urgency,
		Description:        row.Description,
		CurrentLevel:       row.CurrentLevel,
		TargetLevel:        row.TargetLevel,
		LearningPreference: row.LearningPreference,
		IsActive:           row.IsActive,
	}
}
