package usecase

import (
	"context"
	"errors"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

const (
	// top-N window on the skill detail page
	tutorSummaryLimit = 5
	tutorPageSize     = 20
)

type TutorItem struct {
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

type TutorProfile struct {
	UserID      uuid.UUID
	DisplayName string
	Skills      []TutorItem

	// OverallRating is the mean of per-skill average ratings over the
	// tutor's active offered skills, 0 when there are none.
	OverallRating float64
	TotalSessions int
}

type TutorPage struct {
	Tutors   []TutorItem
	Total    int
	Page     int
	PageSize int
}

type TutorUsecase interface {
	TopTutorsForSkill(ctx context.Context, skillID uuid.UUID) ([]TutorItem, error)
	TutorsForSkill(ctx context.Context, skillID uuid.UUID, page int) (TutorPage, error)
	Profile(ctx context.Context, userID uuid.UUID) (TutorProfile, error)
}

type TutorService struct {
	repo    repository.TutorRepository
	catalog repository.CatalogRepository
}

func NewTutorUsecase(repo repository.TutorRepository, catalog repository.CatalogRepository) *TutorService {
	return &TutorService{repo: repo, catalog: catalog}
}

func (u *TutorService) TopTutorsForSkill(ctx context.Context, skillID uuid.UUID) ([]TutorItem, error) {
	if err := u.requireSkill(ctx, skillID); err != nil {
		return nil, err
	}
	rows, err := u.repo.TutorsForSkill(ctx, skillID, tutorSummaryLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}
	return toTutorItems(rows), nil
}

func (u *TutorService) TutorsForSkill(ctx context.Context, skillID uuid.UUID, page int) (TutorPage, error) {
	if err := u.requireSkill(ctx, skillID); err != nil {
		return TutorPage{}, err
	}
	if page < 1 {
		page = 1
	}

	rows, err := u.repo.TutorsForSkill(ctx, skillID, tutorPageSize, (page-1)*tutorPageSize)
	if err != nil {
		return TutorPage{}, ErrInternal
	}
	total, err := u.repo.CountTutorsForSkill(ctx, skillID)
	if err != nil {
		return TutorPage{}, ErrInternal
	}

	return TutorPage{
		Tutors:   toTutorItems(rows),
		Total:    total,
		Page:     page,
		PageSize: tutorPageSize,
	}, nil
}

func (u *TutorService) Profile(ctx context.Context, userID uuid.UUID) (TutorProfile, error) {
	user, err := u.repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TutorProfile{}, ErrUserNotFound
		}
		return TutorProfile{}, ErrInternal
	}

	rows, err := u.repo.ActiveSkillsForTutor(ctx, userID)
	if err != nil {
		return TutorProfile{}, ErrInternal
	}

	profile := TutorProfile{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Skills:      toTutorItems(rows),
	}
	if len(rows) > 0 {
		var ratingSum float64
		for _, row := range rows {
			ratingSum += row.AverageRating
			profile.TotalSessions += row.TotalSessions
		}
		profile.OverallRating = ratingSum / float64(len(rows))
	}

	return profile, nil
}

func (u *TutorService) requireSkill(ctx context.Context, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrSkillNotFound
	}
	if _, err := u.catalog.SkillByID(ctx, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func toTutorItems(rows []repository.TutorListing) []TutorItem {
	out := make([]TutorItem, 0, len(rows))
	for _, t := range rows {
		out = append(out, TutorItem{
			OfferedSkillID:     t.OfferedSkillID,
			UserID:             t.UserID,
			DisplayName:        t.DisplayName,
			SkillID:            t.SkillID,
			SkillName:          t.SkillName,
			ProficiencyLevel:   t.ProficiencyLevel,
			YearsExperience:    t.YearsExperience,
			TeachingPreference: t.TeachingPreference,
			AverageRating:      t.AverageRating,
			TotalSessions:      t.TotalSessions,
		})
	}
	return out
}
