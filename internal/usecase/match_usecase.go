package usecase

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type MatchItem struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	TeacherName string
	LearnerID   uuid.UUID
	LearnerName string
	SkillID     uuid.UUID
	SkillName   string
	CreatedAt   time.Time
}

type MatchUsecase interface {
	ListMatches(ctx context.Context, userID uuid.UUID) ([]MatchItem, error)
	Dismiss(ctx context.Context, userID, matchID uuid.UUID) error
}

// MatchNotifier pushes a dismissal event to the other party. Delivery
// is best effort.
type MatchNotifier interface {
	MatchDismissed(counterpartID uuid.UUID, matchID uuid.UUID, skillName string)
}

type MatchService struct {
	repo     repository.MatchRepository
	notifier MatchNotifier
}

func NewMatchUsecase(repo repository.MatchRepository, notifier MatchNotifier) *MatchService {
	return &MatchService{repo: repo, notifier: notifier}
}

func (u *MatchService) ListMatches(ctx context.Context, userID uuid.UUID) ([]MatchItem, error) {
	rows, err := u.repo.FindForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]MatchItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, MatchItem{
			ID:          m.ID,
			TeacherID:   m.TeacherID,
			TeacherName: m.TeacherName,
			LearnerID:   m.LearnerID,
			LearnerName: m.LearnerName,
			SkillID:     m.SkillID,
			SkillName:   m.SkillName,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Dismiss hides the match for both parties. Only the teacher or the
// learner may dismiss; anyone else gets not-found so the match's
// existence is not leaked.
func (u *MatchService) Dismiss(ctx context.Context, userID, matchID uuid.UUID) error {
	if matchID == uuid.Nil {
		return ErrMatchNotFound
	}

	m, err := u.repo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return ErrInternal
	}

	if m.TeacherID != userID && m.LearnerID != userID {
		return ErrMatchNotFound
	}
	if m.IsDismissed {
		return nil
	}

	if err := u.repo.Dismiss(ctx, matchID); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return ErrInternal
	}

	if u.notifier != nil {
		counterpart := m.TeacherID
		if counterpart == userID {
			counterpart = m.LearnerID
		}
		u.notifier.MatchDismissed(counterpart, m.ID, m.SkillName)
	}

	return nil
}
