package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type mockMatchRepo struct {
	matches map[uuid.UUID]repository.SkillMatch

	dismissed []uuid.UUID
}

func (m *mockMatchRepo) FindForUser(_ context.Context, userID uuid.UUID) ([]repository.SkillMatch, error) {
	out := make([]repository.SkillMatch, 0)
	for _, match := range m.matches {
		if match.IsDismissed {
			continue
		}
		if match.TeacherID == userID || match.LearnerID == userID {
			out = append(out, match)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) FindByID(_ context.Context, id uuid.UUID) (repository.SkillMatch, error) {
	match, ok := m.matches[id]
	if !ok {
		return repository.SkillMatch{}, repository.ErrMatchNotFound
	}
	return match, nil
}

func (m *mockMatchRepo) Dismiss(_ context.Context, id uuid.UUID) error {
	match, ok := m.matches[id]
	if !ok {
		return repository.ErrMatchNotFound
	}
	match.IsDismissed = true
	m.matches[id] = match
	m.dismissed = append(m.dismissed, id)
	return nil
}

type notifyCall struct {
	counterpartID uuid.UUID
	matchID       uuid.UUID
	skillName     string
}

type mockMatchNotifier struct {
	calls []notifyCall
}

func (m *mockMatchNotifier) MatchDismissed(counterpartID uuid.UUID, matchID uuid.UUID, skillName string) {
	m.calls = append(m.calls, notifyCall{counterpartID, matchID, skillName})
}

func matchFixture() (repository.SkillMatch, *mockMatchRepo) {
	match := repository.SkillMatch{
		ID:        uuid.New(),
		TeacherID: uuid.New(),
		LearnerID: uuid.New(),
		SkillID:   uuid.New(),
		SkillName: "Go",
	}
	return match, &mockMatchRepo{matches: map[uuid.UUID]repository.SkillMatch{match.ID: match}}
}

func TestDismiss_ByLearnerNotifiesTeacher(t *testing.T) {
	match, repo := matchFixture()
	notifier := &mockMatchNotifier{}
	uc := NewMatchUsecase(repo, notifier)

	if err := uc.Dismiss(context.Background(), match.LearnerID, match.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.dismissed) != 1 {
		t.Fatalf("expected one dismissal, got %d", len(repo.dismissed))
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.calls))
	}
	call := notifier.calls[0]
	if call.counterpartID != match.TeacherID {
		t.Fatalf("notification must target the teacher, got %s", call.counterpartID)
	}
	if call.matchID != match.ID || call.skillName != "Go" {
		t.Fatalf("unexpected notification payload: %+v", call)
	}
}

func TestDismiss_ByStrangerIsNotFound(t *testing.T) {
	match, repo := matchFixture()
	notifier := &mockMatchNotifier{}
	uc := NewMatchUsecase(repo, notifier)

	err := uc.Dismiss(context.Background(), uuid.New(), match.ID)
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound for a non-party, got %v", err)
	}
	if len(repo.dismissed) != 0 {
		t.Fatalf("non-party dismissal must not touch the row")
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("non-party dismissal must not notify anyone")
	}
}

func TestDismiss_AlreadyDismissedIsNoop(t *testing.T) {
	match, repo := matchFixture()
	match.IsDismissed = true
	repo.matches[match.ID] = match
	notifier := &mockMatchNotifier{}
	uc := NewMatchUsecase(repo, notifier)

	if err := uc.Dismiss(context.Background(), match.TeacherID, match.ID); err != nil {
		t.Fatalf("expected repeat dismissal to be a no-op, got %v", err)
	}
	if len(repo.dismissed) != 0 || len(notifier.calls) != 0 {
		t.Fatalf("repeat dismissal must not re-dismiss or re-notify")
	}
}

func TestDismiss_UnknownMatch(t *testing.T) {
	_, repo := matchFixture()
	uc := NewMatchUsecase(repo, nil)

	if err := uc.Dismiss(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestListMatches_ScopedToParty(t *testing.T) {
	match, repo := matchFixture()
	uc := NewMatchUsecase(repo, nil)

	items, err := uc.ListMatches(context.Background(), match.TeacherID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].ID != match.ID {
		t.Fatalf("expected the teacher's match, got %+v", items)
	}

	items, err = uc.ListMatches(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no matches for a stranger, got %d", len(items))
	}
}
