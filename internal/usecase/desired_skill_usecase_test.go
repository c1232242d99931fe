package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type mockDesiredRepo struct {
	exists bool

	lastExcludeID uuid.UUID
	created       []repository.DesiredSkill
	toggleState   map[uuid.UUID]bool
}

func (m *mockDesiredRepo) FindByUser(context.Context, uuid.UUID) ([]repository.DesiredSkill, error) {
	return nil, nil
}

func (m *mockDesiredRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (repository.DesiredSkill, error) {
	return repository.DesiredSkill{}, repository.ErrDesiredSkillNotFound
}

func (m *mockDesiredRepo) ExistsForUserAndSkill(_ context.Context, _, _, excludeID uuid.UUID) (bool, error) {
	m.lastExcludeID = excludeID
	return m.exists, nil
}

func (m *mockDesiredRepo) Create(_ context.Context, ds repository.DesiredSkill) (repository.DesiredSkill, error) {
	m.created = append(m.created, ds)
	return ds, nil
}

func (m *mockDesiredRepo) Update(_ context.Context, ds repository.DesiredSkill) (repository.DesiredSkill, error) {
	return ds, nil
}

func (m *mockDesiredRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return repository.ErrDesiredSkillNotFound
}

func (m *mockDesiredRepo) ToggleActive(_ context.Context, id, _ uuid.UUID) (bool, error) {
	state, ok := m.toggleState[id]
	if !ok {
		return false, repository.ErrDesiredSkillNotFound
	}
	m.toggleState[id] = !state
	return !state, nil
}

func validDesiredInput(f catalogFixture) DesiredSkillInput {
	return DesiredSkillInput{
		CategoryID:         f.categoryID,
		SkillID:            f.skillID,
		Urgency:            "high",
		CurrentLevel:       "beginner",
		TargetLevel:        "intermediate",
		LearningPreference: "both",
	}
}

func TestDesiredAdd_Success(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockDesiredRepo{}
	uc := NewDesiredSkillUsecase(repo, f.repo)

	item, err := uc.Add(context.Background(), uuid.New(), validDesiredInput(f))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created row, got %d", len(repo.created))
	}
	if item.Urgency != "high" {
		t.Fatalf("unexpected urgency: %q", item.Urgency)
	}
}

func TestDesiredAdd_Duplicate(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockDesiredRepo{exists: true}
	uc := NewDesiredSkillUsecase(repo, f.repo)

	_, err := uc.Add(context.Background(), uuid.New(), validDesiredInput(f))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != KindDuplicateSkill {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
	if ve.Message != "You already want to learn Python." {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestDesiredAdd_CategoryMismatch(t *testing.T) {
	f := newCatalogFixture()
	otherCategory := uuid.New()
	f.repo.categories[otherCategory] = repository.SkillCategory{ID: otherCategory, Name: "Cooking", IsActive: true}

	repo := &mockDesiredRepo{}
	uc := NewDesiredSkillUsecase(repo, f.repo)

	in := validDesiredInput(f)
	in.CategoryID = otherCategory

	_, err := uc.Add(context.Background(), uuid.New(), in)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != KindCategoryMismatch {
		t.Fatalf("expected category mismatch, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("mismatched submission must not be persisted")
	}
}

func TestDesiredAdd_InvalidFields(t *testing.T) {
	f := newCatalogFixture()
	uc := NewDesiredSkillUsecase(&mockDesiredRepo{}, f.repo)

	cases := []func(*DesiredSkillInput){
		func(in *DesiredSkillInput) { in.Urgency = "tomorrow" },
		func(in *DesiredSkillInput) { in.CurrentLevel = "novice" },
		func(in *DesiredSkillInput) { in.TargetLevel = "" },
		func(in *DesiredSkillInput) { in.LearningPreference = "osmosis" },
		func(in *DesiredSkillInput) { in.CategoryID = uuid.Nil },
	}
	for i, mutate := range cases {
		in := validDesiredInput(f)
		mutate(&in)
		if _, err := uc.Add(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestDesiredUpdate_ExcludesRecordUnderEdit(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockDesiredRepo{}
	uc := NewDesiredSkillUsecase(repo, f.repo)

	recordID := uuid.New()
	if _, err := uc.Update(context.Background(), uuid.New(), recordID, validDesiredInput(f)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastExcludeID != recordID {
		t.Fatalf("uniqueness check must exclude the edited record, got %s", repo.lastExcludeID)
	}
}

func TestDesiredToggle_NotFound(t *testing.T) {
	f := newCatalogFixture()
	uc := NewDesiredSkillUsecase(&mockDesiredRepo{}, f.repo)

	if _, err := uc.ToggleActive(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
