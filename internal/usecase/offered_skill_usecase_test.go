package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type mockOfferedRepo struct {
	rows   map[uuid.UUID]repository.OfferedSkill
	exists bool

	lastExcludeID uuid.UUID
	created       []repository.OfferedSkill
	createErr     error
	updateErr     error
	toggleState   map[uuid.UUID]bool
}

func (m *mockOfferedRepo) FindByUser(context.Context, uuid.UUID) ([]repository.OfferedSkill, error) {
	out := make([]repository.OfferedSkill, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, row)
	}
	return out, nil
}

func (m *mockOfferedRepo) FindByID(_ context.Context, id, userID uuid.UUID) (repository.OfferedSkill, error) {
	row, ok := m.rows[id]
	if !ok || row.UserID != userID {
		return repository.OfferedSkill{}, repository.ErrOfferedSkillNotFound
	}
	return row, nil
}

func (m *mockOfferedRepo) ExistsForUserAndSkill(_ context.Context, _, _, excludeID uuid.UUID) (bool, error) {
	m.lastExcludeID = excludeID
	return m.exists, nil
}

func (m *mockOfferedRepo) Create(_ context.Context, os repository.OfferedSkill) (repository.OfferedSkill, error) {
	if m.createErr != nil {
		return repository.OfferedSkill{}, m.createErr
	}
	m.created = append(m.created, os)
	return os, nil
}

func (m *mockOfferedRepo) Update(_ context.Context, os repository.OfferedSkill) (repository.OfferedSkill, error) {
	if m.updateErr != nil {
		return repository.OfferedSkill{}, m.updateErr
	}
	return os, nil
}

func (m *mockOfferedRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	row, ok := m.rows[id]
	if !ok || row.UserID != userID {
		return repository.ErrOfferedSkillNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *mockOfferedRepo) ToggleActive(_ context.Context, id, _ uuid.UUID) (bool, error) {
	if m.toggleState == nil {
		return false, repository.ErrOfferedSkillNotFound
	}
	state, ok := m.toggleState[id]
	if !ok {
		return false, repository.ErrOfferedSkillNotFound
	}
	m.toggleState[id] = !state
	return !state, nil
}

type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) InvalidateTrending(context.Context) error {
	m.calls++
	return nil
}

type catalogFixture struct {
	repo       *mockCatalogRepo
	categoryID uuid.UUID
	skillID    uuid.UUID
}

// newCatalogFixture seeds one active Programming category holding a
// Python skill.
func newCatalogFixture() catalogFixture {
	categoryID := uuid.New()
	skillID := uuid.New()
	return catalogFixture{
		repo: &mockCatalogRepo{
			categories: map[uuid.UUID]repository.SkillCategory{
				categoryID: {ID: categoryID, Name: "Programming", IsActive: true},
			},
			skills: map[uuid.UUID]repository.SkillRow{
				skillID: {ID: skillID, Name: "Python", CategoryID: categoryID},
			},
		},
		categoryID: categoryID,
		skillID:    skillID,
	}
}

func validOfferedInput(f catalogFixture) OfferedSkillInput {
	return OfferedSkillInput{
		CategoryID:         f.categoryID,
		SkillID:            f.skillID,
		ProficiencyLevel:   "advanced",
		YearsExperience:    3,
		TeachingPreference: "online",
	}
}

func TestOfferedAdd_Success(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockOfferedRepo{}
	cache := &mockInvalidator{}
	uc := NewOfferedSkillUsecase(repo, f.repo, cache)

	_, err := uc.Add(context.Background(), uuid.New(), validOfferedInput(f))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created row, got %d", len(repo.created))
	}
	if cache.calls != 1 {
		t.Fatalf("expected trending invalidation after add, got %d calls", cache.calls)
	}
}

func TestOfferedAdd_CategoryMismatch(t *testing.T) {
	f := newCatalogFixture()
	otherCategory := uuid.New()
	f.repo.categories[otherCategory] = repository.SkillCategory{ID: otherCategory, Name: "Music", IsActive: true}

	repo := &mockOfferedRepo{}
	uc := NewOfferedSkillUsecase(repo, f.repo, nil)

	in := validOfferedInput(f)
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

func TestOfferedAdd_Duplicate(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockOfferedRepo{exists: true}
	uc := NewOfferedSkillUsecase(repo, f.repo, nil)

	_, err := uc.Add(context.Background(), uuid.New(), validOfferedInput(f))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != KindDuplicateSkill {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
	if ve.Message != "You already offer Python." {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
	if repo.lastExcludeID != uuid.Nil {
		t.Fatalf("create must not exclude any record, got %s", repo.lastExcludeID)
	}
}

func TestOfferedUpdate_ExcludesRecordUnderEdit(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockOfferedRepo{}
	uc := NewOfferedSkillUsecase(repo, f.repo, nil)

	recordID := uuid.New()
	_, err := uc.Update(context.Background(), uuid.New(), recordID, validOfferedInput(f))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastExcludeID != recordID {
		t.Fatalf("uniqueness check must exclude the edited record, got %s", repo.lastExcludeID)
	}
}

func TestOfferedAdd_UnknownOrInactiveCategory(t *testing.T) {
	f := newCatalogFixture()
	inactive := uuid.New()
	f.repo.categories[inactive] = repository.SkillCategory{ID: inactive, Name: "Archived", IsActive: false}

	uc := NewOfferedSkillUsecase(&mockOfferedRepo{}, f.repo, nil)

	in := validOfferedInput(f)
	in.CategoryID = uuid.New()
	if _, err := uc.Add(context.Background(), uuid.New(), in); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("unknown category: expected ErrCategoryNotFound, got %v", err)
	}

	in.CategoryID = inactive
	if _, err := uc.Add(context.Background(), uuid.New(), in); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("inactive category: expected ErrCategoryNotFound, got %v", err)
	}
}

func TestOfferedAdd_InvalidFields(t *testing.T) {
	f := newCatalogFixture()
	uc := NewOfferedSkillUsecase(&mockOfferedRepo{}, f.repo, nil)

	cases := []func(*OfferedSkillInput){
		func(in *OfferedSkillInput) { in.ProficiencyLevel = "guru" },
		func(in *OfferedSkillInput) { in.TeachingPreference = "telepathy" },
		func(in *OfferedSkillInput) { in.YearsExperience = -1 },
		func(in *OfferedSkillInput) { in.SkillID = uuid.Nil },
	}
	for i, mutate := range cases {
		in := validOfferedInput(f)
		mutate(&in)
		if _, err := uc.Add(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestOfferedAdd_UniqueViolationMapsToDuplicate(t *testing.T) {
	f := newCatalogFixture()
	repo := &mockOfferedRepo{createErr: &pgconn.PgError{Code: "23505"}}
	uc := NewOfferedSkillUsecase(repo, f.repo, nil)

	_, err := uc.Add(context.Background(), uuid.New(), validOfferedInput(f))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != KindDuplicateSkill {
		t.Fatalf("expected duplicate rejection from constraint, got %v", err)
	}
}

func TestOfferedToggle_DoubleToggleRestoresState(t *testing.T) {
	f := newCatalogFixture()
	recordID := uuid.New()
	repo := &mockOfferedRepo{toggleState: map[uuid.UUID]bool{recordID: true}}
	uc := NewOfferedSkillUsecase(repo, f.repo, nil)

	userID := uuid.New()
	first, err := uc.ToggleActive(context.Background(), userID, recordID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first {
		t.Fatalf("expected first toggle to deactivate")
	}

	second, err := uc.ToggleActive(context.Background(), userID, recordID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !second {
		t.Fatalf("expected second toggle to restore the active state")
	}
}

func TestOfferedDelete_NotFound(t *testing.T) {
	f := newCatalogFixture()
	uc := NewOfferedSkillUsecase(&mockOfferedRepo{}, f.repo, nil)

	if err := uc.Delete(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
