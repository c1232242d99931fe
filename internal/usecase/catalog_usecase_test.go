package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type mockCatalogRepo struct {
	categories map[uuid.UUID]repository.SkillCategory
	active     []repository.SkillCategory
	skills     map[uuid.UUID]repository.SkillRow
	listed     []repository.SkillRow
	trending   []repository.SkillRow
	options    []repository.SkillOption

	lastFilter     repository.CatalogFilter
	trendingCalls  int
	byCategoryCall int
}

func (m *mockCatalogRepo) ListActiveCategories(context.Context) ([]repository.SkillCategory, error) {
	return m.active, nil
}

func (m *mockCatalogRepo) CategoryByID(_ context.Context, id uuid.UUID) (repository.SkillCategory, error) {
	c, ok := m.categories[id]
	if !ok {
		return repository.SkillCategory{}, repository.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCatalogRepo) ListSkills(_ context.Context, f repository.CatalogFilter) ([]repository.SkillRow, error) {
	m.lastFilter = f
	return m.listed, nil
}

func (m *mockCatalogRepo) CountSkills(context.Context, repository.CatalogFilter) (int, error) {
	return len(m.listed), nil
}

func (m *mockCatalogRepo) ListTrending(_ context.Context, limit, offset int) ([]repository.SkillRow, error) {
	m.trendingCalls++
	if offset >= len(m.trending) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(m.trending) {
		end = len(m.trending)
	}
	return m.trending[offset:end], nil
}

func (m *mockCatalogRepo) SkillByID(_ context.Context, id uuid.UUID) (repository.SkillRow, error) {
	s, ok := m.skills[id]
	if !ok {
		return repository.SkillRow{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockCatalogRepo) SkillsByCategory(context.Context, uuid.UUID) ([]repository.SkillOption, error) {
	m.byCategoryCall++
	return m.options, nil
}

func (m *mockCatalogRepo) SearchSkills(_ context.Context, _ string, limit int) ([]repository.SkillOption, error) {
	if limit > 0 && limit < len(m.options) {
		return m.options[:limit], nil
	}
	return m.options, nil
}

type mockTrendingCache struct {
	store map[string][]SkillItem
	gets  int
	sets  int
}

func (m *mockTrendingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	items, ok := m.store[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]SkillItem)) = items
	return true, nil
}

func (m *mockTrendingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]SkillItem{}
	}
	m.store[key] = value.([]SkillItem)
	return nil
}

func trendingFixture() []repository.SkillRow {
	return []repository.SkillRow{
		{ID: uuid.New(), Name: "Go", OfferedCount: 9},
		{ID: uuid.New(), Name: "Python", OfferedCount: 7},
		{ID: uuid.New(), Name: "Rust", OfferedCount: 3},
	}
}

func TestBrowseSkills_TrendingOnlyForAuthenticated(t *testing.T) {
	repo := &mockCatalogRepo{trending: trendingFixture()}
	uc := NewCatalogUsecase(repo, nil)

	page, err := uc.BrowseSkills(context.Background(), BrowseParams{Authenticated: false})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Trending != nil {
		t.Fatalf("expected no trending block for anonymous browse")
	}

	page, err = uc.BrowseSkills(context.Background(), BrowseParams{Authenticated: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Trending) != 3 {
		t.Fatalf("expected 3 trending items, got %d", len(page.Trending))
	}
	if page.Trending[0].Name != "Go" || page.Trending[1].Name != "Python" || page.Trending[2].Name != "Rust" {
		t.Fatalf("unexpected trending order: %+v", page.Trending)
	}
}

func TestBrowseSkills_FilterSuppressesTrending(t *testing.T) {
	categoryID := uuid.New()
	repo := &mockCatalogRepo{
		categories: map[uuid.UUID]repository.SkillCategory{
			categoryID: {ID: categoryID, Name: "Programming", IsActive: true},
		},
		trending: trendingFixture(),
	}
	uc := NewCatalogUsecase(repo, nil)

	page, err := uc.BrowseSkills(context.Background(), BrowseParams{
		RawCategoryID: categoryID.String(),
		Authenticated: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Trending != nil {
		t.Fatalf("expected no trending block with a category filter")
	}
	if repo.trendingCalls != 0 {
		t.Fatalf("trending should not be fetched, got %d calls", repo.trendingCalls)
	}
	if page.SelectedCategory == nil || page.SelectedCategory.ID != categoryID {
		t.Fatalf("expected selected category to be echoed back")
	}
}

func TestBrowseSkills_MalformedFilterMeansNoFilter(t *testing.T) {
	repo := &mockCatalogRepo{trending: trendingFixture()}
	uc := NewCatalogUsecase(repo, nil)

	page, err := uc.BrowseSkills(context.Background(), BrowseParams{
		RawCategoryID: "not-a-uuid",
		RawSkillID:    "12345",
		Authenticated: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.CategoryID != uuid.Nil || repo.lastFilter.SkillID != uuid.Nil {
		t.Fatalf("malformed ids must not reach the filter: %+v", repo.lastFilter)
	}
	// With the garbage filter ignored the browse counts as unfiltered.
	if len(page.Trending) == 0 {
		t.Fatalf("expected trending block for unfiltered authenticated browse")
	}
}

func TestBrowseSkills_UnknownSortFallsBackToName(t *testing.T) {
	repo := &mockCatalogRepo{}
	uc := NewCatalogUsecase(repo, nil)

	if _, err := uc.BrowseSkills(context.Background(), BrowseParams{Sort: "sneaky"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Sort != repository.SortByName {
		t.Fatalf("expected name sort fallback, got %q", repo.lastFilter.Sort)
	}
}

func TestTrendingCompact_UsesCache(t *testing.T) {
	repo := &mockCatalogRepo{trending: trendingFixture()}
	cache := &mockTrendingCache{}
	uc := NewCatalogUsecase(repo, cache)

	for i := 0; i < 3; i++ {
		page, err := uc.BrowseSkills(context.Background(), BrowseParams{Authenticated: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(page.Trending) != 3 {
			t.Fatalf("expected 3 trending items, got %d", len(page.Trending))
		}
	}

	if repo.trendingCalls != 1 {
		t.Fatalf("expected a single trending query behind the cache, got %d", repo.trendingCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}
}

func TestTrending_CompactIsPrefixOfFullListing(t *testing.T) {
	rows := make([]repository.SkillRow, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, repository.SkillRow{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Skill %02d", i),
			OfferedCount: 25 - i,
		})
	}
	repo := &mockCatalogRepo{trending: rows}
	uc := NewCatalogUsecase(repo, nil)

	page, err := uc.BrowseSkills(context.Background(), BrowseParams{Authenticated: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Trending) != 15 {
		t.Fatalf("expected the compact block capped at 15, got %d", len(page.Trending))
	}

	more, err := uc.TrendingMore(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(more) != 20 {
		t.Fatalf("expected a full first page of 20, got %d", len(more))
	}
	// The compact block must be a prefix of the full listing, never a
	// different ranking.
	for i := range page.Trending {
		if page.Trending[i].ID != more[i].ID {
			t.Fatalf("compact item %d diverges from the full listing: %s vs %s",
				i, page.Trending[i].Name, more[i].Name)
		}
	}

	page2, err := uc.TrendingMore(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("expected the 5 remaining items on page 2, got %d", len(page2))
	}
	if page2[0].ID != rows[20].ID {
		t.Fatalf("page 2 must continue at offset 20, got %s", page2[0].Name)
	}
}

func TestSkillsByCategory_MalformedIDYieldsEmptyList(t *testing.T) {
	repo := &mockCatalogRepo{options: []repository.SkillOption{{ID: uuid.New(), Name: "Go"}}}
	uc := NewCatalogUsecase(repo, nil)

	for _, raw := range []string{"", "abc", "999"} {
		options, err := uc.SkillsByCategory(context.Background(), raw)
		if err != nil {
			t.Fatalf("raw=%q: unexpected err: %v", raw, err)
		}
		if len(options) != 0 {
			t.Fatalf("raw=%q: expected empty list, got %d options", raw, len(options))
		}
	}
	if repo.byCategoryCall != 0 {
		t.Fatalf("repository should not be queried for malformed ids")
	}
}

func TestSkillDetail_NotFound(t *testing.T) {
	uc := NewCatalogUsecase(&mockCatalogRepo{}, nil)

	_, err := uc.SkillDetail(context.Background(), uuid.New())
	if err != ErrSkillNotFound {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAutocomplete_LimitsResults(t *testing.T) {
	options := make([]repository.SkillOption, 0, 12)
	for i := 0; i < 12; i++ {
		options = append(options, repository.SkillOption{ID: uuid.New(), Name: "Skill"})
	}
	uc := NewCatalogUsecase(&mockCatalogRepo{options: options}, nil)

	got, err := uc.Autocomplete(context.Background(), "  ski  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 suggestions, got %d", len(got))
	}
}
