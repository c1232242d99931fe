package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillswap/internal/repository"

	"github.com/google/uuid"
)

const (
	// compact trending block size on the catalog page
	trendingCompactLimit = 15
	catalogPageSize      = 20
)

type SkillItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	OfferedCount int       `json:"offered_count"`
}

type CategoryItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SkillCount int       `json:"skill_count"`
}

type SkillOptionItem struct {
	ID   uuid.UUID
	Name string
}

// BrowseParams carries raw query values; malformed ids are treated as
// "no filter" rather than rejected.
type BrowseParams struct {
	RawCategoryID string
	RawSkillID    string
	Sort          string
	Page          int
	Authenticated bool
}

type CatalogPage struct {
	Skills     []SkillItem
	Total      int
	Page       int
	PageSize   int
	Categories []CategoryItem

	// Trending is populated only for authenticated requests with no
	// category/skill filter active.
	Trending []SkillItem

	SelectedCategory *CategoryItem
	SelectedSkill    *SkillItem
}

type CatalogUsecase interface {
	BrowseSkills(ctx context.Context, p BrowseParams) (CatalogPage, error)
	TrendingMore(ctx context.Context, page int) ([]SkillItem, error)
	ListCategories(ctx context.Context) ([]CategoryItem, error)
	SkillDetail(ctx context.Context, id uuid.UUID) (SkillItem, error)
	SkillsByCategory(ctx context.Context, rawCategoryID string) ([]SkillOptionItem, error)
	Autocomplete(ctx context.Context, term string) ([]SkillOptionItem, error)
}

// TrendingCache is the slice of the Redis cache the catalog needs.
type TrendingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	trendingCompactCacheKey = "trending:compact"
)

type Catalog struct {
	repo  repository.CatalogRepository
	cache TrendingCache
}

func NewCatalogUsecase(repo repository.CatalogRepository, cache TrendingCache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

func (u *Catalog) BrowseSkills(ctx context.Context, p BrowseParams) (CatalogPage, error) {
	categoryID := parseOptionalID(p.RawCategoryID)
	skillID := parseOptionalID(p.RawSkillID)

	page := p.Page
	if page < 1 {
		page = 1
	}

	filter := repository.CatalogFilter{
		CategoryID: categoryID,
		SkillID:    skillID,
		Sort:       normalizeSort(p.Sort),
		Limit:      catalogPageSize,
		Offset:     (page - 1) * catalogPageSize,
	}

	skills, err := u.repo.ListSkills(ctx, filter)
	if err != nil {
		return CatalogPage{}, ErrInternal
	}
	total, err := u.repo.CountSkills(ctx, filter)
	if err != nil {
		return CatalogPage{}, ErrInternal
	}
	categories, err := u.repo.ListActiveCategories(ctx)
	if err != nil {
		return CatalogPage{}, ErrInternal
	}

	out := CatalogPage{
		Skills:     toSkillItems(skills),
		Total:      total,
		Page:       page,
		PageSize:   catalogPageSize,
		Categories: toCategoryItems(categories),
	}

	hasFilters := categoryID != uuid.Nil || skillID != uuid.Nil

	// Trending is a presentation gate, not a data restriction: shown to
	// signed-in users browsing without filters.
	if p.Authenticated && !hasFilters {
		trending, err := u.trendingCompact(ctx)
		if err != nil {
			return CatalogPage{}, err
		}
		out.Trending = trending
	}

	if categoryID != uuid.Nil {
		if c, err := u.repo.CategoryByID(ctx, categoryID); err == nil {
			item := CategoryItem{ID: c.ID, Name: c.Name, SkillCount: c.SkillCount}
			out.SelectedCategory = &item
		}
	}
	if skillID != uuid.Nil {
		if s, err := u.repo.SkillByID(ctx, skillID); err == nil {
			item := toSkillItem(s)
			out.SelectedSkill = &item
		}
	}

	return out, nil
}

func (u *Catalog) trendingCompact(ctx context.Context) ([]SkillItem, error) {
	if u.cache != nil {
		var cached []SkillItem
		if ok, err := u.cache.GetJSON(ctx, trendingCompactCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := u.repo.ListTrending(ctx, trendingCompactLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}
	items := toSkillItems(rows)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, trendingCompactCacheKey, items, 0)
	}
	return items, nil
}

func (u *Catalog) TrendingMore(ctx context.Context, page int) ([]SkillItem, error) {
	if page < 1 {
		page = 1
	}
	rows, err := u.repo.ListTrending(ctx, catalogPageSize, (page-1)*catalogPageSize)
	if err != nil {
		return nil, ErrInternal
	}
	return toSkillItems(rows), nil
}

func (u *Catalog) ListCategories(ctx context.Context) ([]CategoryItem, error) {
	categories, err := u.repo.ListActiveCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return toCategoryItems(categories), nil
}

func (u *Catalog) SkillDetail(ctx context.Context, id uuid.UUID) (SkillItem, error) {
	s, err := u.repo.SkillByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}
	return toSkillItem(s), nil
}

// SkillsByCategory feeds the dependent category -> skill dropdown. A
// missing or malformed category id yields an empty list, never an
// error.
func (u *Catalog) SkillsByCategory(ctx context.Context, rawCategoryID string) ([]SkillOptionItem, error) {
	categoryID := parseOptionalID(rawCategoryID)
	if categoryID == uuid.Nil {
		return []SkillOptionItem{}, nil
	}

	options, err := u.repo.SkillsByCategory(ctx, categoryID)
	if err != nil {
		return nil, ErrInternal
	}
	return toSkillOptionItems(options), nil
}

func (u *Catalog) Autocomplete(ctx context.Context, term string) ([]SkillOptionItem, error) {
	term = strings.TrimSpace(term)
	options, err := u.repo.SearchSkills(ctx, term, 10)
	if err != nil {
		return nil, ErrInternal
	}
	return toSkillOptionItems(options), nil
}

func normalizeSort(sort string) string {
	switch sort {
	case repository.SortByPopular, repository.SortByRecent:
		return sort
	default:
		return repository.SortByName
	}
}

func parseOptionalID(raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func toSkillItem(s repository.SkillRow) SkillItem {
	return SkillItem{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		CreatedAt:    s.CreatedAt,
		OfferedCount: s.OfferedCount,
	}
}

func toSkillItems(rows []repository.SkillRow) []SkillItem {
	out := make([]SkillItem, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSkillItem(s))
	}
	return out
}

func toCategoryItems(rows []repository.SkillCategory) []CategoryItem {
	out := make([]CategoryItem, 0, len(rows))
	for _, c := range rows {
		out = append(out, CategoryItem{ID: c.ID, Name: c.Name, SkillCount: c.SkillCount})
	}
	return out
}

func toSkillOptionItems(rows []repository.SkillOption) []SkillOptionItem {
	out := make([]SkillOptionItem, 0, len(rows))
	for _, o := range rows {
		out = append(out, SkillOptionItem{ID: o.ID, Name: o.Name})
	}
	return out
}
