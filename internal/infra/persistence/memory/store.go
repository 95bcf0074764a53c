// Package memory provides an in-process implementation of the persistence ports,
// used by the memory storage driver and as a fixture in tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type usage struct {
	title  string
	usedAt time.Time
}

type weekKey struct {
	userID    uuid.UUID
	weekStart string
}

func newWeekKey(userID uuid.UUID, weekStart time.Time) weekKey {
	return weekKey{userID: userID, weekStart: weekStart.Format(time.DateOnly)}
}

// Store holds the reference tables, the recipe history and the stored weekly diets.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	dishes     []*entity.Dish
	byTitle    map[string]*entity.Dish
	exclusions []entity.ExcludedFood
	fruits     []*entity.SeasonalFruit

	history map[uuid.UUID][]usage
	weekly  map[weekKey]*entity.WeeklyDiet

	// txMu serialises transactions so a rollback restores a consistent snapshot
	txMu sync.Mutex
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock RecentlyUsed measures its window against.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		byTitle: make(map[string]*entity.Dish),
		history: make(map[uuid.UUID][]usage),
		weekly:  make(map[weekKey]*entity.WeeklyDiet),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewStoreWithCatalog creates a store holding the given reference tables.
func NewStoreWithCatalog(catalog *entity.Catalog, opts ...Option) (*Store, error) {
	s := NewStore(opts...)
	if err := s.Import(context.Background(), catalog); err != nil {
		return nil, err
	}

	return s, nil
}

// Import replaces the reference tables. History and weekly diets are kept.
func (s *Store) Import(_ context.Context, catalog *entity.Catalog) error {
	if catalog == nil {
		return errors.New("catalog is nil")
	}

	byTitle := make(map[string]*entity.Dish, len(catalog.Dishes))
	dishes := make([]*entity.Dish, 0, len(catalog.Dishes))
	for _, dish := range catalog.Dishes {
		if dish == nil {
			continue
		}
		if _, dup := byTitle[dish.Title]; dup {
			return errors.Errorf("duplicate dish title %q", dish.Title)
		}
		byTitle[dish.Title] = dish
		dishes = append(dishes, dish)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dishes = dishes
	s.byTitle = byTitle
	s.exclusions = slices.Clone(catalog.Exclusions)
	s.fruits = slices.DeleteFunc(slices.Clone(catalog.Fruits), func(f *entity.SeasonalFruit) bool { return f == nil })

	return nil
}

// Recipes returns the recipe catalog view of the store.
func (s *Store) Recipes() repository.RecipeRepository { return &recipeRepository{s: s} }

// Exclusions returns the disease exclusion table view of the store.
func (s *Store) Exclusions() repository.DiseaseExclusionRepository {
	return &exclusionRepository{s: s}
}

// Fruits returns the seasonal fruit table view of the store.
func (s *Store) Fruits() repository.SeasonalFruitRepository { return &fruitRepository{s: s} }

// History returns the recipe history view of the store.
func (s *Store) History() repository.RecipeHistoryRepository { return &historyRepository{s: s} }

// WeeklyDiets returns the weekly diet view of the store.
func (s *Store) WeeklyDiets() repository.WeeklyDietRepository {
	return &weeklyDietRepository{s: s}
}

type recipeRepository struct {
	s *Store
}

func (r *recipeRepository) Search(ctx context.Context, query repository.RecipeQuery) ([]*entity.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	excluded := make(map[string]struct{}, len(query.ExcludeTitles))
	for _, title := range query.ExcludeTitles {
		excluded[title] = struct{}{}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found []*entity.Dish
	for _, dish := range r.s.dishes {
		if dish.DishType != query.DishType {
			continue
		}
		if query.MealType != "" && dish.MealType != "" && dish.MealType != query.MealType {
			continue
		}
		if query.Variety != "" && !strings.EqualFold(dish.Variety, query.Variety) {
			continue
		}
		if _, skip := excluded[dish.Title]; skip {
			continue
		}
		found = append(found, dish)
		if query.Limit > 0 && len(found) == query.Limit {
			break
		}
	}

	return found, nil
}

func (r *recipeRepository) FindByTitles(ctx context.Context, titles []string) ([]*entity.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := make([]*entity.Dish, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		if dish, ok := r.s.byTitle[title]; ok {
			found = append(found, dish)
		}
	}

	return found, nil
}

type exclusionRepository struct {
	s *Store
}

func (r *exclusionRepository) ExcludedItems(ctx context.Context, diseaseCodes []string) ([]entity.ExcludedFood, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	codes := make(map[string]struct{}, len(diseaseCodes))
	for _, code := range diseaseCodes {
		codes[strings.ToLower(strings.TrimSpace(code))] = struct{}{}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var items []entity.ExcludedFood
	for _, item := range r.s.exclusions {
		if _, ok := codes[strings.ToLower(strings.TrimSpace(item.DiseaseCode))]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}

type fruitRepository struct {
	s *Store
}

func (r *fruitRepository) FindInSeason(ctx context.Context, month int) ([]*entity.SeasonalFruit, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found []*entity.SeasonalFruit
	for _, fruit := range r.s.fruits {
		if fruit.InSeason(month) {
			found = append(found, fruit)
		}
	}

	return found, nil
}

type historyRepository struct {
	s *Store
}

func (r *historyRepository) RecentlyUsed(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	since := r.s.now().Add(-repository.RecentWindow)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	titles := make(map[string]struct{})
	for _, u := range r.s.history[userID] {
		if !u.usedAt.Before(since) {
			titles[u.title] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(titles)), nil
}

func (r *historyRepository) RecordUsage(ctx context.Context, userID uuid.UUID, titles []string, usedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, title := range titles {
		r.s.history[userID] = append(r.s.history[userID], usage{title: title, usedAt: usedAt})
	}

	return nil
}

type weeklyDietRepository struct {
	s *Store
}

func (r *weeklyDietRepository) Save(ctx context.Context, diet *entity.WeeklyDiet) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if diet == nil {
		return errors.New("weekly diet is nil")
	}

	stored := *diet

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.weekly[newWeekKey(diet.UserID, diet.WeekStart)] = &stored

	return nil
}

func (r *weeklyDietRepository) FindByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*entity.WeeklyDiet, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	diet, ok := r.s.weekly[newWeekKey(userID, weekStart)]
	if !ok {
		return nil, repository.ErrWeeklyDietNotFound
	}
	found := *diet

	return &found, nil
}
