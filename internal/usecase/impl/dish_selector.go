package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
)

const (
	calorieScoreBase = 1000.0
	childBonusBase   = 100.0
)

// SelectionCriteria describes one meal slot to fill.
type SelectionCriteria struct {
	DishType       entity.DishType
	MealType       entity.MealType
	TargetCalories float64
	Exclusions     ExclusionSet
	Allergies      []string
	// ExcludeTitles are titles already used in this meal, this week or recently
	ExcludeTitles    []string
	ChildDiet        bool
	PreferredVariety string
}

// DishSelector picks the best matching catalog dish for one slot.
type DishSelector struct {
	recipeRepo repository.RecipeRepository
	filter     *ConstraintFilter
	cfg        *config.DietConfig
	logger     *slog.Logger
}

// NewDishSelector creates a new dish selector.
func NewDishSelector(recipeRepo repository.RecipeRepository, filter *ConstraintFilter, cfg *config.Config, logger *slog.Logger) *DishSelector {
	return &DishSelector{
		recipeRepo: recipeRepo,
		filter:     filter,
		cfg:        cfg.Diet.WithDefaults(),
		logger:     logger,
	}
}

func (s *DishSelector) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

type scoredDish struct {
	dish  *entity.Dish
	score float64
}

// Select returns the highest scoring safe dish, or nil when no candidate survives.
// When a preferred variety is given it is tried first, then any variety.
func (s *DishSelector) Select(ctx context.Context, criteria SelectionCriteria) (*entity.Dish, error) {
	if criteria.PreferredVariety != "" {
		dish, err := s.selectVariety(ctx, criteria, criteria.PreferredVariety)
		if err != nil {
			return nil, err
		}
		if dish != nil {
			return dish, nil
		}

		s.log(ctx).Debug("Preferred variety unavailable, falling back to any variety",
			slog.String("dish_type", string(criteria.DishType)),
			slog.String("meal_type", string(criteria.MealType)),
			slog.String("variety", criteria.PreferredVariety),
		)
	}

	return s.selectVariety(ctx, criteria, "")
}

func (s *DishSelector) selectVariety(ctx context.Context, criteria SelectionCriteria, variety string) (*entity.Dish, error) {
	candidates, err := s.recipeRepo.Search(ctx, repository.RecipeQuery{
		DishType:      criteria.DishType,
		MealType:      criteria.MealType,
		Variety:       variety,
		ExcludeTitles: criteria.ExcludeTitles,
		Limit:         s.cfg.CandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w: %w", domainerrors.ErrCatalogUnavailable, err)
	}

	safe := s.filter.Filter(ctx, candidates, criteria.Exclusions, criteria.Allergies)
	if len(safe) == 0 {
		return nil, nil
	}

	ranked := make([]scoredDish, 0, len(safe))
	for _, dish := range safe {
		ranked = append(ranked, scoredDish{dish: dish, score: s.Score(dish, criteria.TargetCalories, criteria.ChildDiet)})
	}
	// Equal scores keep catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := ranked[0]
	s.log(ctx).Debug("Dish selected",
		slog.String("dish", best.dish.Title),
		slog.String("dish_type", string(criteria.DishType)),
		slog.String("meal_type", string(criteria.MealType)),
		slog.Float64("score", best.score),
		slog.Float64("target_calories", criteria.TargetCalories),
		slog.Int("candidates", len(ranked)),
	)

	return best.dish, nil
}

// Score rates a dish against a calorie target, adding the macro-ratio bonus for child diets.
func (s *DishSelector) Score(dish *entity.Dish, targetCalories float64, childDiet bool) float64 {
	score := calorieScoreBase - math.Abs(dish.Nutrition.Calories-targetCalories)
	if childDiet {
		score += s.childBonus(dish.Nutrition)
	}

	return score
}

func (s *DishSelector) childBonus(n entity.Nutrition) float64 {
	mass := n.MacroMass()
	if mass <= 0 {
		return 0
	}

	target := s.cfg.ChildMacroTarget
	distance := math.Abs(n.Carbs/mass-target.Carbs) +
		math.Abs(n.Protein/mass-target.Protein) +
		math.Abs(n.Fat/mass-target.Fat)

	return childBonusBase - childBonusBase*distance
}
