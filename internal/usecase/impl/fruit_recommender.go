package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
)

// FruitCriteria describes the snack slot of one plan.
type FruitCriteria struct {
	TargetCalories float64
	Month          int
	ChildDiet      bool
	Exclusions     ExclusionSet
	Allergies      []string
	// ExcludeNames are fruits already served often enough this week
	ExcludeNames []string
}

// FruitRecommender picks a seasonal fruit and its serving count for a snack.
type FruitRecommender struct {
	fruitRepo repository.SeasonalFruitRepository
	cfg       *config.DietConfig
	logger    *slog.Logger
}

// NewFruitRecommender creates a new fruit recommender.
func NewFruitRecommender(fruitRepo repository.SeasonalFruitRepository, cfg *config.Config, logger *slog.Logger) *FruitRecommender {
	return &FruitRecommender{
		fruitRepo: fruitRepo,
		cfg:       cfg.Diet.WithDefaults(),
		logger:    logger,
	}
}

func (r *FruitRecommender) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Recommend returns a safe in-season fruit, or nil when none is safe.
// Child diets prefer child-friendly fruits; recently served fruits are skipped
// unless every safe fruit was served.
func (r *FruitRecommender) Recommend(ctx context.Context, criteria FruitCriteria) (*entity.FruitServing, error) {
	fruits, err := r.fruitRepo.FindInSeason(ctx, criteria.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to find seasonal fruits: %w: %w", domainerrors.ErrFruitLookupFailed, err)
	}

	allergies := toSet(normalizeTags(criteria.Allergies))
	safe := make([]*entity.SeasonalFruit, 0, len(fruits))
	for _, fruit := range fruits {
		if fruit == nil || criteria.Exclusions.Contains(fruit.Name) || hitsAny(fruit.AllergyTags, allergies) {
			continue
		}
		safe = append(safe, fruit)
	}
	if len(safe) == 0 {
		return nil, nil
	}

	excluded := toSet(normalizeTags(criteria.ExcludeNames))
	fresh := func(pool []*entity.SeasonalFruit) *entity.SeasonalFruit {
		for _, fruit := range pool {
			if _, used := excluded[normalizeTag(fruit.Name)]; !used {
				return fruit
			}
		}

		return nil
	}

	pool := safe
	if criteria.ChildDiet {
		var friendly []*entity.SeasonalFruit
		for _, fruit := range safe {
			if fruit.ChildFriendly {
				friendly = append(friendly, fruit)
			}
		}
		if len(friendly) > 0 {
			pool = friendly
		}
	}

	// A fresh fruit beats a child-friendly repeat; a repeat is the last resort.
	chosen := fresh(pool)
	if chosen == nil {
		chosen = fresh(safe)
	}
	if chosen == nil {
		chosen = pool[0]
	}

	servings := r.servings(chosen, criteria.TargetCalories)
	r.log(ctx).Debug("Fruit selected",
		slog.String("fruit", chosen.Name),
		slog.Int("servings", servings),
		slog.Int("month", criteria.Month),
		slog.Bool("child_diet", criteria.ChildDiet),
	)

	return &entity.FruitServing{
		Fruit:     *chosen,
		Servings:  servings,
		Nutrition: chosen.PerServing.Scale(float64(servings)),
	}, nil
}

func (r *FruitRecommender) servings(fruit *entity.SeasonalFruit, target float64) int {
	if fruit.PerServing.Calories <= 0 || target <= 0 {
		return 1
	}

	n := int(math.Round(target / fruit.PerServing.Calories))

	return min(max(n, 1), r.cfg.MaxFruitServings)
}

func hitsAny(tags []string, set map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := set[normalizeTag(t)]; ok {
			return true
		}
	}

	return false
}
