package impl

import (
	"context"
	"time"

	"dietplan/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// planSlots is the slot order of a daily plan.
var planSlots = [...]entity.MealType{
	entity.MealTypeBreakfast,
	entity.MealTypeLunch,
	entity.MealTypeDinner,
	entity.MealTypeSnack,
}

// planRequest is everything needed to fill the four slots of one plan.
type planRequest struct {
	Date             time.Time
	Allocation       entity.CalorieAllocation
	Exclusions       ExclusionSet
	Allergies        []string
	ExcludeTitles    []string
	PreferredVariety string
	ChildDiet        bool
	// TitleBudget carries the day's running title counts; nil when no ceiling applies
	TitleBudget      *titleBudget
}

// planBuilder composes the four meal slots of a daily plan. Without a title budget the
// slots may run in parallel, each with its own used-title set. Under a budget they run
// in order so every slot sees the titles the earlier slots used up.
type planBuilder struct {
	composer *MealComposer
	parallel bool
}

func newPlanBuilder(composer *MealComposer, parallel bool) *planBuilder {
	return &planBuilder{composer: composer, parallel: parallel}
}

// build returns nil when every slot is empty.
func (b *planBuilder) build(ctx context.Context, req planRequest) (*entity.DailyDietPlan, error) {
	var meals [len(planSlots)]*entity.MealComposition

	compose := func(ctx context.Context, i int) error {
		meal, err := b.composer.Compose(ctx, MealRequest{
			MealType:         planSlots[i],
			Budget:           req.Allocation.ForMeal(planSlots[i]),
			Date:             req.Date,
			Exclusions:       req.Exclusions,
			Allergies:        req.Allergies,
			ExcludeTitles:    mergeTitles(req.ExcludeTitles, req.TitleBudget.spent()),
			ChildDiet:        req.ChildDiet,
			PreferredVariety: req.PreferredVariety,
		})
		if err != nil {
			return err
		}
		meals[i] = meal
		req.TitleBudget.record(meal.Titles()...)

		return nil
	}

	if b.parallel && !req.TitleBudget.enabled() {
		g, gctx := errgroup.WithContext(ctx)
		for i := range planSlots {
			g.Go(func() error { return compose(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range planSlots {
			if err := compose(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	plan := &entity.DailyDietPlan{
		Date:      req.Date,
		Breakfast: meals[0],
		Lunch:     meals[1],
		Dinner:    meals[2],
		Snack:     meals[3],
	}
	if plan.MealCount() == 0 {
		return nil, nil
	}
	plan.Recalculate()

	return plan, nil
}
