package impl

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
)

// dayPlans returns every plan of a day: the personal plan, or the unified plan followed
// by each individual plan in key order.
func dayPlans(day entity.WeeklyDietDay) []*entity.DailyDietPlan {
	if day.Plan != nil {
		return []*entity.DailyDietPlan{day.Plan}
	}
	if day.FamilyPlan == nil {
		return nil
	}

	var plans []*entity.DailyDietPlan
	if day.FamilyPlan.UnifiedPlan != nil {
		plans = append(plans, day.FamilyPlan.UnifiedPlan)
	}
	for _, key := range sortedKeys(day.FamilyPlan.Plans) {
		if plan := day.FamilyPlan.Plans[key]; plan != nil {
			plans = append(plans, plan)
		}
	}

	return plans
}

type shoppingKey struct {
	name string
	unit string
}

// shoppingListBuilder merges ingredient lines keyed by (name, unit).
type shoppingListBuilder struct {
	items  map[shoppingKey]*entity.ShoppingListItem
	dishes map[shoppingKey]map[string]struct{}
}

func newShoppingListBuilder() *shoppingListBuilder {
	return &shoppingListBuilder{
		items:  make(map[shoppingKey]*entity.ShoppingListItem),
		dishes: make(map[shoppingKey]map[string]struct{}),
	}
}

func (b *shoppingListBuilder) add(name, unit string, quantity float64, dish string) {
	key := shoppingKey{name: normalizeTag(name), unit: strings.TrimSpace(unit)}
	if key.name == "" {
		return
	}

	item, ok := b.items[key]
	if !ok {
		item = &entity.ShoppingListItem{Name: strings.TrimSpace(name), Unit: key.unit}
		b.items[key] = item
		b.dishes[key] = make(map[string]struct{})
	}
	item.Quantity += quantity
	b.dishes[key][dish] = struct{}{}
}

// list returns the merged lines sorted by name then unit, each with its sorted dishes.
func (b *shoppingListBuilder) list() []entity.ShoppingListItem {
	keys := make([]shoppingKey, 0, len(b.items))
	for key := range b.items {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(x, y shoppingKey) int {
		if c := strings.Compare(x.name, y.name); c != 0 {
			return c
		}

		return strings.Compare(x.unit, y.unit)
	})

	list := make([]entity.ShoppingListItem, 0, len(keys))
	for _, key := range keys {
		item := *b.items[key]
		item.Dishes = sortedKeys(b.dishes[key])
		list = append(list, item)
	}

	return list
}

// buildShoppingList walks every dish used on any day, looking up ingredient lists in the
// catalog. Each use adds its quantities again; fruits add servings times serving size.
func buildShoppingList(ctx context.Context, recipeRepo repository.RecipeRepository, days []entity.WeeklyDietDay) ([]entity.ShoppingListItem, error) {
	var (
		uses   []*entity.Dish
		fruits []*entity.FruitServing
		titles []string
	)
	for _, day := range days {
		for _, plan := range dayPlans(day) {
			for _, dish := range plan.Dishes() {
				uses = append(uses, dish)
				titles = append(titles, dish.Title)
			}
			fruits = append(fruits, plan.Fruits()...)
		}
	}

	catalog := make(map[string]*entity.Dish)
	if titles = mergeTitles(titles); len(titles) > 0 {
		dishes, err := recipeRepo.FindByTitles(ctx, titles)
		if err != nil {
			return nil, fmt.Errorf("failed to look up ingredients: %w: %w", domainerrors.ErrCatalogUnavailable, err)
		}
		for _, dish := range dishes {
			catalog[dish.Title] = dish
		}
	}

	builder := newShoppingListBuilder()
	for _, use := range uses {
		source := use
		if dish, ok := catalog[use.Title]; ok {
			source = dish
		}
		for _, ing := range source.Ingredients {
			builder.add(ing.Name, ing.Unit, ing.Quantity, use.Title)
		}
	}
	for _, fruit := range fruits {
		builder.add(fruit.Fruit.Name, fruit.Fruit.Unit, float64(fruit.Servings)*fruit.Fruit.ServingSize, fruit.Fruit.Name)
	}

	return builder.list(), nil
}

// buildNutritionStats reports one entry per day. Absent days are all zero.
func buildNutritionStats(days []entity.WeeklyDietDay) []entity.WeeklyNutritionStats {
	stats := make([]entity.WeeklyNutritionStats, 0, len(days))
	for _, day := range days {
		stat := entity.WeeklyNutritionStats{Date: day.Date}
		if plan := day.PrimaryPlan(); plan != nil {
			stat.Calories = plan.TotalNutrition.Calories
			stat.Carbs = plan.TotalNutrition.Carbs
			stat.Protein = plan.TotalNutrition.Protein
			stat.Fat = plan.TotalNutrition.Fat
			stat.Sodium = plan.TotalNutrition.Sodium
			stat.MealCount = plan.MealCount()
		}
		stats = append(stats, stat)
	}

	return stats
}
