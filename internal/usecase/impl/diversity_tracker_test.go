package impl

import (
	"testing"

	"dietplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func planWith(dishes ...*entity.Dish) *entity.DailyDietPlan {
	meal := &entity.MealComposition{MealType: entity.MealTypeLunch}
	for _, d := range dishes {
		switch d.DishType {
		case entity.DishTypeRice:
			meal.Rice = d
		case entity.DishTypeSoup:
			meal.Soup = d
		default:
			meal.Sides = append(meal.Sides, d)
		}
	}

	return &entity.DailyDietPlan{Lunch: meal}
}

func fruitPlan(name string) *entity.DailyDietPlan {
	return &entity.DailyDietPlan{Snack: &entity.MealComposition{
		MealType: entity.MealTypeSnack,
		Fruit:    &entity.FruitServing{Fruit: entity.SeasonalFruit{Name: name}, Servings: 1},
	}}
}

func TestDiversityTracker(t *testing.T) {
	rice := dish("White Rice", entity.DishTypeRice, 250)
	egg := dish("Steamed Egg", entity.DishTypeSide, 110)
	soup := dish("Miso Soup", entity.DishTypeSoup, 80)

	t.Run("title reaches the ceiling after enough days", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityMedium, nil, nil)
		assert.Empty(t, tracker.exclusions())

		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice, egg)})
		assert.Empty(t, tracker.exclusions())

		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice, soup)})
		assert.Equal(t, []string{"White Rice"}, tracker.exclusions())
		assert.Equal(t, map[string]int{"White Rice": 2, "Steamed Egg": 1, "Miso Soup": 1}, tracker.titleCounts())
	})

	t.Run("high diversity excludes after one day", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityHigh, nil, nil)
		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice, egg), fruitPlan("Guava")})

		assert.Equal(t, []string{"Guava", "Steamed Egg", "White Rice"}, tracker.exclusions())
	})

	t.Run("every selection counts toward the ceiling", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityLow, nil, nil)
		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice), planWith(rice), planWith(rice, egg)})

		assert.Equal(t, map[string]int{"White Rice": 3, "Steamed Egg": 1}, tracker.titleCounts())
		assert.Equal(t, []string{"White Rice"}, tracker.exclusions())
	})

	t.Run("a title in two slots of one plan counts twice", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityMedium, nil, nil)
		plan := planWith(egg)
		plan.Dinner = &entity.MealComposition{MealType: entity.MealTypeDinner, Sides: []*entity.Dish{egg}}
		tracker.recordDay([]*entity.DailyDietPlan{plan})

		assert.Equal(t, 2, tracker.titleCounts()["Steamed Egg"])
		assert.Equal(t, []string{"Steamed Egg"}, tracker.exclusions())
		assert.Equal(t, []string{"Steamed Egg"}, tracker.usedCategories()[entity.DishTypeSide])
	})

	t.Run("day context carries counts and ceiling", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityHigh, []string{"white"}, nil)
		tracker.recordDay([]*entity.DailyDietPlan{planWith(soup)})

		day := tracker.dayContext()
		assert.Equal(t, []string{"Miso Soup"}, day.ExcludeTitles)
		assert.Equal(t, "white", day.PreferredVariety)
		assert.Equal(t, map[string]int{"Miso Soup": 1}, day.TitleUses)
		assert.Equal(t, 1, day.Ceiling)
	})

	t.Run("seeded titles are excluded from the first day", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityLow, nil, map[entity.DishType][]string{
			entity.DishTypeRice: {"Brown Rice"},
			entity.DishTypeSoup: {"Miso Soup"},
		})

		assert.Equal(t, []string{"Brown Rice", "Miso Soup"}, tracker.exclusions())
		assert.Empty(t, tracker.usedCategories())
	})

	t.Run("categories collect this week's titles", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityMedium, nil, nil)
		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice, egg, soup), fruitPlan("Guava")})
		tracker.recordDay([]*entity.DailyDietPlan{planWith(rice, egg), fruitPlan("Banana")})

		assert.Equal(t, map[entity.DishType][]string{
			entity.DishTypeRice:  {"White Rice"},
			entity.DishTypeSide:  {"Steamed Egg"},
			entity.DishTypeSoup:  {"Miso Soup"},
			entity.DishTypeSnack: {"Guava", "Banana"},
		}, tracker.usedCategories())
	})

	t.Run("rice rotation advances per recorded day", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityMedium, []string{"white", "brown", "multigrain"}, nil)

		var got []string
		for range 4 {
			got = append(got, tracker.preferredVariety())
			tracker.recordDay(nil)
		}
		assert.Equal(t, []string{"white", "brown", "multigrain", "white"}, got)
	})

	t.Run("no varieties means no preference", func(t *testing.T) {
		tracker := newDiversityTracker(entity.DiversityMedium, nil, nil)
		assert.Empty(t, tracker.preferredVariety())
	})
}
