package impl

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"dietplan/config"
	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/memory"
	"dietplan/internal/infra/qrcode"
	"dietplan/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Diet: config.DefaultDietConfig(),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// testEngine wires the generation pipeline over an in-memory store.
type testEngine struct {
	store     *memory.Store
	allocator *CalorieAllocator
	filter    *ConstraintFilter
	selector  *DishSelector
	fruits    *FruitRecommender
	composer  *MealComposer
	personal  usecase.PersonalDietUsecase
	family    usecase.FamilyDietUsecase
	weekly    usecase.WeeklyDietUsecase
}

func newTestEngine(t *testing.T, catalog *entity.Catalog) *testEngine {
	t.Helper()

	store, err := memory.NewStoreWithCatalog(catalog)
	require.NoError(t, err)

	return newTestEngineWithRepos(store, store.History(), store.Recipes())
}

func newTestEngineWithRepos(store *memory.Store, history repository.RecipeHistoryRepository, recipes repository.RecipeRepository) *testEngine {
	cfg := newTestConfig()
	logger := newDiscardLogger()

	e := &testEngine{store: store}
	e.allocator = NewCalorieAllocator(cfg, logger)
	e.filter = NewConstraintFilter(store.Exclusions(), logger)
	e.selector = NewDishSelector(recipes, e.filter, cfg, logger)
	e.fruits = NewFruitRecommender(store.Fruits(), cfg, logger)
	e.composer = NewMealComposer(e.selector, e.fruits, cfg, logger)
	e.personal = NewPersonalDietService(e.allocator, e.filter, e.composer, history, cfg, logger)
	e.family = NewFamilyDietService(e.personal, e.allocator, e.filter, e.composer, cfg, logger)
	e.weekly = NewWeeklyDietService(
		e.personal, e.family, recipes, store.WeeklyDiets(), memory.NewTransactionManager(store),
		nil, qrcode.NewQRCodeService(128, "L"), cfg, logger,
	)

	return e
}

func dish(title string, dishType entity.DishType, kcal float64) *entity.Dish {
	return &entity.Dish{
		Title:     title,
		DishType:  dishType,
		Nutrition: entity.Nutrition{Calories: kcal, Carbs: kcal * 0.5 / 4, Protein: kcal * 0.2 / 4, Fat: kcal * 0.3 / 9},
		Ingredients: []entity.Ingredient{
			{Name: title + " base", Quantity: 100, Unit: "g"},
		},
	}
}

var allMonths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// smallCatalog has just enough dishes for one full day.
func smallCatalog() *entity.Catalog {
	return &entity.Catalog{
		Dishes: []*entity.Dish{
			withVariety(dish("White Rice", entity.DishTypeRice, 250), "white"),
			withVariety(dish("Brown Rice", entity.DishTypeRice, 230), "brown"),
			dish("Stir-fried Greens", entity.DishTypeSide, 90),
			dish("Steamed Egg", entity.DishTypeSide, 110),
			withAllergy(dish("Peanut Stew", entity.DishTypeSide, 150), "peanut"),
			dish("Braised Tofu", entity.DishTypeSide, 140),
			dish("Seaweed Soup", entity.DishTypeSoup, 60),
			dish("Miso Soup", entity.DishTypeSoup, 80),
			dish("Yogurt Cup", entity.DishTypeSnack, 120),
		},
		Exclusions: []entity.ExcludedFood{
			{DiseaseCode: "soy-intolerance", FoodName: "Braised Tofu base", Severity: "strict"},
		},
		Fruits: []*entity.SeasonalFruit{
			{Name: "Guava", Months: allMonths, ServingSize: 1, Unit: "piece", PerServing: entity.Nutrition{Calories: 70}, ChildFriendly: false},
			{Name: "Banana", Months: allMonths, ServingSize: 1, Unit: "piece", PerServing: entity.Nutrition{Calories: 90}, ChildFriendly: true},
		},
	}
}

// weeklyCatalog gives every meal enough meal-specific dishes for seven days without a repeat.
func weeklyCatalog() *entity.Catalog {
	return weeklyCatalogOf(1)
}

// weeklyCatalogOf is weeklyCatalog with every dish and fruit count multiplied by scale.
func weeklyCatalogOf(scale int) *entity.Catalog {
	catalog := &entity.Catalog{}
	varieties := []string{"white", "brown", "multigrain"}
	for _, meal := range []entity.MealType{entity.MealTypeBreakfast, entity.MealTypeLunch, entity.MealTypeDinner} {
		for i := range 8 * scale {
			rice := withVariety(dish(fmt.Sprintf("%s rice %d", meal, i), entity.DishTypeRice, 200+float64(i*5)), varieties[i%len(varieties)])
			rice.MealType = meal
			catalog.Dishes = append(catalog.Dishes, rice)
		}
		for i := range 24 * scale {
			side := dish(fmt.Sprintf("%s side %d", meal, i), entity.DishTypeSide, 80+float64(i*3))
			side.MealType = meal
			catalog.Dishes = append(catalog.Dishes, side)
		}
		for i := range 8 * scale {
			soup := dish(fmt.Sprintf("%s soup %d", meal, i), entity.DishTypeSoup, 60+float64(i*4))
			soup.MealType = meal
			catalog.Dishes = append(catalog.Dishes, soup)
		}
	}
	for i := range 8 * scale {
		catalog.Fruits = append(catalog.Fruits, &entity.SeasonalFruit{
			Name:          fmt.Sprintf("fruit %d", i),
			Months:        allMonths,
			ServingSize:   1,
			Unit:          "piece",
			PerServing:    entity.Nutrition{Calories: 60 + float64(i)},
			ChildFriendly: true,
		})
	}

	return catalog
}

// withoutMealTypes clears every meal affinity, leaving dishes open to any meal.
func withoutMealTypes(catalog *entity.Catalog) *entity.Catalog {
	for _, d := range catalog.Dishes {
		d.MealType = ""
	}

	return catalog
}

func withVariety(d *entity.Dish, variety string) *entity.Dish {
	d.Variety = variety

	return d
}

func withAllergy(d *entity.Dish, tags ...string) *entity.Dish {
	d.AllergyTags = tags

	return d
}

func adultProfile() entity.HealthProfile {
	return entity.HealthProfile{
		Age:           35,
		Gender:        entity.GenderFemale,
		HeightCm:      165,
		WeightKg:      60,
		ActivityLevel: entity.ActivityLight,
	}
}

func titleSet(titles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		set[title] = struct{}{}
	}

	return set
}
