package impl

import (
	"errors"
	"testing"
	"time"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/infra/persistence/memory"
	mockRepo "dietplan/internal/mocks/repository"
	"dietplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func planRice(plan *entity.DailyDietPlan) []string {
	var titles []string
	for _, meal := range plan.Meals() {
		if meal.Rice != nil {
			titles = append(titles, meal.Rice.Title)
		}
	}

	return titles
}

func TestPersonalDietService_GenerateDailyDiet(t *testing.T) {
	t.Run("four meals summing to the plan total", func(t *testing.T) {
		engine := newTestEngine(t, smallCatalog())

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: adultProfile(),
			Date:    testDate.Add(15 * time.Hour),
		})
		require.NoError(t, err)
		require.NotNil(t, plan)

		assert.Equal(t, testDate, plan.Date)
		assert.Equal(t, 4, plan.MealCount())
		require.NotNil(t, plan.Snack)
		require.NotNil(t, plan.Snack.Fruit)
		assert.Equal(t, "Guava", plan.Snack.Fruit.Fruit.Name)

		var sum float64
		for _, meal := range plan.Meals() {
			assertMealTotals(t, meal)
			sum += meal.TotalNutrition.Calories
		}
		assert.InDelta(t, sum, plan.TotalNutrition.Calories, 1e-9)
	})

	t.Run("allergies and diseases are respected in every slot", func(t *testing.T) {
		engine := newTestEngine(t, smallCatalog())
		profile := adultProfile()
		profile.Allergies = []string{"Peanut"}
		profile.Diseases = []string{"soy-intolerance"}

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: profile,
			Date:    testDate,
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.NotContains(t, plan.Titles(), "Peanut Stew")
		assert.NotContains(t, plan.Titles(), "Braised Tofu")
	})

	t.Run("minors get growth ratios and child-friendly fruit", func(t *testing.T) {
		engine := newTestEngine(t, smallCatalog())

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: entity.HealthProfile{Age: 8},
			Date:    testDate,
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		require.NotNil(t, plan.Snack.Fruit)
		assert.Equal(t, "Banana", plan.Snack.Fruit.Fruit.Name)
		assert.Equal(t, 2, plan.Snack.Fruit.Servings)
	})

	t.Run("recently used titles are avoided", func(t *testing.T) {
		engine := newTestEngine(t, smallCatalog())
		userID := uuid.New()
		require.NoError(t, engine.store.History().RecordUsage(t.Context(), userID, []string{"Brown Rice"}, time.Now()))

		withoutHistory, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: adultProfile(),
			Date:    testDate,
		})
		require.NoError(t, err)
		assert.Contains(t, planRice(withoutHistory), "Brown Rice")

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  userID,
			Profile: adultProfile(),
			Date:    testDate,
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.NotEmpty(t, planRice(plan))
		assert.NotContains(t, planRice(plan), "Brown Rice")
	})

	t.Run("day context exclusions are avoided", func(t *testing.T) {
		engine := newTestEngine(t, smallCatalog())

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			Profile: adultProfile(),
			Date:    testDate,
			Day:     &usecase.DayContext{ExcludeTitles: []string{"Brown Rice"}},
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		for _, title := range planRice(plan) {
			assert.Equal(t, "White Rice", title)
		}
	})

	t.Run("a ceiling keeps later slots off titles already spent today", func(t *testing.T) {
		engine := newTestEngine(t, withoutMealTypes(weeklyCatalog()))

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			Profile: adultProfile(),
			Date:    testDate,
			Day:     &usecase.DayContext{Ceiling: 1},
		})
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, 4, plan.MealCount())

		titles := plan.Titles()
		assert.Len(t, titleSet(titles), len(titles))
	})

	t.Run("anonymous requests skip the history lookup", func(t *testing.T) {
		store, err := memory.NewStoreWithCatalog(smallCatalog())
		require.NoError(t, err)
		history := mockRepo.NewMockRecipeHistoryRepository(t)
		engine := newTestEngineWithRepos(store, history, store.Recipes())

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.Nil,
			Profile: adultProfile(),
			Date:    testDate,
		})
		require.NoError(t, err)
		assert.NotNil(t, plan)
	})

	t.Run("history failure aborts", func(t *testing.T) {
		store, err := memory.NewStoreWithCatalog(smallCatalog())
		require.NoError(t, err)
		history := mockRepo.NewMockRecipeHistoryRepository(t)
		history.EXPECT().RecentlyUsed(mock.Anything, mock.Anything).Return(nil, errors.New("replica lag"))
		engine := newTestEngineWithRepos(store, history, store.Recipes())

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: adultProfile(),
			Date:    testDate,
		})
		require.Error(t, err)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, domainerrors.ErrHistoryLookupFailed)
	})

	t.Run("empty catalog yields no plan", func(t *testing.T) {
		engine := newTestEngine(t, &entity.Catalog{})

		plan, err := engine.personal.GenerateDailyDiet(t.Context(), &usecase.PersonalDietInput{
			UserID:  uuid.New(),
			Profile: adultProfile(),
			Date:    testDate,
		})
		require.NoError(t, err)
		assert.Nil(t, plan)
	})
}
