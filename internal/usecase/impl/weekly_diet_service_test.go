package impl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/domain/service"
	"dietplan/internal/infra/persistence/memory"
	"dietplan/internal/infra/qrcode"
	mockRepo "dietplan/internal/mocks/repository"
	mockSvc "dietplan/internal/mocks/service"
	mockUsecase "dietplan/internal/mocks/usecase"
	"dietplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWeekStart = time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)

type weeklyTestFixture struct {
	store     *memory.Store
	personal  *mockUsecase.MockPersonalDietUsecase
	publisher *mockSvc.MockEventPublisher
	service   usecase.WeeklyDietUsecase

	mu     sync.Mutex
	inputs []*usecase.PersonalDietInput
}

// createTestWeeklyDietService wires the weekly service over a mocked personal generator
// that serves the given fixed plan every day except the absent ones.
func createTestWeeklyDietService(t *testing.T, txManager repository.TransactionManager) *weeklyTestFixture {
	t.Helper()

	store, err := memory.NewStoreWithCatalog(smallCatalog())
	require.NoError(t, err)
	if txManager == nil {
		txManager = memory.NewTransactionManager(store)
	}

	fx := &weeklyTestFixture{
		store:     store,
		personal:  mockUsecase.NewMockPersonalDietUsecase(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewWeeklyDietService(
		fx.personal, nil, store.Recipes(), store.WeeklyDiets(), txManager,
		fx.publisher, qrcode.NewQRCodeService(128, "L"), newTestConfig(), newDiscardLogger(),
	)

	return fx
}

// servePlans answers every personal request with a fixed lunch; dates in absent get no
// plan and dates in failing get an error.
func (fx *weeklyTestFixture) servePlans(absent map[string]bool, failing map[string]error) {
	catalog := smallCatalog()
	rice, egg := catalog.Dishes[0], catalog.Dishes[3]

	fx.personal.EXPECT().GenerateDailyDiet(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, input *usecase.PersonalDietInput) (*entity.DailyDietPlan, error) {
			fx.mu.Lock()
			fx.inputs = append(fx.inputs, input)
			fx.mu.Unlock()

			key := input.Date.Format(time.DateOnly)
			if err := failing[key]; err != nil {
				return nil, err
			}
			if absent[key] {
				return nil, nil
			}

			plan := planWith(rice, egg)
			plan.Date = input.Date
			plan.Recalculate()

			return plan, nil
		})
}

func TestWeeklyDietService_GenerateWeeklyDiet_HighDiversity(t *testing.T) {
	engine := newTestEngine(t, weeklyCatalog())

	diet, err := engine.weekly.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:         uuid.New(),
		Profile:        adultProfile(),
		WeekStart:      testDate,
		DiversityLevel: entity.DiversityHigh,
	})
	require.NoError(t, err)
	require.NotNil(t, diet)

	assert.Equal(t, testWeekStart, diet.WeekStart)
	assert.Equal(t, entity.DiversityHigh, diet.DiversityLevel)
	require.Len(t, diet.Days, entity.DaysPerWeek)
	assert.Empty(t, diet.MissingDates)

	for i, day := range diet.Days {
		assert.Equal(t, testWeekStart.AddDate(0, 0, i), day.Date)
		require.NotNil(t, day.Plan)
		assert.Equal(t, 4, day.Plan.MealCount())
	}

	served := selectionCounts(diet)
	for title, count := range served {
		assert.Equal(t, 1, count, title)
	}
	assert.Len(t, served, 7*(3*5+1))
	assert.Equal(t, served, diet.TitleCounts)
	assert.Len(t, diet.UsedCategories[entity.DishTypeRice], 21)
	assert.Len(t, diet.UsedCategories[entity.DishTypeSide], 63)
	assert.Len(t, diet.UsedCategories[entity.DishTypeSoup], 21)
	assert.Len(t, diet.UsedCategories[entity.DishTypeSnack], 7)

	require.Len(t, diet.NutritionStats, entity.DaysPerWeek)
	for i, stat := range diet.NutritionStats {
		assert.Equal(t, diet.Days[i].Date, stat.Date)
		assert.Equal(t, 4, stat.MealCount)
		assert.InDelta(t, diet.Days[i].Plan.TotalNutrition.Calories, stat.Calories, 1e-9)
	}

	// One ingredient line per dish plus one per fruit.
	assert.Len(t, diet.ShoppingList, len(diet.TitleCounts))
}

// selectionCounts counts every dish and fruit served in the week, plan by plan.
func selectionCounts(diet *entity.WeeklyDiet) map[string]int {
	counts := make(map[string]int)
	for _, day := range diet.Days {
		for _, plan := range dayPlans(day) {
			for _, title := range plan.Titles() {
				counts[title]++
			}
		}
	}

	return counts
}

func TestWeeklyDietService_GenerateWeeklyDiet_Ceiling(t *testing.T) {
	tests := []struct {
		name    string
		catalog *entity.Catalog
		input   *usecase.WeeklyDietInput
	}{
		{
			name:    "high with dishes open to every meal",
			catalog: withoutMealTypes(weeklyCatalog()),
			input: &usecase.WeeklyDietInput{
				Profile:        adultProfile(),
				DiversityLevel: entity.DiversityHigh,
			},
		},
		{
			name:    "medium family week with same profiles",
			catalog: weeklyCatalogOf(2),
			input: &usecase.WeeklyDietInput{
				Profile:        adultProfile(),
				Members:        []entity.FamilyMember{{ID: uuid.New(), Relationship: "sibling", Profile: adultProfile()}},
				DiversityLevel: entity.DiversityMedium,
				Family:         true,
			},
		},
		{
			name:    "high family week",
			catalog: weeklyCatalogOf(3),
			input: &usecase.WeeklyDietInput{
				Profile:        adultProfile(),
				Members:        []entity.FamilyMember{spouseMember(uuid.New())},
				DiversityLevel: entity.DiversityHigh,
				Family:         true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, tt.catalog)
			tt.input.UserID = uuid.New()
			tt.input.WeekStart = testWeekStart

			diet, err := engine.weekly.GenerateWeeklyDiet(t.Context(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, diet)
			assert.Empty(t, diet.MissingDates)

			ceiling := tt.input.DiversityLevel.Ceiling()
			served := selectionCounts(diet)
			require.NotEmpty(t, served)
			for title, count := range served {
				assert.LessOrEqual(t, count, ceiling, title)
			}
			assert.Equal(t, served, diet.TitleCounts)
		})
	}
}

func TestWeeklyDietService_GenerateWeeklyDiet_DefaultLevel(t *testing.T) {
	engine := newTestEngine(t, smallCatalog())

	diet, err := engine.weekly.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:    uuid.New(),
		Profile:   adultProfile(),
		WeekStart: testDate,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DiversityMedium, diet.DiversityLevel)
	assert.Empty(t, diet.MissingDates)
}

func TestWeeklyDietService_GenerateWeeklyDiet_DayContext(t *testing.T) {
	fx := createTestWeeklyDietService(t, nil)
	fx.servePlans(map[string]bool{"2026-10-15": true}, nil)

	diet, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:         uuid.New(),
		Profile:        adultProfile(),
		WeekStart:      testWeekStart.AddDate(0, 0, 6),
		DiversityLevel: entity.DiversityMedium,
	})
	require.NoError(t, err)
	require.NotNil(t, diet)
	require.Len(t, fx.inputs, entity.DaysPerWeek)

	t.Run("absent day is recorded and the week continues", func(t *testing.T) {
		thursday := testWeekStart.AddDate(0, 0, 3)
		assert.Equal(t, []time.Time{thursday}, diet.MissingDates)
		assert.True(t, diet.Days[3].IsAbsent())
		assert.Equal(t, entity.WeeklyNutritionStats{Date: thursday}, diet.NutritionStats[3])
		assert.Equal(t, 6, diet.TitleCounts["Steamed Egg"])
		assert.Equal(t, 6, diet.TitleCounts["White Rice"])
	})

	t.Run("titles at the ceiling are excluded from the next days", func(t *testing.T) {
		assert.Empty(t, fx.inputs[0].Day.ExcludeTitles)
		assert.Empty(t, fx.inputs[1].Day.ExcludeTitles)
		assert.Equal(t, []string{"Steamed Egg", "White Rice"}, fx.inputs[2].Day.ExcludeTitles)
	})

	t.Run("rice rotation skips absent days", func(t *testing.T) {
		var got []string
		for _, input := range fx.inputs {
			got = append(got, input.Day.PreferredVariety)
		}
		assert.Equal(t, []string{"white", "brown", "multigrain", "white", "white", "brown", "multigrain"}, got)
	})

	t.Run("shopping list merges every use", func(t *testing.T) {
		require.Len(t, diet.ShoppingList, 2)
		assert.Equal(t, entity.ShoppingListItem{
			Name:     "Steamed Egg base",
			Unit:     "g",
			Quantity: 600,
			Dishes:   []string{"Steamed Egg"},
		}, diet.ShoppingList[0])
		assert.Equal(t, "White Rice base", diet.ShoppingList[1].Name)
	})
}

func TestWeeklyDietService_GenerateWeeklyDiet_PriorCategories(t *testing.T) {
	fx := createTestWeeklyDietService(t, nil)
	fx.servePlans(nil, nil)

	_, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:         uuid.New(),
		Profile:        adultProfile(),
		WeekStart:      testWeekStart,
		DiversityLevel: entity.DiversityLow,
		PriorCategories: map[entity.DishType][]string{
			entity.DishTypeRice: {"Brown Rice"},
			entity.DishTypeSide: {"Braised Tofu", "Peanut Stew"},
		},
	})
	require.NoError(t, err)

	for _, input := range fx.inputs {
		assert.Subset(t, input.Day.ExcludeTitles, []string{"Brown Rice", "Braised Tofu", "Peanut Stew"})
	}
}

func TestWeeklyDietService_GenerateWeeklyDiet_UpstreamFailure(t *testing.T) {
	fx := createTestWeeklyDietService(t, nil)
	fx.servePlans(nil, map[string]error{"2026-10-14": domainerrors.ErrCatalogUnavailable})

	userID := uuid.New()

	diet, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:    userID,
		Profile:   adultProfile(),
		WeekStart: testWeekStart,
		Persist:   true,
	})
	require.Error(t, err)
	assert.Nil(t, diet)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "failed to generate diet for 2026-10-14")
	assert.Len(t, fx.inputs, 3)

	_, err = fx.store.WeeklyDiets().FindByWeek(t.Context(), userID, testWeekStart)
	assert.ErrorIs(t, err, repository.ErrWeeklyDietNotFound)
}

func TestWeeklyDietService_GenerateWeeklyDiet_EmptyCatalog(t *testing.T) {
	engine := newTestEngine(t, &entity.Catalog{})

	diet, err := engine.weekly.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:    uuid.New(),
		Profile:   adultProfile(),
		WeekStart: testWeekStart,
	})
	require.NoError(t, err)
	require.NotNil(t, diet)

	assert.Len(t, diet.MissingDates, entity.DaysPerWeek)
	assert.Empty(t, diet.ShoppingList)
	assert.Empty(t, diet.TitleCounts)
	require.Len(t, diet.NutritionStats, entity.DaysPerWeek)
	for i, stat := range diet.NutritionStats {
		assert.Equal(t, entity.WeeklyNutritionStats{Date: testWeekStart.AddDate(0, 0, i)}, stat)
	}
}

func TestWeeklyDietService_GenerateWeeklyDiet_Family(t *testing.T) {
	engine := newTestEngine(t, smallCatalog())

	diet, err := engine.weekly.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
		UserID:    uuid.New(),
		Profile:   adultProfile(),
		Members:   []entity.FamilyMember{childMember(uuid.New())},
		WeekStart: testWeekStart,
		Family:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, diet)
	assert.Empty(t, diet.MissingDates)

	for i, day := range diet.Days {
		assert.Nil(t, day.Plan)
		require.NotNil(t, day.FamilyPlan)
		require.NotNil(t, day.FamilyPlan.UnifiedPlan)
		assert.Len(t, day.FamilyPlan.Plans, 2)
		assert.NotContains(t, day.FamilyPlan.UnifiedPlan.Titles(), "Peanut Stew")
		assert.InDelta(t, day.FamilyPlan.UnifiedPlan.TotalNutrition.Calories, diet.NutritionStats[i].Calories, 1e-9)
	}
}

func TestWeeklyDietService_Persist(t *testing.T) {
	t.Run("stores the plan, records usage and announces it", func(t *testing.T) {
		fx := createTestWeeklyDietService(t, nil)
		fx.servePlans(map[string]bool{"2026-10-18": true}, nil)
		userID := uuid.New()

		var published *service.WeeklyDietGeneratedEvent
		fx.publisher.EXPECT().PublishWeeklyDietGenerated(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, event *service.WeeklyDietGeneratedEvent) error {
				published = event

				return nil
			}).Once()

		diet, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
			UserID:    userID,
			Profile:   adultProfile(),
			WeekStart: testWeekStart,
			Persist:   true,
		})
		require.NoError(t, err)

		stored, err := fx.service.GetWeeklyDiet(t.Context(), userID, testWeekStart.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, diet.ID, stored.ID)
		assert.Equal(t, diet.ShoppingList, stored.ShoppingList)

		recent, err := fx.store.History().RecentlyUsed(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Steamed Egg", "White Rice"}, recent)

		require.NotNil(t, published)
		assert.Equal(t, diet.ID.String(), published.WeeklyDietID)
		assert.Equal(t, userID.String(), published.UserID)
		assert.Equal(t, "2026-10-12", published.WeekStart)
		assert.Equal(t, []string{"2026-10-18"}, published.MissingDates)
		assert.Equal(t, 2, published.DishCount)

		png, err := fx.service.GetShoppingListQR(t.Context(), userID, testWeekStart)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})

	t.Run("publish failure does not fail the run", func(t *testing.T) {
		fx := createTestWeeklyDietService(t, nil)
		fx.servePlans(nil, nil)
		fx.publisher.EXPECT().PublishWeeklyDietGenerated(mock.Anything, mock.Anything).Return(errors.New("topic not found"))
		userID := uuid.New()

		diet, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
			UserID:    userID,
			Profile:   adultProfile(),
			WeekStart: testWeekStart,
			Persist:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, diet)

		_, err = fx.service.GetWeeklyDiet(t.Context(), userID, testWeekStart)
		require.NoError(t, err)
	})

	t.Run("transaction failure is returned and nothing is announced", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		fx := createTestWeeklyDietService(t, txManager)
		fx.servePlans(nil, nil)

		diet, err := fx.service.GenerateWeeklyDiet(t.Context(), &usecase.WeeklyDietInput{
			UserID:    uuid.New(),
			Profile:   adultProfile(),
			WeekStart: testWeekStart,
			Persist:   true,
		})
		require.Error(t, err)
		assert.Nil(t, diet)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("save failure inside the transaction", func(t *testing.T) {
		weeklyRepo := mockRepo.NewMockWeeklyDietRepository(t)
		weeklyRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))
		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewWeeklyDietRepository().Return(weeklyRepo)
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})
		fx := createTestWeeklyDietService(t, txManager)

		err := fx.service.SaveWeeklyDiet(t.Context(), &entity.WeeklyDiet{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			WeekStart:   testWeekStart,
			TitleCounts: map[string]int{"White Rice": 1},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrWeeklyDietSaveFailed)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("empty plan skips the usage record", func(t *testing.T) {
		weeklyRepo := mockRepo.NewMockWeeklyDietRepository(t)
		weeklyRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().NewWeeklyDietRepository().Return(weeklyRepo)
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})
		fx := createTestWeeklyDietService(t, txManager)
		fx.publisher.EXPECT().PublishWeeklyDietGenerated(mock.Anything, mock.Anything).Return(nil)

		err := fx.service.SaveWeeklyDiet(t.Context(), &entity.WeeklyDiet{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			WeekStart: testWeekStart,
		})
		require.NoError(t, err)
	})
}

func TestWeeklyDietService_GetWeeklyDiet_NotFound(t *testing.T) {
	engine := newTestEngine(t, smallCatalog())

	diet, err := engine.weekly.GetWeeklyDiet(t.Context(), uuid.New(), testWeekStart)
	require.Error(t, err)
	assert.Nil(t, diet)
	assert.ErrorIs(t, err, domainerrors.ErrWeeklyDietNotFound)

	png, err := engine.weekly.GetShoppingListQR(t.Context(), uuid.New(), testWeekStart)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrWeeklyDietNotFound)
}

func TestBuildShoppingList(t *testing.T) {
	omelette := &entity.Dish{Title: "Omelette", DishType: entity.DishTypeSide, Ingredients: []entity.Ingredient{
		{Name: "egg", Quantity: 2, Unit: "piece"},
		{Name: "scallion", Quantity: 10, Unit: "g"},
	}}
	custard := &entity.Dish{Title: "Egg Custard", DishType: entity.DishTypeSide, Ingredients: []entity.Ingredient{
		{Name: "Egg", Quantity: 1, Unit: "piece"},
		{Name: "egg", Quantity: 50, Unit: "g"},
	}}
	store, err := memory.NewStoreWithCatalog(&entity.Catalog{Dishes: []*entity.Dish{omelette, custard}})
	require.NoError(t, err)

	// Plans may carry dishes without their ingredient lists; the catalog fills them in.
	bare := &entity.Dish{Title: "Omelette", DishType: entity.DishTypeSide}
	guava := &entity.FruitServing{
		Fruit:    entity.SeasonalFruit{Name: "Guava", ServingSize: 1, Unit: "piece"},
		Servings: 2,
	}
	dayOne := planWith(bare, custard)
	dayOne.Snack = &entity.MealComposition{MealType: entity.MealTypeSnack, Fruit: guava}
	days := []entity.WeeklyDietDay{
		{Date: testWeekStart, Plan: dayOne},
		{Date: testWeekStart.AddDate(0, 0, 1)},
		{Date: testWeekStart.AddDate(0, 0, 2), Plan: planWith(omelette)},
	}

	list, err := buildShoppingList(t.Context(), store.Recipes(), days)
	require.NoError(t, err)
	assert.Equal(t, []entity.ShoppingListItem{
		{Name: "egg", Unit: "g", Quantity: 50, Dishes: []string{"Egg Custard"}},
		{Name: "egg", Unit: "piece", Quantity: 5, Dishes: []string{"Egg Custard", "Omelette"}},
		{Name: "Guava", Unit: "piece", Quantity: 2, Dishes: []string{"Guava"}},
		{Name: "scallion", Unit: "g", Quantity: 20, Dishes: []string{"Omelette"}},
	}, list)

	t.Run("catalog failure is surfaced", func(t *testing.T) {
		recipes := mockRepo.NewMockRecipeRepository(t)
		recipes.EXPECT().FindByTitles(mock.Anything, []string{"Omelette"}).Return(nil, errors.New("timeout"))

		_, err := buildShoppingList(t.Context(), recipes, days[2:])
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	})
}
