package impl

import (
	"errors"
	"testing"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	mockRepo "dietplan/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFruitRecommender_Recommend(t *testing.T) {
	october := 10

	tests := []struct {
		name         string
		catalog      *entity.Catalog
		criteria     FruitCriteria
		wantFruit    string
		wantServings int
	}{
		{
			name:         "first safe fruit for adults",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october},
			wantFruit:    "Guava",
			wantServings: 1,
		},
		{
			name:         "servings round to the target",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 140, Month: october},
			wantFruit:    "Guava",
			wantServings: 2,
		},
		{
			name:         "servings are capped",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 1000, Month: october},
			wantFruit:    "Guava",
			wantServings: 3,
		},
		{
			name:         "servings never drop below one",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 10, Month: october},
			wantFruit:    "Guava",
			wantServings: 1,
		},
		{
			name:         "child diets prefer child-friendly fruit",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, ChildDiet: true},
			wantFruit:    "Banana",
			wantServings: 1,
		},
		{
			name:         "child diets take an unused fruit over a child-friendly repeat",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, ChildDiet: true, ExcludeNames: []string{"Banana"}},
			wantFruit:    "Guava",
			wantServings: 1,
		},
		{
			name:         "child diets repeat a child-friendly fruit when every fruit was served",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, ChildDiet: true, ExcludeNames: []string{"Banana", "Guava"}},
			wantFruit:    "Banana",
			wantServings: 1,
		},
		{
			name:         "recently served fruit is skipped",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, ExcludeNames: []string{"guava"}},
			wantFruit:    "Banana",
			wantServings: 1,
		},
		{
			name:         "recently served fruit is reused when nothing else is left",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, ExcludeNames: []string{"Guava", "Banana"}},
			wantFruit:    "Guava",
			wantServings: 1,
		},
		{
			name:         "disease exclusions apply to fruit names",
			catalog:      smallCatalog(),
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, Exclusions: ExclusionSet{"guava": "strict"}},
			wantFruit:    "Banana",
			wantServings: 1,
		},
		{
			name: "allergy tags apply to fruit",
			catalog: &entity.Catalog{Fruits: []*entity.SeasonalFruit{
				{Name: "Kiwi", Months: allMonths, ServingSize: 1, Unit: "piece", PerServing: entity.Nutrition{Calories: 50}, AllergyTags: []string{"kiwi"}},
				{Name: "Apple", Months: allMonths, ServingSize: 1, Unit: "piece", PerServing: entity.Nutrition{Calories: 50}},
			}},
			criteria:     FruitCriteria{TargetCalories: 100, Month: october, Allergies: []string{"Kiwi"}},
			wantFruit:    "Apple",
			wantServings: 2,
		},
		{
			name: "out of season fruit is ignored",
			catalog: &entity.Catalog{Fruits: []*entity.SeasonalFruit{
				{Name: "Lychee", Months: []int{6, 7}, ServingSize: 5, Unit: "piece", PerServing: entity.Nutrition{Calories: 60}},
				{Name: "Persimmon", Months: []int{10, 11}, ServingSize: 1, Unit: "piece", PerServing: entity.Nutrition{Calories: 120}},
			}},
			criteria:     FruitCriteria{TargetCalories: 100, Month: october},
			wantFruit:    "Persimmon",
			wantServings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fruits := newTestEngine(t, tt.catalog).fruits

			got, err := fruits.Recommend(t.Context(), tt.criteria)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantFruit, got.Fruit.Name)
			assert.Equal(t, tt.wantServings, got.Servings)
			assert.InDelta(t, got.Fruit.PerServing.Calories*float64(tt.wantServings), got.Nutrition.Calories, 1e-9)
		})
	}
}

func TestFruitRecommender_NoSafeFruit(t *testing.T) {
	fruits := newTestEngine(t, smallCatalog()).fruits

	got, err := fruits.Recommend(t.Context(), FruitCriteria{
		TargetCalories: 100,
		Month:          3,
		Exclusions:     ExclusionSet{"guava": "strict", "banana": "strict"},
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFruitRecommender_LookupFailure(t *testing.T) {
	repo := mockRepo.NewMockSeasonalFruitRepository(t)
	repo.EXPECT().FindInSeason(mock.Anything, 10).Return(nil, errors.New("table missing"))
	fruits := NewFruitRecommender(repo, newTestConfig(), newDiscardLogger())

	got, err := fruits.Recommend(t.Context(), FruitCriteria{TargetCalories: 100, Month: 10})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrFruitLookupFailed)
}
