package impl

import (
	"testing"

	"dietplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCalorieAllocator_DailyTarget(t *testing.T) {
	allocator := NewCalorieAllocator(newTestConfig(), newDiscardLogger())

	tests := []struct {
		name    string
		profile entity.HealthProfile
		want    float64
	}{
		{
			name:    "explicit goal wins",
			profile: entity.HealthProfile{Age: 40, WeightKg: 80, HeightCm: 180, DailyCalorieGoal: ptr(1800.0)},
			want:    1800,
		},
		{
			name:    "explicit goal is clamped",
			profile: entity.HealthProfile{Age: 40, DailyCalorieGoal: ptr(500.0)},
			want:    1000,
		},
		{
			name:    "zero goal falls back to the estimate",
			profile: entity.HealthProfile{Age: 40, DailyCalorieGoal: ptr(0.0)},
			want:    2000,
		},
		{
			name:    "adult default without body measurements",
			profile: entity.HealthProfile{Age: 40},
			want:    2000,
		},
		{
			name:    "child default without body measurements",
			profile: entity.HealthProfile{Age: 9},
			want:    1600,
		},
		{
			name: "male estimate",
			profile: entity.HealthProfile{
				Age: 30, Gender: entity.GenderMale, WeightKg: 70, HeightCm: 175, ActivityLevel: entity.ActivityModerate,
			},
			want: (10*70 + 6.25*175 - 5*30 + 5) * 1.55,
		},
		{
			name: "female estimate",
			profile: entity.HealthProfile{
				Age: 30, Gender: entity.GenderFemale, WeightKg: 60, HeightCm: 165, ActivityLevel: entity.ActivitySedentary,
			},
			want: (10*60 + 6.25*165 - 5*30 - 161) * 1.2,
		},
		{
			name: "unknown gender uses the midpoint offset",
			profile: entity.HealthProfile{
				Age: 30, WeightKg: 60, HeightCm: 165, ActivityLevel: entity.ActivitySedentary,
			},
			want: (10*60 + 6.25*165 - 5*30 - 78) * 1.2,
		},
		{
			name: "unknown activity level uses the default factor",
			profile: entity.HealthProfile{
				Age: 30, Gender: entity.GenderMale, WeightKg: 70, HeightCm: 175, ActivityLevel: "marathon",
			},
			want: (10*70 + 6.25*175 - 5*30 + 5) * 1.375,
		},
		{
			name: "estimate is clamped to the maximum",
			profile: entity.HealthProfile{
				Age: 20, Gender: entity.GenderMale, WeightKg: 160, HeightCm: 200, ActivityLevel: entity.ActivityVeryActive,
			},
			want: 4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, allocator.DailyTarget(tt.profile), 1e-9)
		})
	}
}

func TestCalorieAllocator_Allocate(t *testing.T) {
	allocator := NewCalorieAllocator(newTestConfig(), newDiscardLogger())

	t.Run("adult ratios", func(t *testing.T) {
		a := allocator.Allocate(2000, false)
		assert.InDelta(t, 600, a.Breakfast, 1e-9)
		assert.InDelta(t, 700, a.Lunch, 1e-9)
		assert.InDelta(t, 600, a.Dinner, 1e-9)
		assert.InDelta(t, 100, a.Snack, 1e-9)
		assert.False(t, a.Growth)
	})

	t.Run("growth ratios", func(t *testing.T) {
		a := allocator.Allocate(2000, true)
		assert.InDelta(t, 500, a.Breakfast, 1e-9)
		assert.InDelta(t, 700, a.Lunch, 1e-9)
		assert.InDelta(t, 600, a.Dinner, 1e-9)
		assert.InDelta(t, 200, a.Snack, 1e-9)
		assert.True(t, a.Growth)
	})

	t.Run("budgets sum to the daily target", func(t *testing.T) {
		for _, growth := range []bool{false, true} {
			a := allocator.Allocate(1737, growth)
			assert.InDelta(t, a.Daily, a.Breakfast+a.Lunch+a.Dinner+a.Snack, 1e-9)
		}
	})
}

func TestCalorieAllocator_AllocateFor(t *testing.T) {
	allocator := NewCalorieAllocator(newTestConfig(), newDiscardLogger())

	a := allocator.AllocateFor(entity.HealthProfile{Age: 12, DailyCalorieGoal: ptr(2000.0)})
	assert.True(t, a.Growth)
	assert.InDelta(t, 500, a.Breakfast, 1e-9)
	assert.InDelta(t, 500, a.ForMeal(entity.MealTypeBreakfast), 1e-9)
	assert.InDelta(t, 200, a.ForMeal(entity.MealTypeSnack), 1e-9)
	assert.Zero(t, a.ForMeal("brunch"))
}

func TestCalorieAllocator_AllocateShared(t *testing.T) {
	allocator := NewCalorieAllocator(newTestConfig(), newDiscardLogger())

	t.Run("mean of the targets", func(t *testing.T) {
		a := allocator.AllocateShared([]entity.HealthProfile{
			{Age: 40, DailyCalorieGoal: ptr(1800.0)},
			{Age: 42, DailyCalorieGoal: ptr(2200.0)},
		})
		assert.InDelta(t, 2000, a.Daily, 1e-9)
		assert.False(t, a.Growth)
	})

	t.Run("any minor switches to growth ratios", func(t *testing.T) {
		a := allocator.AllocateShared([]entity.HealthProfile{
			{Age: 40, DailyCalorieGoal: ptr(1800.0)},
			{Age: 8, DailyCalorieGoal: ptr(2200.0)},
		})
		assert.InDelta(t, 2000, a.Daily, 1e-9)
		assert.True(t, a.Growth)
		assert.InDelta(t, 200, a.Snack, 1e-9)
	})

	t.Run("nobody falls back to the adult default", func(t *testing.T) {
		a := allocator.AllocateShared(nil)
		assert.InDelta(t, 2000, a.Daily, 1e-9)
	})
}
