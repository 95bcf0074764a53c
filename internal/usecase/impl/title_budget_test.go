package impl

import (
	"testing"

	"dietplan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleBudget(t *testing.T) {
	t.Run("no ceiling tracks nothing", func(t *testing.T) {
		budget := newTitleBudget(usecase.DayContext{TitleUses: map[string]int{"Miso Soup": 4}})
		assert.False(t, budget.enabled())

		budget.record("Miso Soup")
		assert.Empty(t, budget.spent())

		day := budget.dayContext(usecase.DayContext{ExcludeTitles: []string{"Brown Rice"}})
		assert.Equal(t, []string{"Brown Rice"}, day.ExcludeTitles)
	})

	t.Run("today's selections add to the week", func(t *testing.T) {
		week := map[string]int{"White Rice": 1, "Miso Soup": 1}
		budget := newTitleBudget(usecase.DayContext{TitleUses: week, Ceiling: 2})
		require.True(t, budget.enabled())
		assert.Empty(t, budget.spent())

		budget.record("White Rice", "Steamed Egg")
		assert.Equal(t, []string{"White Rice"}, budget.spent())

		budget.record("Steamed Egg")
		assert.Equal(t, []string{"Steamed Egg", "White Rice"}, budget.spent())
		assert.Equal(t, map[string]int{"White Rice": 1, "Miso Soup": 1}, week)
	})

	t.Run("next plan inherits spent titles and counts", func(t *testing.T) {
		budget := newTitleBudget(usecase.DayContext{Ceiling: 1})
		budget.record("Guava")

		day := budget.dayContext(usecase.DayContext{
			ExcludeTitles:    []string{"Brown Rice"},
			PreferredVariety: "brown",
			Ceiling:          1,
		})
		assert.Equal(t, []string{"Brown Rice", "Guava"}, day.ExcludeTitles)
		assert.Equal(t, "brown", day.PreferredVariety)
		assert.Equal(t, map[string]int{"Guava": 1}, day.TitleUses)
		assert.Equal(t, 1, day.Ceiling)

		budget.record("Guava")
		assert.Equal(t, 1, day.TitleUses["Guava"])
	})
}
