package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDietConfig_WithDefaults(t *testing.T) {
	t.Run("nil config yields reference policy", func(t *testing.T) {
		cfg := (*DietConfig)(nil).WithDefaults()

		assert.Equal(t, DefaultDietConfig(), cfg)
	})

	t.Run("candidate limit never drops below ten", func(t *testing.T) {
		cfg := (&DietConfig{CandidateLimit: 4}).WithDefaults()

		assert.Equal(t, 10, cfg.CandidateLimit)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		cfg := (&DietConfig{
			SideCount:        2,
			MaxFruitServings: 1,
			RiceVarieties:    []string{"brown"},
			ActivityFactors:  map[string]float64{"light": 1.4},
		}).WithDefaults()

		assert.Equal(t, 2, cfg.SideCount)
		assert.Equal(t, 1, cfg.MaxFruitServings)
		assert.Equal(t, []string{"brown"}, cfg.RiceVarieties)
		assert.InDelta(t, 1.4, cfg.ActivityFactors["light"], 1e-9)
		assert.InDelta(t, 1.9, cfg.ActivityFactors["very_active"], 1e-9)
		assert.InDelta(t, 0.30, cfg.AdultRatios.Breakfast, 1e-9)
	})

	t.Run("max calories below min are raised", func(t *testing.T) {
		cfg := (&DietConfig{MinDailyCalories: 1200, MaxDailyCalories: 800}).WithDefaults()

		assert.InDelta(t, 4000.0, cfg.MaxDailyCalories, 1e-9)
	})
}
