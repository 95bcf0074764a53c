package impl

import (
	"log/slog"
	"math"

	"dietplan/config"
	"dietplan/internal/domain/entity"
)

// Mifflin-St Jeor coefficients.
const (
	bmrWeightCoef  = 10.0
	bmrHeightCoef  = 6.25
	bmrAgeCoef     = 5.0
	bmrMaleOffset  = 5.0
	bmrFemaleOff   = -161.0
	bmrMidpointOff = (bmrMaleOffset + bmrFemaleOff) / 2
)

// CalorieAllocator turns health profiles into daily targets and per-meal budgets.
type CalorieAllocator struct {
	cfg    *config.DietConfig
	logger *slog.Logger
}

// NewCalorieAllocator creates a new allocator for the given policy.
func NewCalorieAllocator(cfg *config.Config, logger *slog.Logger) *CalorieAllocator {
	return &CalorieAllocator{
		cfg:    cfg.Diet.WithDefaults(),
		logger: logger,
	}
}

// DailyTarget returns the explicit goal when positive, otherwise the activity-adjusted
// basal estimate. The result is clamped to the configured range.
func (a *CalorieAllocator) DailyTarget(profile entity.HealthProfile) float64 {
	if profile.DailyCalorieGoal != nil && *profile.DailyCalorieGoal > 0 {
		return a.clamp(*profile.DailyCalorieGoal)
	}

	if profile.WeightKg <= 0 || profile.HeightCm <= 0 {
		if profile.IsMinor() {
			return a.clamp(a.cfg.DefaultChildCalories)
		}

		return a.clamp(a.cfg.DefaultAdultCalories)
	}

	offset := bmrMidpointOff
	switch profile.Gender {
	case entity.GenderMale:
		offset = bmrMaleOffset
	case entity.GenderFemale:
		offset = bmrFemaleOff
	}

	age := max(profile.Age, 0)
	bmr := bmrWeightCoef*profile.WeightKg + bmrHeightCoef*profile.HeightCm - bmrAgeCoef*float64(age) + offset

	return a.clamp(bmr * a.activityFactor(profile.ActivityLevel))
}

// Allocate splits a daily target with the growth-phase or adult ratio table.
func (a *CalorieAllocator) Allocate(daily float64, growth bool) entity.CalorieAllocation {
	ratios := a.cfg.AdultRatios
	if growth {
		ratios = a.cfg.GrowthRatios
	}

	return entity.CalorieAllocation{
		Daily:     daily,
		Breakfast: daily * ratios.Breakfast,
		Lunch:     daily * ratios.Lunch,
		Dinner:    daily * ratios.Dinner,
		Snack:     daily * ratios.Snack,
		Growth:    growth,
	}
}

// AllocateFor allocates one person's own plan.
func (a *CalorieAllocator) AllocateFor(profile entity.HealthProfile) entity.CalorieAllocation {
	return a.Allocate(a.DailyTarget(profile), profile.IsMinor())
}

// AllocateShared allocates a plan shared by several people: the target is the mean
// of their own targets and growth ratios apply when anyone among them is a minor.
func (a *CalorieAllocator) AllocateShared(profiles []entity.HealthProfile) entity.CalorieAllocation {
	if len(profiles) == 0 {
		return a.Allocate(a.clamp(a.cfg.DefaultAdultCalories), false)
	}

	var (
		sum    float64
		growth bool
	)
	for _, p := range profiles {
		sum += a.DailyTarget(p)
		growth = growth || p.IsMinor()
	}

	return a.Allocate(sum/float64(len(profiles)), growth)
}

func (a *CalorieAllocator) activityFactor(level entity.ActivityLevel) float64 {
	if factor, ok := a.cfg.ActivityFactors[string(level)]; ok && factor > 0 {
		return factor
	}

	a.logger.Debug("Unknown activity level, using default",
		slog.String("activity_level", string(level)),
		slog.String("default", a.cfg.DefaultActivityLevel),
	)

	if factor, ok := a.cfg.ActivityFactors[a.cfg.DefaultActivityLevel]; ok && factor > 0 {
		return factor
	}

	return 1
}

func (a *CalorieAllocator) clamp(kcal float64) float64 {
	return math.Min(math.Max(kcal, a.cfg.MinDailyCalories), a.cfg.MaxDailyCalories)
}
