package config

import "slices"

// MealRatios splits a daily calorie target across the four meal slots.
type MealRatios struct {
	Breakfast float64 `json:"breakfast" yaml:"breakfast"`
	Lunch     float64 `json:"lunch" yaml:"lunch"`
	Dinner    float64 `json:"dinner" yaml:"dinner"`
	Snack     float64 `json:"snack" yaml:"snack"`
}

// MacroRatio is a carbohydrate/protein/fat mass ratio summing to 1.
type MacroRatio struct {
	Carbs   float64 `json:"carbs" yaml:"carbs"`
	Protein float64 `json:"protein" yaml:"protein"`
	Fat     float64 `json:"fat" yaml:"fat"`
}

// DietConfig defines the nutrition policy of the generation engine.
// Zero fields fall back to the values of DefaultDietConfig.
type DietConfig struct {
	AdultRatios  MealRatios `json:"adultRatios" yaml:"adultRatios"`
	GrowthRatios MealRatios `json:"growthRatios" yaml:"growthRatios"`

	// Shares of a composed meal's budget
	StapleShare float64 `json:"stapleShare" yaml:"stapleShare"`
	SideShare   float64 `json:"sideShare" yaml:"sideShare"`
	SoupShare   float64 `json:"soupShare" yaml:"soupShare"`
	SideCount   int     `json:"sideCount" yaml:"sideCount"`

	// CandidateLimit caps catalog candidates fetched per slot (at least 10)
	CandidateLimit int `json:"candidateLimit" yaml:"candidateLimit"`

	ChildMacroTarget MacroRatio `json:"childMacroTarget" yaml:"childMacroTarget"`

	// ActivityFactors maps an activity level to its energy-expenditure multiplier
	ActivityFactors      map[string]float64 `json:"activityFactors" yaml:"activityFactors"`
	DefaultActivityLevel string             `json:"defaultActivityLevel" yaml:"defaultActivityLevel"`

	DefaultAdultCalories float64 `json:"defaultAdultCalories" yaml:"defaultAdultCalories"`
	DefaultChildCalories float64 `json:"defaultChildCalories" yaml:"defaultChildCalories"`
	MinDailyCalories     float64 `json:"minDailyCalories" yaml:"minDailyCalories"`
	MaxDailyCalories     float64 `json:"maxDailyCalories" yaml:"maxDailyCalories"`

	// RiceVarieties is the staple rotation order of a weekly run
	RiceVarieties         []string `json:"riceVarieties" yaml:"riceVarieties"`
	DefaultDiversityLevel string   `json:"defaultDiversityLevel" yaml:"defaultDiversityLevel"`

	MaxFruitServings int `json:"maxFruitServings" yaml:"maxFruitServings"`

	// ParallelMeals composes the meal slots of one plan concurrently
	ParallelMeals bool `json:"parallelMeals" yaml:"parallelMeals"`
	// ParallelMembers generates the family members' own plans concurrently
	ParallelMembers bool `json:"parallelMembers" yaml:"parallelMembers"`
}

const minCandidateLimit = 10

// DefaultDietConfig returns the reference nutrition policy.
func DefaultDietConfig() *DietConfig {
	return &DietConfig{
		AdultRatios:      MealRatios{Breakfast: 0.30, Lunch: 0.35, Dinner: 0.30, Snack: 0.05},
		GrowthRatios:     MealRatios{Breakfast: 0.25, Lunch: 0.35, Dinner: 0.30, Snack: 0.10},
		StapleShare:      0.35,
		SideShare:        0.45,
		SoupShare:        0.20,
		SideCount:        3,
		CandidateLimit:   20,
		ChildMacroTarget: MacroRatio{Carbs: 0.5, Protein: 0.2, Fat: 0.3},
		ActivityFactors: map[string]float64{
			"sedentary":   1.2,
			"light":       1.375,
			"moderate":    1.55,
			"active":      1.725,
			"very_active": 1.9,
		},
		DefaultActivityLevel:  "light",
		DefaultAdultCalories:  2000,
		DefaultChildCalories:  1600,
		MinDailyCalories:      1000,
		MaxDailyCalories:      4000,
		RiceVarieties:         []string{"white", "brown", "multigrain"},
		DefaultDiversityLevel: "medium",
		MaxFruitServings:      3,
		ParallelMeals:         true,
		ParallelMembers:       true,
	}
}

// WithDefaults returns a copy of c where every unset field takes its default.
// A nil receiver yields DefaultDietConfig.
func (c *DietConfig) WithDefaults() *DietConfig {
	def := DefaultDietConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.AdultRatios == (MealRatios{}) {
		out.AdultRatios = def.AdultRatios
	}
	if out.GrowthRatios == (MealRatios{}) {
		out.GrowthRatios = def.GrowthRatios
	}
	if out.StapleShare+out.SideShare+out.SoupShare <= 0 {
		out.StapleShare, out.SideShare, out.SoupShare = def.StapleShare, def.SideShare, def.SoupShare
	}
	if out.SideCount <= 0 {
		out.SideCount = def.SideCount
	}
	if out.CandidateLimit <= 0 {
		out.CandidateLimit = def.CandidateLimit
	}
	if out.CandidateLimit < minCandidateLimit {
		out.CandidateLimit = minCandidateLimit
	}
	if out.ChildMacroTarget == (MacroRatio{}) {
		out.ChildMacroTarget = def.ChildMacroTarget
	}
	factors := make(map[string]float64, len(def.ActivityFactors))
	for level, factor := range def.ActivityFactors {
		factors[level] = factor
	}
	for level, factor := range c.ActivityFactors {
		if factor > 0 {
			factors[level] = factor
		}
	}
	out.ActivityFactors = factors
	if out.DefaultActivityLevel == "" {
		out.DefaultActivityLevel = def.DefaultActivityLevel
	}
	if out.DefaultAdultCalories <= 0 {
		out.DefaultAdultCalories = def.DefaultAdultCalories
	}
	if out.DefaultChildCalories <= 0 {
		out.DefaultChildCalories = def.DefaultChildCalories
	}
	if out.MinDailyCalories <= 0 {
		out.MinDailyCalories = def.MinDailyCalories
	}
	if out.MaxDailyCalories < out.MinDailyCalories {
		out.MaxDailyCalories = max(def.MaxDailyCalories, out.MinDailyCalories)
	}
	if len(out.RiceVarieties) == 0 {
		out.RiceVarieties = def.RiceVarieties
	} else {
		out.RiceVarieties = slices.Clone(out.RiceVarieties)
	}
	if out.DefaultDiversityLevel == "" {
		out.DefaultDiversityLevel = def.DefaultDiversityLevel
	}
	if out.MaxFruitServings <= 0 {
		out.MaxFruitServings = def.MaxFruitServings
	}

	return &out
}
