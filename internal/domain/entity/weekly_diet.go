package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DaysPerWeek is the length of a weekly plan.
const DaysPerWeek = 7

// DiversityLevel controls how often a title may repeat within one week.
type DiversityLevel string

const (
	DiversityHigh   DiversityLevel = "high"
	DiversityMedium DiversityLevel = "medium"
	DiversityLow    DiversityLevel = "low"
)

// Ceiling is the maximum number of days a title may be used in one week.
func (d DiversityLevel) Ceiling() int {
	switch d {
	case DiversityHigh:
		return 1
	case DiversityLow:
		return 3
	default:
		return 2
	}
}

// WeeklyDietDay is one calendar day of a weekly plan. Both plans are nil for an absent day.
type WeeklyDietDay struct {
	Date       time.Time       `json:"date"`
	Plan       *DailyDietPlan  `json:"plan,omitempty"`
	FamilyPlan *FamilyDietPlan `json:"family_plan,omitempty"`
}

// PrimaryPlan is the plan whose nutrition represents the day: the unified plan for
// families (falling back to the user's own plan), or the personal plan.
func (d WeeklyDietDay) PrimaryPlan() *DailyDietPlan {
	if d.FamilyPlan != nil {
		if d.FamilyPlan.UnifiedPlan != nil {
			return d.FamilyPlan.UnifiedPlan
		}

		return d.FamilyPlan.Plans[UserPlanKey]
	}

	return d.Plan
}

// IsAbsent reports whether no plan could be generated for the day.
func (d WeeklyDietDay) IsAbsent() bool {
	return d.Plan == nil && d.FamilyPlan.IsEmpty()
}

// ShoppingListItem is a merged ingredient line keyed by name and unit.
type ShoppingListItem struct {
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	Quantity float64  `json:"quantity"`
	Dishes   []string `json:"dishes"` // Distinct dishes that contributed to this line.
}

// WeeklyNutritionStats summarises one day of a weekly plan. Absent days are all zero.
type WeeklyNutritionStats struct {
	Date      time.Time `json:"date"`
	Calories  float64   `json:"calories"`
	Carbs     float64   `json:"carbs"`
	Protein   float64   `json:"protein"`
	Fat       float64   `json:"fat"`
	Sodium    float64   `json:"sodium"`
	MealCount int       `json:"meal_count"`
}

// WeeklyDiet is a generated 7-day plan with its shopping list and per-day statistics.
type WeeklyDiet struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"user_id"`
	WeekStart      time.Time              `json:"week_start"`
	DiversityLevel DiversityLevel         `json:"diversity_level"`
	Days           []WeeklyDietDay        `json:"days"`
	MissingDates   []time.Time            `json:"missing_dates,omitempty"`
	ShoppingList   []ShoppingListItem     `json:"shopping_list"`
	NutritionStats []WeeklyNutritionStats `json:"nutrition_stats"`
	UsedCategories map[DishType][]string  `json:"used_categories"` // Seed for regenerating the following week.
	TitleCounts    map[string]int         `json:"title_counts"`    // Days each title was used.
	GeneratedAt    time.Time              `json:"generated_at"`
}

// UsedTitles returns every distinct title used during the week, sorted.
func (w *WeeklyDiet) UsedTitles() []string {
	titles := make([]string, 0, len(w.TitleCounts))
	for title := range w.TitleCounts {
		titles = append(titles, title)
	}
	slices.Sort(titles)

	return titles
}
