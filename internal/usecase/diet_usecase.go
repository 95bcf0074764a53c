package usecase

import (
	"context"
	"time"

	"dietplan/internal/domain/entity"

	"github.com/google/uuid"
)

// DayContext carries the weekly diversity state into one day's generation.
// A nil DayContext means the day is generated on its own.
type DayContext struct {
	// ExcludeTitles are titles that reached the weekly diversity ceiling
	ExcludeTitles []string
	// PreferredVariety is the staple variety the rice rotation asks for today
	PreferredVariety string
	// TitleUses counts every selection of a title so far this week, today included
	TitleUses map[string]int
	// Ceiling caps TitleUses per title; zero leaves same-day repeats unchecked
	Ceiling int
}

// PersonalDietInput represents the input for one person's daily plan
type PersonalDietInput struct {
	UserID  uuid.UUID            `json:"user_id"`
	Profile entity.HealthProfile `json:"profile"`
	Date    time.Time            `json:"date"`
	Day     *DayContext          `json:"-"`
}

// FamilyDietInput represents the input for a family's daily plans
type FamilyDietInput struct {
	UserID  uuid.UUID             `json:"user_id"`
	Profile entity.HealthProfile  `json:"profile"`
	Members []entity.FamilyMember `json:"members"`
	Date    time.Time             `json:"date"`
	Day     *DayContext           `json:"-"`
}

// WeeklyDietInput represents the input for a 7-day plan
type WeeklyDietInput struct {
	UserID         uuid.UUID             `json:"user_id"`
	Profile        entity.HealthProfile  `json:"profile"`
	Members        []entity.FamilyMember `json:"members"`
	WeekStart      time.Time             `json:"week_start"`
	DiversityLevel entity.DiversityLevel `json:"diversity_level"`
	// Family generates family plans (individual + unified) instead of a personal plan
	Family bool `json:"family"`
	// PriorCategories seeds the per-category used sets, usually from the previous week
	PriorCategories map[entity.DishType][]string `json:"prior_categories,omitempty"`
	// Persist stores the plan and records recipe usage once generated
	Persist bool `json:"persist"`
}

// PersonalDietUsecase generates one person's daily plan
type PersonalDietUsecase interface {
	// GenerateDailyDiet returns nil without error when no slot could be filled.
	GenerateDailyDiet(ctx context.Context, input *PersonalDietInput) (*entity.DailyDietPlan, error)
}

// FamilyDietUsecase generates the individual and unified plans of a family
type FamilyDietUsecase interface {
	// GenerateFamilyDiet returns nil without error when no plan at all could be generated.
	GenerateFamilyDiet(ctx context.Context, input *FamilyDietInput) (*entity.FamilyDietPlan, error)
}

// WeeklyDietUsecase defines the interface for weekly plan use cases
type WeeklyDietUsecase interface {
	GenerateWeeklyDiet(ctx context.Context, input *WeeklyDietInput) (*entity.WeeklyDiet, error)
	SaveWeeklyDiet(ctx context.Context, diet *entity.WeeklyDiet) error
	GetWeeklyDiet(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*entity.WeeklyDiet, error)
	GetShoppingListQR(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]byte, error)
}
