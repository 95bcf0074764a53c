package model

import (
	"time"

	"dietplan/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecipeUsageModel is the GORM-specific struct for the 'recipe_usages' table.
// One row is written per title of a saved weekly diet.
type RecipeUsageModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipe_usages_user_used,priority:1"`
	Title  string    `gorm:"type:varchar(255);not null"`
	UsedAt time.Time `gorm:"not null;index:idx_recipe_usages_user_used,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeUsageModel) TableName() string {
	return "recipe_usages"
}

// WeeklyDietModel is the GORM-specific struct for the 'weekly_diets' table.
// A user has at most one stored plan per week.
type WeeklyDietModel struct {
	ID             uuid.UUID                                        `gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID                                        `gorm:"type:uuid;not null;uniqueIndex:idx_weekly_diets_user_week,priority:1"`
	WeekStart      time.Time                                        `gorm:"type:date;not null;uniqueIndex:idx_weekly_diets_user_week,priority:2"`
	DiversityLevel string                                           `gorm:"type:varchar(10);not null"`
	Days           datatypes.JSONSlice[entity.WeeklyDietDay]        `gorm:"type:jsonb;not null"`
	MissingDates   datatypes.JSONSlice[time.Time]                   `gorm:"type:jsonb;not null;default:'[]'"`
	ShoppingList   datatypes.JSONSlice[entity.ShoppingListItem]     `gorm:"type:jsonb;not null;default:'[]'"`
	NutritionStats datatypes.JSONSlice[entity.WeeklyNutritionStats] `gorm:"type:jsonb;not null;default:'[]'"`
	UsedCategories datatypes.JSONType[map[entity.DishType][]string] `gorm:"type:jsonb;not null"`
	TitleCounts    datatypes.JSONType[map[string]int]               `gorm:"type:jsonb;not null"`
	GeneratedAt    time.Time                                        `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeeklyDietModel) TableName() string {
	return "weekly_diets"
}

// All lists every model of the schema, in creation order.
func All() []any {
	return []any{
		RecipeModel{},
		DiseaseExclusionModel{},
		SeasonalFruitModel{},
		RecipeUsageModel{},
		WeeklyDietModel{},
	}
}
