package model

import (
	"time"

	"gorm.io/datatypes"
)

// IngredientJSON is one ingredient line stored in the recipes.ingredients column.
type IngredientJSON struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// NutritionColumns are the nutrient columns shared by recipes and seasonal fruits.
type NutritionColumns struct {
	Calories float64 `gorm:"not null;default:0"`
	Carbs    float64 `gorm:"not null;default:0"`
	Protein  float64 `gorm:"not null;default:0"`
	Fat      float64 `gorm:"not null;default:0"`
	Sodium   float64 `gorm:"not null;default:0"`
	Fiber    float64 `gorm:"not null;default:0"`
}

// RecipeModel is the GORM-specific struct for the 'recipes' table.
// Catalog order is ascending ID.
type RecipeModel struct {
	ID              int64                               `gorm:"primaryKey;autoIncrement"`
	Title           string                              `gorm:"type:varchar(255);not null;uniqueIndex"`
	DishType        string                              `gorm:"type:varchar(20);not null;default:'';index:idx_recipes_slot,priority:1"`
	MealType        string                              `gorm:"type:varchar(20);not null;default:'';index:idx_recipes_slot,priority:2"`
	Variety         string                              `gorm:"type:varchar(50);not null;default:''"`
	Nutrition       NutritionColumns                    `gorm:"embedded"`
	Ingredients     datatypes.JSONSlice[IngredientJSON] `gorm:"type:jsonb;not null;default:'[]'"`
	AllergyTags     datatypes.JSONSlice[string]         `gorm:"type:jsonb;not null;default:'[]'"`
	DiseaseKeywords datatypes.JSONSlice[string]         `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// DiseaseExclusionModel is the GORM-specific struct for the 'disease_exclusions' table.
type DiseaseExclusionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	DiseaseCode string `gorm:"type:varchar(100);not null;index"`
	FoodName    string `gorm:"type:varchar(255);not null"`
	Severity    string `gorm:"type:varchar(20);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (DiseaseExclusionModel) TableName() string {
	return "disease_exclusions"
}

// SeasonalFruitModel is the GORM-specific struct for the 'seasonal_fruits' table.
type SeasonalFruitModel struct {
	ID            int64                       `gorm:"primaryKey;autoIncrement"`
	Name          string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Months        datatypes.JSONSlice[int]    `gorm:"type:jsonb;not null;default:'[]'"`
	ServingSize   float64                     `gorm:"not null;default:0"`
	Unit          string                      `gorm:"type:varchar(20);not null;default:''"`
	PerServing    NutritionColumns            `gorm:"embedded;embeddedPrefix:per_serving_"`
	ChildFriendly bool                        `gorm:"not null;default:false"`
	AllergyTags   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName explicitly sets the table name for GORM.
func (SeasonalFruitModel) TableName() string {
	return "seasonal_fruits"
}
