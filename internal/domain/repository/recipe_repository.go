// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dietplan/internal/domain/entity"
)

// RecipeQuery selects catalog candidates for one meal slot.
type RecipeQuery struct {
	// DishType is matched exactly; DishTypeSingle selects untyped single-recipe dishes.
	DishType entity.DishType
	// MealType restricts the meal affinity; empty matches every meal.
	MealType entity.MealType
	// Variety restricts staples to one variety; empty matches every variety.
	Variety       string
	ExcludeTitles []string
	Limit         int
}

// RecipeRepository is the read-only recipe catalog lookup.
type RecipeRepository interface {
	// Search returns at most query.Limit dishes in catalog order.
	Search(ctx context.Context, query RecipeQuery) ([]*entity.Dish, error)

	// FindByTitles returns the dishes with the given titles. Unknown titles are skipped.
	FindByTitles(ctx context.Context, titles []string) ([]*entity.Dish, error)
}
