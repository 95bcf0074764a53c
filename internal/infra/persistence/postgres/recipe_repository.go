package postgres

import (
	"context"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// Search returns the candidates of one meal slot in catalog order.
func (repo *recipeRepository) Search(ctx context.Context, query repository.RecipeQuery) ([]*entity.Dish, error) {
	tx := repo.db.WithContext(ctx).
		Where("dish_type = ?", string(query.DishType))

	if query.MealType != "" {
		tx = tx.Where("meal_type IN ?", []string{string(query.MealType), ""})
	}
	if query.Variety != "" {
		tx = tx.Where("LOWER(variety) = LOWER(?)", query.Variety)
	}
	if len(query.ExcludeTitles) > 0 {
		tx = tx.Where("title NOT IN ?", query.ExcludeTitles)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var recipeModels []*model.RecipeModel
	if err := tx.Order("id ASC").Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to search %q recipes", query.DishType)
	}

	dishes := make([]*entity.Dish, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		dishes = append(dishes, toDishDomain(recipeM))
	}

	return dishes, nil
}

// FindByTitles returns the recipes with the given titles, in catalog order.
func (repo *recipeRepository) FindByTitles(ctx context.Context, titles []string) ([]*entity.Dish, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	var recipeModels []*model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("title IN ?", titles).
		Order("id ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by title")
	}

	dishes := make([]*entity.Dish, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		dishes = append(dishes, toDishDomain(recipeM))
	}

	return dishes, nil
}

// toDishDomain converts a GORM RecipeModel to a domain Dish entity.
func toDishDomain(data *model.RecipeModel) *entity.Dish {
	if data == nil {
		return nil
	}

	ingredients := make([]entity.Ingredient, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	return &entity.Dish{
		ID:              data.ID,
		Title:           data.Title,
		DishType:        entity.DishType(data.DishType),
		MealType:        entity.MealType(data.MealType),
		Variety:         data.Variety,
		Nutrition:       toNutritionDomain(data.Nutrition),
		Ingredients:     ingredients,
		AllergyTags:     []string(data.AllergyTags),
		DiseaseKeywords: []string(data.DiseaseKeywords),
	}
}

// fromDishDomain converts a domain Dish entity to a GORM RecipeModel.
func fromDishDomain(data *entity.Dish) *model.RecipeModel {
	if data == nil {
		return nil
	}

	ingredients := make([]model.IngredientJSON, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, model.IngredientJSON{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	return &model.RecipeModel{
		ID:              data.ID,
		Title:           data.Title,
		DishType:        string(data.DishType),
		MealType:        string(data.MealType),
		Variety:         data.Variety,
		Nutrition:       fromNutritionDomain(data.Nutrition),
		Ingredients:     ingredients,
		AllergyTags:     nonNil(data.AllergyTags),
		DiseaseKeywords: nonNil(data.DiseaseKeywords),
	}
}

func toNutritionDomain(data model.NutritionColumns) entity.Nutrition {
	return entity.Nutrition{
		Calories: data.Calories,
		Carbs:    data.Carbs,
		Protein:  data.Protein,
		Fat:      data.Fat,
		Sodium:   data.Sodium,
		Fiber:    data.Fiber,
	}
}

func fromNutritionDomain(data entity.Nutrition) model.NutritionColumns {
	return model.NutritionColumns{
		Calories: data.Calories,
		Carbs:    data.Carbs,
		Protein:  data.Protein,
		Fat:      data.Fat,
		Sodium:   data.Sodium,
		Fiber:    data.Fiber,
	}
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}

	return values
}
