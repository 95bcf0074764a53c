package postgres

import (
	"context"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const insertBatchSize = 200

// catalogImporter implements the repository.CatalogImporter interface.
type catalogImporter struct {
	db *gorm.DB
}

// NewCatalogImporter is the constructor for catalogImporter.
func NewCatalogImporter(db *gorm.DB) repository.CatalogImporter {
	return &catalogImporter{
		db: db,
	}
}

// Import replaces the recipe, exclusion and fruit tables in one transaction.
// Recipe IDs are reassigned so catalog order follows the seed document.
func (imp *catalogImporter) Import(ctx context.Context, catalog *entity.Catalog) error {
	if catalog == nil {
		return errors.New("catalog is nil")
	}

	recipes := make([]*model.RecipeModel, 0, len(catalog.Dishes))
	for _, dish := range catalog.Dishes {
		if recipeM := fromDishDomain(dish); recipeM != nil {
			recipeM.ID = 0
			recipes = append(recipes, recipeM)
		}
	}
	exclusions := make([]*model.DiseaseExclusionModel, 0, len(catalog.Exclusions))
	for _, item := range catalog.Exclusions {
		exclusions = append(exclusions, &model.DiseaseExclusionModel{
			DiseaseCode: item.DiseaseCode,
			FoodName:    item.FoodName,
			Severity:    item.Severity,
		})
	}
	fruits := make([]*model.SeasonalFruitModel, 0, len(catalog.Fruits))
	for _, fruit := range catalog.Fruits {
		if fruitM := fromFruitDomain(fruit); fruitM != nil {
			fruits = append(fruits, fruitM)
		}
	}

	err := imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"recipes", "disease_exclusions", "seasonal_fruits"} {
			if err := tx.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY").Error; err != nil {
				return errors.Wrapf(err, "failed to truncate %s", table)
			}
		}
		if len(recipes) > 0 {
			if err := tx.CreateInBatches(recipes, insertBatchSize).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return errors.Wrap(err, "duplicate recipe title")
				}

				return errors.Wrap(err, "failed to insert recipes")
			}
		}
		if len(exclusions) > 0 {
			if err := tx.CreateInBatches(exclusions, insertBatchSize).Error; err != nil {
				return errors.Wrap(err, "failed to insert disease exclusions")
			}
		}
		if len(fruits) > 0 {
			if err := tx.CreateInBatches(fruits, insertBatchSize).Error; err != nil {
				return errors.Wrap(err, "failed to insert seasonal fruits")
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import catalog")
	}

	return nil
}
