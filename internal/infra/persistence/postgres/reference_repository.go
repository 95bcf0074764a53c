package postgres

import (
	"context"
	"fmt"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// diseaseExclusionRepository implements the repository.DiseaseExclusionRepository interface.
type diseaseExclusionRepository struct {
	db *gorm.DB
}

// NewDiseaseExclusionRepository is the constructor for diseaseExclusionRepository.
func NewDiseaseExclusionRepository(db *gorm.DB) repository.DiseaseExclusionRepository {
	return &diseaseExclusionRepository{
		db: db,
	}
}

// ExcludedItems returns every food excluded by any of the given disease codes. Codes match case-insensitively.
func (repo *diseaseExclusionRepository) ExcludedItems(ctx context.Context, diseaseCodes []string) ([]entity.ExcludedFood, error) {
	if len(diseaseCodes) == 0 {
		return nil, nil
	}

	var exclusionModels []*model.DiseaseExclusionModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(disease_code) IN ?", diseaseCodes).
		Order("id ASC").
		Find(&exclusionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find disease exclusions")
	}

	items := make([]entity.ExcludedFood, 0, len(exclusionModels))
	for _, exclusionM := range exclusionModels {
		items = append(items, entity.ExcludedFood{
			DiseaseCode: exclusionM.DiseaseCode,
			FoodName:    exclusionM.FoodName,
			Severity:    exclusionM.Severity,
		})
	}

	return items, nil
}

// seasonalFruitRepository implements the repository.SeasonalFruitRepository interface.
type seasonalFruitRepository struct {
	db *gorm.DB
}

// NewSeasonalFruitRepository is the constructor for seasonalFruitRepository.
func NewSeasonalFruitRepository(db *gorm.DB) repository.SeasonalFruitRepository {
	return &seasonalFruitRepository{
		db: db,
	}
}

// FindInSeason returns the fruits whose months contain month, in catalog order.
func (repo *seasonalFruitRepository) FindInSeason(ctx context.Context, month int) ([]*entity.SeasonalFruit, error) {
	var fruitModels []*model.SeasonalFruitModel
	if err := repo.db.WithContext(ctx).
		Where("months @> ?::jsonb", fmt.Sprintf("[%d]", month)).
		Order("id ASC").
		Find(&fruitModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find fruits in season for month %d", month)
	}

	fruits := make([]*entity.SeasonalFruit, 0, len(fruitModels))
	for _, fruitM := range fruitModels {
		fruits = append(fruits, toFruitDomain(fruitM))
	}

	return fruits, nil
}

// toFruitDomain converts a GORM SeasonalFruitModel to a domain SeasonalFruit entity.
func toFruitDomain(data *model.SeasonalFruitModel) *entity.SeasonalFruit {
	if data == nil {
		return nil
	}

	return &entity.SeasonalFruit{
		Name:          data.Name,
		Months:        []int(data.Months),
		ServingSize:   data.ServingSize,
		Unit:          data.Unit,
		PerServing:    toNutritionDomain(data.PerServing),
		ChildFriendly: data.ChildFriendly,
		AllergyTags:   []string(data.AllergyTags),
	}
}

// fromFruitDomain converts a domain SeasonalFruit entity to a GORM SeasonalFruitModel.
func fromFruitDomain(data *entity.SeasonalFruit) *model.SeasonalFruitModel {
	if data == nil {
		return nil
	}

	return &model.SeasonalFruitModel{
		Name:          data.Name,
		Months:        nonNil(data.Months),
		ServingSize:   data.ServingSize,
		Unit:          data.Unit,
		PerServing:    fromNutritionDomain(data.PerServing),
		ChildFriendly: data.ChildFriendly,
		AllergyTags:   nonNil(data.AllergyTags),
	}
}
