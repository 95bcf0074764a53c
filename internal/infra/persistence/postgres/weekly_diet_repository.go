package postgres

import (
	"context"
	"time"

	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// weeklyDietRepository implements the repository.WeeklyDietRepository interface.
type weeklyDietRepository struct {
	db *gorm.DB
}

// NewWeeklyDietRepository is the constructor for weeklyDietRepository.
func NewWeeklyDietRepository(db *gorm.DB) repository.WeeklyDietRepository {
	return &weeklyDietRepository{
		db: db,
	}
}

// Save upserts the plan on (user_id, week_start).
func (repo *weeklyDietRepository) Save(ctx context.Context, diet *entity.WeeklyDiet) error {
	dietM := fromWeeklyDietDomain(diet)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id", "diversity_level", "days", "missing_dates", "shopping_list",
				"nutrition_stats", "used_categories", "title_counts", "generated_at", "updated_at",
			}),
		}).
		Create(dietM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrWeeklyDietSaveFailed.WrapMessage("invalid weekly diet")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save weekly diet")
	}

	return nil
}

// FindByWeek reads from the primary so a plan is visible right after Save.
func (repo *weeklyDietRepository) FindByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*entity.WeeklyDiet, error) {
	var dietM model.WeeklyDietModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND week_start = ?", userID, weekStart.Format(time.DateOnly)).
		First(&dietM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeeklyDietNotFound
		}

		return nil, errors.Wrap(err, "failed to find weekly diet")
	}

	return toWeeklyDietDomain(&dietM), nil
}

// toWeeklyDietDomain converts a GORM WeeklyDietModel to a domain WeeklyDiet entity.
func toWeeklyDietDomain(data *model.WeeklyDietModel) *entity.WeeklyDiet {
	if data == nil {
		return nil
	}

	return &entity.WeeklyDiet{
		ID:             data.ID,
		UserID:         data.UserID,
		WeekStart:      data.WeekStart,
		DiversityLevel: entity.DiversityLevel(data.DiversityLevel),
		Days:           []entity.WeeklyDietDay(data.Days),
		MissingDates:   []time.Time(data.MissingDates),
		ShoppingList:   []entity.ShoppingListItem(data.ShoppingList),
		NutritionStats: []entity.WeeklyNutritionStats(data.NutritionStats),
		UsedCategories: data.UsedCategories.Data(),
		TitleCounts:    data.TitleCounts.Data(),
		GeneratedAt:    data.GeneratedAt,
	}
}

// fromWeeklyDietDomain converts a domain WeeklyDiet entity to a GORM WeeklyDietModel.
func fromWeeklyDietDomain(data *entity.WeeklyDiet) *model.WeeklyDietModel {
	if data == nil {
		return nil
	}

	return &model.WeeklyDietModel{
		ID:             data.ID,
		UserID:         data.UserID,
		WeekStart:      data.WeekStart,
		DiversityLevel: string(data.DiversityLevel),
		Days:           nonNil(data.Days),
		MissingDates:   nonNil(data.MissingDates),
		ShoppingList:   nonNil(data.ShoppingList),
		NutritionStats: nonNil(data.NutritionStats),
		UsedCategories: datatypes.NewJSONType(data.UsedCategories),
		TitleCounts:    datatypes.NewJSONType(data.TitleCounts),
		GeneratedAt:    data.GeneratedAt,
	}
}
