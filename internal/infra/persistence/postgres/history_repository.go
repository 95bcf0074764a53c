package postgres

import (
	"context"
	"time"

	"dietplan/internal/domain/repository"
	"dietplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeHistoryRepository implements the repository.RecipeHistoryRepository interface.
type recipeHistoryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecipeHistoryRepository is the constructor for recipeHistoryRepository.
func NewRecipeHistoryRepository(db *gorm.DB) repository.RecipeHistoryRepository {
	return &recipeHistoryRepository{
		db:  db,
		now: time.Now,
	}
}

// RecentlyUsed returns the distinct titles recorded for the user within repository.RecentWindow.
func (repo *recipeHistoryRepository) RecentlyUsed(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var titles []string

	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeUsageModel{}).
		Distinct("title").
		Where("user_id = ? AND used_at >= ?", userID, repo.now().Add(-repository.RecentWindow)).
		Order("title ASC").
		Pluck("title", &titles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recently used recipes")
	}

	return titles, nil
}

// RecordUsage appends one usage row per title.
func (repo *recipeHistoryRepository) RecordUsage(ctx context.Context, userID uuid.UUID, titles []string, usedAt time.Time) error {
	if len(titles) == 0 {
		return nil
	}

	usageModels := make([]*model.RecipeUsageModel, 0, len(titles))
	for _, title := range titles {
		usageModels = append(usageModels, &model.RecipeUsageModel{
			UserID: userID,
			Title:  title,
			UsedAt: usedAt,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(usageModels, insertBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to record recipe usage")
	}

	return nil
}
