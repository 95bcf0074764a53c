package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecentWindow is how far back RecentlyUsed looks.
const RecentWindow = 7 * 24 * time.Hour

// RecipeHistoryRepository tracks which recipe titles a user was served recently.
type RecipeHistoryRepository interface {
	// RecentlyUsed returns the distinct titles recorded for the user within RecentWindow, sorted.
	RecentlyUsed(ctx context.Context, userID uuid.UUID) ([]string, error)

	// RecordUsage appends the titles to the user's history.
	RecordUsage(ctx context.Context, userID uuid.UUID, titles []string, usedAt time.Time) error
}
