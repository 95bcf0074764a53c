package repository

import "context"

// TransactionManager runs a unit of work atomically. Saving a weekly diet and
// recording its recipe usage happen in one unit so history never points at a
// week that was not stored.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns the repositories taking part in the current unit of work.
type RepositoryFactory interface {
	NewWeeklyDietRepository() WeeklyDietRepository
	NewRecipeHistoryRepository() RecipeHistoryRepository
}
