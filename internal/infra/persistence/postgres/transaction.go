// Package postgres stores the reference tables, recipe history and weekly diets in PostgreSQL through GORM.
package postgres

import (
	"context"

	"dietplan/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs units of work in one PostgreSQL transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn succeeds. An error or panic from fn rolls back; fn's error is
// returned as is so callers can still match it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "weekly diet transaction failed")
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewWeeklyDietRepository() repository.WeeklyDietRepository {
	return NewWeeklyDietRepository(r.tx)
}

func (r txRepositories) NewRecipeHistoryRepository() repository.RecipeHistoryRepository {
	return NewRecipeHistoryRepository(r.tx)
}
