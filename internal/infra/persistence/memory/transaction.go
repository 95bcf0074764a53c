package memory

import (
	"context"
	"maps"
	"slices"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/repository"

	"github.com/google/uuid"
)

type memoryTransactionManager struct {
	s *Store
}

type memoryRepositoryFactory struct {
	s *Store
}

func (f *memoryRepositoryFactory) NewWeeklyDietRepository() repository.WeeklyDietRepository {
	return f.s.WeeklyDiets()
}

func (f *memoryRepositoryFactory) NewRecipeHistoryRepository() repository.RecipeHistoryRepository {
	return f.s.History()
}

// NewTransactionManager returns a transaction manager over the store.
// A failed transaction restores the history and weekly diet tables to their state when it began.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &memoryTransactionManager{s: s}
}

func (tm *memoryTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.s.txMu.Lock()
	defer tm.s.txMu.Unlock()

	history, weekly := tm.s.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.s.restore(history, weekly)
			panic(r)
		}
	}()

	if err := fn(&memoryRepositoryFactory{s: tm.s}); err != nil {
		tm.s.restore(history, weekly)

		return err
	}

	return nil
}

func (s *Store) snapshot() (map[uuid.UUID][]usage, map[weekKey]*entity.WeeklyDiet) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make(map[uuid.UUID][]usage, len(s.history))
	for userID, usages := range s.history {
		history[userID] = slices.Clone(usages)
	}

	return history, maps.Clone(s.weekly)
}

func (s *Store) restore(history map[uuid.UUID][]usage, weekly map[weekKey]*entity.WeeklyDiet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = history
	s.weekly = weekly
}
