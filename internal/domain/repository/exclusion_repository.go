package repository

import (
	"context"

	"dietplan/internal/domain/entity"
)

// DiseaseExclusionRepository is the read-only disease exclusion table.
type DiseaseExclusionRepository interface {
	// ExcludedItems returns every food excluded by any of the given disease codes.
	ExcludedItems(ctx context.Context, diseaseCodes []string) ([]entity.ExcludedFood, error)
}
