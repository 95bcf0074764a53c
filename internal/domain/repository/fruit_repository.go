package repository

import (
	"context"

	"dietplan/internal/domain/entity"
)

// SeasonalFruitRepository is the read-only seasonal fruit catalog.
type SeasonalFruitRepository interface {
	// FindInSeason returns the fruits in season during month (1-12), in catalog order.
	FindInSeason(ctx context.Context, month int) ([]*entity.SeasonalFruit, error)
}
