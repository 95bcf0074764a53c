package repository

import (
	"context"

	"dietplan/internal/domain/entity"
)

// CatalogImporter replaces the reference tables with the content of a seed document.
type CatalogImporter interface {
	Import(ctx context.Context, catalog *entity.Catalog) error
}
