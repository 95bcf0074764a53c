package usecase

import (
	"context"
	"time"

	"dietplan/internal/domain/service"

	"github.com/google/uuid"
)

// ShoppingListExportUsecase writes a stored week's shopping list out of the database
type ShoppingListExportUsecase interface {
	ExportShoppingList(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*service.ShoppingListExportResult, error)
}
