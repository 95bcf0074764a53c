package service

import (
	"context"
	"time"

	"dietplan/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingListExport is one week's shopping list ready to be written out.
type ShoppingListExport struct {
	WeeklyDietID uuid.UUID
	UserID       uuid.UUID
	WeekStart    time.Time
	Items        []entity.ShoppingListItem
	QRCode       []byte // PNG
	GeneratedAt  time.Time
}

// ShoppingListExportResult names the objects an export produced.
type ShoppingListExportResult struct {
	ListKey string `json:"list_key"`
	QRKey   string `json:"qr_key"`
}

// ShoppingListExporter writes shopping lists to storage outside the database.
type ShoppingListExporter interface {
	// Export overwrites any previous export of the same user and week.
	Export(ctx context.Context, export *ShoppingListExport) (*ShoppingListExportResult, error)
}
