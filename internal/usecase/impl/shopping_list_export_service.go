package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "dietplan/internal/delivery/context"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/domain/service"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shoppingListExportService struct {
	weeklyDietRepo repository.WeeklyDietRepository
	qrService      service.ShoppingListQRService
	exporter       service.ShoppingListExporter
	logger         *slog.Logger
}

// NewShoppingListExportService creates a new shopping list export service instance
func NewShoppingListExportService(
	weeklyDietRepo repository.WeeklyDietRepository,
	qrService service.ShoppingListQRService,
	exporter service.ShoppingListExporter,
	logger *slog.Logger,
) usecase.ShoppingListExportUsecase {
	return &shoppingListExportService{
		weeklyDietRepo: weeklyDietRepo,
		qrService:      qrService,
		exporter:       exporter,
		logger:         logger,
	}
}

// ExportShoppingList renders the stored week's QR code and writes both the list and the code.
func (s *shoppingListExportService) ExportShoppingList(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*service.ShoppingListExportResult, error) {
	diet, err := s.weeklyDietRepo.FindByWeek(ctx, userID, util.WeekStart(weekStart))
	if err != nil {
		if errors.Is(err, repository.ErrWeeklyDietNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWeeklyDietNotFound, "weekly diet not found")
		}

		return nil, fmt.Errorf("failed to find weekly diet: %w", err)
	}

	var png []byte
	if len(diet.ShoppingList) > 0 {
		png, err = s.qrService.GenerateShoppingListQR(diet.ShoppingList)
		if err != nil {
			return nil, fmt.Errorf("failed to generate shopping list QR: %w", err)
		}
	}

	result, err := s.exporter.Export(ctx, &service.ShoppingListExport{
		WeeklyDietID: diet.ID,
		UserID:       diet.UserID,
		WeekStart:    diet.WeekStart,
		Items:        diet.ShoppingList,
		QRCode:       png,
		GeneratedAt:  diet.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export shopping list: %w: %w", domainerrors.ErrShoppingListExportFailed, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Shopping list exported",
		slog.String("user_id", userID.String()),
		slog.String("week_start", diet.WeekStart.Format(util.DateLayout)),
		slog.Int("items", len(diet.ShoppingList)),
		slog.String("list_key", result.ListKey),
	)

	return result, nil
}
