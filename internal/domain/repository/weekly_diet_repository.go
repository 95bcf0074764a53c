package repository

import (
	"context"
	"time"

	"dietplan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for weekly diet persistence.
var (
	// ErrWeeklyDietNotFound is returned when no plan is stored for the user and week.
	ErrWeeklyDietNotFound = errors.New("weekly diet not found")
)

// WeeklyDietRepository stores generated weekly plans.
type WeeklyDietRepository interface {
	// Save stores the plan, replacing any plan of the same user and week.
	Save(ctx context.Context, diet *entity.WeeklyDiet) error

	// FindByWeek retrieves the plan of the user for the week starting at weekStart.
	FindByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*entity.WeeklyDiet, error)
}
