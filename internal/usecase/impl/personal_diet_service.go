// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
)

// personalDietService implements the PersonalDietUsecase interface.
type personalDietService struct {
	allocator   *CalorieAllocator
	filter      *ConstraintFilter
	builder     *planBuilder
	historyRepo repository.RecipeHistoryRepository
	logger      *slog.Logger
}

// NewPersonalDietService creates a new personal diet service instance
func NewPersonalDietService(
	allocator *CalorieAllocator,
	filter *ConstraintFilter,
	composer *MealComposer,
	historyRepo repository.RecipeHistoryRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PersonalDietUsecase {
	return &personalDietService{
		allocator:   allocator,
		filter:      filter,
		builder:     newPlanBuilder(composer, cfg.Diet.WithDefaults().ParallelMeals),
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (s *personalDietService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateDailyDiet composes one person's four meals for a date.
func (s *personalDietService) GenerateDailyDiet(ctx context.Context, input *usecase.PersonalDietInput) (*entity.DailyDietPlan, error) {
	allocation := s.allocator.AllocateFor(input.Profile)

	exclusions, err := s.filter.ResolveExclusions(ctx, input.Profile.Diseases)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentlyUsed(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	day := dayContextOrEmpty(input.Day)
	plan, err := s.builder.build(ctx, planRequest{
		Date:             util.DateOnly(input.Date),
		Allocation:       allocation,
		Exclusions:       exclusions,
		Allergies:        input.Profile.Allergies,
		ExcludeTitles:    mergeTitles(day.ExcludeTitles, recent),
		PreferredVariety: day.PreferredVariety,
		ChildDiet:        input.Profile.IsMinor(),
		TitleBudget:      newTitleBudget(day),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compose daily diet: %w", err)
	}

	if plan == nil {
		s.log(ctx).Warn("No meal could be composed for the day",
			slog.Any("user_id", input.UserID),
			slog.String("date", input.Date.Format(util.DateLayout)),
		)

		return nil, nil
	}

	s.log(ctx).Debug("Daily diet generated",
		slog.Any("user_id", input.UserID),
		slog.String("date", plan.Date.Format(util.DateLayout)),
		slog.Float64("target_calories", allocation.Daily),
		slog.Float64("total_calories", plan.TotalNutrition.Calories),
		slog.Int("meal_count", plan.MealCount()),
	)

	return plan, nil
}

func (s *personalDietService) recentlyUsed(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	titles, err := s.historyRepo.RecentlyUsed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recently used recipes: %w: %w", domainerrors.ErrHistoryLookupFailed, err)
	}

	return titles, nil
}

func dayContextOrEmpty(day *usecase.DayContext) usecase.DayContext {
	if day == nil {
		return usecase.DayContext{}
	}

	return *day
}

// mergeTitles concatenates title lists, dropping duplicates and keeping first-seen order.
func mergeTitles(lists ...[]string) []string {
	var merged []string
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, title := range list {
			if _, ok := seen[title]; ok {
				continue
			}
			seen[title] = struct{}{}
			merged = append(merged, title)
		}
	}

	return slices.Clip(merged)
}
