package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/domain/repository"
	"dietplan/internal/domain/service"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// weeklyDietService implements the WeeklyDietUsecase interface.
type weeklyDietService struct {
	personal       usecase.PersonalDietUsecase
	family         usecase.FamilyDietUsecase
	recipeRepo     repository.RecipeRepository
	weeklyDietRepo repository.WeeklyDietRepository
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	qrService      service.ShoppingListQRService
	cfg            *config.DietConfig
	logger         *slog.Logger
}

// NewWeeklyDietService creates a new weekly diet service instance
func NewWeeklyDietService(
	personal usecase.PersonalDietUsecase,
	family usecase.FamilyDietUsecase,
	recipeRepo repository.RecipeRepository,
	weeklyDietRepo repository.WeeklyDietRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	qrService service.ShoppingListQRService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.WeeklyDietUsecase {
	return &weeklyDietService{
		personal:       personal,
		family:         family,
		recipeRepo:     recipeRepo,
		weeklyDietRepo: weeklyDietRepo,
		txManager:      txManager,
		publisher:      publisher,
		qrService:      qrService,
		cfg:            cfg.Diet.WithDefaults(),
		logger:         logger,
	}
}

func (s *weeklyDietService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateWeeklyDiet generates 7 consecutive days starting on the Monday of the given
// week. Days are generated in order because each one is constrained by the titles the
// previous days used. A day without any plan is recorded as missing; lookup failures
// abort the run.
func (s *weeklyDietService) GenerateWeeklyDiet(ctx context.Context, input *usecase.WeeklyDietInput) (*entity.WeeklyDiet, error) {
	weekStart := util.WeekStart(input.WeekStart)
	level := input.DiversityLevel
	if level == "" {
		level = entity.DiversityLevel(s.cfg.DefaultDiversityLevel)
	}

	started := time.Now()
	tracker := newDiversityTracker(level, s.cfg.RiceVarieties, input.PriorCategories)
	diet := &entity.WeeklyDiet{
		ID:             uuid.New(),
		UserID:         input.UserID,
		WeekStart:      weekStart,
		DiversityLevel: level,
		Days:           make([]entity.WeeklyDietDay, 0, entity.DaysPerWeek),
	}

	s.log(ctx).Info("Generating weekly diet",
		slog.Any("user_id", input.UserID),
		slog.String("week_start", weekStart.Format(util.DateLayout)),
		slog.String("diversity_level", string(level)),
		slog.Bool("family", input.Family),
	)

	for i := range entity.DaysPerWeek {
		date := weekStart.AddDate(0, 0, i)
		day, err := s.generateDay(ctx, input, date, tracker.dayContext())
		if err != nil {
			return nil, fmt.Errorf("failed to generate diet for %s: %w", date.Format(util.DateLayout), err)
		}

		if day.IsAbsent() {
			s.log(ctx).Warn("Day has no plan, continuing with the rest of the week",
				slog.String("date", date.Format(util.DateLayout)),
			)
			diet.MissingDates = append(diet.MissingDates, date)
		} else {
			tracker.recordDay(dayPlans(day))
		}
		diet.Days = append(diet.Days, day)
	}

	shoppingList, err := buildShoppingList(ctx, s.recipeRepo, diet.Days)
	if err != nil {
		return nil, err
	}
	diet.ShoppingList = shoppingList
	diet.NutritionStats = buildNutritionStats(diet.Days)
	diet.UsedCategories = tracker.usedCategories()
	diet.TitleCounts = tracker.titleCounts()
	diet.GeneratedAt = time.Now()

	s.log(ctx).Info("Weekly diet generated",
		slog.String("weekly_diet_id", diet.ID.String()),
		slog.Int("missing_days", len(diet.MissingDates)),
		slog.Int("distinct_titles", len(diet.TitleCounts)),
		slog.Int("shopping_items", len(diet.ShoppingList)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	if input.Persist {
		if err := s.SaveWeeklyDiet(ctx, diet); err != nil {
			return nil, err
		}
	}

	return diet, nil
}

func (s *weeklyDietService) generateDay(
	ctx context.Context,
	input *usecase.WeeklyDietInput,
	date time.Time,
	dayCtx *usecase.DayContext,
) (entity.WeeklyDietDay, error) {
	day := entity.WeeklyDietDay{Date: date}

	if input.Family {
		plan, err := s.family.GenerateFamilyDiet(ctx, &usecase.FamilyDietInput{
			UserID:  input.UserID,
			Profile: input.Profile,
			Members: input.Members,
			Date:    date,
			Day:     dayCtx,
		})
		if err != nil {
			return day, err
		}
		day.FamilyPlan = plan

		return day, nil
	}

	plan, err := s.personal.GenerateDailyDiet(ctx, &usecase.PersonalDietInput{
		UserID:  input.UserID,
		Profile: input.Profile,
		Date:    date,
		Day:     dayCtx,
	})
	if err != nil {
		return day, err
	}
	day.Plan = plan

	return day, nil
}

// SaveWeeklyDiet stores the plan and records its titles in the user's recipe history
// in one transaction, then announces it.
func (s *weeklyDietService) SaveWeeklyDiet(ctx context.Context, diet *entity.WeeklyDiet) error {
	titles := diet.UsedTitles()

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewWeeklyDietRepository().Save(ctx, diet); err != nil {
			return errors.Wrap(domainerrors.ErrWeeklyDietSaveFailed.WithDetails(err.Error()), "save weekly diet")
		}
		if len(titles) == 0 {
			return nil
		}
		if err := repoFactory.NewRecipeHistoryRepository().RecordUsage(ctx, diet.UserID, titles, diet.GeneratedAt); err != nil {
			return fmt.Errorf("failed to record recipe usage: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, diet, titles)

	return nil
}

func (s *weeklyDietService) publish(ctx context.Context, diet *entity.WeeklyDiet, titles []string) {
	if s.publisher == nil {
		return
	}

	missing := make([]string, 0, len(diet.MissingDates))
	for _, date := range diet.MissingDates {
		missing = append(missing, date.Format(util.DateLayout))
	}

	event := &service.WeeklyDietGeneratedEvent{
		RequestID:    deliverycontext.RequestIDFrom(ctx),
		WeeklyDietID: diet.ID.String(),
		UserID:       diet.UserID.String(),
		WeekStart:    diet.WeekStart.Format(util.DateLayout),
		MissingDates: missing,
		DishCount:    len(titles),
		GeneratedAt:  diet.GeneratedAt,
	}

	// Best effort: the plan is already stored.
	if err := s.publisher.PublishWeeklyDietGenerated(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish weekly diet event",
			slog.String("weekly_diet_id", event.WeeklyDietID),
			slog.Any("error", err),
		)
	}
}

// GetWeeklyDiet retrieves the stored plan for the week containing weekStart.
func (s *weeklyDietService) GetWeeklyDiet(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*entity.WeeklyDiet, error) {
	diet, err := s.weeklyDietRepo.FindByWeek(ctx, userID, util.WeekStart(weekStart))
	if err != nil {
		if errors.Is(err, repository.ErrWeeklyDietNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWeeklyDietNotFound, "weekly diet not found")
		}

		return nil, fmt.Errorf("failed to find weekly diet: %w", err)
	}

	return diet, nil
}

// GetShoppingListQR renders the stored plan's shopping list as a PNG QR code.
func (s *weeklyDietService) GetShoppingListQR(ctx context.Context, userID uuid.UUID, weekStart time.Time) ([]byte, error) {
	diet, err := s.GetWeeklyDiet(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateShoppingListQR(diet.ShoppingList)
	if err != nil {
		return nil, fmt.Errorf("failed to generate shopping list QR: %w", err)
	}

	return png, nil
}
