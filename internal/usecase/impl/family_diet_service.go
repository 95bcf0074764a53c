package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// familyDietService implements the FamilyDietUsecase interface.
type familyDietService struct {
	personal        usecase.PersonalDietUsecase
	allocator       *CalorieAllocator
	filter          *ConstraintFilter
	builder         *planBuilder
	parallelMembers bool
	logger          *slog.Logger
}

// NewFamilyDietService creates a new family diet service instance
func NewFamilyDietService(
	personal usecase.PersonalDietUsecase,
	allocator *CalorieAllocator,
	filter *ConstraintFilter,
	composer *MealComposer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FamilyDietUsecase {
	diet := cfg.Diet.WithDefaults()

	return &familyDietService{
		personal:        personal,
		allocator:       allocator,
		filter:          filter,
		builder:         newPlanBuilder(composer, diet.ParallelMeals),
		parallelMembers: diet.ParallelMembers,
		logger:          logger,
	}
}

func (s *familyDietService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateFamilyDiet produces every member's own plan and the shared unified plan.
func (s *familyDietService) GenerateFamilyDiet(ctx context.Context, input *usecase.FamilyDietInput) (*entity.FamilyDietPlan, error) {
	date := util.DateOnly(input.Date)

	budget := newTitleBudget(dayContextOrEmpty(input.Day))

	plans, err := s.individualPlans(ctx, input, date, budget)
	if err != nil {
		return nil, err
	}

	unified, err := s.unifiedPlan(ctx, input, date, plans, budget)
	if err != nil {
		return nil, err
	}

	family := &entity.FamilyDietPlan{
		Date:        date,
		Plans:       plans,
		UnifiedPlan: unified,
	}
	if family.IsEmpty() {
		s.log(ctx).Warn("No family plan could be composed for the day",
			slog.Any("user_id", input.UserID),
			slog.String("date", date.Format(util.DateLayout)),
		)

		return nil, nil
	}

	return family, nil
}

// individualPlans generates the user's and every member's own plan. Members without a
// plan for the day are left out of the map. Under a title budget the plans are generated
// in order and each one starts from the counts the previous ones left.
func (s *familyDietService) individualPlans(
	ctx context.Context,
	input *usecase.FamilyDietInput,
	date time.Time,
	budget *titleBudget,
) (map[string]*entity.DailyDietPlan, error) {
	keys := make([]string, 0, len(input.Members)+1)
	inputs := make([]*usecase.PersonalDietInput, 0, len(input.Members)+1)

	keys = append(keys, entity.UserPlanKey)
	inputs = append(inputs, &usecase.PersonalDietInput{
		UserID:  input.UserID,
		Profile: input.Profile,
		Date:    date,
		Day:     input.Day,
	})
	for i, member := range input.Members {
		keys = append(keys, memberKey(i, member))
		inputs = append(inputs, &usecase.PersonalDietInput{
			UserID:  member.ID,
			Profile: member.ProfileOn(date),
			Date:    date,
			Day:     input.Day,
		})
	}

	results := make([]*entity.DailyDietPlan, len(inputs))
	generate := func(ctx context.Context, i int) error {
		if budget.enabled() {
			inputs[i].Day = budget.dayContext(dayContextOrEmpty(input.Day))
		}
		plan, err := s.personal.GenerateDailyDiet(ctx, inputs[i])
		if err != nil {
			return fmt.Errorf("failed to generate plan for %s: %w", keys[i], err)
		}
		results[i] = plan
		budget.record(plan.Titles()...)

		return nil
	}

	if s.parallelMembers && !budget.enabled() {
		g, gctx := errgroup.WithContext(ctx)
		for i := range inputs {
			g.Go(func() error { return generate(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range inputs {
			if err := generate(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	plans := make(map[string]*entity.DailyDietPlan, len(results))
	for i, plan := range results {
		if plan != nil {
			plans[keys[i]] = plan
		}
	}

	return plans, nil
}

// unifiedPlan composes one plan for the user and every included member under the union
// of their constraints. Titles of the individual plans are excluded so the shared meal
// does not repeat what someone already eats that day.
func (s *familyDietService) unifiedPlan(
	ctx context.Context,
	input *usecase.FamilyDietInput,
	date time.Time,
	individual map[string]*entity.DailyDietPlan,
	budget *titleBudget,
) (*entity.DailyDietPlan, error) {
	profiles := []entity.HealthProfile{input.Profile}
	for _, member := range input.Members {
		if member.IncludedInUnifiedDiet() {
			profiles = append(profiles, member.ProfileOn(date))
		}
	}

	var diseases, allergies []string
	for _, p := range profiles {
		diseases = append(diseases, p.Diseases...)
		allergies = append(allergies, p.Allergies...)
	}
	diseases = normalizeTags(diseases)
	allergies = normalizeTags(allergies)

	allocation := s.allocator.AllocateShared(profiles)

	exclusions, err := s.filter.ResolveExclusions(ctx, diseases)
	if err != nil {
		return nil, err
	}

	day := dayContextOrEmpty(input.Day)
	exclude := day.ExcludeTitles
	for _, key := range sortedKeys(individual) {
		exclude = mergeTitles(exclude, individual[key].Titles())
	}

	s.log(ctx).Debug("Unifying family diet",
		slog.Int("people", len(profiles)),
		slog.Float64("shared_target", allocation.Daily),
		slog.Bool("growth_ratios", allocation.Growth),
		slog.Any("diseases", diseases),
		slog.Any("allergies", allergies),
	)

	plan, err := s.builder.build(ctx, planRequest{
		Date:             date,
		Allocation:       allocation,
		Exclusions:       exclusions,
		Allergies:        allergies,
		ExcludeTitles:    exclude,
		PreferredVariety: day.PreferredVariety,
		ChildDiet:        allocation.Growth,
		TitleBudget:      budget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compose unified diet: %w", err)
	}

	return plan, nil
}

func memberKey(index int, member entity.FamilyMember) string {
	if member.ID == uuid.Nil {
		return fmt.Sprintf("member-%d", index)
	}

	return member.ID.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
