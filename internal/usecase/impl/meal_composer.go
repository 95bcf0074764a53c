package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"dietplan/config"
	deliverycontext "dietplan/internal/delivery/context"
	"dietplan/internal/domain/entity"
)

// MealRequest describes one meal to compose.
type MealRequest struct {
	MealType         entity.MealType
	Budget           float64
	Date             time.Time
	Exclusions       ExclusionSet
	Allergies        []string
	ExcludeTitles    []string
	ChildDiet        bool
	PreferredVariety string
}

// MealComposer assembles staple, side and soup meals and fruit snacks.
type MealComposer struct {
	selector *DishSelector
	fruits   *FruitRecommender
	cfg      *config.DietConfig
	logger   *slog.Logger
}

// NewMealComposer creates a new meal composer.
func NewMealComposer(selector *DishSelector, fruits *FruitRecommender, cfg *config.Config, logger *slog.Logger) *MealComposer {
	return &MealComposer{
		selector: selector,
		fruits:   fruits,
		cfg:      cfg.Diet.WithDefaults(),
		logger:   logger,
	}
}

func (c *MealComposer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Compose fills the meal slot described by req. Snack requests take the fruit path.
// It returns nil when no constituent could be selected.
func (c *MealComposer) Compose(ctx context.Context, req MealRequest) (*entity.MealComposition, error) {
	if req.MealType == entity.MealTypeSnack {
		return c.ComposeSnack(ctx, req)
	}

	return c.ComposeMeal(ctx, req)
}

// ComposeMeal builds a staple, sides and soup meal. Slots without a candidate are
// omitted; a meal with no structured dish at all falls back to a single-recipe dish.
func (c *MealComposer) ComposeMeal(ctx context.Context, req MealRequest) (*entity.MealComposition, error) {
	meal := &entity.MealComposition{MealType: req.MealType}
	var used []string

	rice, err := c.selectSlot(ctx, req, entity.DishTypeRice, req.Budget*c.cfg.StapleShare, req.PreferredVariety, used)
	if err != nil {
		return nil, err
	}
	if rice != nil {
		meal.Rice = rice
		used = append(used, rice.Title)
	}

	sideTarget := req.Budget * c.cfg.SideShare / float64(c.cfg.SideCount)
	for range c.cfg.SideCount {
		side, err := c.selectSlot(ctx, req, entity.DishTypeSide, sideTarget, "", used)
		if err != nil {
			return nil, err
		}
		if side == nil {
			break
		}
		meal.Sides = append(meal.Sides, side)
		used = append(used, side.Title)
	}

	soup, err := c.selectSlot(ctx, req, entity.DishTypeSoup, req.Budget*c.cfg.SoupShare, "", used)
	if err != nil {
		return nil, err
	}
	if soup != nil {
		meal.Soup = soup
	}

	if meal.IsEmpty() {
		single, err := c.selectSlot(ctx, req, entity.DishTypeSingle, req.Budget, "", nil)
		if err != nil {
			return nil, err
		}
		meal.Single = single
	}

	if meal.IsEmpty() {
		c.log(ctx).Info("No dish available for meal",
			slog.String("meal_type", string(req.MealType)),
			slog.Float64("budget", req.Budget),
		)

		return nil, nil
	}

	meal.Recalculate()

	return meal, nil
}

// ComposeSnack recommends a seasonal fruit, falling back to a snack dish from the catalog.
func (c *MealComposer) ComposeSnack(ctx context.Context, req MealRequest) (*entity.MealComposition, error) {
	fruit, err := c.fruits.Recommend(ctx, FruitCriteria{
		TargetCalories: req.Budget,
		Month:          int(req.Date.Month()),
		ChildDiet:      req.ChildDiet,
		Exclusions:     req.Exclusions,
		Allergies:      req.Allergies,
		ExcludeNames:   req.ExcludeTitles,
	})
	if err != nil {
		return nil, err
	}

	meal := &entity.MealComposition{MealType: entity.MealTypeSnack, Fruit: fruit}
	if fruit == nil {
		snackReq := req
		snackReq.MealType = ""
		dish, err := c.selectSlot(ctx, snackReq, entity.DishTypeSnack, req.Budget, "", nil)
		if err != nil {
			return nil, err
		}
		meal.Single = dish
	}

	if meal.IsEmpty() {
		c.log(ctx).Info("No snack available", slog.Float64("budget", req.Budget))

		return nil, nil
	}

	meal.Recalculate()

	return meal, nil
}

// selectSlot tries the slot against the weekly exclusions first. When they leave no
// candidate it retries with only the titles already used in this meal, accepting a
// weekly repeat over an empty slot.
func (c *MealComposer) selectSlot(
	ctx context.Context,
	req MealRequest,
	dishType entity.DishType,
	target float64,
	variety string,
	mealUsed []string,
) (*entity.Dish, error) {
	criteria := SelectionCriteria{
		DishType:         dishType,
		MealType:         req.MealType,
		TargetCalories:   target,
		Exclusions:       req.Exclusions,
		Allergies:        req.Allergies,
		ExcludeTitles:    append(slices.Clone(req.ExcludeTitles), mealUsed...),
		ChildDiet:        req.ChildDiet,
		PreferredVariety: variety,
	}

	dish, err := c.selector.Select(ctx, criteria)
	if err != nil || dish != nil || len(req.ExcludeTitles) == 0 {
		return dish, err
	}

	criteria.ExcludeTitles = slices.Clone(mealUsed)
	dish, err = c.selector.Select(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if dish != nil {
		c.log(ctx).Info("Weekly exclusions exhausted candidates, allowing a repeat",
			slog.String("dish", dish.Title),
			slog.String("dish_type", string(dishType)),
			slog.String("meal_type", string(req.MealType)),
		)
	}

	return dish, nil
}
