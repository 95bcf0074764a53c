package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dietplan/internal/delivery/http/response"
	"dietplan/internal/delivery/http/validator"
	"dietplan/internal/domain/entity"
	domainerrors "dietplan/internal/domain/errors"
	"dietplan/internal/usecase"
	"dietplan/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DietHandlerParams holds dependencies for DietHandler, injected by Fx.
type DietHandlerParams struct {
	fx.In

	PersonalUC usecase.PersonalDietUsecase
	FamilyUC   usecase.FamilyDietUsecase
	WeeklyUC   usecase.WeeklyDietUsecase
	Logger     *slog.Logger
}

// DietHandler exposes the diet generators over HTTP.
type DietHandler struct {
	personalUC usecase.PersonalDietUsecase
	familyUC   usecase.FamilyDietUsecase
	weeklyUC   usecase.WeeklyDietUsecase
	logger     *slog.Logger
	now        func() time.Time
}

// NewDietHandler is the constructor for DietHandler
func NewDietHandler(params DietHandlerParams) *DietHandler {
	return &DietHandler{
		personalUC: params.PersonalUC,
		familyUC:   params.FamilyUC,
		weeklyUC:   params.WeeklyUC,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// ProfileRequest is the health profile of one person
type ProfileRequest struct {
	Age              int      `json:"age" validate:"gte=0,lte=130"`
	Gender           string   `json:"gender"`
	HeightCm         float64  `json:"height_cm" validate:"gte=0,lte=300"`
	WeightKg         float64  `json:"weight_kg" validate:"gte=0,lte=500"`
	ActivityLevel    string   `json:"activity_level"`
	Diseases         []string `json:"diseases" validate:"dive,required"`
	Allergies        []string `json:"allergies" validate:"dive,required"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal" validate:"omitempty,gt=0"`
}

// MemberRequest is one household member
type MemberRequest struct {
	ID                   string         `json:"id" validate:"omitempty,uuid"`
	Relationship         string         `json:"relationship"`
	BirthDate            string         `json:"birth_date" validate:"date"`
	Profile              ProfileRequest `json:"profile"`
	IncludeInUnifiedDiet *bool          `json:"include_in_unified_diet"`
}

// DailyDietRequest represents the request body for a personal daily plan
type DailyDietRequest struct {
	UserID  string         `json:"user_id" validate:"omitempty,uuid"`
	Profile ProfileRequest `json:"profile"`
	Date    string         `json:"date" validate:"date"`
}

// FamilyDietRequest represents the request body for a family daily plan
type FamilyDietRequest struct {
	UserID  string          `json:"user_id" validate:"omitempty,uuid"`
	Profile ProfileRequest  `json:"profile"`
	Members []MemberRequest `json:"members" validate:"dive"`
	Date    string          `json:"date" validate:"date"`
}

// WeeklyDietRequest represents the request body for a 7-day plan
type WeeklyDietRequest struct {
	UserID          string              `json:"user_id" validate:"omitempty,uuid"`
	Profile         ProfileRequest      `json:"profile"`
	Members         []MemberRequest     `json:"members" validate:"dive"`
	WeekStart       string              `json:"week_start" validate:"date"`
	DiversityLevel  string              `json:"diversity_level" validate:"omitempty,oneof=high medium low"`
	Family          bool                `json:"family"`
	PriorCategories map[string][]string `json:"prior_categories"`
	Persist         bool                `json:"persist"`
}

// GenerateDaily handles personal daily plan generation
func (h *DietHandler) GenerateDaily(c echo.Context) error {
	var req DailyDietRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid daily diet input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	plan, err := h.personalUC.GenerateDailyDiet(c.Request().Context(), &usecase.PersonalDietInput{
		UserID:  parseOptionalUUID(req.UserID),
		Profile: req.Profile.toEntity(),
		Date:    h.dateOrToday(req.Date),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if plan == nil {
		return response.HandleAppError(c, domainerrors.ErrNoPlanGenerated)
	}

	return response.Success(c, http.StatusOK, plan)
}

// GenerateFamily handles family daily plan generation
func (h *DietHandler) GenerateFamily(c echo.Context) error {
	var req FamilyDietRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid family diet input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	plan, err := h.familyUC.GenerateFamilyDiet(c.Request().Context(), &usecase.FamilyDietInput{
		UserID:  parseOptionalUUID(req.UserID),
		Profile: req.Profile.toEntity(),
		Members: toMembers(req.Members),
		Date:    h.dateOrToday(req.Date),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if plan == nil {
		return response.HandleAppError(c, domainerrors.ErrNoPlanGenerated)
	}

	return response.Success(c, http.StatusOK, plan)
}

// GenerateWeekly handles weekly plan generation, optionally persisting the result
func (h *DietHandler) GenerateWeekly(c echo.Context) error {
	var req WeeklyDietRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weekly diet input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	userID := parseOptionalUUID(req.UserID)
	if req.Persist && userID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "user_id is required to persist a weekly diet")
	}

	var prior map[entity.DishType][]string
	if len(req.PriorCategories) > 0 {
		prior = make(map[entity.DishType][]string, len(req.PriorCategories))
		for category, titles := range req.PriorCategories {
			prior[entity.DishType(category)] = titles
		}
	}

	diet, err := h.weeklyUC.GenerateWeeklyDiet(c.Request().Context(), &usecase.WeeklyDietInput{
		UserID:          userID,
		Profile:         req.Profile.toEntity(),
		Members:         toMembers(req.Members),
		WeekStart:       h.dateOrToday(req.WeekStart),
		DiversityLevel:  entity.DiversityLevel(req.DiversityLevel),
		Family:          req.Family,
		PriorCategories: prior,
		Persist:         req.Persist,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if req.Persist {
		status = http.StatusCreated
	}

	return response.Success(c, status, diet)
}

// GetWeekly handles retrieving a stored weekly plan
func (h *DietHandler) GetWeekly(c echo.Context) error {
	userID, weekStart, err := weekParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	diet, err := h.weeklyUC.GetWeeklyDiet(c.Request().Context(), userID, weekStart)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, diet)
}

// GetShoppingListQR handles rendering the stored plan's shopping list as a PNG QR code
func (h *DietHandler) GetShoppingListQR(c echo.Context) error {
	userID, weekStart, err := weekParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.weeklyUC.GetShoppingListQR(c.Request().Context(), userID, weekStart)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

func (h *DietHandler) dateOrToday(s string) time.Time {
	if s == "" {
		return util.DateOnly(h.now().UTC())
	}
	// The validator has already accepted the format.
	date, _ := util.ParseDate(s)

	return date
}

// weekParams reads the path parameters of the stored-plan routes.
func weekParams(c echo.Context) (uuid.UUID, time.Time, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	weekStart, err := util.ParseDate(c.Param("weekStart"))
	if err != nil {
		return uuid.Nil, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("invalid week start, expected YYYY-MM-DD")
	}

	return userID, weekStart, nil
}

func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validator.Details(err))
}

func parseOptionalUUID(s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func (r ProfileRequest) toEntity() entity.HealthProfile {
	return entity.HealthProfile{
		Age:              r.Age,
		Gender:           entity.Gender(r.Gender),
		HeightCm:         r.HeightCm,
		WeightKg:         r.WeightKg,
		ActivityLevel:    entity.ActivityLevel(r.ActivityLevel),
		Diseases:         r.Diseases,
		Allergies:        r.Allergies,
		DailyCalorieGoal: r.DailyCalorieGoal,
	}
}

func toMembers(reqs []MemberRequest) []entity.FamilyMember {
	if len(reqs) == 0 {
		return nil
	}

	members := make([]entity.FamilyMember, 0, len(reqs))
	for _, r := range reqs {
		var birthDate time.Time
		if r.BirthDate != "" {
			birthDate, _ = util.ParseDate(r.BirthDate)
		}
		members = append(members, entity.FamilyMember{
			ID:                   parseOptionalUUID(r.ID),
			Relationship:         r.Relationship,
			BirthDate:            birthDate,
			Profile:              r.Profile.toEntity(),
			IncludeInUnifiedDiet: r.IncludeInUnifiedDiet,
		})
	}

	return members
}
