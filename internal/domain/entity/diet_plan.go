package entity

import "time"

// UserPlanKey is the reserved FamilyDietPlan key for the primary user's own plan.
const UserPlanKey = "user"

// CalorieAllocation is a daily calorie target split into per-meal budgets.
type CalorieAllocation struct {
	Daily     float64 `json:"daily"`
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Snack     float64 `json:"snack"`
	Growth    bool    `json:"growth"` // Growth-phase ratios were applied.
}

// ForMeal returns the budget of the given meal type.
func (a CalorieAllocation) ForMeal(meal MealType) float64 {
	switch meal {
	case MealTypeBreakfast:
		return a.Breakfast
	case MealTypeLunch:
		return a.Lunch
	case MealTypeDinner:
		return a.Dinner
	case MealTypeSnack:
		return a.Snack
	default:
		return 0
	}
}

// MealComposition is one meal: a staple, side dishes and a soup, a single dish,
// or a fruit serving for the snack slot. Absent constituents contribute nothing.
type MealComposition struct {
	MealType       MealType      `json:"meal_type"`
	Rice           *Dish         `json:"rice,omitempty"`
	Sides          []*Dish       `json:"sides,omitempty"`
	Soup           *Dish         `json:"soup,omitempty"`
	Single         *Dish         `json:"single,omitempty"`
	Fruit          *FruitServing `json:"fruit,omitempty"`
	TotalNutrition Nutrition     `json:"total_nutrition"`
}

// Dishes returns the catalog dishes of the meal in rice, sides, soup, single order.
func (m *MealComposition) Dishes() []*Dish {
	if m == nil {
		return nil
	}

	dishes := make([]*Dish, 0, len(m.Sides)+3)
	if m.Rice != nil {
		dishes = append(dishes, m.Rice)
	}
	for _, side := range m.Sides {
		if side != nil {
			dishes = append(dishes, side)
		}
	}
	if m.Soup != nil {
		dishes = append(dishes, m.Soup)
	}
	if m.Single != nil {
		dishes = append(dishes, m.Single)
	}

	return dishes
}

// Titles returns the dish titles of the meal followed by its fruit name, if any.
func (m *MealComposition) Titles() []string {
	var titles []string
	for _, dish := range m.Dishes() {
		titles = append(titles, dish.Title)
	}
	if m != nil && m.Fruit != nil {
		titles = append(titles, m.Fruit.Fruit.Name)
	}

	return titles
}

// IsEmpty reports whether the meal has no constituent at all.
func (m *MealComposition) IsEmpty() bool {
	return m == nil || (len(m.Dishes()) == 0 && m.Fruit == nil)
}

// Recalculate sets TotalNutrition to the sum of the present constituents.
func (m *MealComposition) Recalculate() {
	if m == nil {
		return
	}

	var total Nutrition
	for _, dish := range m.Dishes() {
		total = total.Add(dish.Nutrition)
	}
	if m.Fruit != nil {
		total = total.Add(m.Fruit.Nutrition)
	}
	m.TotalNutrition = total
}

// DailyDietPlan is one person's (or the family's shared) four meals for a date.
type DailyDietPlan struct {
	Date           time.Time        `json:"date"`
	Breakfast      *MealComposition `json:"breakfast,omitempty"`
	Lunch          *MealComposition `json:"lunch,omitempty"`
	Dinner         *MealComposition `json:"dinner,omitempty"`
	Snack          *MealComposition `json:"snack,omitempty"`
	TotalNutrition Nutrition        `json:"total_nutrition"`
}

// Meals returns the present, non-empty meal slots in breakfast, lunch, dinner, snack order.
func (p *DailyDietPlan) Meals() []*MealComposition {
	if p == nil {
		return nil
	}

	meals := make([]*MealComposition, 0, 4)
	for _, meal := range []*MealComposition{p.Breakfast, p.Lunch, p.Dinner, p.Snack} {
		if !meal.IsEmpty() {
			meals = append(meals, meal)
		}
	}

	return meals
}

// MealCount is the number of non-empty meal slots.
func (p *DailyDietPlan) MealCount() int {
	return len(p.Meals())
}

// Recalculate sets TotalNutrition to the sum of the present meal slots.
func (p *DailyDietPlan) Recalculate() {
	if p == nil {
		return
	}

	var total Nutrition
	for _, meal := range p.Meals() {
		meal.Recalculate()
		total = total.Add(meal.TotalNutrition)
	}
	p.TotalNutrition = total
}

// Dishes returns every catalog dish used by the plan.
func (p *DailyDietPlan) Dishes() []*Dish {
	var dishes []*Dish
	for _, meal := range p.Meals() {
		dishes = append(dishes, meal.Dishes()...)
	}

	return dishes
}

// Fruits returns every fruit serving used by the plan.
func (p *DailyDietPlan) Fruits() []*FruitServing {
	var fruits []*FruitServing
	for _, meal := range p.Meals() {
		if meal.Fruit != nil {
			fruits = append(fruits, meal.Fruit)
		}
	}

	return fruits
}

// Titles returns the dish titles and fruit names used by the plan.
func (p *DailyDietPlan) Titles() []string {
	var titles []string
	for _, dish := range p.Dishes() {
		titles = append(titles, dish.Title)
	}
	for _, fruit := range p.Fruits() {
		titles = append(titles, fruit.Fruit.Name)
	}

	return titles
}

// FamilyDietPlan holds every member's own plan for a date and the optional shared plan.
type FamilyDietPlan struct {
	Date        time.Time                 `json:"date"`
	Plans       map[string]*DailyDietPlan `json:"plans"` // Keyed by member ID; UserPlanKey for the primary user.
	UnifiedPlan *DailyDietPlan            `json:"unified_plan,omitempty"`
}

// AllPlans returns the unified plan followed by every individual plan that exists.
func (f *FamilyDietPlan) AllPlans() []*DailyDietPlan {
	if f == nil {
		return nil
	}

	plans := make([]*DailyDietPlan, 0, len(f.Plans)+1)
	if f.UnifiedPlan != nil {
		plans = append(plans, f.UnifiedPlan)
	}
	for _, plan := range f.Plans {
		if plan != nil {
			plans = append(plans, plan)
		}
	}

	return plans
}

// IsEmpty reports whether neither the unified nor any individual plan exists.
func (f *FamilyDietPlan) IsEmpty() bool {
	return len(f.AllPlans()) == 0
}
