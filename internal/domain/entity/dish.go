package entity

// DishType is the structural role of a recipe within a meal.
type DishType string

const (
	DishTypeRice   DishType = "rice"
	DishTypeSide   DishType = "side"
	DishTypeSoup   DishType = "soup"
	DishTypeSnack  DishType = "snack"
	DishTypeSingle DishType = "" // Single-recipe meal with no structural role.
)

// DishCategories lists the dish types tracked for weekly diversity.
var DishCategories = []DishType{DishTypeRice, DishTypeSide, DishTypeSoup, DishTypeSnack}

// MealType is the meal a dish is suited for.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Nutrition is a nutrient record in kcal (calories), grams (macros, fiber) and mg (sodium).
type Nutrition struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the field-wise sum of two records.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Carbs:    n.Carbs + o.Carbs,
		Protein:  n.Protein + o.Protein,
		Fat:      n.Fat + o.Fat,
		Sodium:   n.Sodium + o.Sodium,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Scale multiplies every field by factor.
func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * factor,
		Carbs:    n.Carbs * factor,
		Protein:  n.Protein * factor,
		Fat:      n.Fat * factor,
		Sodium:   n.Sodium * factor,
		Fiber:    n.Fiber * factor,
	}
}

// IsZero reports whether every field is zero.
func (n Nutrition) IsZero() bool {
	return n == Nutrition{}
}

// MacroMass is the total grams of carbohydrate, protein and fat.
func (n Nutrition) MacroMass() float64 {
	return n.Carbs + n.Protein + n.Fat
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Dish is a read-only catalog entry. The engine never mutates dishes.
type Dish struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	DishType        DishType     `json:"dish_type"`
	MealType        MealType     `json:"meal_type"`
	Variety         string       `json:"variety,omitempty"` // Staple variety such as "brown"; empty for non-staples.
	Nutrition       Nutrition    `json:"nutrition"`
	Ingredients     []Ingredient `json:"ingredients"`
	AllergyTags     []string     `json:"allergy_tags"`
	DiseaseKeywords []string     `json:"disease_keywords"`
}

// ExcludedFood is one row of the disease exclusion table.
type ExcludedFood struct {
	DiseaseCode string `json:"disease_code"`
	FoodName    string `json:"food_name"`
	Severity    string `json:"severity"`
}
