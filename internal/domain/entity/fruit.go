package entity

// SeasonalFruit is a fruit catalog entry used for snack recommendations.
type SeasonalFruit struct {
	Name          string    `json:"name"`
	Months        []int     `json:"months"`        // Calendar months (1-12) the fruit is in season.
	ServingSize   float64   `json:"serving_size"`  // Quantity of one serving, in Unit.
	Unit          string    `json:"unit"`
	PerServing    Nutrition `json:"per_serving"`
	ChildFriendly bool      `json:"child_friendly"`
	AllergyTags   []string  `json:"allergy_tags"`
}

// InSeason reports whether the fruit is in season during month.
func (f SeasonalFruit) InSeason(month int) bool {
	for _, m := range f.Months {
		if m == month {
			return true
		}
	}

	return false
}

// FruitServing is a recommended fruit with its serving count and scaled nutrition.
type FruitServing struct {
	Fruit     SeasonalFruit `json:"fruit"`
	Servings  int           `json:"servings"`
	Nutrition Nutrition     `json:"nutrition"`
}
