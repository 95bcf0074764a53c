package entity

// Catalog is the reference data the engine reads: recipes, the disease exclusion
// table and the seasonal fruit table.
type Catalog struct {
	Dishes     []*Dish
	Exclusions []ExcludedFood
	Fruits     []*SeasonalFruit
}
