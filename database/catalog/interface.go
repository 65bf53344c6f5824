// Package catalog provides read access to the food table and the authored
// meal combination templates.
package catalog

import "slaycal/models"

// FoodFilter narrows a catalog listing. Zero values mean "no constraint".
// DietaryType here is an exact filter; the looser veg-admits-eggetarian
// rule applies only when combinations are resolved.
type FoodFilter struct {
	Cuisine     string
	MealTime    models.MealTime
	DietaryType models.DietaryType
	MinCalories float64
	MaxCalories float64
}

// FoodRepository is the read interface over the food table.
type FoodRepository interface {
	// All returns every food in catalog order.
	All() []models.FoodItem
	// Search matches query against food names and cuisines,
	// case-insensitive containment.
	Search(query string) []models.FoodItem
	// Filter returns foods passing every set field of f, in catalog order.
	Filter(f FoodFilter) []models.FoodItem
	// TopByMacro returns up to limit foods ordered by the named nutrient.
	TopByMacro(macro string, descending bool, limit int) []models.FoodItem
	// Resolve finds the catalog entry for a display name, preferring the
	// given cuisine. Reports false when nothing matches.
	Resolve(name, cuisine string) (models.FoodItem, bool)
}

// ComboRepository is the read interface over combination templates.
type ComboRepository interface {
	// Templates returns the authored combinations for a cuisine and meal
	// slot, in authored order.
	Templates(cuisine string, mealTime models.MealTime) []models.ComboTemplate
	// Cuisines lists cuisines that have at least one template, in
	// first-appearance order.
	Cuisines() []string
}
