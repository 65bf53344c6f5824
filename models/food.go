package models

import "strings"

// DietaryType classifies a food by dietary category.
type DietaryType string

const (
	DietVeg        DietaryType = "veg"
	DietNonVeg     DietaryType = "non-veg"
	DietEggetarian DietaryType = "eggetarian"
	// DietBoth is the neutral filter value meaning "no dietary restriction".
	DietBoth DietaryType = "both"
)

// MealTime identifies one of the four meal slots a food or combination
// can be served in.
type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealSnack     MealTime = "snack"
)

// mealTimeLabels maps presentation labels and synonyms to canonical slots.
var mealTimeLabels = map[string]MealTime{
	"breakfast":         MealBreakfast,
	"lunch":             MealLunch,
	"dinner":            MealDinner,
	"snack":             MealSnack,
	"mid-morning snack": MealSnack,
	"evening snack":     MealSnack,
	"late night snack":  MealSnack,
}

// ParseMealTime resolves a user- or client-supplied meal time label to a
// canonical MealTime. Matching is case-insensitive.
func ParseMealTime(s string) (MealTime, bool) {
	mt, ok := mealTimeLabels[strings.ToLower(strings.TrimSpace(s))]
	return mt, ok
}

// FoodItem is a single entry in the food catalog. Nutrition values are per
// serving as described by ServingSize.
type FoodItem struct {
	ID                int         `json:"id" bson:"id"`
	Name              string      `json:"name" bson:"name"`
	Calories          float64     `json:"calories" bson:"calories"`
	Protein           float64     `json:"protein" bson:"protein"`
	Carbs             float64     `json:"carbs" bson:"carbs"`
	Fat               float64     `json:"fat" bson:"fat"`
	Cuisine           string      `json:"cuisine" bson:"cuisine"`
	DietaryType       DietaryType `json:"dietary_type" bson:"dietary_type"`
	SuitableMealTimes []MealTime  `json:"suitable_meal_times" bson:"suitable_meal_times"`
	Category          string      `json:"category" bson:"category"`
	ServingSize       string      `json:"serving_size" bson:"serving_size"`
	Emoji             string      `json:"emoji,omitempty" bson:"emoji,omitempty"`
}

// SuitableFor reports whether the food is served in the given meal slot.
func (f FoodItem) SuitableFor(mt MealTime) bool {
	for _, m := range f.SuitableMealTimes {
		if m == mt {
			return true
		}
	}
	return false
}

// MatchesDiet reports whether the food passes the given dietary filter.
// A veg filter admits eggetarian items; "both" admits everything.
func (f FoodItem) MatchesDiet(filter DietaryType) bool {
	switch filter {
	case DietBoth, "":
		return true
	case DietVeg:
		return f.DietaryType == DietVeg || f.DietaryType == DietEggetarian
	default:
		return f.DietaryType == filter
	}
}

// Macro returns the named nutrient value, or 0 for an unknown name.
func (f FoodItem) Macro(name string) float64 {
	switch strings.ToLower(name) {
	case "calories":
		return f.Calories
	case "protein":
		return f.Protein
	case "carbs", "carbohydrates":
		return f.Carbs
	case "fat":
		return f.Fat
	}
	return 0
}
