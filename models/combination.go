package models

// ComboItemRef is one line of a combination template. Food is a display
// name resolved against the catalog at lookup time. Portion and Calories
// are optional overrides; zero means "derive from the catalog entry".
type ComboItemRef struct {
	Food     string  `json:"food"`
	Portion  float64 `json:"portion,omitempty"`
	Calories float64 `json:"calories,omitempty"`
}

// ComboTemplate is an authored meal combination for one cuisine and meal
// slot. TotalCalories is the authored figure and stays authoritative for
// selection and display even when resolved items sum differently.
type ComboTemplate struct {
	Name          string         `json:"name"`
	Cuisine       string         `json:"cuisine"`
	MealTime      MealTime       `json:"meal_time"`
	Items         []ComboItemRef `json:"items"`
	TotalCalories float64        `json:"total_calories"`
	Protein       float64        `json:"protein"`
	Carbs         float64        `json:"carbs"`
	Fat           float64        `json:"fat"`
}

// MealItem is a catalog food with the portion it appears at inside a
// resolved combination.
type MealItem struct {
	Food     FoodItem `json:"food"`
	Portion  float64  `json:"portion"`
	Calories float64  `json:"calories"`
}

// MealCombination is a template resolved against the food catalog.
// TotalCalories carries the authored figure; ItemCalorieSum is the sum of
// the resolved items, which can drift when an item fails to resolve.
type MealCombination struct {
	Name           string     `json:"name"`
	Cuisine        string     `json:"cuisine"`
	MealTime       MealTime   `json:"meal_time"`
	Items          []MealItem `json:"items"`
	TotalCalories  float64    `json:"total_calories"`
	TotalProtein   float64    `json:"total_protein"`
	TotalCarbs     float64    `json:"total_carbs"`
	TotalFat       float64    `json:"total_fat"`
	ItemCalorieSum float64    `json:"item_calorie_sum"`
}
