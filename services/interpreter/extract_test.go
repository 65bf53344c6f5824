package interpreter

import (
	"testing"

	"slaycal/models"
)

func TestExtractCalories(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"suggest a meal for 500 calories", 500, true},
		{"400 cal", 400, true},
		{"350 kcal please", 350, true},
		{"around 450", 450, true},
		{"roughly 600 would be great", 600, true},
		{"500", 500, true},
		{"  500  ", 500, true},
		{"a meal", 0, false},
		{"9000 calories", 0, false},
		{"0 calories", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractCalories(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractCalories(%q) = %d, %v; want %d, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractPendingCalories(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"give me 500", 500, true},
		{"maybe 450?", 450, true},
		{"500", 500, true},
		{"300 calories", 300, true},
		{"no idea", 0, false},
		{"9000", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractPendingCalories(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractPendingCalories(%q) = %d, %v; want %d, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExtractCalorieRange(t *testing.T) {
	tests := []struct {
		text     string
		min, max int
		ok       bool
	}{
		{"foods between 200-300 calories", 200, 300, true},
		{"foods between 200 and 300 calories", 200, 300, true},
		{"under 250 calories", 0, 250, true},
		{"less than 180", 0, 180, true},
		{"above 400 calories", 400, rangeCeiling, true},
		{"more than 350", 350, rangeCeiling, true},
		{"no numbers here", 0, 0, false},
	}
	for _, tt := range tests {
		min, max, ok := extractCalorieRange(tt.text)
		if min != tt.min || max != tt.max || ok != tt.ok {
			t.Errorf("extractCalorieRange(%q) = %d, %d, %v; want %d, %d, %v",
				tt.text, min, max, ok, tt.min, tt.max, tt.ok)
		}
	}
}

func TestExtractCuisine(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"north indian lunch", "North Indian"},
		{"something SOUTH INDIAN", "South Indian"},
		{"kerala style meal", "Malayali"},
		{"north eastern options", "North-Eastern"},
		{"bengali dinner", "Bengali"},
		{"italian pasta", ""},
	}
	for _, tt := range tests {
		if got := extractCuisine(tt.text); got != tt.want {
			t.Errorf("extractCuisine(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractDietary(t *testing.T) {
	tests := []struct {
		text string
		want models.DietaryType
	}{
		{"non-veg options", models.DietNonVeg},
		{"non veg food", models.DietNonVeg},
		{"eggetarian meals", models.DietEggetarian},
		{"vegetarian options", models.DietVeg},
		{"veg food", models.DietVeg},
		{"anything goes", models.DietBoth},
	}
	for _, tt := range tests {
		if got := extractDietary(tt.text); got != tt.want {
			t.Errorf("extractDietary(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractMealTime(t *testing.T) {
	tests := []struct {
		text string
		want models.MealTime
		ok   bool
	}{
		{"what to eat for breakfast", models.MealBreakfast, true},
		{"morning food", models.MealBreakfast, true},
		{"lunch ideas", models.MealLunch, true},
		{"dinner for two", models.MealDinner, true},
		{"evening snack ideas", models.MealSnack, true},
		{"late night snack", models.MealSnack, true},
		{"some food", "", false},
	}
	for _, tt := range tests {
		got, ok := extractMealTime(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractMealTime(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"what biryani?", "biryani"},
		{"show paneer tikka!", "paneer tikka"},
		{"biryani", "biryani"},
	}
	for _, tt := range tests {
		if got := cleanQuery(tt.text); got != tt.want {
			t.Errorf("cleanQuery(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
