package catalog

import (
	"testing"

	"slaycal/models"
)

func testFoods() []models.FoodItem {
	return []models.FoodItem{
		{ID: 1, Name: "Roti (Plain)", Calories: 104, Protein: 3.1, Carbs: 22, Fat: 0.4, Cuisine: "North Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 2, Name: "Butter Chicken", Calories: 438, Protein: 30, Carbs: 8, Fat: 32, Cuisine: "North Indian", DietaryType: models.DietNonVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 3, Name: "Masala Dosa", Calories: 387, Protein: 7, Carbs: 58, Fat: 13, Cuisine: "South Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealBreakfast}},
		{ID: 4, Name: "Egg Curry", Calories: 220, Protein: 13, Carbs: 8, Fat: 15, Cuisine: "South Indian", DietaryType: models.DietEggetarian, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 5, Name: "Steamed Rice", Calories: 205, Protein: 4.3, Carbs: 45, Fat: 0.4, Cuisine: "South Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 6, Name: "Palak Paneer", Calories: 280, Protein: 13, Carbs: 10, Fat: 20, Cuisine: "North Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
	}
}

func ids(foods []models.FoodItem) []int {
	out := make([]int, len(foods))
	for i, f := range foods {
		out[i] = f.ID
	}
	return out
}

func equalIDs(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	repo := NewMemoryFoodRepo(testFoods(), nil)

	tests := []struct {
		query string
		want  []int
	}{
		{"roti", []int{1}},
		{"ROTI", []int{1}},
		{"south indian", []int{3, 4, 5}},
		{"paneer", []int{6}},
		{"quinoa", nil},
	}
	for _, tt := range tests {
		got := repo.Search(tt.query)
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, ids(got), tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	repo := NewMemoryFoodRepo(testFoods(), nil)

	tests := []struct {
		name   string
		filter FoodFilter
		want   []int
	}{
		{"cuisine only", FoodFilter{Cuisine: "South Indian"}, []int{3, 4, 5}},
		// The dietary filter is exact: veg does not admit eggetarian here.
		{"exact dietary", FoodFilter{Cuisine: "South Indian", DietaryType: models.DietVeg}, []int{3, 5}},
		{"meal time", FoodFilter{Cuisine: "South Indian", MealTime: models.MealBreakfast}, []int{3}},
		{"calorie band", FoodFilter{MinCalories: 200, MaxCalories: 300}, []int{4, 5, 6}},
		{"max only", FoodFilter{MaxCalories: 110}, []int{1}},
		{"no constraints", FoodFilter{}, []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		got := repo.Filter(tt.filter)
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("%s: Filter = %v, want %v", tt.name, ids(got), tt.want)
		}
	}
}

func TestTopByMacro(t *testing.T) {
	repo := NewMemoryFoodRepo(testFoods(), nil)

	top := repo.TopByMacro("protein", true, 2)
	if !equalIDs(ids(top), []int{2, 4}) {
		t.Fatalf("TopByMacro(protein desc) = %v, want [2 4]", ids(top))
	}

	// Egg Curry and Palak Paneer tie on protein; the stable sort keeps
	// catalog order.
	if top[1].ID != 4 {
		t.Errorf("tie broke catalog order: got ID %d", top[1].ID)
	}

	low := repo.TopByMacro("fat", false, 2)
	if !equalIDs(ids(low), []int{1, 5}) {
		t.Errorf("TopByMacro(fat asc) = %v, want [1 5]", ids(low))
	}
}

func TestResolve(t *testing.T) {
	aliases := map[string][]string{
		"paneer sabzi": {"Palak Paneer"},
	}
	repo := NewMemoryFoodRepo(testFoods(), aliases)

	tests := []struct {
		name    string
		cuisine string
		wantID  int
		wantOK  bool
	}{
		// Portion markers and digits are stripped before matching.
		{"Roti (2)", "North Indian", 1, true},
		{"Roti (Plain)", "North Indian", 1, true},
		// Cuisine-scoped pass wins before the global pass.
		{"Steamed Rice", "South Indian", 5, true},
		// Cuisine miss falls through to the global pass.
		{"Masala Dosa", "Bengali", 3, true},
		// Alias table is the last resort.
		{"Paneer Sabzi", "North Indian", 6, true},
		{"Quinoa Bowl", "North Indian", 0, false},
	}
	for _, tt := range tests {
		got, ok := repo.Resolve(tt.name, tt.cuisine)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q, %q) ok = %v, want %v", tt.name, tt.cuisine, ok, tt.wantOK)
			continue
		}
		if ok && got.ID != tt.wantID {
			t.Errorf("Resolve(%q, %q) = %d, want %d", tt.name, tt.cuisine, got.ID, tt.wantID)
		}
	}
}

func TestComboRepo(t *testing.T) {
	templates := []models.ComboTemplate{
		{Name: "A", Cuisine: "North Indian", MealTime: models.MealLunch},
		{Name: "B", Cuisine: "Bengali", MealTime: models.MealLunch},
		{Name: "C", Cuisine: "North Indian", MealTime: models.MealLunch},
		{Name: "D", Cuisine: "North Indian", MealTime: models.MealDinner},
	}
	repo := NewMemoryComboRepo(templates)

	lunch := repo.Templates("North Indian", models.MealLunch)
	if len(lunch) != 2 || lunch[0].Name != "A" || lunch[1].Name != "C" {
		t.Errorf("Templates(North Indian, lunch) = %v", lunch)
	}
	if got := repo.Templates("Bengali", models.MealDinner); len(got) != 0 {
		t.Errorf("expected no Bengali dinner templates, got %v", got)
	}

	cuisines := repo.Cuisines()
	if len(cuisines) != 2 || cuisines[0] != "North Indian" || cuisines[1] != "Bengali" {
		t.Errorf("Cuisines() = %v, want first-appearance order", cuisines)
	}
}
