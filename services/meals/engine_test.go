package meals

import (
	"reflect"
	"testing"

	"slaycal/database/catalog"
	"slaycal/models"
)

func newTestEngine() *DefaultRecommendationService {
	foods := []models.FoodItem{
		{ID: 1, Name: "Roti (Plain)", Calories: 104, Protein: 3, Carbs: 22, Fat: 0.4, Cuisine: "North Indian", DietaryType: models.DietVeg},
		{ID: 2, Name: "Dal Tadka", Calories: 180, Protein: 9, Carbs: 22, Fat: 6, Cuisine: "North Indian", DietaryType: models.DietVeg},
		{ID: 3, Name: "Butter Chicken", Calories: 438, Protein: 30, Carbs: 8, Fat: 32, Cuisine: "North Indian", DietaryType: models.DietNonVeg},
		{ID: 4, Name: "Boiled Egg", Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5, Cuisine: "North Indian", DietaryType: models.DietEggetarian},
		{ID: 5, Name: "Luchi", Calories: 120, Protein: 2, Carbs: 15, Fat: 6, Cuisine: "Bengali", DietaryType: models.DietVeg},
		{ID: 6, Name: "Aloo Dum", Calories: 200, Protein: 4, Carbs: 30, Fat: 8, Cuisine: "Bengali", DietaryType: models.DietVeg},
	}
	templates := []models.ComboTemplate{
		{Name: "Roti & Dal", Cuisine: "North Indian", MealTime: models.MealLunch, TotalCalories: 388,
			Items: []models.ComboItemRef{{Food: "Roti (2)"}, {Food: "Dal Tadka"}}},
		{Name: "Chicken Lunch", Cuisine: "North Indian", MealTime: models.MealLunch, TotalCalories: 542,
			Items: []models.ComboItemRef{{Food: "Roti (1)"}, {Food: "Butter Chicken"}}},
		{Name: "Egg Boost", Cuisine: "North Indian", MealTime: models.MealBreakfast, TotalCalories: 260,
			Items: []models.ComboItemRef{{Food: "Boiled Egg (2)"}, {Food: "Roti (1)"}}},
		{Name: "Bengali Lunch", Cuisine: "Bengali", MealTime: models.MealLunch, TotalCalories: 440,
			Items: []models.ComboItemRef{{Food: "Luchi (2)"}, {Food: "Aloo Dum"}}},
		{Name: "Ghost Combo", Cuisine: "Bengali", MealTime: models.MealDinner, TotalCalories: 300,
			Items: []models.ComboItemRef{{Food: "Quinoa Bowl"}}},
	}
	return NewRecommendationService(
		catalog.NewMemoryFoodRepo(foods, nil),
		catalog.NewMemoryComboRepo(templates),
	)
}

func TestParsePortion(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"Roti (2)", 2},
		{"Rice (1.5)", 1.5},
		{"Paratha 1/2", 0.5},
		{"Rice 3/4 plate", 0.75},
		{"Dal Tadka", 1},
	}
	for _, tt := range tests {
		if got := parsePortion(tt.name); got != tt.want {
			t.Errorf("parsePortion(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCombinationsResolvesItems(t *testing.T) {
	svc := newTestEngine()

	combos := svc.Combinations("North Indian", models.MealLunch, models.DietBoth)
	if len(combos) != 2 {
		t.Fatalf("got %d combos, want 2", len(combos))
	}

	first := combos[0]
	if first.Name != "Roti & Dal" {
		t.Fatalf("first combo = %q, want Roti & Dal", first.Name)
	}
	if len(first.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(first.Items))
	}
	// Roti (2) derives 2 servings at 104 kcal each.
	if first.Items[0].Portion != 2 || first.Items[0].Calories != 208 {
		t.Errorf("portion item = %+v", first.Items[0])
	}
	if first.ItemCalorieSum != 388 {
		t.Errorf("ItemCalorieSum = %v, want 388", first.ItemCalorieSum)
	}
	// The authored total is kept even when items change.
	if first.TotalCalories != 388 {
		t.Errorf("TotalCalories = %v, want 388", first.TotalCalories)
	}
	// Macros are recomputed from resolved items: 3*2 + 9 = 15.
	if first.TotalProtein != 15 {
		t.Errorf("TotalProtein = %v, want 15", first.TotalProtein)
	}
}

func TestCombinationsDietaryFilter(t *testing.T) {
	svc := newTestEngine()

	// A veg filter drops the chicken but keeps the combo alive with the
	// surviving items.
	combos := svc.Combinations("North Indian", models.MealLunch, models.DietVeg)
	if len(combos) != 2 {
		t.Fatalf("got %d combos, want 2", len(combos))
	}
	chicken := combos[1]
	if chicken.Name != "Chicken Lunch" || len(chicken.Items) != 1 {
		t.Errorf("Chicken Lunch under veg filter = %+v", chicken.Items)
	}

	// Veg admits eggetarian items.
	breakfast := svc.Combinations("North Indian", models.MealBreakfast, models.DietVeg)
	if len(breakfast) != 1 || len(breakfast[0].Items) != 2 {
		t.Errorf("veg filter should keep eggetarian items: %+v", breakfast)
	}
}

func TestCombinationsDropsEmpty(t *testing.T) {
	svc := newTestEngine()
	// Ghost Combo's only item never resolves, so the combo vanishes.
	if combos := svc.Combinations("Bengali", models.MealDinner, models.DietBoth); len(combos) != 0 {
		t.Errorf("got %d combos, want 0", len(combos))
	}
}

func TestCombinationsEmptyIsNotNil(t *testing.T) {
	svc := newTestEngine()
	// An empty result must still be a list so it serializes as [].
	if combos := svc.Combinations("Kashmiri", models.MealLunch, models.DietBoth); combos == nil {
		t.Error("no-match result is nil, want empty slice")
	}
}

func TestRecommendClosestMatch(t *testing.T) {
	svc := newTestEngine()

	combo, gap, ok := svc.Recommend(400, "North Indian", models.MealLunch)
	if !ok {
		t.Fatal("expected a recommendation")
	}
	if combo.Name != "Roti & Dal" {
		t.Errorf("picked %q, want Roti & Dal", combo.Name)
	}
	if gap != nil {
		t.Errorf("12 kcal miss should not report a gap, got %+v", gap)
	}
}

func TestRecommendGap(t *testing.T) {
	svc := newTestEngine()

	combo, gap, ok := svc.Recommend(300, "North Indian", models.MealLunch)
	if !ok || combo.Name != "Roti & Dal" {
		t.Fatalf("pick = %+v ok=%v", combo, ok)
	}
	if gap == nil {
		t.Fatal("88 kcal miss should report a gap")
	}
	if gap.Delta != 88 || gap.Direction != "more" {
		t.Errorf("gap = %+v, want 88 more", gap)
	}

	_, gap, _ = svc.Recommend(700, "North Indian", models.MealLunch)
	if gap == nil || gap.Direction != "less" {
		t.Errorf("gap below target = %+v, want direction less", gap)
	}
}

func TestRecommendTieFirstAuthored(t *testing.T) {
	svc := newTestEngine()

	// 465 is equidistant from 388 and 542; the earlier authored combo wins.
	combo, _, ok := svc.Recommend(465, "North Indian", models.MealLunch)
	if !ok || combo.Name != "Roti & Dal" {
		t.Errorf("tie pick = %+v, want Roti & Dal", combo)
	}
}

func TestRecommendFallbackCuisine(t *testing.T) {
	svc := newTestEngine()

	// Bengali has no breakfast combos, so the fallback cuisine serves.
	combo, _, ok := svc.Recommend(300, "Bengali", models.MealBreakfast)
	if !ok {
		t.Fatal("expected fallback recommendation")
	}
	if combo.Cuisine != FallbackCuisine || combo.Name != "Egg Boost" {
		t.Errorf("fallback pick = %+v", combo)
	}

	// The fallback cuisine itself does not retry.
	if _, _, ok := svc.Recommend(300, FallbackCuisine, models.MealSnack); ok {
		t.Error("expected no recommendation for an empty fallback slot")
	}
}

func TestRecommendDeterministic(t *testing.T) {
	svc := newTestEngine()

	a, gapA, _ := svc.Recommend(450, "North Indian", models.MealLunch)
	b, gapB, _ := svc.Recommend(450, "North Indian", models.MealLunch)
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(gapA, gapB) {
		t.Error("identical inputs should produce identical recommendations")
	}
}
