package interpreter

import (
	"context"
	"testing"

	"slaycal/database/catalog"
	"slaycal/models"
	"slaycal/services/meals"
)

func newTestCoach() *DefaultCoachService {
	foods := []models.FoodItem{
		{ID: 1, Name: "Roti (Plain)", Calories: 104, Protein: 3, Carbs: 22, Fat: 0.4, Cuisine: "North Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 2, Name: "Dal Tadka", Calories: 180, Protein: 9, Carbs: 22, Fat: 6, Cuisine: "North Indian", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 3, Name: "Butter Chicken", Calories: 438, Protein: 30, Carbs: 8, Fat: 32, Cuisine: "North Indian", DietaryType: models.DietNonVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
		{ID: 4, Name: "Boiled Egg", Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5, Cuisine: "North Indian", DietaryType: models.DietEggetarian, SuitableMealTimes: []models.MealTime{models.MealBreakfast}},
		{ID: 5, Name: "Luchi", Calories: 120, Protein: 2, Carbs: 15, Fat: 6, Cuisine: "Bengali", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealBreakfast, models.MealLunch}},
		{ID: 6, Name: "Aloo Dum", Calories: 200, Protein: 4, Carbs: 30, Fat: 8, Cuisine: "Bengali", DietaryType: models.DietVeg, SuitableMealTimes: []models.MealTime{models.MealLunch, models.MealDinner}},
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
	}
	repo := catalog.NewMemoryFoodRepo(foods, nil)
	engine := meals.NewRecommendationService(repo, catalog.NewMemoryComboRepo(templates))
	return NewCoachService(NewMemoryContextStore(), repo, engine)
}

func turn(t *testing.T, svc *DefaultCoachService, session, text string) *models.ChatResponse {
	t.Helper()
	resp, err := svc.Interpret(context.Background(), session, text)
	if err != nil {
		t.Fatalf("Interpret(%q) error: %v", text, err)
	}
	return resp
}

func TestConversationSlotFilling(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "suggest a meal")
	if resp.Intent != models.IntentSuggest || resp.AwaitingSlot != models.SlotCalories {
		t.Fatalf("turn 1 = intent %q awaiting %q", resp.Intent, resp.AwaitingSlot)
	}

	resp = turn(t, svc, "s1", "500")
	if resp.AwaitingSlot != models.SlotCuisine {
		t.Fatalf("turn 2 awaiting %q, want %q", resp.AwaitingSlot, models.SlotCuisine)
	}

	resp = turn(t, svc, "s1", "Bengali")
	if resp.AwaitingSlot != models.SlotNone {
		t.Errorf("turn 3 should end the slot filling, awaiting %q", resp.AwaitingSlot)
	}
	if resp.Combination == nil || resp.Combination.Name != "Bengali Lunch" {
		t.Fatalf("turn 3 combination = %+v", resp.Combination)
	}
	if resp.CalorieGap == nil || resp.CalorieGap.Delta != 60 || resp.CalorieGap.Direction != "less" {
		t.Errorf("turn 3 gap = %+v, want 60 less", resp.CalorieGap)
	}

	// The context store is cleared once the session goes idle.
	coachCtx, err := svc.Store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if !coachCtx.Idle() {
		t.Errorf("context not cleared: %+v", coachCtx)
	}
}

func TestSlotRepromptKeepsState(t *testing.T) {
	svc := newTestCoach()

	turn(t, svc, "s1", "suggest a meal")
	resp := turn(t, svc, "s1", "no idea honestly")
	if resp.AwaitingSlot != models.SlotCalories {
		t.Errorf("reprompt should keep the slot pending, awaiting %q", resp.AwaitingSlot)
	}
}

func TestMealTimeRemembered(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "what should I eat for breakfast?")
	if resp.AwaitingSlot != models.SlotCalories {
		t.Fatalf("awaiting %q, want calories slot", resp.AwaitingSlot)
	}

	turn(t, svc, "s1", "300 calories")
	resp = turn(t, svc, "s1", "north indian")
	if resp.Combination == nil || resp.Combination.MealTime != models.MealBreakfast {
		t.Errorf("combination = %+v, want a breakfast pick", resp.Combination)
	}
}

func TestFoodInfoBeatsCalorieTarget(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "calories in roti")
	if resp.Intent != models.IntentFoodInfo {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentFoodInfo)
	}
	if len(resp.Foods) != 1 || resp.Foods[0].Name != "Roti (Plain)" {
		t.Errorf("foods = %+v", resp.Foods)
	}
}

func TestBareCalorieTargetAsksCuisine(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "400 calories")
	if resp.Intent != models.IntentCalorieTarget || resp.AwaitingSlot != models.SlotCuisine {
		t.Fatalf("intent %q awaiting %q", resp.Intent, resp.AwaitingSlot)
	}

	resp = turn(t, svc, "s1", "North Indian")
	if resp.Combination == nil || resp.Combination.Name != "Roti & Dal" {
		t.Fatalf("combination = %+v, want Roti & Dal", resp.Combination)
	}
	if resp.CalorieGap != nil {
		t.Errorf("12 kcal miss should not report a gap, got %+v", resp.CalorieGap)
	}
}

func TestCompareIntent(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "which has more calories, luchi or roti?")
	if resp.Intent != models.IntentCompare {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentCompare)
	}
	cmp := resp.Comparison
	if cmp == nil || cmp.Nutrient != "calories" {
		t.Fatalf("comparison = %+v", cmp)
	}
	if cmp.Highest != "Luchi" || cmp.Lowest != "Roti (Plain)" {
		t.Errorf("comparison = %+v", cmp)
	}
}

func TestRangeIntent(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "foods under 150 calories")
	if resp.Intent != models.IntentRange {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentRange)
	}
	if resp.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3", resp.TotalMatches)
	}
	if len(resp.Foods) == 0 || resp.Foods[0].Name != "Boiled Egg" {
		t.Errorf("foods not sorted by calories: %+v", resp.Foods)
	}
}

func TestMacroIntent(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "high protein foods")
	if resp.Intent != models.IntentMacro {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentMacro)
	}
	if len(resp.Foods) == 0 || resp.Foods[0].Name != "Butter Chicken" {
		t.Errorf("foods = %+v, want Butter Chicken first", resp.Foods)
	}
}

func TestDietaryIntent(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "vegetarian options")
	if resp.Intent != models.IntentDietary {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentDietary)
	}
	// The listing filter is exact, so the eggetarian egg stays out.
	for _, f := range resp.Foods {
		if f.DietaryType != models.DietVeg {
			t.Errorf("non-veg food in veg listing: %+v", f)
		}
	}
	if resp.TotalMatches != 4 {
		t.Errorf("TotalMatches = %d, want 4", resp.TotalMatches)
	}
}

func TestOptionsSuggestionsBand(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "what can I eat for 200 calories")
	if resp.Intent != models.IntentOptions {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentOptions)
	}
	// Band is 100 under to 50 over the target, closest first. The 78 kcal
	// egg and the 438 kcal chicken fall outside it.
	want := []string{"Aloo Dum", "Dal Tadka", "Luchi", "Roti (Plain)"}
	if resp.TotalMatches != len(want) || len(resp.Foods) != len(want) {
		t.Fatalf("got %d foods (total %d), want %d", len(resp.Foods), resp.TotalMatches, len(want))
	}
	for i, name := range want {
		if resp.Foods[i].Name != name {
			t.Errorf("foods[%d] = %q, want %q", i, resp.Foods[i].Name, name)
		}
	}
}

func TestCatalogFilterIntent(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "show bengali foods")
	if resp.Intent != models.IntentCatalogFilter {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentCatalogFilter)
	}
	if resp.TotalMatches != 2 {
		t.Errorf("TotalMatches = %d, want 2", resp.TotalMatches)
	}
	for _, f := range resp.Foods {
		if f.Cuisine != "Bengali" {
			t.Errorf("non-Bengali food in listing: %+v", f)
		}
	}

	// A dietary word without a context word skips the dietary rule and
	// lands here instead.
	resp = turn(t, svc, "s1", "list veg dishes")
	if resp.Intent != models.IntentCatalogFilter {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentCatalogFilter)
	}
	if resp.TotalMatches != 4 {
		t.Errorf("TotalMatches = %d, want 4", resp.TotalMatches)
	}
	for _, f := range resp.Foods {
		if f.DietaryType != models.DietVeg {
			t.Errorf("non-veg food in veg listing: %+v", f)
		}
	}
}

func TestFoodSearchPerWordRetry(t *testing.T) {
	svc := newTestCoach()

	resp := turn(t, svc, "s1", "zzz luchi")
	if resp.Intent != models.IntentFoodSearch {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentFoodSearch)
	}
	if len(resp.Foods) != 1 || resp.Foods[0].Name != "Luchi" {
		t.Errorf("foods = %+v, want Luchi via the per-word retry", resp.Foods)
	}
}

func TestFoodSearchSubstringFallback(t *testing.T) {
	svc := newTestCoach()

	// Nothing matches "butterx" directly; the query contains the first
	// word of "Butter Chicken" so the widened pass finds it.
	resp := turn(t, svc, "s1", "butterx")
	if resp.Intent != models.IntentFoodSearch {
		t.Fatalf("intent = %q, want %q", resp.Intent, models.IntentFoodSearch)
	}
	if len(resp.Foods) != 1 || resp.Foods[0].Name != "Butter Chicken" {
		t.Errorf("foods = %+v, want Butter Chicken", resp.Foods)
	}
}

func TestPendingCalorieAcceptsAnyNumber(t *testing.T) {
	svc := newTestCoach()

	turn(t, svc, "s1", "suggest a meal")
	resp := turn(t, svc, "s1", "give me 500")
	if resp.AwaitingSlot != models.SlotCuisine {
		t.Fatalf("awaiting %q, want %q", resp.AwaitingSlot, models.SlotCuisine)
	}

	resp = turn(t, svc, "s1", "bengali")
	if resp.Combination == nil || resp.Combination.Name != "Bengali Lunch" {
		t.Errorf("combination = %+v, want Bengali Lunch", resp.Combination)
	}
}

func TestGreetingAndUnknown(t *testing.T) {
	svc := newTestCoach()

	if resp := turn(t, svc, "s1", "hello"); resp.Intent != models.IntentGreeting {
		t.Errorf("intent = %q, want %q", resp.Intent, models.IntentGreeting)
	}
	if resp := turn(t, svc, "s1", "qwerty zzz"); resp.Intent != models.IntentUnknown {
		t.Errorf("intent = %q, want %q", resp.Intent, models.IntentUnknown)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newTestCoach()

	turn(t, svc, "a", "suggest a meal")
	resp := turn(t, svc, "b", "calories in roti")
	if resp.Intent != models.IntentFoodInfo {
		t.Errorf("session b leaked session a state: intent %q", resp.Intent)
	}
}
