package meals

import (
	"testing"

	"slaycal/models"
)

func planNames(combos []models.MealCombination) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.Name
	}
	return out
}

func TestPlanAlternatesCuisines(t *testing.T) {
	svc := newTestEngine()

	plan := svc.Plan(500, []string{"North Indian", "Bengali"}, models.DietBoth, []string{"Lunch"})
	lunch := plan[models.MealLunch]
	if len(lunch) != 5 {
		t.Fatalf("got %d lunch combos, want 5", len(lunch))
	}

	want := []string{"Roti & Dal", "Bengali Lunch", "Chicken Lunch", "Bengali Lunch", "Roti & Dal"}
	got := planNames(lunch)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lunch plan = %v, want %v", got, want)
		}
	}
}

func TestPlanDietFallback(t *testing.T) {
	svc := newTestEngine()

	// Bengali lunch has nothing non-veg; the slot falls back to the
	// unrestricted list rather than going empty.
	plan := svc.Plan(500, []string{"Bengali"}, models.DietNonVeg, []string{"Lunch"})
	lunch := plan[models.MealLunch]
	if len(lunch) == 0 {
		t.Fatal("expected fallback combos for an empty dietary slot")
	}
	for _, c := range lunch {
		if c.Name != "Bengali Lunch" {
			t.Errorf("unexpected combo %q", c.Name)
		}
	}
}

func TestPlanEmptySlot(t *testing.T) {
	svc := newTestEngine()

	// Bengali dinner only has an unresolvable combo, so the slot stays
	// empty after the attempt budget runs out.
	plan := svc.Plan(500, []string{"Bengali"}, models.DietBoth, []string{"Dinner"})
	dinner, ok := plan[models.MealDinner]
	if !ok {
		t.Fatal("dinner slot missing from plan")
	}
	if len(dinner) != 0 {
		t.Errorf("got %d dinner combos, want 0", len(dinner))
	}
	if dinner == nil {
		t.Error("empty slot should be an empty list, not nil")
	}
}

func TestPlanLabelMapping(t *testing.T) {
	svc := newTestEngine()

	plan := svc.Plan(500, []string{"North Indian"}, models.DietBoth, []string{"Evening Snack", "brunch", "Breakfast"})
	if _, ok := plan[models.MealSnack]; !ok {
		t.Error("snack label variant not mapped")
	}
	if got := planNames(plan[models.MealBreakfast]); len(got) == 0 || got[0] != "Egg Boost" {
		t.Errorf("breakfast slot = %v", got)
	}
	if len(plan) != 2 {
		t.Errorf("unknown labels should be skipped, plan has %d slots", len(plan))
	}
}
