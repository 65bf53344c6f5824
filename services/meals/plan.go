package meals

import "slaycal/models"

const (
	planMealTarget         = 5
	planAttemptsPerCuisine = 10
)

// Plan builds a day plan: for each requested meal slot it cycles through
// the given cuisines round-robin, taking the first combination from each
// cuisine that is not already in the slot. A cuisine with nothing for the
// slot still consumes the attempt. The dietary filter falls back to no
// restriction per cuisine when it would empty that cuisine entirely.
//
// The calorie target is accepted for API symmetry with Recommend; slot
// contents are authored around standard meal sizes and are not re-filtered
// by target.
func (s *DefaultRecommendationService) Plan(target int, cuisines []string, diet models.DietaryType, mealTimes []string) map[models.MealTime][]models.MealCombination {
	plan := make(map[models.MealTime][]models.MealCombination)

	for _, label := range mealTimes {
		mt, ok := models.ParseMealTime(label)
		if !ok {
			continue
		}

		selected := []models.MealCombination{}
		if len(cuisines) > 0 {
			used := make(map[string]bool)
			attempts := 0
			maxAttempts := len(cuisines) * planAttemptsPerCuisine
			for i := 0; len(selected) < planMealTarget && attempts < maxAttempts; i++ {
				cuisine := cuisines[i%len(cuisines)]
				combos := s.Combinations(cuisine, mt, diet)
				if len(combos) == 0 && diet != models.DietBoth && diet != "" {
					combos = s.Combinations(cuisine, mt, models.DietBoth)
				}
				if len(combos) > 0 {
					pick := combos[0]
					for _, c := range combos {
						if !used[c.Name] {
							pick = c
							break
						}
					}
					used[pick.Name] = true
					selected = append(selected, pick)
				}
				attempts++
			}
		}
		if len(selected) > planMealTarget {
			selected = selected[:planMealTarget]
		}
		plan[mt] = selected
	}

	return plan
}
