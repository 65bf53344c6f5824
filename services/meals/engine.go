// Package meals resolves authored combination templates against the food
// catalog and picks combinations for calorie targets and day plans.
package meals

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"slaycal/database/catalog"
	"slaycal/models"
	"slaycal/utils"

	"go.uber.org/zap"
)

const (
	// FallbackCuisine is served when a requested cuisine has no
	// combinations for the meal slot.
	FallbackCuisine = "North Indian"
	// CalorieTolerance is the largest target miss, in calories, that is
	// reported without a gap note.
	CalorieTolerance = 50
)

// RecommendationService selects meal combinations.
type RecommendationService interface {
	Combinations(cuisine string, mealTime models.MealTime, diet models.DietaryType) []models.MealCombination
	Recommend(target int, cuisine string, mealTime models.MealTime) (*models.MealCombination, *models.CalorieGap, bool)
	Plan(target int, cuisines []string, diet models.DietaryType, mealTimes []string) map[models.MealTime][]models.MealCombination
}

// DefaultRecommendationService resolves templates against the catalog.
type DefaultRecommendationService struct {
	Foods  catalog.FoodRepository
	Combos catalog.ComboRepository
}

// NewRecommendationService returns the catalog-backed engine.
func NewRecommendationService(foods catalog.FoodRepository, combos catalog.ComboRepository) *DefaultRecommendationService {
	return &DefaultRecommendationService{Foods: foods, Combos: combos}
}

var portionRe = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)

// parsePortion reads a portion count embedded in an item display name,
// e.g. "Chapati (2)".
func parsePortion(name string) float64 {
	if m := portionRe.FindStringSubmatch(name); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	switch {
	case strings.Contains(name, "1/2"):
		return 0.5
	case strings.Contains(name, "2/3"):
		return 0.67
	case strings.Contains(name, "3/4"):
		return 0.75
	case strings.Contains(name, "1.5"):
		return 1.5
	}
	return 1
}

// resolve turns a template into a MealCombination by looking up each item
// in the catalog. Items that fail to resolve or fail the dietary filter are
// dropped; macros are recomputed from the resolved items while the authored
// TotalCalories is kept.
func (s *DefaultRecommendationService) resolve(t models.ComboTemplate, diet models.DietaryType) models.MealCombination {
	var (
		items   []models.MealItem
		protein float64
		carbs   float64
		fat     float64
		itemSum float64
	)
	for _, ref := range t.Items {
		food, ok := s.Foods.Resolve(ref.Food, t.Cuisine)
		if !ok {
			utils.GetLogger().Warn("combination item not in catalog",
				zap.String("item", ref.Food), zap.String("cuisine", t.Cuisine))
			continue
		}
		if !food.MatchesDiet(diet) {
			continue
		}
		portion := ref.Portion
		if portion == 0 {
			portion = parsePortion(ref.Food)
		}
		calories := ref.Calories
		if calories == 0 {
			calories = food.Calories * portion
		}
		items = append(items, models.MealItem{Food: food, Portion: portion, Calories: calories})
		protein += food.Protein * portion
		carbs += food.Carbs * portion
		fat += food.Fat * portion
		itemSum += calories
	}
	return models.MealCombination{
		Name:           t.Name,
		Cuisine:        t.Cuisine,
		MealTime:       t.MealTime,
		Items:          items,
		TotalCalories:  t.TotalCalories,
		TotalProtein:   math.Round(protein),
		TotalCarbs:     math.Round(carbs),
		TotalFat:       math.Round(fat),
		ItemCalorieSum: itemSum,
	}
}

// Combinations resolves every template for a cuisine and meal slot under
// the given dietary filter. Combinations with no surviving items are
// dropped. The result is never nil so an empty slot serializes as [].
func (s *DefaultRecommendationService) Combinations(cuisine string, mealTime models.MealTime, diet models.DietaryType) []models.MealCombination {
	out := []models.MealCombination{}
	for _, t := range s.Combos.Templates(cuisine, mealTime) {
		combo := s.resolve(t, diet)
		if len(combo.Items) > 0 {
			out = append(out, combo)
		}
	}
	return out
}

// Recommend picks the combination whose authored calorie total is closest
// to target, earliest authored winning ties. When the requested cuisine has
// nothing for the slot the fallback cuisine is used. A gap note is attached
// when the pick misses the target by more than the tolerance.
func (s *DefaultRecommendationService) Recommend(target int, cuisine string, mealTime models.MealTime) (*models.MealCombination, *models.CalorieGap, bool) {
	combos := s.Combinations(cuisine, mealTime, models.DietBoth)
	if len(combos) == 0 && cuisine != FallbackCuisine {
		combos = s.Combinations(FallbackCuisine, mealTime, models.DietBoth)
	}
	if len(combos) == 0 {
		return nil, nil, false
	}

	best := 0
	bestDiff := math.Abs(combos[0].TotalCalories - float64(target))
	for i := 1; i < len(combos); i++ {
		diff := math.Abs(combos[i].TotalCalories - float64(target))
		if diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	pick := combos[best]

	var gap *models.CalorieGap
	if bestDiff > CalorieTolerance {
		direction := "less"
		if pick.TotalCalories > float64(target) {
			direction = "more"
		}
		gap = &models.CalorieGap{Delta: int(math.Round(bestDiff)), Direction: direction}
	}
	return &pick, gap, true
}
