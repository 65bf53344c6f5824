package catalog

import (
	"regexp"
	"sort"
	"strings"

	"slaycal/models"
)

// MemoryFoodRepo serves the food table from memory. The backing slice is
// never mutated after construction, so the repo is safe for concurrent use.
type MemoryFoodRepo struct {
	foods   []models.FoodItem
	aliases map[string][]string
}

// NewMemoryFoodRepo wraps a food table and a name alias table.
func NewMemoryFoodRepo(foods []models.FoodItem, aliases map[string][]string) *MemoryFoodRepo {
	return &MemoryFoodRepo{foods: foods, aliases: aliases}
}

func (r *MemoryFoodRepo) All() []models.FoodItem {
	return r.foods
}

func (r *MemoryFoodRepo) Search(query string) []models.FoodItem {
	q := strings.ToLower(query)
	var out []models.FoodItem
	for _, food := range r.foods {
		if strings.Contains(strings.ToLower(food.Name), q) ||
			strings.Contains(strings.ToLower(food.Cuisine), q) {
			out = append(out, food)
		}
	}
	return out
}

func (r *MemoryFoodRepo) Filter(f FoodFilter) []models.FoodItem {
	var out []models.FoodItem
	for _, food := range r.foods {
		if f.Cuisine != "" && food.Cuisine != f.Cuisine {
			continue
		}
		if f.MealTime != "" && !food.SuitableFor(f.MealTime) {
			continue
		}
		if f.DietaryType != "" && f.DietaryType != models.DietBoth && food.DietaryType != f.DietaryType {
			continue
		}
		if f.MinCalories > 0 && food.Calories < f.MinCalories {
			continue
		}
		if f.MaxCalories > 0 && food.Calories > f.MaxCalories {
			continue
		}
		out = append(out, food)
	}
	return out
}

func (r *MemoryFoodRepo) TopByMacro(macro string, descending bool, limit int) []models.FoodItem {
	out := make([]models.FoodItem, len(r.foods))
	copy(out, r.foods)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Macro(macro) > out[j].Macro(macro)
		}
		return out[i].Macro(macro) < out[j].Macro(macro)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

var (
	parenRe = regexp.MustCompile(`\([^)]*\)`)
	digitRe = regexp.MustCompile(`\d+`)
	milkRe  = regexp.MustCompile(`(?i)with milk & sugar|without sugar|with milk|& sugar|milk & sugar`)
)

// normalizeName strips portion markers and beverage qualifiers so that
// template spellings like "Chapati (2)" or "Tea with milk & sugar" match
// catalog entries.
func normalizeName(name string) string {
	s := strings.ToLower(name)
	s = parenRe.ReplaceAllString(s, "")
	s = digitRe.ReplaceAllString(s, "")
	s = milkRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func baseName(foodName string) string {
	lower := strings.ToLower(foodName)
	if i := strings.Index(lower, "("); i >= 0 {
		lower = lower[:i]
	}
	return strings.TrimSpace(lower)
}

func nameMatches(food models.FoodItem, search string) bool {
	full := strings.ToLower(food.Name)
	base := baseName(food.Name)
	return base == search ||
		strings.Contains(base, search) ||
		strings.Contains(search, base) ||
		strings.Contains(full, search)
}

func (r *MemoryFoodRepo) Resolve(name, cuisine string) (models.FoodItem, bool) {
	search := normalizeName(name)

	// Pass 1: cuisine-scoped fuzzy match.
	if cuisine != "" {
		for _, food := range r.foods {
			if food.Cuisine == cuisine && nameMatches(food, search) {
				return food, true
			}
		}
	}

	// Pass 2: same match across all cuisines.
	for _, food := range r.foods {
		if nameMatches(food, search) {
			return food, true
		}
	}

	// Pass 3: alias table, candidates tried in order.
	for _, exact := range r.aliases[search] {
		want := strings.ToLower(exact)
		for _, food := range r.foods {
			if strings.Contains(strings.ToLower(food.Name), want) || baseName(food.Name) == want {
				return food, true
			}
		}
	}

	return models.FoodItem{}, false
}

// MemoryComboRepo serves combination templates from memory.
type MemoryComboRepo struct {
	templates []models.ComboTemplate
	cuisines  []string
}

// NewMemoryComboRepo wraps a template list, recording cuisines in
// first-appearance order.
func NewMemoryComboRepo(templates []models.ComboTemplate) *MemoryComboRepo {
	seen := make(map[string]bool)
	var cuisines []string
	for _, t := range templates {
		if !seen[t.Cuisine] {
			seen[t.Cuisine] = true
			cuisines = append(cuisines, t.Cuisine)
		}
	}
	return &MemoryComboRepo{templates: templates, cuisines: cuisines}
}

func (r *MemoryComboRepo) Templates(cuisine string, mealTime models.MealTime) []models.ComboTemplate {
	var out []models.ComboTemplate
	for _, t := range r.templates {
		if t.Cuisine == cuisine && t.MealTime == mealTime {
			out = append(out, t)
		}
	}
	return out
}

func (r *MemoryComboRepo) Cuisines() []string {
	return r.cuisines
}
