package interpreter

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"slaycal/database/catalog"
	"slaycal/models"
	"slaycal/services/meals"
	"slaycal/utils"
)

var (
	compareHintRe = regexp.MustCompile(`(?i)compare|which|more|less|difference|between`)
	nutrientRe    = regexp.MustCompile(`(?i)calories?|protein|carbs?|fat`)
	rangeHintRe   = regexp.MustCompile(`(?i)between|under|below|above|over|less than|more than|range`)
	digitRe       = regexp.MustCompile(`\d`)
	macroHintRe   = regexp.MustCompile(`(?i)high|low|rich in|good source of|more|less`)
	dietaryHintRe = regexp.MustCompile(`(?i)vegetarian|veg|non.?veg|non.?vegetarian|eggetarian|egg`)
	dietaryCtxRe  = regexp.MustCompile(`(?i)option|food|meal|suggest|recommend`)
	optionsRe     = regexp.MustCompile(`(?i)what can i eat|what should i eat|what to eat|options|choices`)
	suggestRe     = regexp.MustCompile(`(?i)suggest|recommend|give me|find me`)
	mealFoodRe    = regexp.MustCompile(`(?i)meal|food`)
	bareCalorieRe = regexp.MustCompile(`(?i)(\d+)\s*(?:calories?|cal)`)
	listHintRe    = regexp.MustCompile(`(?i)list|show|give me|tell me about|what are`)
	greetingRe    = regexp.MustCompile(`(?i)\b(hi|hello|hey|thanks|thank you|help|what can you do)\b`)
)

// foodInfoPatterns pull a food name out of a nutrition question. They run
// before the bare calorie rule so "calories in roti" is an info lookup,
// not a 0-calorie meal request.
var foodInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:how many|what are|tell me about|show me|give me info|info about|information about)\s+(?:calories?|nutrients?|nutrition)\s+(?:in|for|of)?\s*([^?]+)`),
	regexp.MustCompile(`(?i)(?:calories?|nutrients?|nutrition)\s+(?:in|for|of)\s+([^?]+)`),
	regexp.MustCompile(`(?i)(?:what|tell|show|give)\s+(?:me\s+)?(?:about|info|information)\s+([^?]+)`),
	regexp.MustCompile(`(?i)(?:how\s+many\s+)?(?:calories?|protein|carbs?|fat)\s+(?:does|do|has|have|in|for)\s+([^?]+)`),
}

// intentRule is one entry of the ordered rule table. apply returns nil to
// pass the message to the next rule.
type intentRule struct {
	name  string
	apply func(s *DefaultCoachService, coachCtx *models.CoachContext, lower, text string) *models.ChatResponse
}

// intentRules run in order; the first rule that claims the message wins.
var intentRules = []intentRule{
	{"compare", func(s *DefaultCoachService, _ *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.tryCompare(lower, text)
	}},
	{"range", func(s *DefaultCoachService, _ *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.tryRange(lower, text)
	}},
	{"macro", func(s *DefaultCoachService, _ *models.CoachContext, lower, _ string) *models.ChatResponse {
		return s.tryMacro(lower)
	}},
	{"dietary", func(s *DefaultCoachService, _ *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.tryDietary(lower, text)
	}},
	{"options", func(s *DefaultCoachService, coachCtx *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.tryOptions(coachCtx, lower, text)
	}},
	{"meal_time", func(s *DefaultCoachService, coachCtx *models.CoachContext, _, text string) *models.ChatResponse {
		return s.tryMealTime(coachCtx, text)
	}},
	{"suggest", func(s *DefaultCoachService, coachCtx *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.trySuggest(coachCtx, lower, text)
	}},
	{"food_info", func(s *DefaultCoachService, _ *models.CoachContext, _, text string) *models.ChatResponse {
		return s.tryFoodInfo(text)
	}},
	{"calorie_target", func(s *DefaultCoachService, coachCtx *models.CoachContext, _, text string) *models.ChatResponse {
		return s.tryCalorieTarget(coachCtx, text)
	}},
	{"catalog_filter", func(s *DefaultCoachService, _ *models.CoachContext, lower, text string) *models.ChatResponse {
		return s.tryCatalogFilter(lower, text)
	}},
	{"food_search", func(s *DefaultCoachService, _ *models.CoachContext, _, text string) *models.ChatResponse {
		return s.tryFoodSearch(text)
	}},
	{"greeting", func(_ *DefaultCoachService, _ *models.CoachContext, lower, _ string) *models.ChatResponse {
		if !greetingRe.MatchString(lower) {
			return nil
		}
		return &models.ChatResponse{Intent: models.IntentGreeting, Text: greetingText}
	}},
}

// answer runs the rule table. Pending slots always win; after that each
// rule either claims the message or passes it on.
func (s *DefaultCoachService) answer(coachCtx *models.CoachContext, text string) *models.ChatResponse {
	switch coachCtx.PendingSlot {
	case models.SlotCalories:
		return s.resumeCalories(coachCtx, text)
	case models.SlotCuisine:
		return s.resumeCuisine(coachCtx, text)
	}

	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if resp := rule.apply(s, coachCtx, lower, text); resp != nil {
			utils.GetLogger().Debug("intent rule matched", zap.String("rule", rule.name))
			return resp
		}
	}
	return &models.ChatResponse{Intent: models.IntentUnknown, Text: defaultText}
}

// namedFoods finds distinct catalog foods mentioned anywhere in the text,
// first match per word.
func (s *DefaultCoachService) namedFoods(text string) []models.FoodItem {
	var out []models.FoodItem
	seen := make(map[int]bool)
	for _, word := range wordSplitRe.Split(strings.ToLower(text), -1) {
		word = trailingPunctRe.ReplaceAllString(word, "")
		if len(word) <= 2 {
			continue
		}
		found := s.Foods.Search(word)
		if len(found) > 0 && !seen[found[0].ID] {
			seen[found[0].ID] = true
			out = append(out, found[0])
		}
	}
	return out
}

func (s *DefaultCoachService) tryCompare(lower, text string) *models.ChatResponse {
	if !compareHintRe.MatchString(lower) || !nutrientRe.MatchString(lower) {
		return nil
	}
	foods := s.namedFoods(text)
	if len(foods) < 2 {
		return nil
	}

	nutrient := nutrientMentioned(lower)
	sorted := make([]models.FoodItem, len(foods))
	copy(sorted, foods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Macro(nutrient) > sorted[j].Macro(nutrient)
	})
	highest, lowest := sorted[0], sorted[len(sorted)-1]
	cmp := &models.Comparison{
		Nutrient:  nutrient,
		Highest:   highest.Name,
		Lowest:    lowest.Name,
		HighValue: highest.Macro(nutrient),
		LowValue:  lowest.Macro(nutrient),
	}

	display := foods
	if len(display) > maxCompareFoods {
		display = display[:maxCompareFoods]
	}
	return &models.ChatResponse{
		Intent:     models.IntentCompare,
		Text:       formatComparison(display, cmp),
		Foods:      display,
		Comparison: cmp,
	}
}

func (s *DefaultCoachService) tryRange(lower, text string) *models.ChatResponse {
	if !rangeHintRe.MatchString(lower) || !digitRe.MatchString(text) {
		return nil
	}
	min, max, ok := extractCalorieRange(text)
	if !ok {
		return nil
	}
	cuisine := extractCuisine(text)
	foods := s.Foods.Filter(catalog.FoodFilter{
		Cuisine:     cuisine,
		MinCalories: float64(min),
		MaxCalories: float64(max),
	})
	if len(foods) == 0 {
		return &models.ChatResponse{
			Intent: models.IntentRange,
			Text:   fmt.Sprintf("I couldn't find any foods between %d-%d calories. Try a different range!", min, max),
		}
	}
	sort.SliceStable(foods, func(i, j int) bool { return foods[i].Calories < foods[j].Calories })
	total := len(foods)
	if len(foods) > maxListResults {
		foods = foods[:maxListResults]
	}
	return &models.ChatResponse{
		Intent:       models.IntentRange,
		Text:         formatRangeList(foods, min, max, cuisine, total),
		Foods:        foods,
		TotalMatches: total,
	}
}

func (s *DefaultCoachService) tryMacro(lower string) *models.ChatResponse {
	if !macroHintRe.MatchString(lower) {
		return nil
	}
	var macro string
	switch {
	case strings.Contains(lower, "protein"):
		macro = "protein"
	case strings.Contains(lower, "carb"):
		macro = "carbs"
	case strings.Contains(lower, "fat"):
		macro = "fat"
	default:
		return nil
	}
	high := !strings.Contains(lower, "low") && !strings.Contains(lower, "less")
	foods := s.Foods.TopByMacro(macro, high, maxListResults)
	return &models.ChatResponse{
		Intent: models.IntentMacro,
		Text:   formatMacroList(foods, macro, high),
		Foods:  foods,
	}
}

func (s *DefaultCoachService) tryDietary(lower, text string) *models.ChatResponse {
	if !dietaryHintRe.MatchString(lower) || !dietaryCtxRe.MatchString(lower) {
		return nil
	}
	diet := extractDietary(text)
	cuisine := extractCuisine(text)
	maxCal := 0
	if n, ok := extractCalories(text); ok {
		maxCal = n
	}

	filter := catalog.FoodFilter{Cuisine: cuisine, MaxCalories: float64(maxCal)}
	if diet != models.DietBoth {
		filter.DietaryType = diet
	}
	foods := s.Foods.Filter(filter)
	if len(foods) == 0 {
		return &models.ChatResponse{
			Intent: models.IntentDietary,
			Text:   "I couldn't find any foods matching those criteria. Try different criteria!",
		}
	}
	sort.SliceStable(foods, func(i, j int) bool { return foods[i].Calories < foods[j].Calories })
	total := len(foods)
	if len(foods) > maxListResults {
		foods = foods[:maxListResults]
	}
	return &models.ChatResponse{
		Intent:       models.IntentDietary,
		Text:         formatDietaryList(foods, diet, cuisine, maxCal, total),
		Foods:        foods,
		TotalMatches: total,
	}
}

func (s *DefaultCoachService) tryOptions(coachCtx *models.CoachContext, lower, text string) *models.ChatResponse {
	if !optionsRe.MatchString(lower) {
		return nil
	}
	calories, ok := extractCalories(text)
	if !ok {
		coachCtx.PendingSlot = models.SlotCalories
		if mt, found := extractMealTime(text); found {
			coachCtx.MealTime = mt
		}
		return &models.ChatResponse{Intent: models.IntentOptions, Text: caloriePromptText}
	}
	cuisine := extractCuisine(text)
	if mt, found := extractMealTime(text); found {
		if cuisine == "" {
			cuisine = meals.FallbackCuisine
		}
		return s.recommend(models.IntentOptions, calories, cuisine, mt)
	}
	return s.suggestions(calories, cuisine)
}

// suggestions lists single foods landing near the target, from 100 under
// to 50 over, closest first.
func (s *DefaultCoachService) suggestions(target int, cuisine string) *models.ChatResponse {
	foods := s.Foods.Filter(catalog.FoodFilter{
		Cuisine:     cuisine,
		MinCalories: float64(target - 100),
		MaxCalories: float64(target + 50),
	})
	if len(foods) == 0 {
		return &models.ChatResponse{
			Intent: models.IntentOptions,
			Text:   fmt.Sprintf("I couldn't find foods around %d calories. Try a different calorie range!", target),
		}
	}
	sort.SliceStable(foods, func(i, j int) bool {
		return math.Abs(foods[i].Calories-float64(target)) < math.Abs(foods[j].Calories-float64(target))
	})
	total := len(foods)
	if len(foods) > maxSuggestions {
		foods = foods[:maxSuggestions]
	}
	return &models.ChatResponse{
		Intent:       models.IntentOptions,
		Text:         formatSuggestions(foods, target, cuisine),
		Foods:        foods,
		TotalMatches: total,
	}
}

func (s *DefaultCoachService) tryMealTime(coachCtx *models.CoachContext, text string) *models.ChatResponse {
	mt, ok := extractMealTime(text)
	if !ok {
		return nil
	}
	if calories, found := extractCalories(text); found {
		cuisine := extractCuisine(text)
		if cuisine == "" {
			cuisine = meals.FallbackCuisine
		}
		return s.recommend(models.IntentMealTime, calories, cuisine, mt)
	}
	coachCtx.PendingSlot = models.SlotCalories
	coachCtx.MealTime = mt
	return &models.ChatResponse{
		Intent: models.IntentMealTime,
		Text:   fmt.Sprintf("Great! I can suggest a %s for you. What calorie range are you looking for? (e.g., 300-400 calories)", mt),
	}
}

func (s *DefaultCoachService) trySuggest(coachCtx *models.CoachContext, lower, text string) *models.ChatResponse {
	if !suggestRe.MatchString(lower) || !mealFoodRe.MatchString(lower) {
		return nil
	}
	calories, ok := extractCalories(text)
	if !ok {
		coachCtx.PendingSlot = models.SlotCalories
		return &models.ChatResponse{Intent: models.IntentSuggest, Text: caloriePromptText}
	}
	if cuisine := extractCuisine(text); cuisine != "" {
		return s.recommend(models.IntentSuggest, calories, cuisine, models.MealLunch)
	}
	coachCtx.PendingSlot = models.SlotCuisine
	coachCtx.Calories = calories
	return &models.ChatResponse{Intent: models.IntentSuggest, Text: fmt.Sprintf(cuisinePromptFmt, calories)}
}

func (s *DefaultCoachService) tryFoodInfo(text string) *models.ChatResponse {
	for _, re := range foodInfoPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(trailingPunctRe.ReplaceAllString(m[1], ""))
		if len(name) <= 1 {
			continue
		}
		return s.foodInfo(name)
	}
	return nil
}

func (s *DefaultCoachService) foodInfo(name string) *models.ChatResponse {
	foods := s.Foods.Search(name)
	if len(foods) == 0 {
		return &models.ChatResponse{
			Intent: models.IntentFoodInfo,
			Text:   fmt.Sprintf("I couldn't find %q in my database. Please try a different food name or check the spelling.", name),
		}
	}
	if len(foods) == 1 {
		return &models.ChatResponse{Intent: models.IntentFoodInfo, Text: formatFoodInfo(foods[0]), Foods: foods}
	}
	total := len(foods)
	if len(foods) > maxFoodInfoResults {
		foods = foods[:maxFoodInfoResults]
	}
	return &models.ChatResponse{
		Intent:       models.IntentFoodInfo,
		Text:         formatFoodMatches(name, foods, total),
		Foods:        foods,
		TotalMatches: total,
	}
}

func (s *DefaultCoachService) tryCalorieTarget(coachCtx *models.CoachContext, text string) *models.ChatResponse {
	if !bareCalorieRe.MatchString(text) {
		return nil
	}
	calories, ok := extractCalories(text)
	if !ok {
		return nil
	}
	if cuisine := extractCuisine(text); cuisine != "" {
		return s.recommend(models.IntentCalorieTarget, calories, cuisine, models.MealLunch)
	}
	coachCtx.PendingSlot = models.SlotCuisine
	coachCtx.Calories = calories
	return &models.ChatResponse{Intent: models.IntentCalorieTarget, Text: fmt.Sprintf(cuisinePromptFmt, calories)}
}

func (s *DefaultCoachService) tryCatalogFilter(lower, text string) *models.ChatResponse {
	if !listHintRe.MatchString(lower) {
		return nil
	}
	cuisine := extractCuisine(text)
	mt, hasMealTime := extractMealTime(text)
	diet := extractDietary(text)
	if cuisine == "" && !hasMealTime && diet == models.DietBoth {
		return nil
	}

	filter := catalog.FoodFilter{Cuisine: cuisine}
	if hasMealTime {
		filter.MealTime = mt
	}
	if diet != models.DietBoth {
		filter.DietaryType = diet
	}
	foods := s.Foods.Filter(filter)
	if len(foods) == 0 {
		return nil
	}
	total := len(foods)
	if len(foods) > maxCatalogResults {
		foods = foods[:maxCatalogResults]
	}
	return &models.ChatResponse{
		Intent:       models.IntentCatalogFilter,
		Text:         formatCatalogList(foods, total),
		Foods:        foods,
		TotalMatches: total,
	}
}

// tryFoodSearch is the last content rule: treat the message itself as a
// food name, widening the match in stages.
func (s *DefaultCoachService) tryFoodSearch(text string) *models.ChatResponse {
	cleaned := cleanQuery(text)
	if cleaned == "" {
		return nil
	}

	foods := s.Foods.Search(cleaned)

	if len(foods) == 0 {
		words := wordSplitRe.Split(cleaned, -1)
		if len(words) > 1 {
			for _, word := range words {
				if len(word) <= 2 {
					continue
				}
				if found := s.Foods.Search(word); len(found) > 0 {
					foods = found
					break
				}
			}
		}
	}

	if len(foods) == 0 {
		lowerCleaned := strings.ToLower(cleaned)
		for _, food := range s.Foods.All() {
			name := strings.ToLower(food.Name)
			parts := strings.Fields(name)
			if len(parts) == 0 {
				continue
			}
			if strings.Contains(name, lowerCleaned) || strings.Contains(lowerCleaned, parts[0]) {
				foods = append(foods, food)
			}
		}
	}

	if len(foods) == 0 {
		return nil
	}
	if len(foods) == 1 {
		return &models.ChatResponse{Intent: models.IntentFoodSearch, Text: formatFoodInfo(foods[0]), Foods: foods}
	}
	total := len(foods)
	if len(foods) > maxSearchResults {
		foods = foods[:maxSearchResults]
	}
	return &models.ChatResponse{
		Intent:       models.IntentFoodSearch,
		Text:         formatSearchMatches(cleaned, foods, total),
		Foods:        foods,
		TotalMatches: total,
	}
}
