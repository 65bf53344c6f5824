package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"slaycal/models"
)

// calorieLimit is the sanity bound on an extracted calorie figure.
const calorieLimit = 5000

// rangeCeiling caps open-ended "above N" queries.
const rangeCeiling = 2000

// caloriePatterns are tried in order; the first match inside the sanity
// bound wins. A bare number only counts when it is the whole message.
var caloriePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:calories?|cal|kcal)`),
	regexp.MustCompile(`(?i)(?:around|about|approximately|roughly)\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:calorie|cal)\s*(?:meal|food|diet)`),
	regexp.MustCompile(`^(\d+)$`),
}

func extractCalories(text string) (int, bool) {
	trimmed := strings.TrimSpace(text)
	for _, re := range caloriePatterns {
		m := re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 && n < calorieLimit {
			return n, true
		}
	}
	return 0, false
}

var numberRe = regexp.MustCompile(`\d+`)

// extractPendingCalories is the looser parse used while the calorie slot
// is pending: the reply is already known to be an answer, so any digit
// run inside the sanity bound counts ("give me 500" reads as 500).
func extractPendingCalories(text string) (int, bool) {
	if n, ok := extractCalories(text); ok {
		return n, true
	}
	n := atoi(numberRe.FindString(text))
	if n > 0 && n < calorieLimit {
		return n, true
	}
	return 0, false
}

var (
	dashRangeRe = regexp.MustCompile(`(\d+)\s*[-\x{2013}\x{2014}]\s*(\d+)`)
	betweenRe   = regexp.MustCompile(`(?i)between\s+(\d+)\s+and\s+(\d+)`)
	underRe     = regexp.MustCompile(`(?i)(?:under|below|less than)\s+(\d+)`)
	overRe      = regexp.MustCompile(`(?i)(?:above|over|more than)\s+(\d+)`)
)

// extractCalorieRange reads forms like "200-300", "between 200 and 300",
// "under 250" and "above 400". Open-ended lower bounds start at 0 and
// open-ended upper bounds stop at the ceiling.
func extractCalorieRange(text string) (min, max int, ok bool) {
	if m := dashRangeRe.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), atoi(m[2]), true
	}
	if m := betweenRe.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), atoi(m[2]), true
	}
	if m := underRe.FindStringSubmatch(text); m != nil {
		return 0, atoi(m[1]), true
	}
	if m := overRe.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), rangeCeiling, true
	}
	return 0, 0, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// cuisines lists the canonical cuisine names, checked by containment
// before the alias table so "North Indian" never resolves as "Indian".
var cuisines = []string{
	"North Indian", "South Indian", "Bengali", "Gujarati",
	"Maharashtrian", "Malayali", "Andhra", "Odia",
	"Rajasthani", "Bihari", "North-Eastern", "Kashmiri", "Snacks",
}

var cuisineAliases = []struct {
	alias   string
	cuisine string
}{
	{"kerala", "Malayali"},
	{"northeastern", "North-Eastern"},
	{"north eastern", "North-Eastern"},
}

func extractCuisine(text string) string {
	lower := strings.ToLower(text)
	for _, c := range cuisines {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c
		}
	}
	for _, a := range cuisineAliases {
		if strings.Contains(lower, a.alias) {
			return a.cuisine
		}
	}
	return ""
}

var nonVegRe = regexp.MustCompile(`(?i)non.?veg`)

// extractDietary maps mention order non-veg > egg > veg; anything else is
// no restriction.
func extractDietary(text string) models.DietaryType {
	lower := strings.ToLower(text)
	switch {
	case nonVegRe.MatchString(lower):
		return models.DietNonVeg
	case strings.Contains(lower, "egg"):
		return models.DietEggetarian
	case strings.Contains(lower, "veg"):
		return models.DietVeg
	}
	return models.DietBoth
}

var mealTimeKeywords = []struct {
	mt models.MealTime
	re *regexp.Regexp
}{
	{models.MealBreakfast, regexp.MustCompile(`(?i)breakfast|morning`)},
	{models.MealLunch, regexp.MustCompile(`(?i)lunch|midday|afternoon`)},
	{models.MealSnack, regexp.MustCompile(`(?i)snack|light food|quick bite`)},
	{models.MealDinner, regexp.MustCompile(`(?i)dinner|evening|night`)},
}

// extractMealTime finds the first meal slot mentioned. Snack outranks
// dinner so "evening snack" lands in the snack slot.
func extractMealTime(text string) (models.MealTime, bool) {
	for _, k := range mealTimeKeywords {
		if k.re.MatchString(text) {
			return k.mt, true
		}
	}
	return "", false
}

// nutrientMentioned returns the first nutrient named in the text, with
// calories as the default for comparison queries.
func nutrientMentioned(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "protein"):
		return "protein"
	case strings.Contains(lower, "carb"):
		return "carbs"
	case strings.Contains(lower, "fat"):
		return "fat"
	}
	return "calories"
}

var wordSplitRe = regexp.MustCompile(`[,\s]+`)

// questionPrefixRe strips leading question words before a name search.
var questionPrefixRe = regexp.MustCompile(`(?i)^(what|how|tell|show|give|find|about|info|information)\s+`)

var trailingPunctRe = regexp.MustCompile(`[?.,!]+$`)

func cleanQuery(text string) string {
	s := questionPrefixRe.ReplaceAllString(text, "")
	s = trailingPunctRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
