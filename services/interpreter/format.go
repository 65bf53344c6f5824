package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"slaycal/models"
)

const (
	caloriePromptText   = "I'd be happy to suggest a meal! What calorie range are you looking for? (e.g., 300-500 calories)"
	calorieRepromptText = "Please provide a calorie number. For example: '500 calories' or '500'"
	cuisineRepromptText = "I couldn't identify the cuisine. Please specify a cuisine type (e.g., North Indian, South Indian, Bengali, Gujarati, etc.)"
	cuisinePromptFmt    = "I can suggest meals for %d calories. What type of cuisine would you prefer? (e.g., North Indian, South Indian, etc.)"
)

const greetingText = `Hi! I'm your nutrition coach. I can help you with:

Food information:
- "How many calories in roti?"
- "Tell me about biryani"
- "Compare roti and naan"

Meal recommendations:
- "Suggest a meal for 500 calories"
- "What should I eat for breakfast?"
- "North Indian lunch for 400 calories"

Smart queries:
- "High protein foods"
- "Foods between 200-300 calories"
- "Vegetarian options under 250 calories"

Try asking me anything about Indian food and nutrition!`

const defaultText = `I'm not sure I understood that. I can help you with:

- Food info: "calories in roti", "tell me about biryani"
- Comparisons: "which has more calories, roti or naan?"
- Meal suggestions: "suggest a meal for 500 calories"
- Smart filters: "high protein foods", "foods under 250 calories"
- Dietary options: "vegetarian options", "non-veg foods under 300 calories"

Try rephrasing your question or ask me "help" for more examples!`

func foodEmoji(f models.FoodItem) string {
	if f.Emoji != "" {
		return f.Emoji
	}
	return "🍽️"
}

// num renders a nutrition value without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mealTimeList(times []models.MealTime) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func formatFoodInfo(f models.FoodItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", foodEmoji(f), f.Name)
	b.WriteString("Nutrition per serving:\n")
	fmt.Fprintf(&b, "- Calories: %s kcal\n", num(f.Calories))
	fmt.Fprintf(&b, "- Protein: %sg\n", num(f.Protein))
	fmt.Fprintf(&b, "- Carbs: %sg\n", num(f.Carbs))
	fmt.Fprintf(&b, "- Fat: %sg\n\n", num(f.Fat))
	fmt.Fprintf(&b, "Serving: %s\n", f.ServingSize)
	fmt.Fprintf(&b, "Cuisine: %s\n", f.Cuisine)
	fmt.Fprintf(&b, "Suitable for: %s", mealTimeList(f.SuitableMealTimes))
	return b.String()
}

// foodLine is the common numbered list entry with the macro breakdown.
func foodLine(b *strings.Builder, idx int, f models.FoodItem) {
	fmt.Fprintf(b, "%d. %s %s - %s kcal\n", idx+1, foodEmoji(f), f.Name, num(f.Calories))
	fmt.Fprintf(b, "   %s | P: %sg | C: %sg | F: %sg\n", f.Cuisine, num(f.Protein), num(f.Carbs), num(f.Fat))
}

func formatFoodMatches(name string, foods []models.FoodItem, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d foods matching %q:\n\n", total, name)
	for i, f := range foods {
		foodLine(&b, i, f)
	}
	if total > len(foods) {
		fmt.Fprintf(&b, "\nShowing %d of %d results. Be more specific for a single food!", len(foods), total)
	} else {
		b.WriteString("\nAsk about a specific food for detailed nutrition info!")
	}
	return b.String()
}

func formatSearchMatches(query string, foods []models.FoodItem, total int) string {
	return formatFoodMatches(query, foods, total)
}

func formatRangeList(foods []models.FoodItem, min, max int, cuisine string, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Foods between %d-%d calories", min, max)
	if cuisine != "" {
		fmt.Fprintf(&b, " (%s)", cuisine)
	}
	b.WriteString(":\n\n")
	for i, f := range foods {
		foodLine(&b, i, f)
	}
	if total > len(foods) {
		fmt.Fprintf(&b, "\nShowing %d of %d foods. Be more specific to narrow down results!", len(foods), total)
	}
	return b.String()
}

func formatMacroList(foods []models.FoodItem, macro string, high bool) string {
	label := "low"
	if high {
		label = "high"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d %s %s foods:\n\n", len(foods), label, macro)
	for i, f := range foods {
		fmt.Fprintf(&b, "%d. %s %s - %s: %sg, %s kcal\n",
			i+1, foodEmoji(f), f.Name, macro, num(f.Macro(macro)), num(f.Calories))
	}
	return b.String()
}

func formatDietaryList(foods []models.FoodItem, diet models.DietaryType, cuisine string, maxCal, total int) string {
	var b strings.Builder
	var header []string
	if diet != models.DietBoth && diet != "" {
		header = append(header, string(diet))
	}
	if cuisine != "" {
		header = append(header, cuisine)
	}
	header = append(header, "food options")
	b.WriteString(strings.Join(header, " "))
	if maxCal > 0 {
		fmt.Fprintf(&b, " (under %d cal)", maxCal)
	}
	b.WriteString(":\n\n")
	for i, f := range foods {
		foodLine(&b, i, f)
	}
	if total > len(foods) {
		fmt.Fprintf(&b, "\nShowing %d of %d foods. Be more specific for better results!", len(foods), total)
	}
	return b.String()
}

func formatCatalogList(foods []models.FoodItem, total int) string {
	var b strings.Builder
	b.WriteString("Food options:\n\n")
	for i, f := range foods {
		fmt.Fprintf(&b, "%d. %s %s - %s kcal\n", i+1, foodEmoji(f), f.Name, num(f.Calories))
	}
	if total > len(foods) {
		fmt.Fprintf(&b, "\nShowing %d of %d foods. Be more specific for better results!", len(foods), total)
	}
	return b.String()
}

func formatSuggestions(foods []models.FoodItem, target int, cuisine string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Food suggestions around %d calories", target)
	if cuisine != "" {
		fmt.Fprintf(&b, " (%s)", cuisine)
	}
	b.WriteString(":\n\n")
	for i, f := range foods {
		fmt.Fprintf(&b, "%d. %s %s - %s kcal\n", i+1, foodEmoji(f), f.Name, num(f.Calories))
		fmt.Fprintf(&b, "   %s | Suitable for: %s\n", f.Cuisine, mealTimeList(f.SuitableMealTimes))
	}
	return b.String()
}

func formatComparison(foods []models.FoodItem, cmp *models.Comparison) string {
	var b strings.Builder
	b.WriteString("Comparison:\n\n")
	for i, f := range foods {
		foodLine(&b, i, f)
	}
	unit := "g"
	if cmp.Nutrient == "calories" {
		unit = " kcal"
	}
	fmt.Fprintf(&b, "\n%s has the most %s (%s%s), while %s has the least (%s%s). Difference: %s%s",
		cmp.Highest, cmp.Nutrient, num(cmp.HighValue), unit,
		cmp.Lowest, num(cmp.LowValue), unit,
		num(cmp.HighValue-cmp.LowValue), unit)
	return b.String()
}

func formatRecommendation(combo *models.MealCombination, gap *models.CalorieGap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", combo.Name)
	b.WriteString("Total nutrition:\n")
	fmt.Fprintf(&b, "- Calories: %s kcal\n", num(combo.TotalCalories))
	fmt.Fprintf(&b, "- Protein: %sg\n", num(combo.TotalProtein))
	fmt.Fprintf(&b, "- Carbs: %sg\n", num(combo.TotalCarbs))
	fmt.Fprintf(&b, "- Fat: %sg\n\n", num(combo.TotalFat))
	b.WriteString("Meal items:\n")
	for i, item := range combo.Items {
		fmt.Fprintf(&b, "%d. %s %s", i+1, foodEmoji(item.Food), item.Food.Name)
		if item.Portion != 1 {
			fmt.Fprintf(&b, " (%s servings)", num(item.Portion))
		}
		fmt.Fprintf(&b, " - %.0f cal\n", item.Calories)
	}
	if gap != nil {
		fmt.Fprintf(&b, "\nNote: this meal is %d calories %s than your target.", gap.Delta, gap.Direction)
	}
	return b.String()
}
