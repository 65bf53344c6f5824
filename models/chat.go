package models

// Pending slot values for an in-flight conversation.
const (
	SlotNone     = ""
	SlotCalories = "awaiting-calories"
	SlotCuisine  = "awaiting-cuisine"
)

// Intent kinds reported in chat responses.
const (
	IntentCompare       = "compare"
	IntentRange         = "range"
	IntentMacro         = "macro"
	IntentDietary       = "dietary"
	IntentOptions       = "options"
	IntentMealTime      = "meal_time"
	IntentSuggest       = "suggest"
	IntentFoodInfo      = "food_info"
	IntentCalorieTarget = "calorie_target"
	IntentCatalogFilter = "catalog_filter"
	IntentFoodSearch    = "food_search"
	IntentGreeting      = "greeting"
	IntentUnknown       = "unknown"
)

// CoachContext is the per-session conversation state. At most one slot is
// pending at a time; MealTime and Calories hold values remembered while a
// slot is being filled.
type CoachContext struct {
	PendingSlot string   `json:"pending_slot"`
	MealTime    MealTime `json:"meal_time,omitempty"`
	Calories    int      `json:"calories,omitempty"`
}

// Idle reports whether no slot is pending.
func (c CoachContext) Idle() bool { return c.PendingSlot == SlotNone }

// ChatRequest is the body of a coach chat turn.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text" binding:"required"`
}

// CalorieGap notes how far a recommendation landed from the target when the
// difference exceeds the tolerance. Direction is "more" or "less".
type CalorieGap struct {
	Delta     int    `json:"delta"`
	Direction string `json:"direction"`
}

// Comparison summarizes a nutrient comparison across foods.
type Comparison struct {
	Nutrient  string  `json:"nutrient"`
	Highest   string  `json:"highest"`
	Lowest    string  `json:"lowest"`
	HighValue float64 `json:"high_value"`
	LowValue  float64 `json:"low_value"`
}

// ChatResponse is the interpreter's answer to one turn.
type ChatResponse struct {
	SessionID    string           `json:"session_id"`
	Intent       string           `json:"intent"`
	Text         string           `json:"text"`
	AwaitingSlot string           `json:"awaiting_slot,omitempty"`
	Foods        []FoodItem       `json:"foods,omitempty"`
	Combination  *MealCombination `json:"combination,omitempty"`
	Comparison   *Comparison      `json:"comparison,omitempty"`
	CalorieGap   *CalorieGap      `json:"calorie_gap,omitempty"`
	TotalMatches int              `json:"total_matches,omitempty"`
}

// CombinationsRequest is the body of the combinations lookup endpoint.
type CombinationsRequest struct {
	Cuisine     string `json:"cuisine" binding:"required"`
	MealTime    string `json:"meal_time" binding:"required"`
	DietaryType string `json:"dietary_type"`
}

// PlanRequest is the body of the meal plan endpoint.
type PlanRequest struct {
	TargetCalories int      `json:"target_calories" binding:"required"`
	Cuisines       []string `json:"cuisines" binding:"required"`
	DietaryType    string   `json:"dietary_type"`
	MealTimes      []string `json:"meal_times" binding:"required"`
}
