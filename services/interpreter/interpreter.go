// Package interpreter turns free-form nutrition questions into catalog
// lookups and meal recommendations, carrying slot-filling state across
// the turns of a chat session.
package interpreter

import (
	"context"
	"fmt"
	"strings"

	"slaycal/database/catalog"
	"slaycal/models"
	"slaycal/services/meals"
)

// defaultCalorieTarget is assumed when a recommendation is due but no
// calorie figure was ever given.
const defaultCalorieTarget = 500

// Display caps per intent.
const (
	maxCompareFoods    = 5
	maxFoodInfoResults = 5
	maxSearchResults   = 8
	maxSuggestions     = 8
	maxListResults     = 10
	maxCatalogResults  = 15
)

// CoachService answers one chat turn.
type CoachService interface {
	Interpret(ctx context.Context, sessionID, text string) (*models.ChatResponse, error)
}

// DefaultCoachService wires the intent rule chain to the food catalog and
// the recommendation engine.
type DefaultCoachService struct {
	Store ContextStore
	Foods catalog.FoodRepository
	Meals meals.RecommendationService
}

func NewCoachService(store ContextStore, foods catalog.FoodRepository, engine meals.RecommendationService) *DefaultCoachService {
	return &DefaultCoachService{Store: store, Foods: foods, Meals: engine}
}

// Interpret loads the session context, answers the turn and persists the
// updated context. A session that ends the turn with no pending slot is
// cleared from the store.
func (s *DefaultCoachService) Interpret(ctx context.Context, sessionID, text string) (*models.ChatResponse, error) {
	coachCtx, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	resp := s.answer(coachCtx, strings.TrimSpace(text))
	resp.SessionID = sessionID
	resp.AwaitingSlot = coachCtx.PendingSlot

	if coachCtx.Idle() {
		err = s.Store.Clear(ctx, sessionID)
	} else {
		err = s.Store.Set(ctx, sessionID, coachCtx)
	}
	if err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}
	return resp, nil
}

// resumeCalories handles a turn while the calorie slot is pending. A
// message carrying both the calories and a cuisine completes the
// recommendation in one step.
func (s *DefaultCoachService) resumeCalories(coachCtx *models.CoachContext, text string) *models.ChatResponse {
	calories, ok := extractPendingCalories(text)
	if !ok {
		return &models.ChatResponse{Intent: models.IntentSuggest, Text: calorieRepromptText}
	}
	coachCtx.Calories = calories
	if cuisine := extractCuisine(text); cuisine != "" {
		return s.finishRecommendation(coachCtx, cuisine)
	}
	coachCtx.PendingSlot = models.SlotCuisine
	return &models.ChatResponse{Intent: models.IntentSuggest, Text: fmt.Sprintf(cuisinePromptFmt, calories)}
}

// resumeCuisine handles a turn while the cuisine slot is pending. An
// unrecognized cuisine re-prompts and leaves the slot pending.
func (s *DefaultCoachService) resumeCuisine(coachCtx *models.CoachContext, text string) *models.ChatResponse {
	cuisine := extractCuisine(text)
	if cuisine == "" {
		return &models.ChatResponse{Intent: models.IntentSuggest, Text: cuisineRepromptText}
	}
	if coachCtx.Calories == 0 {
		if n, ok := extractCalories(text); ok {
			coachCtx.Calories = n
		}
	}
	return s.finishRecommendation(coachCtx, cuisine)
}

// finishRecommendation serves the pending recommendation and resets the
// session to idle.
func (s *DefaultCoachService) finishRecommendation(coachCtx *models.CoachContext, cuisine string) *models.ChatResponse {
	target := coachCtx.Calories
	if target == 0 {
		target = defaultCalorieTarget
	}
	mealTime := coachCtx.MealTime
	if mealTime == "" {
		mealTime = models.MealLunch
	}
	*coachCtx = models.CoachContext{}
	return s.recommend(models.IntentSuggest, target, cuisine, mealTime)
}

// recommend serves a closest-calorie combination as a chat response.
func (s *DefaultCoachService) recommend(intent string, target int, cuisine string, mealTime models.MealTime) *models.ChatResponse {
	combo, gap, ok := s.Meals.Recommend(target, cuisine, mealTime)
	if !ok {
		return &models.ChatResponse{
			Intent: intent,
			Text:   fmt.Sprintf("I don't have %s %s combinations yet. Try asking for a different cuisine or meal time.", cuisine, mealTime),
		}
	}
	return &models.ChatResponse{
		Intent:      intent,
		Text:        formatRecommendation(combo, gap),
		Combination: combo,
		CalorieGap:  gap,
	}
}
