package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"slaycal/models"
	"slaycal/services/meals"
	"slaycal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const comboCacheTTL = 10 * time.Minute

// MealHandler serves combination lookups and day plans. Cache is optional;
// when set, combination responses are cached by cuisine, slot and diet.
type MealHandler struct {
	Meals meals.RecommendationService
	Cache *redis.Client
}

func NewMealHandler(engine meals.RecommendationService, cache *redis.Client) *MealHandler {
	return &MealHandler{Meals: engine, Cache: cache}
}

// Combinations lists the resolved combinations for a cuisine and meal slot.
func (h *MealHandler) Combinations(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid combinations request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	mealTime, ok := models.ParseMealTime(req.MealTime)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown meal time", req.MealTime)
		return
	}
	diet := models.DietaryType(req.DietaryType)
	if diet == "" {
		diet = models.DietBoth
	}

	cacheKey := fmt.Sprintf("meals:combos:%s:%s:%s", req.Cuisine, mealTime, diet)
	if h.Cache != nil {
		if data, err := h.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
			return
		}
	}

	combos := h.Meals.Combinations(req.Cuisine, mealTime, diet)
	resp := gin.H{
		"cuisine":      req.Cuisine,
		"meal_time":    mealTime,
		"count":        len(combos),
		"combinations": combos,
	}

	if h.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := h.Cache.Set(c.Request.Context(), cacheKey, data, comboCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache combinations", zap.Error(err), zap.String("key", cacheKey))
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Plan assembles a day plan across the requested cuisines and meal slots.
func (h *MealHandler) Plan(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid plan request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	diet := models.DietaryType(req.DietaryType)
	if diet == "" {
		diet = models.DietBoth
	}

	plan := h.Meals.Plan(req.TargetCalories, req.Cuisines, diet, req.MealTimes)
	c.JSON(http.StatusOK, gin.H{
		"target_calories": req.TargetCalories,
		"plan":            plan,
	})
}
