package handlers

import (
	"net/http"
	"strings"

	"slaycal/database/catalog"
	"slaycal/utils"

	"github.com/gin-gonic/gin"
)

// FoodHandler serves direct catalog lookups.
type FoodHandler struct {
	Foods catalog.FoodRepository
}

func NewFoodHandler(foods catalog.FoodRepository) *FoodHandler {
	return &FoodHandler{Foods: foods}
}

// Search matches foods by name or cuisine, case-insensitive.
func (h *FoodHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing query parameter 'q'", "")
		return
	}
	foods := h.Foods.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"count": len(foods),
		"foods": foods,
	})
}
