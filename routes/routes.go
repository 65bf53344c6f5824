package routes

import (
	"net/http"
	"time"

	"slaycal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route table is wired with.
type HandlerBundle struct {
	Coach *handlers.CoachHandler
	Foods *handlers.FoodHandler
	Meals *handlers.MealHandler
}

// RegisterCoachRoutes registers the conversational coach endpoints.
func RegisterCoachRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/coach")
	{
		api.POST("/chat", hb.Coach.Chat)
	}
}

// RegisterFoodRoutes registers catalog lookup endpoints.
func RegisterFoodRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/foods")
	{
		api.GET("/search", hb.Foods.Search)
	}
}

// RegisterMealRoutes registers combination and plan endpoints.
func RegisterMealRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/meals")
	{
		api.POST("/combinations", hb.Meals.Combinations)
		api.POST("/plan", hb.Meals.Plan)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SlayCal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCoachRoutes(r, hb)
	RegisterFoodRoutes(r, hb)
	RegisterMealRoutes(r, hb)
	RegisterHealthRoute(r)
}
