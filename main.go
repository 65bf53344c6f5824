package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slaycal/config"
	"slaycal/database"
	"slaycal/database/catalog"
	"slaycal/database/catalog/dataset"
	"slaycal/handlers"
	"slaycal/middleware"
	"slaycal/routes"
	"slaycal/services/interpreter"
	"slaycal/services/meals"
	"slaycal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Catalog: the embedded dataset by default, or a one-shot load from
	// Mongo. Either way the repo itself serves from memory.
	foods := dataset.Foods()
	if config.AppConfig.CatalogSource == "mongo" {
		database.InitDB()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		fetched, err := catalog.NewMongoFoodSource(database.FoodCollection()).FetchAll(ctx)
		cancel()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load food catalog: %v", err)
		}
		foods = fetched
	}
	foodRepo := catalog.NewMemoryFoodRepo(foods, dataset.Aliases())
	comboRepo := catalog.NewMemoryComboRepo(dataset.Combinations())

	mealService := meals.NewRecommendationService(foodRepo, comboRepo)

	var (
		ctxStore   interpreter.ContextStore
		comboCache *redis.Client
	)
	if config.AppConfig.SessionStore == "memory" {
		ctxStore = interpreter.NewMemoryContextStore()
	} else {
		utils.InitSessionCache()
		utils.InitCache()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		ctxStore = interpreter.NewRedisContextStore(utils.GetSessionCacheClient(), ttl)
		comboCache = utils.GetCacheClient()
	}
	coachService := interpreter.NewCoachService(ctxStore, foodRepo, mealService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	hb := &routes.HandlerBundle{
		Coach: handlers.NewCoachHandler(coachService),
		Foods: handlers.NewFoodHandler(foodRepo),
		Meals: handlers.NewMealHandler(mealService, comboCache),
	}
	routes.RegisterRoutes(router, hb)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
