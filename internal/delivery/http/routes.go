package http

import (
	"github.com/gin-gonic/gin"
	"github.com/saisandeepkoritala/Wellness/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Meal parse-review-save flow
		meals := v1.Group("/meals")
		{
			meals.POST("/parse", handler.ParseMeal)
			meals.GET("/sessions/:id", handler.GetSession)
			meals.PUT("/sessions/:id/items/:index", handler.UpdateItem)
			meals.DELETE("/sessions/:id/items/:index", handler.RemoveItem)
			meals.POST("/sessions/:id/save", handler.SaveMeal)
			meals.GET("/log/:date", handler.GetMealsByDate)
		}

		// Direct nutrition resolution
		nutrition := v1.Group("/nutrition")
		{
			nutrition.GET("/lookup", handler.LookupNutrition)
		}
	}

	return router
}
