package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/saisandeepkoritala/Wellness/config"
	httpDelivery "github.com/saisandeepkoritala/Wellness/internal/delivery/http"
	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"github.com/saisandeepkoritala/Wellness/internal/infrastructure/edamam"
	"github.com/saisandeepkoritala/Wellness/internal/infrastructure/llm"
	"github.com/saisandeepkoritala/Wellness/internal/infrastructure/memstore"
	"github.com/saisandeepkoritala/Wellness/internal/usecase"
)

func main() {
	// Load .env before config so local overrides reach viper
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Wellness Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// External nutrition tiers; a nil client disables its tier and the
	// resolver falls through to the next one
	var llmClient domain.MealTextParser
	if cfg.LLMEnabled() {
		llmClient = llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
		log.Printf("LLM tier configured: %s (model: %s)", cfg.LLM.BaseURL, cfg.LLM.Model)
	} else {
		log.Printf("LLM tier disabled (no API key)")
	}

	var foodDBClient domain.FoodDataClient
	if cfg.FoodDBEnabled() {
		foodDBClient = edamam.NewClient(cfg.FoodDB.AppID, cfg.FoodDB.AppKey, cfg.FoodDB.BaseURL)
		log.Printf("Food database tier configured: %s (app id: %s)", cfg.FoodDB.BaseURL, cfg.FoodDB.AppID)
	} else {
		log.Printf("Food database tier disabled (no credentials)")
	}

	// In-memory stores
	sessionStore := memstore.NewSessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	defer sessionStore.Stop()
	mealLog := memstore.NewMealLog()

	log.Printf("Sessions: TTL=%s, cleanup every %s", cfg.Session.TTL, cfg.Session.CleanupInterval)

	// Initialize usecase layer
	parser := usecase.NewFoodItemParser(cfg.Server.EnableDebugLogging)
	resolver := usecase.NewNutritionResolver(llmClient, foodDBClient, cfg.Server.EnableDebugLogging)
	mealService := usecase.NewMealService(parser, resolver, sessionStore, mealLog, usecase.MealServiceConfig{
		EnableDebugLogging: cfg.Server.EnableDebugLogging,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(mealService, resolver)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
