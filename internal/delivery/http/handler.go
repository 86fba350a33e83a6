package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"github.com/saisandeepkoritala/Wellness/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	mealService *usecase.MealService
	resolver    *usecase.NutritionResolver
}

// NewHandler creates a new HTTP handler
func NewHandler(mealService *usecase.MealService, resolver *usecase.NutritionResolver) *Handler {
	return &Handler{
		mealService: mealService,
		resolver:    resolver,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wellness-backend",
		"version": "1.0.0",
	})
}

// ParseMeal parses a free-text meal description and opens a review session
func (h *Handler) ParseMeal(c *gin.Context) {
	var request domain.ParseMealRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	session, err := h.mealService.ParseMeal(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current state of a parse session
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.mealService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// UpdateItem edits one item of a session's meal and returns the session
// with recomputed totals
func (h *Handler) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item index must be an integer"})
		return
	}

	var request domain.UpdateItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.mealService.UpdateItem(c.Request.Context(), c.Param("id"), index, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// RemoveItem deletes one item from a session's meal and returns the session
// with recomputed totals
func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item index must be an integer"})
		return
	}

	session, err := h.mealService.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SaveMeal commits a session's meal to the day log
func (h *Handler) SaveMeal(c *gin.Context) {
	meal, err := h.mealService.SaveMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// GetMealsByDate returns the committed meals logged for one day
func (h *Handler) GetMealsByDate(c *gin.Context) {
	date := c.Param("date")

	meals, err := h.mealService.GetMealsByDate(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"meals": meals,
		"count": len(meals),
	})
}

// LookupNutrition resolves nutrition for a food name and an optional weight
// in grams. Resolution never fails; the static tier answers when the
// external tiers are off or unavailable.
func (h *Handler) LookupNutrition(c *gin.Context) {
	food := c.Query("food")
	if food == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food query parameter is required"})
		return
	}

	weight := 0.0
	if raw := c.Query("weight"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be a non-negative number"})
			return
		}
		weight = parsed
	}

	quantity := h.resolver.Resolve(c.Request.Context(), food, weight)

	c.JSON(http.StatusOK, gin.H{
		"food":      food,
		"weight":    weight,
		"nutrition": quantity,
	})
}

// respondError maps domain errors onto HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoItemsFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no food items found in description - try listing foods separated by commas"})
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "parse session not found or expired"})
	case errors.Is(err, domain.ErrItemIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "item index out of range"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
