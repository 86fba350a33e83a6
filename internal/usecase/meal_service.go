package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

const dateLayout = "2006-01-02"

// MealServiceConfig holds configuration for the meal service
type MealServiceConfig struct {
	EnableDebugLogging bool
}

// MealService runs the parse-review-save flow: parse a description into
// items, resolve each item's weight and nutrition, keep the session around
// for review edits, and commit the final meal to the day log.
type MealService struct {
	parser             *FoodItemParser
	resolver           *NutritionResolver
	sessions           domain.SessionRepository
	mealLog            domain.MealLogRepository
	enableDebugLogging bool
}

// NewMealService creates a new meal service with dependencies
func NewMealService(
	parser *FoodItemParser,
	resolver *NutritionResolver,
	sessions domain.SessionRepository,
	mealLog domain.MealLogRepository,
	config MealServiceConfig,
) *MealService {
	return &MealService{
		parser:             parser,
		resolver:           resolver,
		sessions:           sessions,
		mealLog:            mealLog,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseMeal parses a meal description, resolves every item, and opens a
// review session. A description that yields zero items returns
// domain.ErrNoItemsFound.
func (s *MealService) ParseMeal(ctx context.Context, request *domain.ParseMealRequest) (*domain.ParseSession, error) {
	if request == nil || strings.TrimSpace(request.Description) == "" {
		return nil, domain.ErrInvalidRequest
	}

	date, err := normalizeDate(request.Date)
	if err != nil {
		return nil, err
	}

	items := s.parser.ParseDescription(request.Description)
	if len(items) == 0 {
		return nil, domain.ErrNoItemsFound
	}

	meal := domain.ParsedMeal{Items: items}
	s.recomputeMeal(ctx, &meal)

	now := time.Now()
	session := &domain.ParseSession{
		ID:          newID(),
		Date:        date,
		Description: request.Description,
		Meal:        meal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving parse session: %w", err)
	}

	if s.enableDebugLogging {
		log.Printf("[MEAL] Parsed %q into %d items, %.0f kcal total",
			request.Description, len(meal.Items), meal.TotalCalories)
	}

	return session, nil
}

// GetSession returns an in-progress parse session
func (s *MealService) GetSession(ctx context.Context, id string) (*domain.ParseSession, error) {
	return s.sessions.Get(ctx, id)
}

// UpdateItem applies a partial edit to one item and recomputes the whole
// meal. Zero-valued request fields leave the item's field unchanged.
func (s *MealService) UpdateItem(ctx context.Context, sessionID string, index int, request *domain.UpdateItemRequest) (*domain.ParseSession, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}
	if request.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidRequest)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Meal.Items) {
		return nil, domain.ErrItemIndexOutOfRange
	}

	item := &session.Meal.Items[index]
	if request.Name != "" {
		item.Name = request.Name
	}
	if request.Quantity > 0 {
		item.Quantity = request.Quantity
	}
	if request.Unit != "" {
		item.Unit = request.Unit
	}
	if request.Preparation != "" {
		item.Preparation = request.Preparation
	}

	return s.saveRecomputed(ctx, session)
}

// RemoveItem deletes one item from the session's meal and recomputes the
// totals from the remaining items.
func (s *MealService) RemoveItem(ctx context.Context, sessionID string, index int) (*domain.ParseSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Meal.Items) {
		return nil, domain.ErrItemIndexOutOfRange
	}

	session.Meal.Items = append(session.Meal.Items[:index], session.Meal.Items[index+1:]...)
	return s.saveRecomputed(ctx, session)
}

// SaveMeal commits the session's meal to the day log and closes the session
func (s *MealService) SaveMeal(ctx context.Context, sessionID string) (*domain.Meal, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	meal := &domain.Meal{
		ID:            newID(),
		Date:          session.Date,
		Description:   session.Description,
		Items:         session.Meal.Items,
		TotalCalories: session.Meal.TotalCalories,
		TotalProtein:  session.Meal.TotalProtein,
		TotalCarbs:    session.Meal.TotalCarbs,
		TotalFats:     session.Meal.TotalFats,
		TotalWeight:   session.Meal.TotalWeight,
		SavedAt:       time.Now(),
	}

	if err := s.mealLog.Save(ctx, meal); err != nil {
		return nil, fmt.Errorf("saving meal: %w", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("[MEAL] Failed to delete session %s after save: %v", sessionID, err)
	}

	return meal, nil
}

// GetMealsByDate returns the committed meals logged for one day
func (s *MealService) GetMealsByDate(ctx context.Context, date string) ([]*domain.Meal, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}
	return s.mealLog.GetByDate(ctx, date)
}

// saveRecomputed recomputes the session's meal, stamps it, and persists it
func (s *MealService) saveRecomputed(ctx context.Context, session *domain.ParseSession) (*domain.ParseSession, error) {
	s.recomputeMeal(ctx, &session.Meal)
	session.UpdatedAt = time.Now()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving parse session: %w", err)
	}
	return session, nil
}

// recomputeMeal resolves weight and nutrition for every item, one at a time
// in item order, then rebuilds the totals from scratch. Recomputing an
// unchanged item list yields identical totals.
func (s *MealService) recomputeMeal(ctx context.Context, meal *domain.ParsedMeal) {
	for i := range meal.Items {
		item := &meal.Items[i]
		item.Weight = ResolveWeight(*item)
		item.Nutrition = s.resolver.Resolve(ctx, item.Name, item.Weight)
	}

	var calories, protein, carbs, fats, weight float64
	for _, item := range meal.Items {
		weight += item.Weight
		if item.Nutrition == nil {
			continue
		}
		calories += item.Nutrition.Calories
		protein += item.Nutrition.Protein
		carbs += item.Nutrition.Carbs
		fats += item.Nutrition.Fats
	}

	meal.TotalCalories = roundCalories(calories)
	meal.TotalProtein = roundMacro(protein)
	meal.TotalCarbs = roundMacro(carbs)
	meal.TotalFats = roundMacro(fats)
	meal.TotalWeight = weight
}

// normalizeDate validates a YYYY-MM-DD date, defaulting to today
func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidRequest)
	}
	return date, nil
}

// newID generates a random identifier for sessions and saved meals
func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
