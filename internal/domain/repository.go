package domain

import "context"

// MealTextParser defines the interface for the LLM meal-parse tier
type MealTextParser interface {
	ParseMealText(ctx context.Context, text string) (*LLMParsedMeal, error)
}

// FoodDataClient defines the interface for the hosted food-database tier
type FoodDataClient interface {
	LookupFood(ctx context.Context, ingredient string) (*FoodDBResponse, error)
}

// SessionRepository defines the interface for parse-session storage
type SessionRepository interface {
	Get(ctx context.Context, id string) (*ParseSession, error)
	Save(ctx context.Context, session *ParseSession) error
	Delete(ctx context.Context, id string) error
}

// MealLogRepository defines the interface for the committed meal day log
type MealLogRepository interface {
	Save(ctx context.Context, meal *Meal) error
	GetByDate(ctx context.Context, date string) ([]*Meal, error)
	Delete(ctx context.Context, id string) error
}
