package domain

import "time"

// ParsedMeal is the aggregate result of one parse operation. Totals always
// equal the sum of the items' scaled nutrition at their current weights;
// any item edit or removal requires full recomputation.
type ParsedMeal struct {
	Items         []ParsedFoodItem `json:"items"`
	TotalCalories float64          `json:"totalCalories"`
	TotalProtein  float64          `json:"totalProtein"`
	TotalCarbs    float64          `json:"totalCarbs"`
	TotalFats     float64          `json:"totalFats"`
	TotalWeight   float64          `json:"totalWeight"` // grams
}

// ParseSession represents one in-progress parse-review-save cycle. Sessions
// live only in the session store and are discarded on save or expiry.
type ParseSession struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Description string     `json:"description"`
	Meal        ParsedMeal `json:"meal"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Meal is a committed meal as stored in the day log. Items are immutable
// once the meal is saved.
type Meal struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
	Items         []ParsedFoodItem `json:"items"`
	TotalCalories float64          `json:"totalCalories"`
	TotalProtein  float64          `json:"totalProtein"`
	TotalCarbs    float64          `json:"totalCarbs"`
	TotalFats     float64          `json:"totalFats"`
	TotalWeight   float64          `json:"totalWeight"`
	SavedAt       time.Time        `json:"savedAt"`
}

// ParseMealRequest represents a meal parse request
type ParseMealRequest struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date,omitempty"`
}

// UpdateItemRequest represents a partial edit to one parsed item during the
// review step. Zero-valued fields leave the item's field unchanged.
type UpdateItemRequest struct {
	Name        string  `json:"name,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Preparation string  `json:"preparation,omitempty"`
}
