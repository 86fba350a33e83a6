package domain

// FoodDBResponse represents the response from the hosted food-database
// parser endpoint
type FoodDBResponse struct {
	Text   string        `json:"text"`
	Parsed []FoodDBEntry `json:"parsed"`
	Hints  []FoodDBEntry `json:"hints,omitempty"`
}

// FoodDBEntry wraps one parsed food entry
type FoodDBEntry struct {
	Food FoodDBFood `json:"food"`
}

// FoodDBFood represents a food record from the food-database API. Nutrients
// are keyed by the API's fixed nutrient codes (ENERC_KCAL, PROCNT, ...).
type FoodDBFood struct {
	FoodID    string             `json:"foodId"`
	Label     string             `json:"label"`
	Category  string             `json:"category,omitempty"`
	Nutrients map[string]float64 `json:"nutrients"`
}
