package domain

// ParsedFoodItem represents one food item extracted from a free-text meal description
type ParsedFoodItem struct {
	Name        string             `json:"name"`
	Quantity    float64            `json:"quantity"`
	Unit        string             `json:"unit"`
	Preparation string             `json:"preparation,omitempty"`
	Weight      float64            `json:"weight,omitempty"` // resolved mass in grams; 0 until resolved
	Nutrition   *NutritionQuantity `json:"nutrition,omitempty"`
}

// NutritionQuantity represents a nutrition amount, either per 100 g or scaled
// to an item's resolved weight
type NutritionQuantity struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"` // grams
	Carbs       float64 `json:"carbs"`   // grams
	Fats        float64 `json:"fats"`    // grams
	Fiber       float64 `json:"fiber,omitempty"`  // grams
	Sugar       float64 `json:"sugar,omitempty"`  // grams
	Sodium      float64 `json:"sodium,omitempty"` // milligrams
	ServingSize string  `json:"servingSize,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Nutrition data sources, recorded on NutritionQuantity.Source
const (
	SourceLLM          = "llm"
	SourceFoodDatabase = "food-database"
	SourceStaticTable  = "static-table"
)
