package domain

// LLMParsedMeal represents the JSON object the language model is asked to
// embed in its reply: one or more food items plus a meal-level confidence
type LLMParsedMeal struct {
	Foods      []LLMParsedFood `json:"foods"`
	Confidence float64         `json:"confidence"` // 0-100
}

// LLMParsedFood represents a single food item as extracted by the language
// model. All numeric fields are coerced parse-or-zero from the raw reply.
type LLMParsedFood struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Weight   float64 `json:"weight"` // grams
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
