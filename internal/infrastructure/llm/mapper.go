package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

// llmFoodPayload mirrors one food object with loose typing. Models quote
// numbers or swap field types often enough that strict tags would reject
// otherwise usable replies.
type llmFoodPayload struct {
	Name     any `json:"name"`
	Quantity any `json:"quantity"`
	Unit     any `json:"unit"`
	Weight   any `json:"weight"`
	Calories any `json:"calories"`
	Protein  any `json:"protein"`
	Carbs    any `json:"carbs"`
	Fats     any `json:"fats"`
}

type llmMealPayload struct {
	Foods      []llmFoodPayload `json:"foods"`
	Confidence any              `json:"confidence"`
}

// ExtractParsedMeal pulls the JSON object out of a raw model reply and maps
// it onto the domain model, coercing every numeric field parse-or-zero.
func ExtractParsedMeal(reply string) (*domain.LLMParsedMeal, error) {
	cleaned, err := extractJSONObject(reply)
	if err != nil {
		return nil, err
	}

	var payload llmMealPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMInvalidResponse, err)
	}

	meal := &domain.LLMParsedMeal{
		Confidence: asFloat(payload.Confidence),
	}
	for _, food := range payload.Foods {
		meal.Foods = append(meal.Foods, domain.LLMParsedFood{
			Name:     asString(food.Name),
			Quantity: asFloat(food.Quantity),
			Unit:     asString(food.Unit),
			Weight:   asFloat(food.Weight),
			Calories: asFloat(food.Calories),
			Protein:  asFloat(food.Protein),
			Carbs:    asFloat(food.Carbs),
			Fats:     asFloat(food.Fats),
		})
	}

	return meal, nil
}

// extractJSONObject strips markdown formatting and slices the reply down to
// the outermost brace pair
func extractJSONObject(reply string) (string, error) {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```", "")
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end <= start {
		return "", domain.ErrLLMInvalidResponse
	}

	return reply[start : end+1], nil
}

// asFloat coerces a loosely typed JSON value to float64
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return 0
}

// asString coerces a loosely typed JSON value to string
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
