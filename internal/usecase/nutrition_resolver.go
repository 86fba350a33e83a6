package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"github.com/saisandeepkoritala/Wellness/internal/infrastructure/edamam"
)

// NutritionResolver resolves a food name and an optional mass to nutrition
// values through a three-tier fallback chain: LLM parse, hosted food
// database, static per-100 g table. The static tier always produces a
// result, so Resolve never fails.
type NutritionResolver struct {
	attempts           []resolveAttempt
	enableDebugLogging bool
}

// resolveAttempt is one ordered tier of the fallback chain
type resolveAttempt struct {
	name string
	fn   func(ctx context.Context, food string, weight float64) (*domain.NutritionQuantity, error)
}

// NewNutritionResolver creates a resolver. A nil client disables its tier;
// the chain then skips straight to the next one.
func NewNutritionResolver(
	llm domain.MealTextParser,
	foodDB domain.FoodDataClient,
	enableDebugLogging bool,
) *NutritionResolver {
	r := &NutritionResolver{
		enableDebugLogging: enableDebugLogging,
	}

	if llm != nil {
		r.attempts = append(r.attempts, resolveAttempt{
			name: "llm",
			fn: func(ctx context.Context, food string, weight float64) (*domain.NutritionQuantity, error) {
				return resolveWithLLM(ctx, llm, food, weight)
			},
		})
	}
	if foodDB != nil {
		r.attempts = append(r.attempts, resolveAttempt{
			name: "food-database",
			fn: func(ctx context.Context, food string, weight float64) (*domain.NutritionQuantity, error) {
				return resolveWithFoodDB(ctx, foodDB, food, weight)
			},
		})
	}

	return r
}

// Resolve runs the tier chain for one food name. A weight of 0 (or less)
// means "per 100 g reference". External tiers that fail are logged and
// skipped; the static table is the terminal tier.
func (r *NutritionResolver) Resolve(ctx context.Context, food string, weight float64) *domain.NutritionQuantity {
	for _, attempt := range r.attempts {
		quantity, err := attempt.fn(ctx, food, weight)
		if err != nil {
			log.Printf("[RESOLVER] %s tier failed for %q, falling through: %v", attempt.name, food, err)
			continue
		}
		if r.enableDebugLogging {
			log.Printf("[RESOLVER] %s tier resolved %q: %.0f kcal", attempt.name, food, quantity.Calories)
		}
		return quantity
	}

	return resolveFromStaticTable(food, weight)
}

// resolveWithLLM asks the language model to parse the lookup text and sums
// the macros of every food it returns. Zero foods counts as a failure.
func resolveWithLLM(ctx context.Context, client domain.MealTextParser, food string, weight float64) (*domain.NutritionQuantity, error) {
	parsed, err := client.ParseMealText(ctx, lookupText(food, weight))
	if err != nil {
		return nil, err
	}
	if len(parsed.Foods) == 0 {
		return nil, fmt.Errorf("%w: empty foods list", domain.ErrLLMInvalidResponse)
	}

	quantity := &domain.NutritionQuantity{
		Source:      domain.SourceLLM,
		ServingSize: servingSize(weight),
	}
	for _, f := range parsed.Foods {
		quantity.Calories += f.Calories
		quantity.Protein += f.Protein
		quantity.Carbs += f.Carbs
		quantity.Fats += f.Fats
	}

	return quantity, nil
}

// resolveWithFoodDB submits the lookup text to the hosted food database and
// sums nutrition across all parsed entries. The API's own per-entry figures
// are used as returned; the weight only travels as a hint in the query text.
func resolveWithFoodDB(ctx context.Context, client domain.FoodDataClient, food string, weight float64) (*domain.NutritionQuantity, error) {
	response, err := client.LookupFood(ctx, lookupText(food, weight))
	if err != nil {
		return nil, err
	}
	if len(response.Parsed) == 0 {
		return nil, domain.ErrFoodDBNoResults
	}

	quantity := edamam.SumParsedNutrition(response)
	quantity.ServingSize = servingSize(weight)
	return quantity, nil
}

// staticNutritionTable holds per-100 g values for common foods. Lookup is a
// case-insensitive substring match in both directions; multiple matches are
// averaged.
var staticNutritionTable = map[string]domain.NutritionQuantity{
	"chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	"chicken thigh":  {Calories: 209, Protein: 26, Carbs: 0, Fats: 10.9},
	"ground beef":    {Calories: 250, Protein: 26, Carbs: 0, Fats: 15},
	"steak":          {Calories: 271, Protein: 25, Carbs: 0, Fats: 19},
	"pork chop":      {Calories: 231, Protein: 25, Carbs: 0, Fats: 14},
	"turkey":         {Calories: 189, Protein: 29, Carbs: 0, Fats: 7},
	"bacon":          {Calories: 541, Protein: 37, Carbs: 1.4, Fats: 42},
	"salmon":         {Calories: 208, Protein: 20, Carbs: 0, Fats: 13},
	"tuna":           {Calories: 132, Protein: 28, Carbs: 0, Fats: 1.3},
	"shrimp":         {Calories: 99, Protein: 24, Carbs: 0.2, Fats: 0.3},
	"egg":            {Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11},
	"tofu":           {Calories: 76, Protein: 8, Carbs: 1.9, Fats: 4.8},
	"rice":           {Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3},
	"pasta":          {Calories: 158, Protein: 5.8, Carbs: 31, Fats: 0.9},
	"bread":          {Calories: 265, Protein: 9, Carbs: 49, Fats: 3.2},
	"oats":           {Calories: 389, Protein: 16.9, Carbs: 66, Fats: 6.9},
	"quinoa":         {Calories: 120, Protein: 4.4, Carbs: 21, Fats: 1.9},
	"baked potato":   {Calories: 93, Protein: 2.5, Carbs: 21, Fats: 0.1},
	"sweet potato":   {Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1},
	"banana":         {Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3},
	"apple":          {Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2},
	"orange":         {Calories: 47, Protein: 0.9, Carbs: 12, Fats: 0.1},
	"avocado":        {Calories: 160, Protein: 2, Carbs: 9, Fats: 15},
	"broccoli":       {Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4},
	"spinach":        {Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4},
	"carrot":         {Calories: 41, Protein: 0.9, Carbs: 10, Fats: 0.2},
	"tomato":         {Calories: 18, Protein: 0.9, Carbs: 3.9, Fats: 0.2},
	"milk":           {Calories: 61, Protein: 3.2, Carbs: 4.8, Fats: 3.3},
	"yogurt":         {Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.4},
	"cheese":         {Calories: 402, Protein: 25, Carbs: 1.3, Fats: 33},
	"butter":         {Calories: 717, Protein: 0.9, Carbs: 0.1, Fats: 81},
	"peanut butter":  {Calories: 588, Protein: 25, Carbs: 20, Fats: 50},
	"olive oil":      {Calories: 884, Protein: 0, Carbs: 0, Fats: 100},
	"almonds":        {Calories: 579, Protein: 21, Carbs: 22, Fats: 50},
	"honey":          {Calories: 304, Protein: 0.3, Carbs: 82, Fats: 0},
}

// genericNutrition is the per-100 g default for foods with no table match
var genericNutrition = domain.NutritionQuantity{
	Calories: 200,
	Protein:  10,
	Carbs:    25,
	Fats:     8,
}

// resolveFromStaticTable is the terminal tier: match, average, scale.
// It cannot fail.
func resolveFromStaticTable(food string, weight float64) *domain.NutritionQuantity {
	normalized := strings.ToLower(strings.ReplaceAll(food, "_", " "))

	var matched []domain.NutritionQuantity
	for key, values := range staticNutritionTable {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			matched = append(matched, values)
		}
	}

	per100 := genericNutrition
	if len(matched) > 0 {
		per100 = averageNutrition(matched)
	}
	per100.Source = domain.SourceStaticTable

	if weight <= 0 {
		per100.ServingSize = "100g"
		return &per100
	}

	factor := weight / 100
	return &domain.NutritionQuantity{
		Calories:    roundCalories(per100.Calories * factor),
		Protein:     roundMacro(per100.Protein * factor),
		Carbs:       roundMacro(per100.Carbs * factor),
		Fats:        roundMacro(per100.Fats * factor),
		Source:      domain.SourceStaticTable,
		ServingSize: servingSize(weight),
	}
}

// averageNutrition averages per-100 g values across table matches
func averageNutrition(matched []domain.NutritionQuantity) domain.NutritionQuantity {
	var sum domain.NutritionQuantity
	for _, m := range matched {
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fats += m.Fats
	}

	n := float64(len(matched))
	return domain.NutritionQuantity{
		Calories: sum.Calories / n,
		Protein:  sum.Protein / n,
		Carbs:    sum.Carbs / n,
		Fats:     sum.Fats / n,
	}
}

// lookupText builds the text sent to external tiers, suffixing the target
// weight in grams when one is known.
func lookupText(food string, weight float64) string {
	if weight > 0 {
		return fmt.Sprintf("%s %.0fg", food, weight)
	}
	return food
}

// servingSize formats a weight for the ServingSize field
func servingSize(weight float64) string {
	if weight > 0 {
		return fmt.Sprintf("%.0fg", weight)
	}
	return "100g"
}

// roundCalories rounds calories to the nearest whole number
func roundCalories(v float64) float64 {
	return math.Round(v)
}

// roundMacro rounds a macro value to one decimal place
func roundMacro(v float64) float64 {
	return math.Round(v*10) / 10
}
