package edamam

import (
	"math"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

// Nutrient codes used by the food-database API for key nutrients
const (
	NutrientEnergy       = "ENERC_KCAL" // Calories (kcal)
	NutrientProtein      = "PROCNT"     // Protein (g)
	NutrientTotalFat     = "FAT"        // Total Fat (g)
	NutrientCarbohydrate = "CHOCDF"     // Carbohydrates (g)
	NutrientFiber        = "FIBTG"      // Dietary Fiber (g)
	NutrientSugar        = "SUGAR"      // Sugars (g)
	NutrientSodium       = "NA"         // Sodium (mg)
)

// SumParsedNutrition folds the nutrients of every parsed entry into one
// NutritionQuantity. Entries the API recognized but carries no figures for
// contribute zero. Calories round to a whole number, the other nutrients
// to one decimal place.
func SumParsedNutrition(response *domain.FoodDBResponse) *domain.NutritionQuantity {
	quantity := &domain.NutritionQuantity{
		Source: domain.SourceFoodDatabase,
	}

	for _, entry := range response.Parsed {
		nutrients := entry.Food.Nutrients
		quantity.Calories += nutrients[NutrientEnergy]
		quantity.Protein += nutrients[NutrientProtein]
		quantity.Carbs += nutrients[NutrientCarbohydrate]
		quantity.Fats += nutrients[NutrientTotalFat]
		quantity.Fiber += nutrients[NutrientFiber]
		quantity.Sugar += nutrients[NutrientSugar]
		quantity.Sodium += nutrients[NutrientSodium]
	}

	quantity.Calories = math.Round(quantity.Calories)
	quantity.Protein = roundOneDecimal(quantity.Protein)
	quantity.Carbs = roundOneDecimal(quantity.Carbs)
	quantity.Fats = roundOneDecimal(quantity.Fats)
	quantity.Fiber = roundOneDecimal(quantity.Fiber)
	quantity.Sugar = roundOneDecimal(quantity.Sugar)
	quantity.Sodium = roundOneDecimal(quantity.Sodium)

	return quantity
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
