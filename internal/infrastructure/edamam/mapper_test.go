package edamam

import (
	"testing"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSumParsedNutrition(t *testing.T) {
	t.Run("sums nutrients across all parsed entries", func(t *testing.T) {
		response := &domain.FoodDBResponse{
			Parsed: []domain.FoodDBEntry{
				{Food: domain.FoodDBFood{
					Label: "Apple",
					Nutrients: map[string]float64{
						"ENERC_KCAL": 52.37,
						"PROCNT":     0.26,
						"FAT":        0.17,
						"CHOCDF":     13.81,
						"FIBTG":      2.4,
						"SUGAR":      10.39,
						"NA":         1,
					},
				}},
				{Food: domain.FoodDBFood{
					Label: "Banana",
					Nutrients: map[string]float64{
						"ENERC_KCAL": 89.11,
						"PROCNT":     1.09,
						"FAT":        0.33,
						"CHOCDF":     22.84,
						"FIBTG":      2.6,
						"SUGAR":      12.23,
						"NA":         1,
					},
				}},
			},
		}

		quantity := SumParsedNutrition(response)

		assert.Equal(t, 141.0, quantity.Calories)
		assert.Equal(t, 1.4, quantity.Protein)
		assert.Equal(t, 36.7, quantity.Carbs)
		assert.Equal(t, 0.5, quantity.Fats)
		assert.Equal(t, 5.0, quantity.Fiber)
		assert.Equal(t, 22.6, quantity.Sugar)
		assert.Equal(t, 2.0, quantity.Sodium)
		assert.Equal(t, domain.SourceFoodDatabase, quantity.Source)
	})

	t.Run("single entry rounds in place", func(t *testing.T) {
		response := &domain.FoodDBResponse{
			Parsed: []domain.FoodDBEntry{
				{Food: domain.FoodDBFood{
					Label: "Chicken Breast",
					Nutrients: map[string]float64{
						"ENERC_KCAL": 164.49,
						"PROCNT":     31.02,
						"FAT":        3.57,
						"CHOCDF":     0,
					},
				}},
			},
		}

		quantity := SumParsedNutrition(response)

		assert.Equal(t, 164.0, quantity.Calories)
		assert.Equal(t, 31.0, quantity.Protein)
		assert.Equal(t, 3.6, quantity.Fats)
		assert.Equal(t, 0.0, quantity.Carbs)
	})

	t.Run("entries without nutrient figures contribute zero", func(t *testing.T) {
		response := &domain.FoodDBResponse{
			Parsed: []domain.FoodDBEntry{
				{Food: domain.FoodDBFood{Label: "Mystery Food"}},
				{Food: domain.FoodDBFood{
					Label:     "Egg",
					Nutrients: map[string]float64{"ENERC_KCAL": 155, "PROCNT": 13},
				}},
			},
		}

		quantity := SumParsedNutrition(response)

		assert.Equal(t, 155.0, quantity.Calories)
		assert.Equal(t, 13.0, quantity.Protein)
	})

	t.Run("no entries yields zeros with the source still set", func(t *testing.T) {
		quantity := SumParsedNutrition(&domain.FoodDBResponse{})

		assert.Equal(t, 0.0, quantity.Calories)
		assert.Equal(t, domain.SourceFoodDatabase, quantity.Source)
	})
}

func TestRoundOneDecimal(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.04, 1.0},
		{1.05, 1.1},
		{31.02, 31.0},
		{0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, roundOneDecimal(tt.input))
		})
	}
}
