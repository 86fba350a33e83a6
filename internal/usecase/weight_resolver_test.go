package usecase

import (
	"math"
	"testing"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveWeight_MassUnits(t *testing.T) {
	testCases := []struct {
		name string
		item domain.ParsedFoodItem
		want float64
	}{
		{
			name: "grams pass through",
			item: domain.ParsedFoodItem{Name: "chicken breast", Quantity: 100, Unit: "g"},
			want: 100,
		},
		{
			name: "pounds convert by fixed factor",
			item: domain.ParsedFoodItem{Name: "chicken breast", Quantity: 2, Unit: "lb"},
			want: 907.184,
		},
		{
			name: "kilograms convert",
			item: domain.ParsedFoodItem{Name: "rice_white_cooked", Quantity: 1.5, Unit: "kg"},
			want: 1500,
		},
		{
			name: "ounces convert",
			item: domain.ParsedFoodItem{Name: "salmon", Quantity: 4, Unit: "oz"},
			want: 113.4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveWeight(tc.item)
			if !almostEqual(got, tc.want) {
				t.Errorf("ResolveWeight(%+v) = %v, want %v", tc.item, got, tc.want)
			}
		})
	}
}

func TestResolveWeight_VolumeUnits(t *testing.T) {
	t.Run("cup of rice uses the density table", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "rice_white_cooked", Quantity: 1, Unit: "cup"}
		got := ResolveWeight(item)
		if !almostEqual(got, 158) {
			t.Errorf("weight = %v, want 158", got)
		}
	})

	t.Run("unknown food uses the default density", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "mystery stew", Quantity: 1, Unit: "cup"}
		got := ResolveWeight(item)
		if !almostEqual(got, 100) {
			t.Errorf("weight = %v, want 100 (default density)", got)
		}
	})

	t.Run("volume scales with quantity", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "mystery stew", Quantity: 2, Unit: "cups"}
		got := ResolveWeight(item)
		if !almostEqual(got, 200) {
			t.Errorf("weight = %v, want 200", got)
		}
	})

	t.Run("tablespoon rescales against the reference cup", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "olive_oil", Quantity: 1, Unit: "tbsp"}
		want := 14.787 * 216 / 236.588
		got := ResolveWeight(item)
		if !almostEqual(got, want) {
			t.Errorf("weight = %v, want %v", got, want)
		}
	})

	t.Run("milliliters rescale the same way", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "milk_whole", Quantity: 250, Unit: "ml"}
		want := 250 * 1 * 244 / 236.588
		got := ResolveWeight(item)
		if !almostEqual(got, want) {
			t.Errorf("weight = %v, want %v", got, want)
		}
	})
}

func TestResolveWeight_CountUnits(t *testing.T) {
	t.Run("per-item weight wins for known foods", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "egg_whole", Quantity: 2, Unit: "count"}
		got := ResolveWeight(item)
		if !almostEqual(got, 100) {
			t.Errorf("weight = %v, want 100 (2 x 50g)", got)
		}
	})

	t.Run("food weight wins over the size unit", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "banana", Quantity: 1, Unit: "large"}
		got := ResolveWeight(item)
		if !almostEqual(got, 118) {
			t.Errorf("weight = %v, want 118", got)
		}
	})

	t.Run("unit factor is used when the food is unknown", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "mystery loaf", Quantity: 2, Unit: "slices"}
		got := ResolveWeight(item)
		if !almostEqual(got, 50) {
			t.Errorf("weight = %v, want 50 (2 x 25g per slice)", got)
		}
	})

	t.Run("size unit factor applies to unknown foods", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "mystery fruit", Quantity: 1, Unit: "large"}
		got := ResolveWeight(item)
		if !almostEqual(got, 150) {
			t.Errorf("weight = %v, want 150", got)
		}
	})

	t.Run("unrecognized unit collapses quantity to grams", func(t *testing.T) {
		item := domain.ParsedFoodItem{Name: "mystery bite", Quantity: 3, Unit: "count"}
		got := ResolveWeight(item)
		if !almostEqual(got, 3) {
			t.Errorf("weight = %v, want 3 (factor defaults to 1)", got)
		}
	})
}
