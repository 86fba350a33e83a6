package usecase

import "github.com/saisandeepkoritala/Wellness/internal/domain"

// referenceCupML is the volume the density table is expressed against:
// grams per one US cup of 236.588 ml.
const referenceCupML = 236.588

// gramsPerMassUnit maps direct mass units to grams per unit
var gramsPerMassUnit = map[string]float64{
	"g":         1,
	"gram":      1,
	"grams":     1,
	"kg":        1000,
	"kilogram":  1000,
	"kilograms": 1000,
	"oz":        28.35,
	"ounce":     28.35,
	"ounces":    28.35,
	"lb":        453.592,
	"lbs":       453.592,
	"pound":     453.592,
	"pounds":    453.592,
}

// mlPerVolumeUnit maps volumetric units to milliliters per unit
var mlPerVolumeUnit = map[string]float64{
	"cup":         referenceCupML,
	"cups":        referenceCupML,
	"tablespoon":  14.787,
	"tablespoons": 14.787,
	"tbsp":        14.787,
	"teaspoon":    4.929,
	"teaspoons":   4.929,
	"tsp":         4.929,
	"ml":          1,
	"milliliter":  1,
	"milliliters": 1,
	"l":           1000,
	"liter":       1000,
	"liters":      1000,
	"floz":        29.574,
}

// gramsPerCount holds per-item weights for count-style resolution. Keys are
// canonical food names (checked first) and count-unit tokens (checked
// second). Units not found anywhere fall back to a factor of 1, which
// collapses the quantity to a gram count (known approximation).
var gramsPerCount = map[string]float64{
	// Per-item food weights
	"egg_whole":    50,
	"egg_white":    33,
	"banana":       118,
	"apple":        182,
	"orange":       131,
	"avocado":      150,
	"potato":       173,
	"sweet_potato": 130,
	"tomato":       123,
	"carrot":       61,
	"tortilla":     45,
	"bagel":        98,

	// Count-unit tokens
	"slice":    25,
	"slices":   25,
	"piece":    30,
	"pieces":   30,
	"scoop":    30,
	"scoops":   30,
	"serving":  100,
	"servings": 100,

	// Size words used as units by the "<size> <food>" shape
	"small":  80,
	"medium": 120,
	"large":  150,
}

// foodDensity maps canonical food names to grams per reference cup.
// Foods absent from the table use defaultDensity.
var foodDensity = map[string]float64{
	"rice_white_cooked": 158,
	"rice_brown_cooked": 195,
	"quinoa_cooked":     185,
	"pasta_cooked":      140,
	"oats":              90,
	"flour":             120,
	"sugar":             200,
	"milk_whole":        244,
	"milk_skim":         245,
	"yogurt_plain":      245,
	"yogurt_greek":      245,
	"peanut_butter":     258,
	"olive_oil":         216,
	"butter":            227,
	"honey":             339,
	"broccoli":          91,
	"spinach":           30,
	"strawberries":      152,
	"blueberries":       148,
	"almonds":           143,
	"water":             236.588,
}

// defaultDensity is used for foods with no density-table entry (g per cup)
const defaultDensity = 100

// ResolveWeight estimates an item's mass in grams. Pure lookup arithmetic:
// mass units convert directly, volume units go through the food's density
// against the reference cup, and everything else is count-style.
func ResolveWeight(item domain.ParsedFoodItem) float64 {
	if grams, ok := gramsPerMassUnit[item.Unit]; ok {
		return item.Quantity * grams
	}

	if ml, ok := mlPerVolumeUnit[item.Unit]; ok {
		return item.Quantity * ml * densityFor(item.Name) / referenceCupML
	}

	return item.Quantity * countFactor(item.Name, item.Unit)
}

// densityFor returns the grams-per-reference-cup density for a food
func densityFor(name string) float64 {
	if d, ok := foodDensity[name]; ok {
		return d
	}
	return defaultDensity
}

// countFactor resolves the grams-per-unit factor for count-style items:
// the food's own per-item weight wins over the unit token's factor.
func countFactor(name, unit string) float64 {
	if grams, ok := gramsPerCount[name]; ok {
		return grams
	}
	if grams, ok := gramsPerCount[unit]; ok {
		return grams
	}
	return 1
}
