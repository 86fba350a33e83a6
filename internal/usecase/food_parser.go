package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

// FoodItemParser turns a free-text meal description into an ordered list of
// parsed food items. It never fails: segments that match no shape are
// silently dropped.
type FoodItemParser struct {
	enableDebugLogging bool
}

// segmentShape pairs one regular-expression shape with its field extractor.
// Shapes are tried in slice order and the first match wins.
type segmentShape struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) domain.ParsedFoodItem
}

// Compiled segment shapes in strict priority order. More specific shapes
// come before the catch-all; once a shape matches, later ones are never tried.
var segmentShapes = []segmentShape{
	{
		// "2 eggs", "3 whole eggs" — bare quantity and food, no unit
		name:    "quantity-food",
		pattern: regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(?:whole\s+)?([a-z]+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity: parseQuantity(m[1]),
				Unit:     "count",
				Name:     m[2],
			}
		},
	},
	{
		// "1 cup cooked rice", "2 cups rice" — quantity, unit, optional preparation, food
		name:    "quantity-unit-food",
		pattern: regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+([a-z]+)\s+(cooked\s+)?([a-z]+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity:    parseQuantity(m[1]),
				Unit:        m[2],
				Preparation: strings.TrimSpace(m[3]),
				Name:        m[4],
			}
		},
	},
	{
		// "2 slices whole wheat bread" — quantity, unit, multi-word food phrase.
		// The second token is taken as the unit unconditionally, which
		// misreads compound units like "fl oz" (known limitation).
		name:    "quantity-unit-phrase",
		pattern: regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+([a-z]+)\s+(.+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity: parseQuantity(m[1]),
				Unit:     m[2],
				Name:     m[3],
			}
		},
	},
	{
		// "half cup oats", "1/2 cup oats" — fractional quantity, unit, food
		name:    "fraction-unit-food",
		pattern: regexp.MustCompile(`^(half|quarter|third|two thirds|three quarters|1/2|1/4|1/3|2/3|3/4)\s+([a-z]+)\s+([a-z]+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity: parseQuantity(m[1]),
				Unit:     m[2],
				Name:     m[3],
			}
		},
	},
	{
		// "large banana" — the size word doubles as the unit, quantity 1
		name:    "size-food",
		pattern: regexp.MustCompile(`^(large|medium|small)\s+([a-z]+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity: 1,
				Unit:     m[1],
				Name:     m[2],
			}
		},
	},
	{
		// catch-all: the whole segment is the food name
		name:    "catch-all",
		pattern: regexp.MustCompile(`^(.+)$`),
		extract: func(m []string) domain.ParsedFoodItem {
			return domain.ParsedFoodItem{
				Quantity: 1,
				Unit:     "count",
				Name:     m[1],
			}
		},
	},
}

// Fixed decimal values for fraction words ("third" is 0.333, not 1/3)
var fractionValues = map[string]float64{
	"half":           0.5,
	"1/2":            0.5,
	"quarter":        0.25,
	"1/4":            0.25,
	"third":          0.333,
	"1/3":            0.333,
	"two thirds":     0.667,
	"2/3":            0.667,
	"three quarters": 0.75,
	"3/4":            0.75,
}

// mealStopWords are connector words stripped from segments before matching
var mealStopWords = map[string]bool{
	"and":       true,
	"with":      true,
	"plus":      true,
	"including": true,
}

// Segments split on commas and semicolons
var segmentSplitPattern = regexp.MustCompile(`[,;]`)

// NewFoodItemParser creates a new food item parser
func NewFoodItemParser(enableDebugLogging bool) *FoodItemParser {
	return &FoodItemParser{
		enableDebugLogging: enableDebugLogging,
	}
}

// ParseDescription splits a meal description into segments and extracts one
// ParsedFoodItem per recognized segment. Segment order is preserved.
// An empty result means nothing in the description was recognizable.
func (p *FoodItemParser) ParseDescription(description string) []domain.ParsedFoodItem {
	var items []domain.ParsedFoodItem

	for _, segment := range segmentSplitPattern.Split(description, -1) {
		cleaned := cleanSegment(segment)
		if cleaned == "" {
			continue
		}

		item, shape := matchSegment(cleaned)
		item.Name = canonicalFoodName(item.Name)

		if p.enableDebugLogging {
			log.Printf("[PARSER] Segment %q matched shape %q: name=%q qty=%.3f unit=%q",
				cleaned, shape, item.Name, item.Quantity, item.Unit)
		}

		items = append(items, item)
	}

	return items
}

// cleanSegment lowercases a segment, strips stop words and edge punctuation,
// and collapses whitespace. Returns "" when nothing usable remains.
func cleanSegment(segment string) string {
	words := strings.Fields(strings.ToLower(segment))
	var kept []string

	for _, word := range words {
		word = strings.Trim(word, ",.!?;:'\"()")
		if word == "" || mealStopWords[word] {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}

// matchSegment tries each shape in priority order and extracts fields from
// the first match. The catch-all shape always matches a non-empty segment.
func matchSegment(cleaned string) (domain.ParsedFoodItem, string) {
	for _, shape := range segmentShapes {
		if m := shape.pattern.FindStringSubmatch(cleaned); m != nil {
			return shape.extract(m), shape.name
		}
	}

	// Unreachable for non-empty input, but keep the degradation explicit
	return domain.ParsedFoodItem{Name: cleaned, Quantity: 1, Unit: "count"}, "fallback"
}

// parseQuantity converts a quantity token to a number. Fraction words use
// the fixed decimal table; anything unparseable defaults to 1.
func parseQuantity(s string) float64 {
	if v, ok := fractionValues[s]; ok {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return 1
}
