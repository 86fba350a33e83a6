package usecase

import "strings"

// foodAlias maps a colloquial food phrase to its canonical identifier
type foodAlias struct {
	phrase    string
	canonical string
}

// foodAliases is scanned in declaration order: exact match first, then a
// substring pass. More specific phrases are listed before shorter ones so
// the substring pass resolves them first. Unmatched names pass through
// unchanged, so aliasing never fails.
var foodAliases = []foodAlias{
	{"scrambled eggs", "egg_whole"},
	{"fried eggs", "egg_whole"},
	{"boiled eggs", "egg_whole"},
	{"egg whites", "egg_white"},
	{"egg white", "egg_white"},
	{"eggs", "egg_whole"},
	{"egg", "egg_whole"},
	{"cooked rice", "rice_white_cooked"},
	{"white rice", "rice_white_cooked"},
	{"brown rice", "rice_brown_cooked"},
	{"fried rice", "rice_white_cooked"},
	{"rice", "rice_white_cooked"},
	{"rolled oats", "oats"},
	{"oatmeal", "oats"},
	{"porridge", "oats"},
	{"whole milk", "milk_whole"},
	{"skim milk", "milk_skim"},
	{"milk", "milk_whole"},
	{"greek yogurt", "yogurt_greek"},
	{"yoghurt", "yogurt_plain"},
	{"yogurt", "yogurt_plain"},
	{"peanut butter", "peanut_butter"},
	{"olive oil", "olive_oil"},
	{"french fries", "potato_fries"},
	{"fries", "potato_fries"},
	{"mashed potatoes", "potato_mashed"},
	{"sweet potato", "sweet_potato"},
	{"toast", "bread_white"},
	{"bananas", "banana"},
	{"apples", "apple"},
}

// canonicalFoodName maps a parsed food phrase through the alias table.
// Lookup is exact-match first, then substring (alias phrase contained in
// the name) in table order; without a match the name is returned verbatim.
func canonicalFoodName(name string) string {
	name = strings.TrimSpace(name)

	for _, a := range foodAliases {
		if a.phrase == name {
			return a.canonical
		}
	}

	for _, a := range foodAliases {
		if strings.Contains(name, a.phrase) {
			return a.canonical
		}
	}

	return name
}
