package importer

import "golang.org/x/exp/slices"

// FixedCategory is one of the categories imported rows can be assigned to.
type FixedCategory struct {
	Name   string `json:"name" example:"Transport"`
	IconID int    `json:"iconId" example:"2"`
}

// FixedCategories are the categories accepted in imported files, together
// with the icon the category is created with on first use.
var FixedCategories = []FixedCategory{
	{"Food", 1},
	{"Transport", 2},
	{"Housing", 3},
	{"Utilities", 4},
	{"Health", 5},
	{"Entertainment", 6},
	{"Shopping", 7},
	{"Education", 8},
	{"Other", 9},
}

// FixedCategoryIcon returns the icon ID for a fixed category name.
func FixedCategoryIcon(name string) (int, bool) {
	idx := slices.IndexFunc(FixedCategories, func(c FixedCategory) bool { return c.Name == name })
	if idx == -1 {
		return 0, false
	}

	return FixedCategories[idx].IconID, true
}
