package importer

import (
	"strings"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// ApplyRules sets the category of rows that have none from the first match
// rule whose glob matches the row description.
//
// Rules are applied by ascending priority. The input rows are not modified.
func ApplyRules(rows []RawRow, rules []models.MatchRule) []RawRow {
	ordered := slices.Clone(rules)
	slices.SortStableFunc(ordered, func(a, b models.MatchRule) int {
		switch {
		case a.Priority < b.Priority:
			return -1
		case a.Priority > b.Priority:
			return 1
		}
		return 0
	})

	result := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		row = row.Clone()

		category, _ := row.Get(FieldCategory)
		if coerceString(category) != "" {
			result = append(result, row)
			continue
		}

		d, _ := row.Get(FieldDescription)
		description := coerceString(d)

		for _, rule := range ordered {
			if glob.Glob(rule.Match, description) || glob.Glob(strings.ToLower(rule.Match), strings.ToLower(description)) {
				row.Set(FieldCategory, rule.Category)
				break
			}
		}

		result = append(result, row)
	}

	return result
}
