package aggregate

import (
	"time"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type CategoryBucket struct {
	Name   string          `json:"name" example:"Transport"`
	Amount decimal.Decimal `json:"amount" example:"69.80"`
}

// CategorySeries is the spending per category in a window.
type CategorySeries struct {
	Window  Window           `json:"window"`
	Buckets []CategoryBucket `json:"buckets"`
	Total   decimal.Decimal  `json:"total" example:"124"`
}

// Categories sums the expenses in the CategoryWindow of the period by
// category name. The category of the expenses must be loaded.
//
// Buckets are sorted by name.
func Categories(expenses []models.Expense, now time.Time, period Period) (CategorySeries, error) {
	window, err := CategoryWindow(now, period)
	if err != nil {
		return CategorySeries{}, err
	}

	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, e := range expenses {
		if !window.Contains(e.TransactionDate) {
			continue
		}

		sums[e.Category.Name] = sums[e.Category.Name].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	names := maps.Keys(sums)
	slices.Sort(names)

	buckets := make([]CategoryBucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, CategoryBucket{Name: name, Amount: sums[name]})
	}

	return CategorySeries{
		Window:  window,
		Buckets: buckets,
		Total:   total,
	}, nil
}
