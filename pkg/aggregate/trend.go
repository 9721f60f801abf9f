package aggregate

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/shopspring/decimal"
)

// BarBucket is the expense sum for one day or month.
type BarBucket struct {
	Start       time.Time       `json:"start" example:"2024-03-08T00:00:00Z"`
	Label       string          `json:"label" example:"8/3"`
	TotalAmount decimal.Decimal `json:"totalAmount" example:"20"`
}

// Trend sums expenses into one bucket per day for week and month and one
// bucket per month for year. Every bucket of the window is returned, in
// ascending order.
func Trend(expenses []models.Expense, now time.Time, period Period) ([]BarBucket, error) {
	window, err := TrendWindow(now, period)
	if err != nil {
		return nil, err
	}

	if period == PeriodYear {
		return monthBuckets(expenses, window), nil
	}

	return dayBuckets(expenses, window), nil
}

func dayBuckets(expenses []models.Expense, window Window) []BarBucket {
	buckets := []BarBucket{}
	index := make(map[string]int)

	for d := window.From; !d.After(window.Until); d = d.AddDate(0, 0, 1) {
		index[d.Format(time.DateOnly)] = len(buckets)
		buckets = append(buckets, BarBucket{
			Start:       d,
			Label:       types.DayLabel(d),
			TotalAmount: decimal.Zero,
		})
	}

	for _, e := range expenses {
		if i, ok := index[types.DateOf(e.TransactionDate).Format(time.DateOnly)]; ok {
			buckets[i].TotalAmount = buckets[i].TotalAmount.Add(e.Amount)
		}
	}

	return buckets
}

func monthBuckets(expenses []models.Expense, window Window) []BarBucket {
	buckets := []BarBucket{}
	index := make(map[string]int)

	for m := types.MonthOf(window.From); !m.After(types.MonthOf(window.Until)); m = m.AddDate(0, 1) {
		index[m.String()] = len(buckets)
		buckets = append(buckets, BarBucket{
			Start:       m.Time(),
			Label:       m.Label(),
			TotalAmount: decimal.Zero,
		})
	}

	for _, e := range expenses {
		if i, ok := index[types.MonthOf(e.TransactionDate).String()]; ok {
			buckets[i].TotalAmount = buckets[i].TotalAmount.Add(e.Amount)
		}
	}

	return buckets
}
