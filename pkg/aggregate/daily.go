package aggregate

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/shopspring/decimal"
)

// DailyBucket is the income and expense sum for one day of the month.
type DailyBucket struct {
	Date          time.Time       `json:"date" example:"2024-03-08T00:00:00Z"`
	Label         string          `json:"label" example:"8/3"`
	IncomeAmount  decimal.Decimal `json:"incomeAmount" example:"0"`
	ExpenseAmount decimal.Decimal `json:"expenseAmount" example:"20"`
}

// Daily sums incomes and expenses per day of the month of now.
//
// Records are assigned to buckets by their day of the month only. Callers
// pass the records of MonthWindow, records of other months end up in the
// bucket with the same day. Days without income and expenses are left out.
func Daily(expenses []models.Expense, incomes []models.Income, now time.Time) []DailyBucket {
	month := types.MonthOf(now)
	days := month.Days()

	expenseSums := make([]decimal.Decimal, days+1)
	incomeSums := make([]decimal.Decimal, days+1)

	for _, e := range expenses {
		day := e.TransactionDate.Day()
		if day <= days {
			expenseSums[day] = expenseSums[day].Add(e.Amount)
		}
	}

	for _, i := range incomes {
		day := i.TransactionDate.Day()
		if day <= days {
			incomeSums[day] = incomeSums[day].Add(i.Amount)
		}
	}

	buckets := []DailyBucket{}
	for day := 1; day <= days; day++ {
		if expenseSums[day].IsZero() && incomeSums[day].IsZero() {
			continue
		}

		date := month.Time().AddDate(0, 0, day-1)
		buckets = append(buckets, DailyBucket{
			Date:          date,
			Label:         types.DayLabel(date),
			IncomeAmount:  incomeSums[day],
			ExpenseAmount: expenseSums[day],
		})
	}

	return buckets
}
