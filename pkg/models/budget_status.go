package models

import "github.com/shopspring/decimal"

type BudgetStatus string

const (
	BudgetOnTrack  BudgetStatus = "onTrack"
	BudgetExceeded BudgetStatus = "exceeded"
)

// BudgetSummary is the consumption of a budget.
type BudgetSummary struct {
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Status    BudgetStatus    `json:"status"`
}

// CalculateStatus sums the linked expenses and compares them to the budget amount.
//
// No rounding happens here, amounts are rounded when they are displayed.
func CalculateStatus(amount decimal.Decimal, linked []Expense) BudgetSummary {
	spent := decimal.Zero
	for _, e := range linked {
		spent = spent.Add(e.Amount)
	}

	status := BudgetOnTrack
	if spent.GreaterThan(amount) {
		status = BudgetExceeded
	}

	return BudgetSummary{
		Spent:     spent,
		Remaining: decimal.Max(decimal.Zero, amount.Sub(spent)),
		Status:    status,
	}
}
