package aggregate_test

import (
	"time"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func expense(t time.Time, amount string) models.Expense {
	return models.Expense{TransactionDate: t, Amount: decimal.RequireFromString(amount)}
}

func categorized(t time.Time, amount, category string) models.Expense {
	e := expense(t, amount)
	e.Category = models.Category{Name: category}
	return e
}

func income(t time.Time, amount string) models.Income {
	return models.Income{TransactionDate: t, Amount: decimal.RequireFromString(amount)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
