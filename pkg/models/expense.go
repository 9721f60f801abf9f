package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Expense is money spent by an owner.
type Expense struct {
	DefaultModel
	OwnerID         uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner           User            `json:"-"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	TransactionDate time.Time       `json:"transactionDate" gorm:"index"` // Calendar date, stored as midnight UTC
	CategoryID      uuid.UUID       `json:"categoryId"`
	Category        Category        `json:"-"`
	ImageURL        *string         `json:"imageUrl"`
	ImportFile      string          `json:"importFile"` // Name of the file the expense was imported from
	ImportHash      string          `json:"importHash"` // The SHA256 hash of the imported row
}

// PageKey returns the sort key used for pagination.
func (e Expense) PageKey() (time.Time, uuid.UUID) {
	return e.TransactionDate, e.ID
}

// BeforeSave
//   - trims whitespace from string fields
//   - normalizes the transaction date to midnight UTC of its calendar date
//   - rejects negative amounts
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.ImportFile = strings.TrimSpace(e.ImportFile)

	if e.ImageURL != nil && strings.TrimSpace(*e.ImageURL) == "" {
		e.ImageURL = nil
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.OwnerID == uuid.Nil {
		return ErrOwnerMissing
	}

	if e.TransactionDate.IsZero() {
		e.TransactionDate = time.Now().UTC()
	}
	e.TransactionDate = types.DateOf(e.TransactionDate)

	return nil
}

// AfterFind enforces UTC for the transaction date.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.TransactionDate = e.TransactionDate.In(time.UTC)
	return nil
}

// Delete removes the budget links of the expense, then the expense itself.
func (e Expense) Delete(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("expense_id = ?", e.ID).Delete(&BudgetLink{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&e).Error
	})
}

// CreateExpense stores a new expense without touching its associations.
func CreateExpense(db *gorm.DB, e *Expense) error {
	return db.Omit(clause.Associations).Create(e).Error
}

// ExpensesBetween returns all expenses of the owner with a transaction date
// between from and until, both days inclusive. The category is preloaded.
func ExpensesBetween(db *gorm.DB, ownerID uuid.UUID, from, until time.Time) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Preload("Category").
		Where(&Expense{OwnerID: ownerID}).
		Where("expenses.transaction_date >= date(?)", types.DateOf(from)).
		Where("expenses.transaction_date < date(?)", types.DateOf(until).AddDate(0, 0, 1)).
		Order("expenses.transaction_date ASC, expenses.id ASC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
