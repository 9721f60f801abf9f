package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget limits the spending of an owner in one category over a date range.
//
// The expenses a budget is compared against are stored as BudgetLinks.
// They are selected once, when the budget is created, and only change
// again through Resync.
type Budget struct {
	DefaultModel
	OwnerID    uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner      User            `json:"-"`
	Title      string          `json:"title" example:"Commute"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   Category        `json:"-"`
	StartDate  time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"` // First day of the budget, inclusive
	EndDate    time.Time       `json:"endDate" example:"2024-01-31T00:00:00Z"`   // Last day of the budget, inclusive

	LinkedExpenseIDs []uuid.UUID     `json:"linkedExpenseIds" gorm:"-"`
	Spent            decimal.Decimal `json:"spent" gorm:"-" example:"210"`
	Remaining        decimal.Decimal `json:"remaining" gorm:"-" example:"290"`
	Status           BudgetStatus    `json:"status" gorm:"-" example:"onTrack"`
}

// BudgetLink records that an expense was linked to a budget.
type BudgetLink struct {
	BudgetID  uuid.UUID `gorm:"primaryKey"`
	Budget    Budget
	ExpenseID uuid.UUID `gorm:"primaryKey;index"`
	Expense   Expense
	CreatedAt time.Time
}

// BudgetCreate contains the data needed to create a budget.
//
// The category is either referenced by CategoryID or resolved
// from CategoryName and IconID.
type BudgetCreate struct {
	Title        string
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	CategoryName string
	IconID       int
	StartDate    time.Time
	EndDate      time.Time
}

// BeforeSave
//   - trims whitespace from the title
//   - normalizes start and end date to calendar dates
//   - verifies the date range and the amount
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Title = strings.TrimSpace(b.Title)
	b.StartDate = types.DateOf(b.StartDate)
	b.EndDate = types.DateOf(b.EndDate)

	if b.StartDate.After(b.EndDate) {
		return ErrBudgetDateRange
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

func (b *Budget) AfterFind(tx *gorm.DB) error {
	err := b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}

// CreateBudget creates a budget and links all existing expenses of the owner
// in the budget's category with a transaction date in the budget's range.
//
// Nothing is written if any step fails.
func CreateBudget(db *gorm.DB, ownerID uuid.UUID, create BudgetCreate) (Budget, error) {
	if types.DateOf(create.StartDate).After(types.DateOf(create.EndDate)) {
		return Budget{}, ErrBudgetDateRange
	}

	budget := Budget{
		OwnerID:   ownerID,
		Title:     create.Title,
		Amount:    create.Amount,
		StartDate: create.StartDate,
		EndDate:   create.EndDate,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var owner User
		err := tx.Where("id = ?", ownerID).First(&owner).Error
		if err != nil {
			return err
		}

		category, err := budgetCategory(tx, create)
		if err != nil {
			return err
		}
		budget.CategoryID = category.ID

		expenses, err := budget.matchingExpenses(tx)
		if err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Create(&budget).Error
		if err != nil {
			return err
		}

		return budget.replaceLinks(tx, expenses)
	})
	if err != nil {
		return Budget{}, err
	}

	return budget.WithCalculations(db)
}

// budgetCategory returns the category referenced by the create data.
func budgetCategory(tx *gorm.DB, create BudgetCreate) (Category, error) {
	if create.CategoryID != uuid.Nil {
		var category Category
		err := tx.Where("id = ?", create.CategoryID).First(&category).Error
		return category, err
	}

	return ResolveCategory(tx, create.CategoryName, create.IconID)
}

// matchingExpenses returns the expenses of the budget's owner in the budget's
// category with a transaction date between start and end date, both inclusive.
func (b Budget) matchingExpenses(tx *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := tx.
		Where(&Expense{OwnerID: b.OwnerID, CategoryID: b.CategoryID}).
		Where("expenses.transaction_date >= date(?)", types.DateOf(b.StartDate)).
		Where("expenses.transaction_date < date(?)", types.DateOf(b.EndDate).AddDate(0, 0, 1)).
		Order("expenses.transaction_date ASC, expenses.id ASC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, fmt.Errorf("could not select expenses for budget: %w", err)
	}

	return expenses, nil
}

// replaceLinks replaces all links of the budget with links to the expenses.
func (b *Budget) replaceLinks(tx *gorm.DB, expenses []Expense) error {
	err := tx.Where("budget_id = ?", b.ID).Delete(&BudgetLink{}).Error
	if err != nil {
		return err
	}

	b.LinkedExpenseIDs = make([]uuid.UUID, 0, len(expenses))
	if len(expenses) == 0 {
		return nil
	}

	links := make([]BudgetLink, 0, len(expenses))
	for _, e := range expenses {
		links = append(links, BudgetLink{BudgetID: b.ID, ExpenseID: e.ID})
		b.LinkedExpenseIDs = append(b.LinkedExpenseIDs, e.ID)
	}

	return tx.Omit(clause.Associations).Create(&links).Error
}

// Resync recomputes the linked expenses from the budget's category and date
// range against the expenses as they exist now. Calling it repeatedly without
// changes to expenses yields the same links.
func (b Budget) Resync(db *gorm.DB) (Budget, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		expenses, err := b.matchingExpenses(tx)
		if err != nil {
			return err
		}

		return b.replaceLinks(tx, expenses)
	})
	if err != nil {
		return Budget{}, err
	}

	return b.WithCalculations(db)
}

// Delete clears the links of the budget, then deletes the budget.
//
// The two steps are not isolated from concurrent edits of the same budget.
func (b Budget) Delete(db *gorm.DB) error {
	err := db.Where("budget_id = ?", b.ID).Delete(&BudgetLink{}).Error
	if err != nil {
		return err
	}

	return db.Delete(&b).Error
}

// LinkedExpenses returns the expenses linked to the budget.
// Deleted expenses are not returned.
func (b Budget) LinkedExpenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Joins("JOIN budget_links ON budget_links.expense_id = expenses.id").
		Where("budget_links.budget_id = ?", b.ID).
		Order("expenses.transaction_date ASC, expenses.id ASC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// WithCalculations computes the linked expense IDs and the status values.
func (b Budget) WithCalculations(db *gorm.DB) (Budget, error) {
	expenses, err := b.LinkedExpenses(db)
	if err != nil {
		return Budget{}, err
	}

	b.LinkedExpenseIDs = make([]uuid.UUID, 0, len(expenses))
	for _, e := range expenses {
		b.LinkedExpenseIDs = append(b.LinkedExpenseIDs, e.ID)
	}

	summary := CalculateStatus(b.Amount, expenses)
	b.Spent = summary.Spent
	b.Remaining = summary.Remaining
	b.Status = summary.Status

	return b, nil
}
