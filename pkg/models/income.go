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

// Income is money received by an owner.
type Income struct {
	DefaultModel
	OwnerID         uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner           User            `json:"-"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	TransactionDate time.Time       `json:"transactionDate" gorm:"index"`
}

func (i Income) PageKey() (time.Time, uuid.UUID) {
	return i.TransactionDate, i.ID
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)

	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if i.OwnerID == uuid.Nil {
		return ErrOwnerMissing
	}

	if i.TransactionDate.IsZero() {
		i.TransactionDate = time.Now().UTC()
	}
	i.TransactionDate = types.DateOf(i.TransactionDate)

	return nil
}

func (i *Income) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.TransactionDate = i.TransactionDate.In(time.UTC)
	return nil
}

// CreateIncome stores a new income without touching its associations.
func CreateIncome(db *gorm.DB, i *Income) error {
	return db.Omit(clause.Associations).Create(i).Error
}

// IncomesBetween returns all incomes of the owner with a transaction date
// between from and until, both days inclusive.
func IncomesBetween(db *gorm.DB, ownerID uuid.UUID, from, until time.Time) ([]Income, error) {
	var incomes []Income

	err := db.
		Where(&Income{OwnerID: ownerID}).
		Where("incomes.transaction_date >= date(?)", types.DateOf(from)).
		Where("incomes.transaction_date < date(?)", types.DateOf(until).AddDate(0, 0, 1)).
		Order("incomes.transaction_date ASC, incomes.id ASC").
		Find(&incomes).
		Error
	if err != nil {
		return nil, err
	}

	return incomes, nil
}
