package models_test

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestExpenseNormalization() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Food")
	tz, _ := time.LoadLocation("Europe/Berlin")
	empty := " "

	e := suite.createTestExpense(models.Expense{
		OwnerID:         owner.ID,
		CategoryID:      category.ID,
		Description:     "  Groceries for the week ",
		Amount:          amount("12.30"),
		TransactionDate: time.Date(2024, 3, 8, 22, 15, 0, 0, tz),
		ImageURL:        &empty,
	})

	var loaded models.Expense
	suite.Require().Nil(models.DB.Where("id = ?", e.ID).First(&loaded).Error)

	suite.Assert().Equal("Groceries for the week", loaded.Description)
	suite.Assert().Nil(loaded.ImageURL)
	suite.Assert().True(date(2024, 3, 8).Equal(loaded.TransactionDate), "date is %s", loaded.TransactionDate)
	suite.Assert().Equal(time.UTC, loaded.TransactionDate.Location())
	suite.Assert().True(loaded.Amount.Equal(amount("12.3")))
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Food")

	err := models.CreateExpense(models.DB, &models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("-0.01")})
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	err = models.CreateExpense(models.DB, &models.Expense{CategoryID: category.ID, Amount: amount("1")})
	suite.Assert().ErrorIs(err, models.ErrOwnerMissing)
}

func (suite *TestSuiteStandard) TestExpenseDeleteClearsLinks() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Food")
	e := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("4"), TransactionDate: date(2024, 1, 2)})

	budget, err := models.CreateBudget(models.DB, owner.ID, models.BudgetCreate{
		Amount:     amount("10"),
		CategoryID: category.ID,
		StartDate:  date(2024, 1, 1),
		EndDate:    date(2024, 1, 31),
	})
	suite.Require().Nil(err)
	suite.Require().Len(budget.LinkedExpenseIDs, 1)

	suite.Require().Nil(e.Delete(models.DB))

	var links int64
	models.DB.Model(&models.BudgetLink{}).Where("expense_id = ?", e.ID).Count(&links)
	suite.Assert().Zero(links)
}

func (suite *TestSuiteStandard) TestExpensesBetween() {
	owner := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory("Food")

	before := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("1"), TransactionDate: date(2024, 2, 29)})
	first := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("1"), TransactionDate: date(2024, 3, 1)})
	last := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("1"), TransactionDate: date(2024, 3, 31)})
	suite.createTestExpense(models.Expense{OwnerID: other.ID, CategoryID: category.ID, Amount: amount("1"), TransactionDate: date(2024, 3, 15)})

	expenses, err := models.ExpensesBetween(models.DB, owner.ID, date(2024, 3, 1), date(2024, 3, 31))
	suite.Require().Nil(err)
	suite.Assert().Equal([]uuid.UUID{first.ID, last.ID}, ids(expenses...))
	suite.Assert().NotContains(ids(expenses...), before.ID)
	suite.Assert().Equal("Food", expenses[0].Category.Name, "category must be preloaded")
}

func (suite *TestSuiteStandard) TestDefaultTransactionDateIsUTCDate() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Food")

	local := time.Local
	defer func() { time.Local = local }()

	for _, offset := range []int{14, -12} {
		time.Local = time.FixedZone("test", offset*60*60)

		before := time.Now().UTC()
		e := suite.createTestExpense(models.Expense{
			OwnerID:     owner.ID,
			CategoryID:  category.ID,
			Description: "No date given",
			Amount:      amount("1"),
		})

		i := models.Income{OwnerID: owner.ID, Title: "No date given", Amount: amount("1")}
		suite.Require().Nil(models.CreateIncome(models.DB, &i))
		after := time.Now().UTC()

		for _, d := range []time.Time{e.TransactionDate, i.TransactionDate} {
			suite.Assert().Equal(time.UTC, d.Location())
			suite.Assert().True(
				d.Equal(types.DateOf(before)) || d.Equal(types.DateOf(after)),
				"offset %d: date is %s, now is %s", offset, d, after,
			)
		}
	}
}
