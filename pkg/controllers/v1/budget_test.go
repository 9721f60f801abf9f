package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/envelope-zero/tracker/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) createTestBudget(ownerID, categoryID uuid.UUID, value string) v1.Budget {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		OwnerID:    ownerID,
		Title:      "Commute",
		Amount:     amount(value),
		CategoryID: categoryID,
		StartDate:  date(2024, 1, 1),
		EndDate:    date(2024, 1, 31),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) TestBudgetsCreateLinksExpenses() {
	owner := suite.createTestUser()
	transport := suite.createTestCategory("Transport", 2)
	food := suite.createTestCategory("Food", 1)

	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: transport.ID, Amount: amount("120"), TransactionDate: date(2024, 1, 5)})
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: transport.ID, Amount: amount("90"), TransactionDate: date(2024, 1, 31)})
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: transport.ID, Amount: amount("50"), TransactionDate: date(2024, 2, 1)})
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: food.ID, Amount: amount("70"), TransactionDate: date(2024, 1, 10)})

	budget := suite.createTestBudget(owner.ID, transport.ID, "500")

	suite.Assert().Len(budget.LinkedExpenseIDs, 2)
	suite.Assert().True(amount("210").Equal(budget.Spent), "spent is %s", budget.Spent)
	suite.Assert().True(amount("290").Equal(budget.Remaining), "remaining is %s", budget.Remaining)
	suite.Assert().Equal(models.BudgetOnTrack, budget.Status)
	suite.Assert().NotEmpty(budget.Display.Spent)
	suite.Assert().Contains(budget.Display.Remaining, "290.00")
}

func (suite *TestSuiteStandard) TestBudgetsCreateWithCategoryName() {
	owner := suite.createTestUser()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		OwnerID:      owner.ID,
		Title:        "Groceries",
		Amount:       amount("300"),
		CategoryName: "Food",
		IconID:       1,
		StartDate:    date(2024, 3, 1),
		EndDate:      date(2024, 3, 31),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	var category models.Category
	suite.Require().Nil(models.DB.Where("id = ?", response.Data.CategoryID).First(&category).Error)
	suite.Assert().Equal("Food", category.Name)
	suite.Assert().Empty(response.Data.LinkedExpenseIDs)
}

func (suite *TestSuiteStandard) TestBudgetsCreateErrors() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)

	tests := []struct {
		name   string
		body   v1.BudgetEditable
		status int
	}{
		{"No owner", v1.BudgetEditable{CategoryID: category.ID, StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 31)}, http.StatusBadRequest},
		{"Unknown owner", v1.BudgetEditable{OwnerID: uuid.New(), CategoryID: category.ID, StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 31)}, http.StatusNotFound},
		{"Unknown category", v1.BudgetEditable{OwnerID: owner.ID, CategoryID: uuid.New(), StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 31)}, http.StatusNotFound},
		{"Start after end", v1.BudgetEditable{OwnerID: owner.ID, CategoryID: category.ID, StartDate: date(2024, 2, 1), EndDate: date(2024, 1, 31)}, http.StatusBadRequest},
		{"Negative amount", v1.BudgetEditable{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("-1"), StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 31)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Zero(count, "failed creations must not write budgets")
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	owner := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)

	suite.createTestBudget(owner.ID, category.ID, "100")
	suite.createTestBudget(other.ID, category.ID, "200")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?owner=%s", owner.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(owner.ID, response.Data[0].OwnerID)
	suite.Assert().Equal(models.BudgetOnTrack, response.Data[0].Status)
}

func (suite *TestSuiteStandard) TestBudgetsListOwnerErrors() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?owner=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	budget := suite.createTestBudget(owner.ID, category.ID, "100")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(budget.ID, response.Data.ID)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("there is no budget matching your query", *response.Error)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsResync() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("80"), TransactionDate: date(2024, 1, 5)})

	budget := suite.createTestBudget(owner.ID, category.ID, "100")
	suite.Require().Len(budget.LinkedExpenseIDs, 1)

	// Expenses created after the budget are not linked until a resync
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("30"), TransactionDate: date(2024, 1, 20)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.LinkedExpenseIDs, 1)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/budgets/%s/resync", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.LinkedExpenseIDs, 2)
	suite.Assert().True(amount("110").Equal(response.Data.Spent))
	suite.Assert().Equal(models.BudgetExceeded, response.Data.Status)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	expense := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("80"), TransactionDate: date(2024, 1, 5)})
	budget := suite.createTestBudget(owner.ID, category.ID, "100")

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The expense is kept
	var kept models.Expense
	suite.Assert().Nil(models.DB.Where("id = ?", expense.ID).First(&kept).Error)
}
