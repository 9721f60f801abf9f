package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/envelope-zero/tracker/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	image := "https://example.com/receipt.png"

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		OwnerID:         owner.ID,
		Description:     "  Train ticket to Hamburg ",
		Amount:          amount("39.90"),
		CategoryID:      category.ID,
		TransactionDate: date(2024, 3, 8),
		ImageURL:        &image,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Train ticket to Hamburg", response.Data.Description)
	suite.Assert().True(date(2024, 3, 8).Equal(response.Data.TransactionDate))
	suite.Require().NotNil(response.Data.ImageURL)
	suite.Assert().Equal(image, *response.Data.ImageURL)
}

func (suite *TestSuiteStandard) TestExpensesCreateErrors() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"No owner", v1.ExpenseEditable{Description: "Train", Amount: amount("1"), CategoryID: category.ID}, http.StatusBadRequest},
		{"Negative amount", v1.ExpenseEditable{OwnerID: owner.ID, Description: "Train", Amount: amount("-1"), CategoryID: category.ID}, http.StatusBadRequest},
		{"Unknown owner", v1.ExpenseEditable{OwnerID: uuid.New(), Description: "Train", Amount: amount("1"), CategoryID: category.ID}, http.StatusNotFound},
		{"Unknown category", v1.ExpenseEditable{OwnerID: owner.ID, Description: "Train", Amount: amount("1"), CategoryID: uuid.New()}, http.StatusNotFound},
		{"Broken JSON", `{ "amount": [] }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesPages() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)

	for day := 1; day <= 5; day++ {
		suite.createTestExpense(models.Expense{
			OwnerID:         owner.ID,
			CategoryID:      category.ID,
			Description:     fmt.Sprintf("Ride %d", day),
			Amount:          amount("10"),
			TransactionDate: date(2024, 3, day),
		})
	}

	var descriptions []string
	cursor := ""
	for pages := 0; pages < 10; pages++ {
		url := fmt.Sprintf("http://example.com/v1/expenses?owner=%s&limit=2&cursor=%s", owner.ID, cursor)
		r := test.Request(suite.T(), http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ExpensePageResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Require().NotNil(response.Data)

		for _, e := range response.Data.Items {
			descriptions = append(descriptions, e.Description)
		}

		if response.Data.NextCursor == nil {
			break
		}
		cursor = *response.Data.NextCursor
	}

	suite.Assert().Equal([]string{"Ride 5", "Ride 4", "Ride 3", "Ride 2", "Ride 1"}, descriptions)
}

func (suite *TestSuiteStandard) TestExpensesSearch() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Description: "Train to Hamburg", Amount: amount("39.90"), TransactionDate: date(2024, 3, 8)})
	suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Description: "Bus to work", Amount: amount("2.90"), TransactionDate: date(2024, 3, 9)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?owner=%s&search=hamburg", owner.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpensePageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Items, 1)
	suite.Assert().Equal("Train to Hamburg", response.Data.Items[0].Description)
	suite.Assert().Nil(response.Data.NextCursor)
}

func (suite *TestSuiteStandard) TestExpensesListErrors() {
	owner := suite.createTestUser()

	tests := []struct {
		name  string
		query string
	}{
		{"No owner", ""},
		{"Invalid owner", "owner=abc"},
		{"Limit too high", fmt.Sprintf("owner=%s&limit=501", owner.ID)},
		{"Negative limit", fmt.Sprintf("owner=%s&limit=-1", owner.ID)},
		{"Limit not a number", fmt.Sprintf("owner=%s&limit=many", owner.ID)},
		{"Invalid cursor", fmt.Sprintf("owner=%s&cursor=abc", owner.ID)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?owner=%s&cursor=%s", owner.ID, uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	owner := suite.createTestUser()
	category := suite.createTestCategory("Transport", 2)
	expense := suite.createTestExpense(models.Expense{OwnerID: owner.ID, CategoryID: category.ID, Amount: amount("80"), TransactionDate: date(2024, 1, 5)})
	budget := suite.createTestBudget(owner.ID, category.ID, "100")
	suite.Require().Equal([]uuid.UUID{expense.ID}, budget.LinkedExpenseIDs)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data.LinkedExpenseIDs)
	suite.Assert().True(response.Data.Spent.IsZero())

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expenses/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
