package v1

import (
	"net/http"
	"time"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/envelope-zero/tracker/pkg/pager"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	OwnerID         uuid.UUID       `json:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description     string          `json:"description" example:"Train ticket to Hamburg"`
	Amount          decimal.Decimal `json:"amount" example:"39.90"`
	CategoryID      uuid.UUID       `json:"categoryId" example:"e8ad8e2a-68f5-4a38-9bb5-9f4b8ae1ac43"`
	TransactionDate time.Time       `json:"transactionDate" example:"2024-03-08T00:00:00Z"` // Only the date is used. Defaults to today
	ImageURL        *string         `json:"imageUrl" example:"https://example.com/receipt.png"`
}

func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		OwnerID:         e.OwnerID,
		Description:     e.Description,
		Amount:          e.Amount,
		CategoryID:      e.CategoryID,
		TransactionDate: e.TransactionDate,
		ImageURL:        e.ImageURL,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`                                                  // Data for the expense
	Error *string         `json:"error" example:"the amount must not be negative"` // The error, if any occurred
}

type ExpensePageResponse struct {
	Data  *pager.Page[models.Expense] `json:"data"`                                       // Page of expenses
	Error *string                     `json:"error" example:"the cursor is not valid"` // The error, if any occurred
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		List expenses
// @Description	Returns a page of the owner's expenses, newest first. With search, returns the first expenses whose description contains it.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpensePageResponse
// @Failure		400		{object}	ExpensePageResponse
// @Failure		500		{object}	ExpensePageResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			limit	query		int		false	"Maximum number of expenses, defaults to 50"
// @Param			cursor	query		string	false	"ID of the first expense of the page"
// @Param			search	query		string	false	"Case-insensitive search on the description"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensePageResponse{
			Error: &s,
		})
		return
	}

	page, err := pager.Expenses(models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpensePageResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpensePageResponse{Data: &page})
}

// @Summary		Create expense
// @Description	Creates a new expense. Budgets are not updated, use the resync endpoint of a budget for that.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense := editable.model()
	err = models.CreateExpense(models.DB, &expense)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense and removes it from all budgets
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.Where("id = ?", id).First(&expense).Error
	if err == nil {
		err = expense.Delete(models.DB)
	}
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
