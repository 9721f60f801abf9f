package v1

import (
	"net/http"
	"time"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable is the data needed to create a budget.
//
// The category is referenced by categoryId or resolved from categoryName and iconId.
type BudgetEditable struct {
	OwnerID      uuid.UUID       `json:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the owner
	Title        string          `json:"title" example:"Commute"`
	Amount       decimal.Decimal `json:"amount" example:"500"`
	CategoryID   uuid.UUID       `json:"categoryId" example:"e8ad8e2a-68f5-4a38-9bb5-9f4b8ae1ac43"`
	CategoryName string          `json:"categoryName" example:"Transport"`
	IconID       int             `json:"iconId" example:"2"`
	StartDate    time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate      time.Time       `json:"endDate" example:"2024-01-31T00:00:00Z"`
}

func (e BudgetEditable) model() models.BudgetCreate {
	return models.BudgetCreate{
		Title:        e.Title,
		Amount:       e.Amount,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		IconID:       e.IconID,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
	}
}

// Budget is the API resource for a budget.
type Budget struct {
	models.Budget
	Display BudgetDisplay `json:"display"` // Amounts formatted for display
}

type BudgetDisplay struct {
	Amount    string `json:"amount" example:"$500.00"`
	Spent     string `json:"spent" example:"$210.00"`
	Remaining string `json:"remaining" example:"$290.00"`
}

func newBudget(c *gin.Context, b models.Budget) Budget {
	return Budget{
		Budget: b,
		Display: BudgetDisplay{
			Amount:    display(c, b.Amount),
			Spent:     display(c, b.Spent),
			Remaining: display(c, b.Remaining),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                                         // Data for the budget
	Error *string `json:"error" example:"the start date of a budget must not be after its end date"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                     // List of budgets
	Error *string  `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.DELETE("/:id", DeleteBudget)
		r.OPTIONS("/:id/resync", OptionsBudgetResync)
		r.POST("/:id/resync", ResyncBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/resync [options]
func OptionsBudgetResync(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create budget
// @Description	Creates a new budget and links all existing expenses of the owner in its category and date range
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	if editable.OwnerID == uuid.Nil {
		s := models.ErrOwnerMissing.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	budget, err := models.CreateBudget(models.DB, editable.OwnerID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns the budgets of an owner with their current status
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	ownerID, err := owner(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.Budget
	err = models.DB.
		Where(&models.Budget{OwnerID: ownerID}).
		Order("start_date DESC, created_at DESC").
		Find(&budgets).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		b, err = b.WithCalculations(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// getBudget returns the budget for the ID in the path.
func getBudget(c *gin.Context) (models.Budget, error) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		return models.Budget{}, err
	}

	var budget models.Budget
	err = models.DB.Where("id = ?", id).First(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// @Summary		Get budget
// @Description	Returns a specific budget with its current status
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err == nil {
		budget, err = budget.WithCalculations(models.DB)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Resync budget
// @Description	Links the expenses that match the budget's category and date range now
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/resync [post]
func ResyncBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err == nil {
		budget, err = budget.Resync(models.DB)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Linked expenses are kept.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err == nil {
		err = budget.Delete(models.DB)
	}
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
