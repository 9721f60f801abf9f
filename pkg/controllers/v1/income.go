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

type IncomeEditable struct {
	OwnerID         uuid.UUID       `json:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Title           string          `json:"title" example:"Salary"`
	Description     string          `json:"description" example:"March salary"`
	Amount          decimal.Decimal `json:"amount" example:"3200"`
	TransactionDate time.Time       `json:"transactionDate" example:"2024-03-01T00:00:00Z"`
}

type IncomeResponse struct {
	Data  *models.Income `json:"data"`
	Error *string        `json:"error" example:"the amount must not be negative"`
}

type IncomePageResponse struct {
	Data  *pager.Page[models.Income] `json:"data"`
	Error *string                    `json:"error" example:"the cursor is not valid"`
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncomeList)
	r.GET("", GetIncomes)
	r.POST("", CreateIncome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List incomes
// @Description	Returns a page of the owner's incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	IncomePageResponse
// @Failure		400		{object}	IncomePageResponse
// @Failure		500		{object}	IncomePageResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			limit	query		int		false	"Maximum number of incomes, defaults to 50"
// @Param			cursor	query		string	false	"ID of the first income of the page"
// @Param			search	query		string	false	"Case-insensitive search on title and description"
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomePageResponse{
			Error: &s,
		})
		return
	}

	page, err := pager.Incomes(models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomePageResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, IncomePageResponse{Data: &page})
}

// @Summary		Create income
// @Description	Creates a new income
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	income := models.Income{
		OwnerID:         editable.OwnerID,
		Title:           editable.Title,
		Description:     editable.Description,
		Amount:          editable.Amount,
		TransactionDate: editable.TransactionDate,
	}

	err = models.CreateIncome(models.DB, &income)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}
