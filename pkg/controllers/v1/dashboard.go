package v1

import (
	"net/http"
	"time"

	"github.com/envelope-zero/tracker/pkg/aggregate"
	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DailyResponse struct {
	Data  []aggregate.DailyBucket `json:"data"`
	Error *string                 `json:"error" example:"the date must be in YYYY-MM-DD format"`
}

type TrendResponse struct {
	Data  []aggregate.BarBucket `json:"data"`
	Error *string               `json:"error" example:"unknown period, must be one of week, month, year"`
}

type CategorySeriesResponse struct {
	Data  *aggregate.CategorySeries `json:"data"`
	Error *string                   `json:"error" example:"unknown period, must be one of week, month, year"`
}

// RegisterDashboardRoutes registers the routes for the dashboard series with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/daily", OptionsDashboard)
	r.GET("/daily", GetDaily)
	r.OPTIONS("/trend", OptionsDashboard)
	r.GET("/trend", GetTrend)
	r.OPTIONS("/categories", OptionsDashboard)
	r.GET("/categories", GetCategorySeries)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/daily [options]
// @Router			/v1/dashboard/trend [options]
// @Router			/v1/dashboard/categories [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// dashboardQuery returns the owner, the reference date and the period of a
// dashboard request. An empty period is the month.
func dashboardQuery(c *gin.Context) (uuid.UUID, time.Time, aggregate.Period, error) {
	var q QueryDashboard
	if err := c.ShouldBindQuery(&q); err != nil {
		return uuid.Nil, time.Time{}, "", httputil.ErrInvalidQueryString
	}

	if q.Owner.IsNil() {
		return uuid.Nil, time.Time{}, "", errOwnerMissing
	}

	date, err := now(q.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, "", err
	}

	period := aggregate.PeriodMonth
	if q.Period != "" {
		period, err = aggregate.ParsePeriod(q.Period)
		if err != nil {
			return uuid.Nil, time.Time{}, "", err
		}
	}

	return q.Owner.UUID, date, period, nil
}

// @Summary		Daily series
// @Description	Returns income and expense sums per day of the month of the date
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DailyResponse
// @Failure		400		{object}	DailyResponse
// @Failure		500		{object}	DailyResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			date	query		string	false	"Reference date in YYYY-MM-DD format, defaults to today"
// @Router			/v1/dashboard/daily [get]
func GetDaily(c *gin.Context) {
	ownerID, date, _, err := dashboardQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyResponse{
			Error: &s,
		})
		return
	}

	window := aggregate.MonthWindow(date)
	expenses, err := models.ExpensesBetween(models.DB, ownerID, window.From, window.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyResponse{
			Error: &s,
		})
		return
	}

	incomes, err := models.IncomesBetween(models.DB, ownerID, window.From, window.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DailyResponse{Data: aggregate.Daily(expenses, incomes, date)})
}

// @Summary		Trend series
// @Description	Returns expense sums per day for week and month, per month for year
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	TrendResponse
// @Failure		400		{object}	TrendResponse
// @Failure		500		{object}	TrendResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			period	query		string	false	"One of week, month, year. Defaults to month"
// @Param			date	query		string	false	"Reference date in YYYY-MM-DD format, defaults to today"
// @Router			/v1/dashboard/trend [get]
func GetTrend(c *gin.Context) {
	ownerID, date, period, err := dashboardQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	window, err := aggregate.TrendWindow(date, period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	expenses, err := models.ExpensesBetween(models.DB, ownerID, window.From, window.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	buckets, err := aggregate.Trend(expenses, date, period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: buckets})
}

// @Summary		Category series
// @Description	Returns expense sums per category from the start of the week, month or year of the date until the date
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	CategorySeriesResponse
// @Failure		400		{object}	CategorySeriesResponse
// @Failure		500		{object}	CategorySeriesResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			period	query		string	false	"One of week, month, year. Defaults to month"
// @Param			date	query		string	false	"Reference date in YYYY-MM-DD format, defaults to today"
// @Router			/v1/dashboard/categories [get]
func GetCategorySeries(c *gin.Context) {
	ownerID, date, period, err := dashboardQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySeriesResponse{
			Error: &s,
		})
		return
	}

	window, err := aggregate.CategoryWindow(date, period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySeriesResponse{
			Error: &s,
		})
		return
	}

	expenses, err := models.ExpensesBetween(models.DB, ownerID, window.From, window.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySeriesResponse{
			Error: &s,
		})
		return
	}

	series, err := aggregate.Categories(expenses, date, period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySeriesResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategorySeriesResponse{Data: &series})
}
