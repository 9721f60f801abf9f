package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterIncomeRoutes(r.Group("/incomes"))
	RegisterReportRoutes(r.Group("/reports"))
	RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterDashboardRoutes(r.Group("/dashboard"))
	RegisterImportRoutes(r.Group("/import"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`        // URL of Budget collection endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"`  // URL of Category collection endpoint
	Dashboard  string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`    // URL of the dashboard series endpoints
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`      // URL of Expense collection endpoint
	Import     string `json:"import" example:"https://example.com/api/v1/import"`          // URL of import endpoint
	Incomes    string `json:"incomes" example:"https://example.com/api/v1/incomes"`        // URL of Income collection endpoint
	MatchRules string `json:"matchRules" example:"https://example.com/api/v1/match-rules"` // URL of Match Rule collection endpoint
	Reports    string `json:"reports" example:"https://example.com/api/v1/reports"`        // URL of Report collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:    url + "/v1/budgets",
			Categories: url + "/v1/categories",
			Dashboard:  url + "/v1/dashboard",
			Expenses:   url + "/v1/expenses",
			Import:     url + "/v1/import",
			Incomes:    url + "/v1/incomes",
			MatchRules: url + "/v1/match-rules",
			Reports:    url + "/v1/reports",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
