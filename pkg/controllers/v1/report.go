package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/envelope-zero/tracker/pkg/pager"
	"github.com/gin-gonic/gin"
)

type ReportPageResponse struct {
	Data  *pager.Page[models.Report] `json:"data"`
	Error *string                    `json:"error" example:"the cursor is not valid"`
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReportList)
	r.GET("", GetReports)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReportList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List reports
// @Description	Returns a page of the owner's reports, newest first
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportPageResponse
// @Failure		400		{object}	ReportPageResponse
// @Failure		500		{object}	ReportPageResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Param			limit	query		int		false	"Maximum number of reports, defaults to 50"
// @Param			cursor	query		string	false	"ID of the first report of the page"
// @Param			search	query		string	false	"Case-insensitive search on the file name"
// @Router			/v1/reports [get]
func GetReports(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportPageResponse{
			Error: &s,
		})
		return
	}

	page, err := pager.Reports(models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportPageResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReportPageResponse{Data: &page})
}
