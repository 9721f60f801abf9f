package v1

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/importer"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	importRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_import_rows_total",
		Help: "Number of rows classified by import previews",
	}, []string{"result"})

	importedExpenses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_imported_expenses_total",
		Help: "Number of expenses stored by import submissions",
	})
)

// Metrics are the collectors of the v1 API. They are registered by the router.
var Metrics = []prometheus.Collector{
	importRows,
	importedExpenses,
}

type ImportPreview struct {
	Reconciliation importer.Reconciliation `json:"reconciliation"`
	Counts         importer.Counts         `json:"counts"`
}

type ImportPreviewResponse struct {
	Data  *ImportPreview `json:"data"`
	Error *string        `json:"error" example:"this endpoint only supports .csv files"`
}

type ImportSubmit struct {
	OwnerID  uuid.UUID      `json:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	FileName string         `json:"fileName" example:"march.csv"` // Name of the file the rows were read from
	Rows     []importer.Row `json:"rows"`                         // Accepted rows of the preview
}

type ImportSubmitResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error" example:"the file name of an import must not be empty"`
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", SubmitImport)
	r.OPTIONS("/preview", OptionsImportPreview)
	r.POST("/preview", ImportPreviewCSV)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/preview [options]
func OptionsImportPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// uploadedCSV returns the uploaded file.
func uploadedCSV(c *gin.Context) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		return nil, errNoFilePost
	}

	if !strings.EqualFold(filepath.Ext(formFile.Filename), ".csv") {
		return nil, errWrongFileSuffix
	}

	return formFile.Open()
}

// @Summary		Preview import
// @Description	Classifies the rows of a CSV file. The owner's match rules fill in missing categories. Nothing is stored.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewResponse
// @Failure		400		{object}	ImportPreviewResponse
// @Failure		500		{object}	ImportPreviewResponse
// @Param			file	formData	file	true	"File to import"
// @Param			owner	query		string	true	"ID of the owner"
// @Router			/v1/import/preview [post]
func ImportPreviewCSV(c *gin.Context) {
	ownerID, err := owner(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{
			Error: &s,
		})
		return
	}

	f, err := uploadedCSV(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	rows, err := importer.ParseCSV(f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{
			Error: &s,
		})
		return
	}

	rules, err := models.MatchRulesFor(models.DB, ownerID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{
			Error: &s,
		})
		return
	}

	reconciliation := importer.Reconcile(importer.ApplyRules(rows, rules))
	counts := reconciliation.Counts()
	importRows.WithLabelValues("accepted").Add(float64(counts.Accepted))
	importRows.WithLabelValues("rejected").Add(float64(counts.Rejected))

	c.JSON(http.StatusOK, ImportPreviewResponse{Data: &ImportPreview{
		Reconciliation: reconciliation,
		Counts:         counts,
	}})
}

// @Summary		Submit import
// @Description	Stores the rows as expenses of the owner. Either all rows are stored or none.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportSubmitResponse
// @Failure		400		{object}	ImportSubmitResponse
// @Failure		404		{object}	ImportSubmitResponse
// @Failure		500		{object}	ImportSubmitResponse
// @Param			import	body		ImportSubmit	true	"Rows to import"
// @Router			/v1/import [post]
func SubmitImport(c *gin.Context) {
	var data ImportSubmit
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportSubmitResponse{
			Error: &s,
		})
		return
	}

	if data.OwnerID == uuid.Nil {
		s := models.ErrOwnerMissing.Error()
		c.JSON(http.StatusBadRequest, ImportSubmitResponse{
			Error: &s,
		})
		return
	}

	expenses, err := importer.Submit(models.DB, data.OwnerID, data.FileName, data.Rows)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportSubmitResponse{
			Error: &s,
		})
		return
	}

	importedExpenses.Add(float64(len(expenses)))
	log.Info().
		Str("request-id", requestid.Get(c)).
		Str("owner", data.OwnerID.String()).
		Str("file", data.FileName).
		Int("expenses", len(expenses)).
		Msg("import submitted")

	c.JSON(http.StatusCreated, ImportSubmitResponse{Data: expenses})
}
