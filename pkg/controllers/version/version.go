package version

import (
	"net/http"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// The version of the tracker, set by the router
var trackerVersion = "0.0.0"

// The latest API version served
const apiVersion = "v1"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the tracker
	API     string `json:"api" example:"v1"`        // the latest API version
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	trackerVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version and the latest API version
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version: trackerVersion,
			API:     apiVersion,
		},
	})
}
