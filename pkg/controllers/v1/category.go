package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name   string `json:"name" example:"Transport"` // Name of the category
	IconID int    `json:"iconId" example:"2"`       // ID of the icon
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the category
	Error *string          `json:"error" example:"the category name must not be empty"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                                         // List of categories
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
	r.POST("", ResolveCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List categories
// @Description	Returns all categories. Categories are shared between all owners.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category

	err := models.DB.Order("name ASC, icon_id ASC, created_at ASC").Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Resolve category
// @Description	Returns the category with the name and icon, creating it if it does not exist yet
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func ResolveCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category, err := models.ResolveCategory(models.DB, editable.Name, editable.IconID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}
