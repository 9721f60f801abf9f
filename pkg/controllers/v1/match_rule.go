package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchRuleEditable struct {
	OwnerID  uuid.UUID `json:"ownerId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Priority uint      `json:"priority" example:"3"`
	Match    string    `json:"match" example:"*Uber*"`
	Category string    `json:"category" example:"Transport"`
}

type MatchRuleResponse struct {
	Data  *models.MatchRule `json:"data"`
	Error *string           `json:"error" example:"the match of a match rule must not be empty"`
}

type MatchRuleListResponse struct {
	Data  []models.MatchRule `json:"data"`
	Error *string            `json:"error" example:"the owner query parameter must be set"`
}

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMatchRuleList)
	r.GET("", GetMatchRules)
	r.POST("", CreateMatchRule)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Match Rules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List match rules
// @Description	Returns the match rules of an owner in the order they are applied during import
// @Tags			Match Rules
// @Produce		json
// @Success		200		{object}	MatchRuleListResponse
// @Failure		400		{object}	MatchRuleListResponse
// @Failure		500		{object}	MatchRuleListResponse
// @Param			owner	query		string	true	"ID of the owner"
// @Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	ownerID, err := owner(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleListResponse{
			Error: &s,
		})
		return
	}

	rules, err := models.MatchRulesFor(models.DB, ownerID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleListResponse{
			Error: &s,
		})
		return
	}

	if rules == nil {
		rules = []models.MatchRule{}
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: rules})
}

// @Summary		Create match rule
// @Description	Creates a new match rule
// @Tags			Match Rules
// @Accept			json
// @Produce		json
// @Success		201			{object}	MatchRuleResponse
// @Failure		400			{object}	MatchRuleResponse
// @Failure		404			{object}	MatchRuleResponse
// @Failure		500			{object}	MatchRuleResponse
// @Param			matchRule	body		MatchRuleEditable	true	"Match rule"
// @Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var editable MatchRuleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	rule := models.MatchRule{
		OwnerID:  editable.OwnerID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}

	err = models.DB.Omit("Owner").Create(&rule).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: &rule})
}
