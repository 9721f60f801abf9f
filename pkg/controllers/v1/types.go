package v1

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	ez_uuid "github.com/envelope-zero/tracker/internal/uuid"
	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ContextCurrency is the gin context key for the display currency.
const ContextCurrency = "tracker-currency"

type QueryOwner struct {
	Owner ez_uuid.UUID `form:"owner" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the owner
}

type QueryPage struct {
	Owner  ez_uuid.UUID `form:"owner"`
	Limit  int          `form:"limit"`
	Cursor string       `form:"cursor"`
	Search string       `form:"search"`
}

type QueryDashboard struct {
	Owner  ez_uuid.UUID `form:"owner"`
	Period string       `form:"period"`
	Date   string       `form:"date"`
}

// owner returns the owner ID from the query string.
func owner(c *gin.Context) (uuid.UUID, error) {
	var q QueryOwner
	if err := c.ShouldBindQuery(&q); err != nil {
		return uuid.Nil, httputil.ErrInvalidQueryString
	}

	if q.Owner.IsNil() {
		return uuid.Nil, errOwnerMissing
	}

	return q.Owner.UUID, nil
}

// now returns the date query parameter, falling back to the current time.
func now(date string) (time.Time, error) {
	return httputil.DateFromString(date, time.Now().UTC())
}

// display formats an amount in the currency configured for the router.
func display(c *gin.Context, amount decimal.Decimal) string {
	unit, ok := c.Value(ContextCurrency).(currency.Unit)
	if !ok {
		unit = currency.USD
	}

	return types.FormatAmount(amount, unit, language.English)
}
