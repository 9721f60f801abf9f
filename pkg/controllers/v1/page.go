package v1

import (
	"github.com/envelope-zero/tracker/pkg/httputil"
	"github.com/envelope-zero/tracker/pkg/pager"
	"github.com/gin-gonic/gin"
)

// pageQuery binds the query string of a list endpoint.
func pageQuery(c *gin.Context) (pager.Query, error) {
	var q QueryPage
	if err := c.ShouldBindQuery(&q); err != nil {
		return pager.Query{}, httputil.ErrInvalidQueryString
	}

	if q.Owner.IsNil() {
		return pager.Query{}, errOwnerMissing
	}

	return pager.Query{
		OwnerID: q.Owner.UUID,
		Limit:   q.Limit,
		Cursor:  q.Cursor,
		Search:  q.Search,
	}, nil
}
