package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Links() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/budgets", response.Links.Budgets)
	suite.Assert().Equal("http://example.com/v1/match-rules", response.Links.MatchRules)
	suite.Assert().Equal("http://example.com/v1/dashboard", response.Links.Dashboard)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/a8fd7a63-5b5b-4c36-8d2f-c2f3f4ee1d09", "OPTIONS, GET, DELETE"},
		{"/v1/budgets/a8fd7a63-5b5b-4c36-8d2f-c2f3f4ee1d09/resync", "OPTIONS, POST"},
		{"/v1/expenses", "OPTIONS, GET, POST"},
		{"/v1/expenses/a8fd7a63-5b5b-4c36-8d2f-c2f3f4ee1d09", "OPTIONS, DELETE"},
		{"/v1/incomes", "OPTIONS, GET, POST"},
		{"/v1/reports", "OPTIONS, GET"},
		{"/v1/match-rules", "OPTIONS, GET, POST"},
		{"/v1/dashboard/daily", "OPTIONS, GET"},
		{"/v1/dashboard/trend", "OPTIONS, GET"},
		{"/v1/dashboard/categories", "OPTIONS, GET"},
		{"/v1/import", "OPTIONS, POST"},
		{"/v1/import/preview", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
