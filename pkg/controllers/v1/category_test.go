package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/test"
)

func (suite *TestSuiteStandard) TestCategoriesResolve() {
	body := v1.CategoryEditable{Name: "Transport", IconID: 2}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var first v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &first)
	suite.Require().NotNil(first.Data)
	suite.Assert().Equal("Transport", first.Data.Name)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "  Transport ", IconID: 2})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &second)
	suite.Require().NotNil(second.Data)
	suite.Assert().Equal(first.Data.ID, second.Data.ID, "resolving the same name and icon must return the same category")
}

func (suite *TestSuiteStandard) TestCategoriesResolveErrors() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty name", v1.CategoryEditable{Name: "   ", IconID: 1}, http.StatusBadRequest, "the category name must not be empty"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Error)
			if tt.err != "" {
				suite.Assert().Equal(tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	suite.createTestCategory("Transport", 2)
	suite.createTestCategory("Food", 1)
	suite.createTestCategory("Food", 4)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Food", response.Data[0].Name)
	suite.Assert().Equal(1, response.Data[0].IconID)
	suite.Assert().Equal(4, response.Data[1].IconID)
	suite.Assert().Equal("Transport", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
