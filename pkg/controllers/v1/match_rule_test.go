package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestMatchRulesCreateAndList() {
	owner := suite.createTestUser()

	for _, rule := range []v1.MatchRuleEditable{
		{OwnerID: owner.ID, Priority: 5, Match: "*Uber*", Category: "Transport"},
		{OwnerID: owner.ID, Priority: 1, Match: "Rewe*", Category: "Food"},
	} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", rule)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?owner=%s", owner.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Rewe*", response.Data[0].Match)
	suite.Assert().Equal("*Uber*", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?owner=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestMatchRulesCreateErrors() {
	owner := suite.createTestUser()

	tests := []struct {
		name   string
		rule   v1.MatchRuleEditable
		status int
	}{
		{"Empty match", v1.MatchRuleEditable{OwnerID: owner.ID, Match: "  ", Category: "Food"}, http.StatusBadRequest},
		{"No owner", v1.MatchRuleEditable{Match: "Rewe*", Category: "Food"}, http.StatusBadRequest},
		{"Unknown owner", v1.MatchRuleEditable{OwnerID: uuid.New(), Match: "Rewe*", Category: "Food"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", tt.rule)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}
