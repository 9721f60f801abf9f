package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/envelope-zero/tracker/pkg/controllers/v1"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/envelope-zero/tracker/test"
)

func (suite *TestSuiteStandard) TestReportsList() {
	owner := suite.createTestUser()
	other := suite.createTestUser()

	for i, name := range []string{"january.pdf", "february.pdf", "march.pdf"} {
		report := models.Report{OwnerID: owner.ID, FileName: name, URL: "https://reports.example.com/" + name}
		report.CreatedAt = time.Date(2024, time.Month(i+2), 1, 0, 0, 0, 0, time.UTC)
		suite.Require().Nil(models.DB.Create(&report).Error)
	}
	suite.Require().Nil(models.DB.Create(&models.Report{OwnerID: other.ID, FileName: "other.pdf"}).Error)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports?owner=%s&limit=2", owner.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportPageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Items, 2)
	suite.Assert().Equal("march.pdf", response.Data.Items[0].FileName)
	suite.Assert().Equal("february.pdf", response.Data.Items[1].FileName)
	suite.Require().NotNil(response.Data.NextCursor)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports?owner=%s&limit=2&cursor=%s", owner.ID, *response.Data.NextCursor), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Items, 1)
	suite.Assert().Equal("january.pdf", response.Data.Items[0].FileName)
	suite.Assert().Nil(response.Data.NextCursor)
}
