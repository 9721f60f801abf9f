package models_test

import (
	"time"

	"github.com/envelope-zero/tracker/pkg/models"
)

func (suite *TestSuiteStandard) TestMatchRulesForOrder() {
	owner := suite.createTestUser()
	other := suite.createTestUser()

	rules := []models.MatchRule{
		{OwnerID: owner.ID, Priority: 2, Match: "*Uber*", Category: "Transport"},
		{OwnerID: owner.ID, Priority: 1, Match: "*Rent*", Category: "Housing"},
		{OwnerID: other.ID, Priority: 0, Match: "*", Category: "Other"},
	}
	for i := range rules {
		rules[i].CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		suite.Require().Nil(models.DB.Create(&rules[i]).Error)
	}

	found, err := models.MatchRulesFor(models.DB, owner.ID)
	suite.Require().Nil(err)
	suite.Require().Len(found, 2)
	suite.Assert().Equal("*Rent*", found[0].Match)
	suite.Assert().Equal("*Uber*", found[1].Match)
}

func (suite *TestSuiteStandard) TestMatchRuleValidation() {
	owner := suite.createTestUser()

	err := models.DB.Create(&models.MatchRule{OwnerID: owner.ID, Match: " ", Category: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)
}
