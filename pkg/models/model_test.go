package models_test

import (
	"time"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: gorm.DeletedAt{Time: time.Now().In(tz), Valid: true},
		},
	}

	err := model.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsPresetID() {
	preset := uuid.New()
	user := models.User{DefaultModel: models.DefaultModel{ID: preset}, Name: "Preset"}
	suite.Require().Nil(models.DB.Create(&user).Error)

	var loaded models.User
	err := models.DB.Where("id = ?", preset).First(&loaded).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(preset, loaded.ID)
}

func (suite *TestSuiteStandard) TestModelGeneratesID() {
	user := suite.createTestUser()
	suite.Assert().NotEqual(uuid.Nil, user.ID)
}
