package models_test

import (
	"time"

	"github.com/cashrunway/backend/internal/models"
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
			DeletedAt: &gorm.DeletedAt{Time: time.Now().In(tz)},
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

func (suite *TestSuiteStandard) TestModelBeforeCreateKeepsID() {
	id := uuid.New()
	model := models.DefaultModel{ID: id}

	suite.Require().Nil(model.BeforeCreate(models.DB))
	suite.Assert().Equal(id, model.ID)

	model = models.DefaultModel{}
	suite.Require().Nil(model.BeforeCreate(models.DB))
	suite.Assert().NotEqual(uuid.Nil, model.ID)
}

func (suite *TestSuiteStandard) TestQueryNotFound() {
	var client models.Client
	err := models.DB.First(&client, "id = ?", uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "client matching your query")
}

func (suite *TestSuiteStandard) TestQueryClosedDatabase() {
	suite.CloseDB()

	var clients []models.Client
	err := models.DB.Find(&clients).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
