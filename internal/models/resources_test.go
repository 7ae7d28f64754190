package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestCashAccountRoundTrip() {
	userID := uuid.New()
	account := models.CashAccount{
		UserID:      userID,
		AccountName: "  Operating  ",
		Balance:     decimal.RequireFromString("12345.67"),
		Currency:    "eur",
		AsOfDate:    types.NewDate(2024, time.January, 1),
	}
	suite.Require().Nil(models.DB.Create(&account).Error)

	var loaded models.CashAccount
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", account.ID).Error)

	suite.Assert().Equal("Operating", loaded.AccountName)
	suite.Assert().Equal("EUR", loaded.Currency)
	suite.Assert().True(loaded.Balance.Equal(decimal.RequireFromString("12345.67")), loaded.Balance.String())
	suite.Assert().Equal(types.NewDate(2024, time.January, 1), loaded.AsOfDate)
}

func (suite *TestSuiteStandard) TestCashAccountNameNotUnique() {
	userID := uuid.New()
	suite.Require().Nil(models.DB.Create(&models.CashAccount{UserID: userID, AccountName: "Main"}).Error)

	err := models.DB.Create(&models.CashAccount{UserID: userID, AccountName: "Main"}).Error
	suite.Assert().ErrorIs(err, models.ErrCashAccountNameNotUnique)

	// Other users can use the same name
	suite.Assert().Nil(models.DB.Create(&models.CashAccount{UserID: uuid.New(), AccountName: "Main"}).Error)
}

func (suite *TestSuiteStandard) TestClientDefaults() {
	client := models.Client{
		UserID:        uuid.New(),
		Name:          " Acme\t",
		ClientType:    models.ClientTypeRetainer,
		BillingConfig: datatypes.JSON(`{"amount": 1000, "frequency": "monthly"}`),
	}
	suite.Require().Nil(models.DB.Create(&client).Error)

	var loaded models.Client
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", client.ID).Error)

	suite.Assert().Equal("Acme", loaded.Name)
	suite.Assert().Equal(models.ClientStatusActive, loaded.Status)
	suite.Assert().Equal(models.PaymentBehaviorUnknown, loaded.PaymentBehavior)
	suite.Assert().Equal(models.DefaultCurrency, loaded.Currency)
	suite.Assert().True(loaded.IsActive())
	suite.Assert().JSONEq(`{"amount": 1000, "frequency": "monthly"}`, string(loaded.BillingConfig))
}

func (suite *TestSuiteStandard) TestExpenseBucketAfterSave() {
	tooLate := 32
	valid := 28

	tests := []struct {
		name   string
		bucket models.ExpenseBucket
		err    error
	}{
		{"negative amount", models.ExpenseBucket{MonthlyAmount: decimal.NewFromFloat(-10)}, models.ErrAmountNegative},
		{"invalid due day", models.ExpenseBucket{MonthlyAmount: decimal.NewFromFloat(10), DueDay: &tooLate}, models.ErrDueDayInvalid},
		{"valid", models.ExpenseBucket{MonthlyAmount: decimal.NewFromFloat(10), DueDay: &valid}, nil},
		{"zero amount", models.ExpenseBucket{}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.bucket.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseBucketEffectiveDueDay() {
	day := 3
	suite.Assert().Equal(models.DefaultDueDay, models.ExpenseBucket{}.EffectiveDueDay())
	suite.Assert().Equal(3, models.ExpenseBucket{DueDay: &day}.EffectiveDueDay())
}

func (suite *TestSuiteStandard) TestExpenseBucketTrimWhitespace() {
	name := "  Rent  \t"
	bucket := models.ExpenseBucket{
		UserID:        uuid.New(),
		Name:          name,
		MonthlyAmount: decimal.NewFromFloat(2500),
	}
	suite.Require().Nil(models.DB.Create(&bucket).Error)
	suite.Assert().Equal(strings.TrimSpace(name), bucket.Name)
}

func (suite *TestSuiteStandard) TestScheduleRequiresObligation() {
	err := models.DB.Create(&models.ObligationSchedule{DueDate: types.NewDate(2024, time.January, 5)}).Error
	suite.Assert().ErrorIs(err, models.ErrScheduleObligationRequired)
}

func (suite *TestSuiteStandard) TestSchedulePreloadsObligation() {
	clientID := uuid.New()
	obligation := models.ObligationAgreement{
		UserID:         uuid.New(),
		ObligationType: "subscription",
		AmountSource:   models.AmountSourceXeroSync,
		BaseAmount:     decimal.NewNullDecimal(decimal.NewFromFloat(99.5)),
		ClientID:       &clientID,
		StartDate:      types.NewDate(2024, time.January, 1),
	}
	suite.Require().Nil(models.DB.Create(&obligation).Error)

	schedule := models.ObligationSchedule{
		ObligationID:    obligation.ID,
		DueDate:         types.NewDate(2024, time.February, 1),
		EstimatedAmount: decimal.NewFromFloat(99.5),
	}
	suite.Require().Nil(models.DB.Create(&schedule).Error)

	var loaded models.ObligationSchedule
	suite.Require().Nil(models.DB.Preload("Obligation").First(&loaded, "id = ?", schedule.ID).Error)

	suite.Assert().Equal(models.ScheduleStatusScheduled, loaded.Status)
	suite.Assert().Equal(obligation.ID, loaded.Obligation.ID)
	suite.Assert().Equal(clientID, *loaded.Obligation.ClientID)
	suite.Assert().Nil(loaded.Obligation.ExpenseBucketID)
	suite.Assert().True(loaded.Obligation.BaseAmount.Valid)
}

func (suite *TestSuiteStandard) TestScheduleStatusProjectable() {
	suite.Assert().True(models.ScheduleStatusScheduled.Projectable())
	suite.Assert().True(models.ScheduleStatusDue.Projectable())
	suite.Assert().False(models.ScheduleStatusPaid.Projectable())
	suite.Assert().False(models.ScheduleStatusOverdue.Projectable())
	suite.Assert().False(models.ScheduleStatusCancelled.Projectable())
}

func (suite *TestSuiteStandard) TestPaymentEventAfterSave() {
	err := (&models.PaymentEvent{Amount: decimal.NewFromFloat(-1)}).AfterSave(&gorm.DB{})
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	payment := models.PaymentEvent{UserID: uuid.New(), Amount: decimal.NewFromFloat(10)}
	suite.Require().Nil(models.DB.Create(&payment).Error)
	suite.Assert().Equal(models.PaymentStatusPending, payment.Status)
}
