package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	v1 "github.com/cashrunway/backend/internal/controllers/v1"
	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/cashrunway/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var user = uuid.MustParse("9d2f5b7e-0c61-4b4e-9e5e-5c1f3a7d8b20")

func forecastURL(query string) string {
	return fmt.Sprintf("http://example.com/v1/forecast?user=%s&%s", user, query)
}

func (suite *TestSuiteStandard) createFixtures() {
	suite.create(&models.CashAccount{UserID: user, AccountName: "Checking", Balance: decimal.NewFromInt(5000)})
	suite.create(&models.Client{
		UserID:        user,
		Name:          "Acme Corp",
		ClientType:    models.ClientTypeRetainer,
		BillingConfig: datatypes.JSON(`{"frequency": "monthly", "invoice_day": 1, "amount": 1000, "payment_terms": "net_30"}`),
	})

	agreement := models.ObligationAgreement{UserID: user, VendorName: "Landlord", Frequency: "monthly"}
	suite.create(&agreement)
	suite.create(&models.ObligationSchedule{
		ObligationID:    agreement.ID,
		DueDate:         types.NewDate(2024, time.January, 10),
		EstimatedAmount: decimal.NewFromInt(800),
	})
}

func (suite *TestSuiteStandard) TestForecastOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/forecast")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestForecastLegacy() {
	suite.createFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, forecastURL("weeks=5&asOf=2024-01-01"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)

	result := *response.Data
	suite.Assert().Equal(forecast.StrategyLegacy, result.Strategy)
	suite.Assert().Equal("5000", result.StartingCash.String())
	suite.Assert().Equal(types.NewDate(2024, time.January, 1), result.ForecastStartDate)
	suite.Require().Len(result.Weeks, 6)

	// The January invoice is paid on January 31st
	suite.Assert().Equal("1000", result.Weeks[5].CashIn.String())
	suite.Assert().Equal("6000", result.Weeks[5].EndingBalance.String())
	suite.Assert().Equal(5, result.Summary.RunwayWeeks)
	suite.Assert().Equal("1000", result.Summary.TotalCashIn.String())
	suite.Assert().True(result.Summary.TotalCashOut.IsZero(), "obligations are not used by the legacy strategy")
}

func (suite *TestSuiteStandard) TestForecastCanonical() {
	suite.createFixtures()

	recorder := test.Request(suite.T(), http.MethodGet, forecastURL("weeks=5&asOf=2024-01-01&strategy=Canonical"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	result := *response.Data
	suite.Assert().Equal(forecast.StrategyCanonical, result.Strategy)
	suite.Assert().Equal("800", result.Summary.TotalCashOut.String())
	suite.Assert().True(result.Summary.TotalCashIn.IsZero(), "clients are not used by the canonical strategy")
	suite.Assert().Equal("800", result.Weeks[2].CashOut.String())
	suite.Assert().Equal("4200", result.Weeks[2].EndingBalance.String())
}

func (suite *TestSuiteStandard) TestForecastDefaultsFromConfiguration() {
	suite.createFixtures()

	os.Setenv("USE_OBLIGATION_FOR_FORECAST", "true")
	os.Setenv("FORECAST_WEEKS", "3")
	defer os.Unsetenv("USE_OBLIGATION_FOR_FORECAST")
	defer os.Unsetenv("FORECAST_WEEKS")

	recorder := test.Request(suite.T(), http.MethodGet, forecastURL("asOf=2024-01-01"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal(forecast.StrategyCanonical, response.Data.Strategy)
	suite.Assert().Len(response.Data.Weeks, 4)
}

func (suite *TestSuiteStandard) TestForecastControllerDefaults() {
	suite.createFixtures()

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	v1.RegisterForecastRoutes(r.Group("/v1/forecast"), forecast.Options{Strategy: forecast.StrategyCanonical, Weeks: 2})

	req, _ := http.NewRequest(http.MethodGet, forecastURL("asOf=2024-01-01&weeks=4"), nil)
	r.ServeHTTP(w, req)
	test.AssertHTTPStatus(suite.T(), w, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), w, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal(forecast.StrategyCanonical, response.Data.Strategy)
	suite.Assert().Len(response.Data.Weeks, 5, "the query overrides the default")
}

func (suite *TestSuiteStandard) TestForecastIsIdempotent() {
	suite.createFixtures()

	first := test.Request(suite.T(), http.MethodGet, forecastURL("asOf=2024-01-01"))
	second := test.Request(suite.T(), http.MethodGet, forecastURL("asOf=2024-01-01"))

	test.AssertHTTPStatus(suite.T(), &first, http.StatusOK)
	suite.Assert().JSONEq(first.Body.String(), second.Body.String())
}

func (suite *TestSuiteStandard) TestForecastBadRequests() {
	tests := []struct {
		name string
		url  string
		err  string
	}{
		{"no user", "http://example.com/v1/forecast", "the user query parameter must be set"},
		{"invalid user", "http://example.com/v1/forecast?user=not-a-uuid", "invalid UUID"},
		{"weeks not a number", forecastURL("weeks=many"), "invalid syntax"},
		{"too many weeks", forecastURL("weeks=53"), "the number of weeks must be between 1 and 52"},
		{"negative weeks", forecastURL("weeks=-1"), "the number of weeks must be between 1 and 52"},
		{"unknown strategy", forecastURL("strategy=magic"), "the forecast strategy must be one of"},
		{"invalid date", forecastURL("asOf=2024-13-01"), "asOf"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ForecastResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Nil(t, response.Data)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestForecastDatabaseUnavailable() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, forecastURL("asOf=2024-01-01"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusServiceUnavailable)
	suite.Assert().Equal("30", recorder.Header().Get("Retry-After"))

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(forecast.ErrSourceUnavailable.Error(), *response.Error, "driver errors are not sent to the client")
}
