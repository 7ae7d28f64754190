package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/httputil"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/store"
	"github.com/cashrunway/backend/internal/types"
	"github.com/cashrunway/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var errUserNotSetInQuery = errors.New("the user query parameter must be set")

type ForecastResponse struct {
	Data  *forecast.Result `json:"data"`  // Data for the forecast
	Error *string          `json:"error"` // The error, if any occurred
}

type ForecastQueryFilter struct {
	User     uuid.UUID `form:"user" example:"9d2f5b7e-0c61-4b4e-9e5e-5c1f3a7d8b20"` // ID of the user to calculate the forecast for
	Weeks    int       `form:"weeks" example:"13"`                                  // Number of weeks, between 1 and 52
	Strategy string    `form:"strategy" example:"canonical"`                        // Data model to use, "legacy" or "canonical"
	AsOf     string    `form:"asOf" example:"2024-01-01"`                           // First day of the forecast in YYYY-MM-DD format
}

// ForecastController calculates forecasts on request.
type ForecastController struct {
	Defaults forecast.Options
}

// RegisterForecastRoutes registers the routes for forecasts with
// the RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup, defaults forecast.Options) {
	co := ForecastController{Defaults: defaults}

	{
		r.OPTIONS("", OptionsForecast)
		r.GET("", co.GetForecast)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Forecast
// @Success		204
// @Router			/v1/forecast [options]
func OptionsForecast(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get the cash forecast
// @Description	Calculates the weekly cash forecast for a user
// @Tags			Forecast
// @Produce		json
// @Success		200			{object}	ForecastResponse
// @Failure		400			{object}	ForecastResponse
// @Failure		500			{object}	ForecastResponse
// @Failure		503			{object}	ForecastResponse
// @Param			user		query		string	true	"ID formatted as string"
// @Param			weeks		query		int		false	"Number of weeks"
// @Param			strategy	query		string	false	"The strategy, legacy or canonical"
// @Param			asOf		query		string	false	"The first day of the forecast in YYYY-MM-DD format"
// @Router			/v1/forecast [get]
func (co ForecastController) GetForecast(c *gin.Context) {
	user, opts, e := co.parseForecastQuery(c)
	if !e.Nil() {
		forecastError(c, e)
		return
	}

	start := time.Now()
	result, err := forecast.NewEngine(store.New(models.DB)).Calculate(c.Request.Context(), user.UUID, opts)
	observe(result.Strategy, opts.Strategy, err, time.Since(start))

	if err != nil {
		forecastError(c, httputil.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Data: &result})
}

// parseForecastQuery parses the query of a forecast request.
//
// All parameters that are not set in the query are taken from the
// controller's defaults.
func (co ForecastController) parseForecastQuery(c *gin.Context) (uuid.UUID, forecast.Options, httputil.Error) {
	var query ForecastQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		return uuid.Nil, forecast.Options{}, httputil.Error{Status: http.StatusBadRequest, Err: err}
	}

	if query.User.IsNil() {
		return uuid.Nil, forecast.Options{}, httputil.Error{Status: http.StatusBadRequest, Err: errUserNotSetInQuery}
	}

	opts := co.Defaults
	if query.Weeks != 0 {
		opts.Weeks = query.Weeks
	}

	if query.Strategy != "" {
		strategy, err := forecast.ParseStrategy(query.Strategy)
		if err != nil {
			return uuid.Nil, forecast.Options{}, httputil.Error{Status: http.StatusBadRequest, Err: err}
		}
		opts.Strategy = strategy
	}

	if query.AsOf != "" {
		asOf, err := types.ParseDate(query.AsOf)
		if err != nil {
			return uuid.Nil, forecast.Options{}, httputil.Error{Status: http.StatusBadRequest, Err: fmt.Errorf("asOf: %w", err)}
		}
		opts.Today = asOf
	}

	return query.User, opts, httputil.Error{}
}

func forecastError(c *gin.Context, e httputil.Error) {
	e.SetHeaders(c)

	s := e.Error()
	c.JSON(e.Status, ForecastResponse{Error: &s})
}

// Metrics are the Prometheus collectors for forecast calculations.
var Metrics = []prometheus.Collector{
	calculationCount,
	calculationDuration,
}

var calculationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forecast_calculations_total",
		Help: "How many forecasts were calculated, partitioned by strategy and outcome.",
	},
	[]string{"strategy", "outcome"},
)

var calculationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "forecast_calculation_duration_seconds",
		Help: "The forecast calculation latencies in seconds.",
	},
	[]string{"strategy"},
)

// observe updates the forecast metrics for a single calculation.
func observe(calculated, requested forecast.Strategy, err error, elapsed time.Duration) {
	strategy := calculated
	if strategy == "" {
		strategy = requested
	}
	if strategy == "" {
		strategy = forecast.StrategyLegacy
	}

	outcome := "success"
	if err != nil {
		switch httputil.Status(err) {
		case http.StatusServiceUnavailable:
			outcome = "unavailable"
		case http.StatusBadRequest:
			outcome = "invalid"
		default:
			outcome = "error"
		}
	}

	calculationDuration.WithLabelValues(string(strategy)).Observe(elapsed.Seconds())
	calculationCount.WithLabelValues(string(strategy), outcome).Inc()
}
