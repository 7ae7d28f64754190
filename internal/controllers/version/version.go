package version

import (
	"net/http"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version  string   `json:"version" example:"1.1.0"` // the running version of the backend
	Forecast Forecast `json:"forecast"`                // Defaults for forecasts that do not set them in the query
}

type Forecast struct {
	Weeks    int               `json:"weeks" example:"13"`        // Number of weeks forecast by default
	MaxWeeks int               `json:"maxWeeks" example:"52"`     // Highest number of weeks that can be requested
	Strategy forecast.Strategy `json:"strategy" example:"legacy"` // Data model used by default
}

// Controller reports the running version and the forecast defaults.
type Controller struct {
	object Object
}

func RegisterRoutes(r *gin.RouterGroup, version string, defaults forecast.Options) {
	if defaults.Weeks == 0 {
		defaults.Weeks = forecast.DefaultWeeks
	}

	if defaults.Strategy == "" {
		defaults.Strategy = forecast.StrategyLegacy
	}

	co := Controller{object: Object{
		Version: version,
		Forecast: Forecast{
			Weeks:    defaults.Weeks,
			MaxWeeks: forecast.MaxWeeks,
			Strategy: defaults.Strategy,
		},
	}}

	r.GET("", co.Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the defaults it uses for forecasts
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func (co Controller) Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: co.object})
}
