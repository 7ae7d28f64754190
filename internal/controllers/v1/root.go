package v1

import (
	"net/http"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/httputil"
	"github.com/cashrunway/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Forecast string `json:"forecast" example:"https://example.com/api/v1/forecast"` // URL of the forecast endpoint
}

// RegisterRoutes registers the v1 routes with the RouterGroup that is passed.
//
// The defaults are used for all parameters a forecast request does not set.
func RegisterRoutes(r *gin.RouterGroup, defaults forecast.Options) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterForecastRoutes(r.Group("/forecast"), defaults)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Forecast: c.GetString(string(models.DBContextURL)) + "/v1/forecast",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
