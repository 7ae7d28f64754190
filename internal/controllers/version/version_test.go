package version_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashrunway/backend/internal/controllers/version"
	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/version", func(_ *gin.Context) {
		version.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/version", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		defaults forecast.Options
		want     version.Forecast
	}{
		{"configured", forecast.Options{Weeks: 26, Strategy: forecast.StrategyCanonical}, version.Forecast{Weeks: 26, MaxWeeks: 52, Strategy: forecast.StrategyCanonical}},
		{"empty", forecast.Options{}, version.Forecast{Weeks: 13, MaxWeeks: 52, Strategy: forecast.StrategyLegacy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			_, r := gin.CreateTestContext(recorder)

			version.RegisterRoutes(r.Group("/version"), "1.2.3", tt.defaults)

			req, _ := http.NewRequest(http.MethodGet, "https://example.com/version", nil)
			r.ServeHTTP(recorder, req)

			var response version.Response
			test.DecodeResponse(t, recorder, &response)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, version.Response{Data: version.Object{Version: "1.2.3", Forecast: tt.want}}, response)
		})
	}
}
