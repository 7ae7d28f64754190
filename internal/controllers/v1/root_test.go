package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/cashrunway/backend/internal/controllers/v1"
	"github.com/cashrunway/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/v1", func(_ *gin.Context) {
		v1.Get(c)
	})

	// Test contexts cannot be injected any middleware, therefore
	// this only tests the path, not the host
	l := v1.Response{
		Links: v1.Links{
			Forecast: "/v1/forecast",
		},
	}

	var lr v1.Response

	c.Request, _ = http.NewRequest(http.MethodGet, "http://example.com/v1", nil)
	r.ServeHTTP(w, c.Request)

	test.DecodeResponse(t, w, &lr)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, l, lr)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.OPTIONS("/v1", func(_ *gin.Context) {
		v1.Options(c)
	})

	c.Request, _ = http.NewRequest(http.MethodOptions, "http://example.com/v1", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}
