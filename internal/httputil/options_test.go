package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cashrunway/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptionsGet(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/", httputil.OptionsGet)

	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	c.Request.Host = "example.com"
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
