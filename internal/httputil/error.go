package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var ErrMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// RetryAfter is the number of seconds clients are asked to wait before
// retrying a request that failed because the forecast data was unavailable.
const RetryAfter = 30

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the number of weeks must be between 1 and 52"`
}

// Error is used to return an error with the corresponding HTTP status code to a controller.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
}

// Nil checks if the Error is the zero value.
func (e Error) Nil() bool {
	return e.Err == nil && e.Status == 0
}

// Error returns the error as a string.
func (e Error) Error() string {
	return e.Err.Error()
}

// badRequest are the errors caused by invalid input from the client.
var badRequest = []error{
	forecast.ErrInvalidWeeks,
	forecast.ErrInvalidStrategy,
}

// Status returns the appropriate HTTP status for an error.
//
// Errors that are not known to be caused by the request are internal
// server errors.
func Status(err error) int {
	switch {
	case errors.Is(err, forecast.ErrSourceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// Parse converts an error into an Error with the matching status.
//
// Internal errors and unavailable data are logged with the request ID.
// Their details are not sent to the client.
func Parse(c *gin.Context, err error) Error {
	status := Status(err)

	switch status {
	case http.StatusInternalServerError:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return Error{
			Status: status,
			Err:    fmt.Errorf("%w. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c)),
		}
	case http.StatusServiceUnavailable:
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("forecast data unavailable")
		return Error{Status: status, Err: forecast.ErrSourceUnavailable}
	}

	return Error{Status: status, Err: err}
}

// SetHeaders sets the response headers belonging to the error.
//
// If the data for the request was unavailable, the client is asked to
// retry after RetryAfter seconds.
func (e Error) SetHeaders(c *gin.Context) {
	if e.Status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(RetryAfter))
	}
}

// NewError writes the error to the response.
func NewError(c *gin.Context, e Error) {
	e.SetHeaders(c)
	c.JSON(e.Status, HTTPError{
		Error: e.Error(),
	})
}
