package forecast

import "errors"

var (
	// ErrSourceUnavailable is returned when the source data cannot be read.
	// The calculation can be retried later.
	ErrSourceUnavailable = errors.New("the forecast data could not be loaded, please try again later")

	ErrInvalidStrategy = errors.New("the forecast strategy must be one of 'legacy' or 'canonical'")
	ErrInvalidWeeks    = errors.New("the number of weeks must be between 1 and 52")
)
