package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAmountNegative             = errors.New("the amount must not be negative")
	ErrDueDayInvalid              = errors.New("the due day must be between 1 and 31")
	ErrCashAccountNameNotUnique   = errors.New("the cash account name must be unique per user")
	ErrScheduleObligationRequired = errors.New("a schedule must belong to an obligation")
)
