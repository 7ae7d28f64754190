// Package uuid wraps github.com/google/uuid so that IDs can be bound
// from query strings by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a google/uuid UUID that implements gin's BindUnmarshaler.
type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses a query or form parameter into the UUID.
//
// An empty parameter results in the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

// IsNil reports if the UUID is the Nil UUID.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}
