// Package uuid wraps google/uuid so that IDs can be bound from query
// strings and URI parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam parses the parameter with google_uuid.Parse.
// An empty parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// IsNil reports whether the UUID is unset.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}
