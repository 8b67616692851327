// Package uuid provides ID generation.
package uuid

import "github.com/google/uuid"

// IDer generates identifiers.
type IDer interface {
	ID() string
}

// ShortID is an ID generator that returns the first eight hex digits of a UUID.
// Useful for log correlation where collisions are tolerable.
type ShortID struct{}

// ID generates a new short ID.
func (ShortID) ID() string {
	return uuid.NewString()[:8]
}
