// Package idgen provides the identifier generator and clock used by repositories.
package idgen

import (
	"time"

	"github.com/google/uuid"

	"forumapi/src/core/ports"
)

var (
	_ ports.IDGenerator = UUID{}
	_ ports.Clock       = SystemClock{}
)

// UUID generates random (version 4) UUID strings.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
