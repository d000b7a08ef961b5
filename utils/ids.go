package utils

import "github.com/google/uuid"

// NewID returns a unique record id. UUIDs instead of creation timestamps
// so rapid creation cannot collide.
func NewID() string {
	return uuid.NewString()
}
