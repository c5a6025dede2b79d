package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new lexicographically sortable ID.
// ulid.Make draws from a process-wide monotonic entropy source and is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}
