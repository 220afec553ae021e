package domain

import (
	"time"

	"github.com/google/uuid"
)

// Setting is a single key/value preference owned by a user.
// (UserID, Key) is unique: a second write to the same key overwrites the
// value and refreshes UpdatedAt instead of creating a new row.
type Setting struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Key       string
	Value     string
	UpdatedAt time.Time

	// UpdatedBy is a back-reference to the user who performed the last
	// update. It does not imply ownership; nil when unknown.
	UpdatedBy *uuid.UUID
}
