package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions recorded by this service.
const (
	ActivitySettingsUpdate     = "settings.update"
	ActivitySettingsBulkUpdate = "settings.bulk_update"
)

// Activity is one append-only entry in a user's activity history.
// Entries are never mutated and are listed newest-first.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Action    string
	Metadata  map[string]any
	CreatedAt time.Time
}
