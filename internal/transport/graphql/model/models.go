// Package model holds the GraphQL input and payload types bound in
// gqlgen.yml. Entity types bind directly to internal/domain structs.
package model

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// SettingInput is one key/value pair of an updateSettings call.
type SettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BulkUpdateInput is one (user, key, value) triple of a bulkUpdateSettings call.
type BulkUpdateInput struct {
	UserID uuid.UUID `json:"userId"`
	Key    string    `json:"key"`
	Value  string    `json:"value"`
}

// UpdateSettingsPayload is the result of updateSettings. Settings preserves
// the input entry order.
type UpdateSettingsPayload struct {
	Success  bool              `json:"success"`
	User     *domain.User      `json:"user"`
	Settings []*domain.Setting `json:"settings"`
}

// BulkUpdatePayload is the result of bulkUpdateSettings. Partial failure is
// data: Success is true only when FailedUserIds is empty.
type BulkUpdatePayload struct {
	Success       bool        `json:"success"`
	UpdatedCount  int         `json:"updatedCount"`
	FailedUserIds []uuid.UUID `json:"failedUserIds"`
}

// DeleteUserPayload is the result of deleteUser. Deletion is idempotent;
// Success is always true.
type DeleteUserPayload struct {
	Success   bool      `json:"success"`
	DeletedID uuid.UUID `json:"deletedId"`
}
