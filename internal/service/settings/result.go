package settings

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// UpdateResult is the outcome of a single-user settings update.
// Settings preserves the input entry order.
type UpdateResult struct {
	Success  bool
	User     *domain.User
	Settings []domain.Setting
}

// BulkUpdateResult is the outcome of a bulk update. Partial failure is data,
// not an error: Success is true only when FailedUserIDs is empty.
// FailedUserIDs lists each failing user at most once, in first-seen order.
type BulkUpdateResult struct {
	Success       bool
	UpdatedCount  int
	FailedUserIDs []uuid.UUID
}

// DeleteResult is the outcome of a user deletion. Deletion is idempotent;
// Success is always true.
type DeleteResult struct {
	Success   bool
	DeletedID uuid.UUID
}
