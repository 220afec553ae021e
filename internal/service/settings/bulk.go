package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/pkg/ctxutil"
)

// BulkUpdate applies the triples independently in input order. A failing
// triple is recorded in the result and never aborts the remaining ones;
// only a dead context stops processing and returns an error. The cache
// entry of every successfully updated user is invalidated, and one
// best-effort activity record is written per distinct updated user.
func (s *Service) BulkUpdate(ctx context.Context, items []BulkUpdateItem) (*BulkUpdateResult, error) {
	var updatedBy *uuid.UUID
	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		updatedBy = &callerID
	}

	var (
		updatedCount int
		failedSeen   = map[uuid.UUID]struct{}{}
		failedOrder  []uuid.UUID
		updatedKeys  = map[uuid.UUID][]any{} // distinct updated users, keys per user
		updatedOrder []uuid.UUID
	)

	for _, item := range items {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("settings.BulkUpdate: %w", ctx.Err())
		}

		err := item.Validate()
		if err == nil {
			_, err = s.settings.Upsert(ctx, item.UserID, item.Key, item.Value, updatedBy)
		}
		if err != nil {
			s.log.WarnContext(ctx, "bulk update entry failed",
				slog.String("user_id", item.UserID.String()),
				slog.String("key", item.Key),
				slog.String("error", err.Error()))

			if _, seen := failedSeen[item.UserID]; !seen {
				failedSeen[item.UserID] = struct{}{}
				failedOrder = append(failedOrder, item.UserID)
			}
			continue
		}

		updatedCount++
		if _, seen := updatedKeys[item.UserID]; !seen {
			updatedOrder = append(updatedOrder, item.UserID)
		}
		updatedKeys[item.UserID] = append(updatedKeys[item.UserID], item.Key)
		s.cache.Invalidate(cache.UserKey(item.UserID))
	}

	now := time.Now().UTC()
	for _, userID := range updatedOrder {
		record := domain.Activity{
			ID:        uuid.New(),
			UserID:    userID,
			Action:    domain.ActivitySettingsBulkUpdate,
			Metadata:  map[string]any{"keys": updatedKeys[userID]},
			CreatedAt: now,
		}
		if _, err := s.activity.Create(ctx, record); err != nil {
			s.log.WarnContext(ctx, "bulk update activity record failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "bulk update finished",
		slog.Int("updated", updatedCount),
		slog.Int("failed_users", len(failedOrder)))

	return &BulkUpdateResult{
		Success:       len(failedOrder) == 0,
		UpdatedCount:  updatedCount,
		FailedUserIDs: failedOrder,
	}, nil
}
