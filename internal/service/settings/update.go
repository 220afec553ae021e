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

// UpdateSettings upserts the given entries for one user inside a single
// transaction and records one activity entry for the batch.
// Returns ErrNotFound without writing anything when the user does not exist.
// Entries are applied in input order, so a repeated key resolves to its last
// value. The user's cache entry is invalidated after commit, then each
// committed setting is pushed to the preferences sync endpoint best-effort.
func (s *Service) UpdateSettings(ctx context.Context, userID uuid.UUID, entries []SettingInput) (*UpdateResult, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	// The caller identity, when present, is recorded as the updater.
	var updatedBy *uuid.UUID
	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		updatedBy = &callerID
	}

	var (
		user     *domain.User
		upserted []domain.Setting
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("verify user: %w", err)
		}
		user = u

		upserted = make([]domain.Setting, 0, len(entries))
		keys := make([]any, 0, len(entries))
		for _, e := range entries {
			setting, err := s.settings.Upsert(txCtx, userID, e.Key, e.Value, updatedBy)
			if err != nil {
				return fmt.Errorf("upsert setting %q: %w", e.Key, err)
			}
			upserted = append(upserted, *setting)
			keys = append(keys, e.Key)
		}

		if len(entries) == 0 {
			return nil
		}

		record := domain.Activity{
			ID:        uuid.New(),
			UserID:    userID,
			Action:    domain.ActivitySettingsUpdate,
			Metadata:  map[string]any{"keys": keys},
			CreatedAt: time.Now().UTC(),
		}
		if _, err := s.activity.Create(txCtx, record); err != nil {
			return fmt.Errorf("create activity record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings.UpdateSettings: %w", err)
	}

	s.cache.Invalidate(cache.UserKey(userID))

	// Committed state propagates to the preferences service; a sync failure
	// never reaches the caller.
	_ = s.sync.SyncSettings(ctx, upserted)

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(upserted)))

	return &UpdateResult{
		Success:  true,
		User:     user,
		Settings: upserted,
	}, nil
}
