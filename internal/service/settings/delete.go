package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
)

// DeleteUser removes the user's activity entries, then settings, then the
// user row, children before parent. Deleting an unknown id is a no-op;
// either way the result reports success with the requested id.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	if err := s.activity.DeleteByUserID(ctx, id); err != nil {
		return nil, fmt.Errorf("settings.DeleteUser: delete activity: %w", err)
	}
	if err := s.settings.DeleteByUserID(ctx, id); err != nil {
		return nil, fmt.Errorf("settings.DeleteUser: delete settings: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("settings.DeleteUser: delete user: %w", err)
	}

	s.cache.Invalidate(cache.UserKey(id))

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))

	return &DeleteResult{Success: true, DeletedID: id}, nil
}
