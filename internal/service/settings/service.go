// Package settings implements the settings mutation operations: single-user
// update, bulk multi-user update and user deletion, plus the unfiltered
// settings listing. It owns cache invalidation on behalf of completed writes.
package settings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the settings service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// settingRepo defines the setting repository interface needed by the settings service.
type settingRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, key, value string, updatedBy *uuid.UUID) (*domain.Setting, error)
	ListAll(ctx context.Context) ([]domain.Setting, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// activityRepo defines the activity repository interface needed by the settings service.
type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the settings service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// syncer pushes committed setting updates to the external preferences service.
type syncer interface {
	SyncSettings(ctx context.Context, settings []domain.Setting) error
}

// Service implements settings mutation operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	settings settingRepo
	activity activityRepo
	tx       txManager
	sync     syncer
	cache    *cache.Cache[*domain.User]
}

// NewService creates a new settings service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingRepo,
	activity activityRepo,
	tx txManager,
	sync syncer,
	userCache *cache.Cache[*domain.User],
) *Service {
	return &Service{
		log:      logger.With("service", "settings"),
		users:    users,
		settings: settings,
		activity: activity,
		tx:       tx,
		sync:     sync,
		cache:    userCache,
	}
}
