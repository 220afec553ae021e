package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/internal/service/settings"
)

// accountService defines what the resolver needs from the account service.
type accountService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUsers(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
}

// settingsService defines what the resolver needs from the settings service.
type settingsService interface {
	UpdateSettings(ctx context.Context, userID uuid.UUID, entries []settings.SettingInput) (*settings.UpdateResult, error)
	BulkUpdate(ctx context.Context, items []settings.BulkUpdateItem) (*settings.BulkUpdateResult, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*settings.DeleteResult, error)
	AllSettings(ctx context.Context) ([]domain.Setting, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	account  accountService
	settings settingsService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, account accountService, settings settingsService) *Resolver {
	return &Resolver{
		account:  account,
		settings: settings,
		log:      log.With("component", "graphql"),
	}
}
