// Package account implements user lookup operations backed by the store and
// the result cache. Lookups for missing users resolve to nil rather than an
// error so absent entities surface as GraphQL nulls.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the account service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
}

// Service implements user lookup operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	cache *cache.Cache[*domain.User]
}

// NewService creates a new account service instance.
func NewService(logger *slog.Logger, users userRepo, userCache *cache.Cache[*domain.User]) *Service {
	return &Service{
		log:   logger.With("service", "account"),
		users: users,
		cache: userCache,
	}
}
