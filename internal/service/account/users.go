package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/pkg/ctxutil"
)

// GetUser returns one user by id, consulting the cache first.
// A missing user resolves to (nil, nil), never an error; the store is hit
// only on a cache miss and a found user repopulates the cache.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	key := cache.UserKey(id)
	if u, ok := s.cache.Get(key); ok {
		return u, nil
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("account.GetUser: %w", err)
	}

	s.cache.Set(key, u)
	return u, nil
}

// GetUsers resolves each id concurrently. The result has exactly one element
// per input id, in input order; ids without a user yield a nil element.
func (s *Service) GetUsers(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	result := make([]*domain.User, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			u, err := s.GetUser(gctx, id)
			if err != nil {
				return err
			}
			result[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("account.GetUsers: %w", err)
	}

	return result, nil
}

// SearchUsers returns users whose username or email contains query,
// case-insensitively. Results are never cached.
func (s *Service) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("account.SearchUsers: %w", err)
	}
	return users, nil
}

// Me returns the user identified by the request context. An anonymous
// request or a vanished user resolves to (nil, nil).
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil
	}
	return s.GetUser(ctx, userID)
}
