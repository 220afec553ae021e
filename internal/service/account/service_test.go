package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestService(users userRepo) (*Service, *cache.Cache[*domain.User]) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	userCache := cache.New[*domain.User](128, time.Minute)
	return NewService(logger, users, userCache), userCache
}

func testUser(id uuid.UUID) *domain.User {
	return &domain.User{
		ID:        id,
		Username:  "user-" + id.String()[:8],
		Email:     "user-" + id.String()[:8] + "@example.com",
		Role:      domain.UserRoleMember,
		CreatedAt: time.Now().UTC(),
	}
}

// ---------------------------------------------------------------------------
// GetUser
// ---------------------------------------------------------------------------

func TestService_GetUser_MissHitsStoreAndCaches(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expected := testUser(id)

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.User, error) {
			assert.Equal(t, id, gotID)
			return expected, nil
		},
	}
	svc, userCache := newTestService(users)

	got, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Len(t, users.GetByIDCalls(), 1)

	cached, ok := userCache.Get(cache.UserKey(id))
	require.True(t, ok)
	assert.Equal(t, expected, cached)
}

func TestService_GetUser_HitSkipsStore(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expected := testUser(id)

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.User, error) {
			t.Fatal("store must not be consulted on a cache hit")
			return nil, nil
		},
	}
	svc, userCache := newTestService(users)
	userCache.Set(cache.UserKey(id), expected)

	got, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Empty(t, users.GetByIDCalls())
}

func TestService_GetUser_NotFoundResolvesToNil(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.GetUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_GetUser_StoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("pool exhausted")
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, storeErr
		},
	}
	svc, _ := newTestService(users)

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, storeErr)
}

// ---------------------------------------------------------------------------
// GetUsers
// ---------------------------------------------------------------------------

func TestService_GetUsers_PreservesOrderAndLength(t *testing.T) {
	t.Parallel()

	known := uuid.New()
	missing := uuid.New()
	other := uuid.New()

	byID := map[uuid.UUID]*domain.User{
		known: testUser(known),
		other: testUser(other),
	}

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.GetUsers(context.Background(), []uuid.UUID{other, missing, known})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, byID[other], got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, byID[known], got[2])
}

func TestService_GetUsers_DuplicateIDs(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expected := testUser(id)

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.User, error) {
			return expected, nil
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.GetUsers(context.Background(), []uuid.UUID{id, id, id})
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, u := range got {
		assert.Equal(t, expected, u)
	}
}

func TestService_GetUsers_Empty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&userRepoMock{})

	got, err := svc.GetUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// SearchUsers
// ---------------------------------------------------------------------------

func TestService_SearchUsers_PassesQuery(t *testing.T) {
	t.Parallel()

	expected := []domain.User{*testUser(uuid.New())}
	users := &userRepoMock{
		SearchFunc: func(ctx context.Context, query string) ([]domain.User, error) {
			assert.Equal(t, "ali", query)
			return expected, nil
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.SearchUsers(context.Background(), "ali")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

// ---------------------------------------------------------------------------
// Me
// ---------------------------------------------------------------------------

func TestService_Me_AnonymousResolvesToNil(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&userRepoMock{})

	got, err := svc.Me(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Me_ReturnsCallersUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expected := testUser(id)
	ctx := ctxutil.WithUserID(context.Background(), id)

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.User, error) {
			assert.Equal(t, id, gotID)
			return expected, nil
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestService_Me_VanishedUserResolvesToNil(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc, _ := newTestService(users)

	got, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
