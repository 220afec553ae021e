package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type stubSettingRepo struct {
	result []domain.Setting
	err    error
	calls  int
}

func (s *stubSettingRepo) ListByUserIDs(_ context.Context, _ []uuid.UUID) ([]domain.Setting, error) {
	s.calls++
	return s.result, s.err
}

type stubActivityRepo struct {
	result []domain.Activity
	err    error
}

func (s *stubActivityRepo) ListByUserIDs(_ context.Context, _ []uuid.UUID) ([]domain.Activity, error) {
	return s.result, s.err
}

// ctxWithLoaders returns a context carrying fresh loaders over the stubs.
func ctxWithLoaders(settingRepo *stubSettingRepo, activityRepo *stubActivityRepo) context.Context {
	if settingRepo == nil {
		settingRepo = &stubSettingRepo{}
	}
	if activityRepo == nil {
		activityRepo = &stubActivityRepo{}
	}
	loaders := dataloader.NewLoaders(&dataloader.Repos{
		Setting:  settingRepo,
		Activity: activityRepo,
	})
	return dataloader.WithLoaders(context.Background(), loaders)
}

func sampleUser(id uuid.UUID) *domain.User {
	return &domain.User{
		ID:       id,
		Username: "sample-" + id.String()[:8],
		Email:    "sample-" + id.String()[:8] + "@example.com",
		Role:     domain.UserRoleMember,
	}
}

// ---------------------------------------------------------------------------
// user / users
// ---------------------------------------------------------------------------

func TestQuery_User_Found(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	expected := sampleUser(id)

	account := &accountServiceMock{
		GetUserFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.User, error) {
			assert.Equal(t, id, gotID)
			return expected, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	got, err := resolver.User(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestQuery_User_MissingYieldsNull(t *testing.T) {
	t.Parallel()

	account := &accountServiceMock{
		GetUserFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	got, err := resolver.User(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuery_Users_PreservesOrderAndNulls(t *testing.T) {
	t.Parallel()

	a := uuid.New()
	b := uuid.New() // missing
	c := uuid.New()
	userA := sampleUser(a)
	userC := sampleUser(c)

	account := &accountServiceMock{
		GetUsersFunc: func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
			assert.Equal(t, []uuid.UUID{a, b, c}, ids)
			return []*domain.User{userA, nil, userC}, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	got, err := resolver.Users(context.Background(), []uuid.UUID{a, b, c})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, userA, got[0])
	assert.Nil(t, got[1])
	assert.Equal(t, userC, got[2])
}

// ---------------------------------------------------------------------------
// searchUsers
// ---------------------------------------------------------------------------

func TestQuery_SearchUsers(t *testing.T) {
	t.Parallel()

	u := sampleUser(uuid.New())
	account := &accountServiceMock{
		SearchUsersFunc: func(ctx context.Context, query string) ([]domain.User, error) {
			assert.Equal(t, "ali", query)
			return []domain.User{*u}, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	got, err := resolver.SearchUsers(ctxWithLoaders(nil, nil), "ali", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, u.ID, got[0].ID)
}

func TestQuery_SearchUsers_IncludeSettingsWarmsLoader(t *testing.T) {
	t.Parallel()

	u := sampleUser(uuid.New())
	settingRepo := &stubSettingRepo{
		result: []domain.Setting{{ID: uuid.New(), UserID: u.ID, Key: "theme", Value: "dark"}},
	}
	ctx := ctxWithLoaders(settingRepo, nil)

	account := &accountServiceMock{
		SearchUsersFunc: func(ctx context.Context, query string) ([]domain.User, error) {
			return []domain.User{*u}, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	include := true
	got, err := resolver.SearchUsers(ctx, "sample", &include)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// The nested settings resolution joins the warmed batch.
	fields := &userResolver{resolver.Resolver}
	nested, err := fields.Settings(ctx, got[0])
	require.NoError(t, err)
	assert.Len(t, nested, 1)
	assert.Equal(t, 1, settingRepo.calls)
}

// ---------------------------------------------------------------------------
// me / allSettings
// ---------------------------------------------------------------------------

func TestQuery_Me_Anonymous(t *testing.T) {
	t.Parallel()

	account := &accountServiceMock{
		MeFunc: func(ctx context.Context) (*domain.User, error) {
			return nil, nil
		},
	}
	resolver := &queryResolver{&Resolver{account: account}}

	got, err := resolver.Me(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuery_AllSettings(t *testing.T) {
	t.Parallel()

	expected := []domain.Setting{
		{ID: uuid.New(), UserID: uuid.New(), Key: "theme", Value: "dark"},
		{ID: uuid.New(), UserID: uuid.New(), Key: "lang", Value: "en"},
	}
	svc := &settingsServiceMock{
		AllSettingsFunc: func(ctx context.Context) ([]domain.Setting, error) {
			return expected, nil
		},
	}
	resolver := &queryResolver{&Resolver{settings: svc}}

	got, err := resolver.AllSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, expected[0], *got[0])
	assert.Equal(t, expected[1], *got[1])
}
