package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/internal/service/settings"
)

var (
	_ accountService  = &accountServiceMock{}
	_ settingsService = &settingsServiceMock{}
)

type accountServiceMock struct {
	GetUserFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUsersFunc    func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	SearchUsersFunc func(ctx context.Context, query string) ([]domain.User, error)
	MeFunc          func(ctx context.Context) (*domain.User, error)

	calls struct {
		GetUser []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetUser sync.RWMutex
}

func (mock *accountServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("accountServiceMock.GetUserFunc: method is nil but accountService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *accountServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *accountServiceMock) GetUsers(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if mock.GetUsersFunc == nil {
		panic("accountServiceMock.GetUsersFunc: method is nil but accountService.GetUsers was just called")
	}
	return mock.GetUsersFunc(ctx, ids)
}

func (mock *accountServiceMock) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	if mock.SearchUsersFunc == nil {
		panic("accountServiceMock.SearchUsersFunc: method is nil but accountService.SearchUsers was just called")
	}
	return mock.SearchUsersFunc(ctx, query)
}

func (mock *accountServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	return mock.MeFunc(ctx)
}

type settingsServiceMock struct {
	UpdateSettingsFunc func(ctx context.Context, userID uuid.UUID, entries []settings.SettingInput) (*settings.UpdateResult, error)
	BulkUpdateFunc     func(ctx context.Context, items []settings.BulkUpdateItem) (*settings.BulkUpdateResult, error)
	DeleteUserFunc     func(ctx context.Context, id uuid.UUID) (*settings.DeleteResult, error)
	AllSettingsFunc    func(ctx context.Context) ([]domain.Setting, error)
}

func (mock *settingsServiceMock) UpdateSettings(ctx context.Context, userID uuid.UUID, entries []settings.SettingInput) (*settings.UpdateResult, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("settingsServiceMock.UpdateSettingsFunc: method is nil but settingsService.UpdateSettings was just called")
	}
	return mock.UpdateSettingsFunc(ctx, userID, entries)
}

func (mock *settingsServiceMock) BulkUpdate(ctx context.Context, items []settings.BulkUpdateItem) (*settings.BulkUpdateResult, error) {
	if mock.BulkUpdateFunc == nil {
		panic("settingsServiceMock.BulkUpdateFunc: method is nil but settingsService.BulkUpdate was just called")
	}
	return mock.BulkUpdateFunc(ctx, items)
}

func (mock *settingsServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) (*settings.DeleteResult, error) {
	if mock.DeleteUserFunc == nil {
		panic("settingsServiceMock.DeleteUserFunc: method is nil but settingsService.DeleteUser was just called")
	}
	return mock.DeleteUserFunc(ctx, id)
}

func (mock *settingsServiceMock) AllSettings(ctx context.Context) ([]domain.Setting, error) {
	if mock.AllSettingsFunc == nil {
		panic("settingsServiceMock.AllSettingsFunc: method is nil but settingsService.AllSettings was just called")
	}
	return mock.AllSettingsFunc(ctx)
}
