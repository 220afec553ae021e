package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

var (
	_ userRepo     = &userRepoMock{}
	_ settingRepo  = &settingRepoMock{}
	_ activityRepo = &activityRepoMock{}
	_ txManager    = &txManagerMock{}
	_ syncer       = &syncerMock{}
)

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type settingRepoMock struct {
	UpsertFunc         func(ctx context.Context, userID uuid.UUID, key, value string, updatedBy *uuid.UUID) (*domain.Setting, error)
	ListAllFunc        func(ctx context.Context) ([]domain.Setting, error)
	DeleteByUserIDFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Upsert []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Key       string
			Value     string
			UpdatedBy *uuid.UUID
		}
		ListAll []struct {
			Ctx context.Context
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsert         sync.RWMutex
	lockListAll        sync.RWMutex
	lockDeleteByUserID sync.RWMutex
}

func (mock *settingRepoMock) Upsert(ctx context.Context, userID uuid.UUID, key, value string, updatedBy *uuid.UUID) (*domain.Setting, error) {
	if mock.UpsertFunc == nil {
		panic("settingRepoMock.UpsertFunc: method is nil but settingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Key       string
		Value     string
		UpdatedBy *uuid.UUID
	}{Ctx: ctx, UserID: userID, Key: key, Value: value, UpdatedBy: updatedBy}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, key, value, updatedBy)
}

func (mock *settingRepoMock) UpsertCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Key       string
	Value     string
	UpdatedBy *uuid.UUID
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *settingRepoMock) ListAll(ctx context.Context) ([]domain.Setting, error) {
	if mock.ListAllFunc == nil {
		panic("settingRepoMock.ListAllFunc: method is nil but settingRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *settingRepoMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserIDFunc == nil {
		panic("settingRepoMock.DeleteByUserIDFunc: method is nil but settingRepo.DeleteByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *settingRepoMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}

type activityRepoMock struct {
	CreateFunc         func(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	DeleteByUserIDFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Activity
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockDeleteByUserID sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Activity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserIDFunc == nil {
		panic("activityRepoMock.DeleteByUserIDFunc: method is nil but activityRepo.DeleteByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *activityRepoMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}

// txManagerMock runs the callback directly on the caller's context.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type syncerMock struct {
	SyncSettingsFunc func(ctx context.Context, settings []domain.Setting) error

	calls struct {
		SyncSettings []struct {
			Ctx      context.Context
			Settings []domain.Setting
		}
	}
	lockSyncSettings sync.RWMutex
}

func (mock *syncerMock) SyncSettings(ctx context.Context, settings []domain.Setting) error {
	callInfo := struct {
		Ctx      context.Context
		Settings []domain.Setting
	}{Ctx: ctx, Settings: settings}
	mock.lockSyncSettings.Lock()
	mock.calls.SyncSettings = append(mock.calls.SyncSettings, callInfo)
	mock.lockSyncSettings.Unlock()
	if mock.SyncSettingsFunc != nil {
		return mock.SyncSettingsFunc(ctx, settings)
	}
	return nil
}

func (mock *syncerMock) SyncSettingsCalls() []struct {
	Ctx      context.Context
	Settings []domain.Setting
} {
	mock.lockSyncSettings.RLock()
	calls := mock.calls.SyncSettings
	mock.lockSyncSettings.RUnlock()
	return calls
}
