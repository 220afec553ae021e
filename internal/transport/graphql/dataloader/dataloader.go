// Package dataloader provides per-request DataLoaders batching the nested
// User.settings and User.activityLog resolutions into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type settingRepo interface {
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Setting, error)
}

type activityRepo interface {
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Activity, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Setting  settingRepo
	Activity activityRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders; loaders cache results within a single request only.
type Loaders struct {
	SettingsByUserID   *dataloader.Loader[uuid.UUID, []domain.Setting]
	ActivitiesByUserID *dataloader.Loader[uuid.UUID, []domain.Activity]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		SettingsByUserID:   newLoader(newSettingsBatchFn(repos.Setting)),
		ActivitiesByUserID: newLoader(newActivitiesBatchFn(repos.Activity)),
	}
}

// WarmSettings schedules a batched settings fetch for the given users so
// nested resolutions hit the loader cache. Used by
// searchUsers(includeSettings: true).
func (l *Loaders) WarmSettings(ctx context.Context, userIDs []uuid.UUID) {
	if len(userIDs) == 0 {
		return
	}
	l.SettingsByUserID.LoadMany(ctx, userIDs)
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context — is middleware configured?")
	}
	return l
}
