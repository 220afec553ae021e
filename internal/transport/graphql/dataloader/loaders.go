package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Settings by UserID
// ---------------------------------------------------------------------------

func newSettingsBatchFn(repo settingRepo) dataloader.BatchFunc[uuid.UUID, []domain.Setting] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Setting] {
		settings, err := repo.ListByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Setting](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Setting, len(keys))
		for _, s := range settings {
			grouped[s.UserID] = append(grouped[s.UserID], s)
		}

		return mapResults(keys, grouped, emptySlice[domain.Setting])
	}
}

// ---------------------------------------------------------------------------
// Activities by UserID
// ---------------------------------------------------------------------------

func newActivitiesBatchFn(repo activityRepo) dataloader.BatchFunc[uuid.UUID, []domain.Activity] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Activity] {
		// Rows arrive newest first and grouping preserves that order per key.
		entries, err := repo.ListByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Activity](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Activity, len(keys))
		for _, a := range entries {
			grouped[a.UserID] = append(grouped[a.UserID], a)
		}

		return mapResults(keys, grouped, emptySlice[domain.Activity])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
