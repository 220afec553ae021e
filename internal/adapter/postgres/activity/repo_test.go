package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

func newRepo(t *testing.T) (*activity.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return activity.New(pool), pool
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)

	a := domain.Activity{
		ID:     uuid.New(),
		UserID: owner.ID,
		Action: domain.ActivitySettingsUpdate,
		Metadata: map[string]any{
			"keys": []any{"theme", "lang"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	got, err := repo.Create(ctx, a)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != a.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, a.ID)
	}
	if got.Action != a.Action {
		t.Errorf("Action mismatch: got %q, want %q", got.Action, a.Action)
	}
	keys, ok := got.Metadata["keys"].([]any)
	if !ok || len(keys) != 2 {
		t.Errorf("Metadata round-trip mismatch: got %#v", got.Metadata)
	}
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func TestRepo_ListByUserIDs_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	oldest := testhelper.SeedActivity(t, pool, owner.ID, domain.ActivitySettingsUpdate, base.Add(-2*time.Hour))
	middle := testhelper.SeedActivity(t, pool, owner.ID, domain.ActivitySettingsBulkUpdate, base.Add(-time.Hour))
	newest := testhelper.SeedActivity(t, pool, owner.ID, domain.ActivitySettingsUpdate, base)

	got, err := repo.ListByUserIDs(ctx, []uuid.UUID{owner.ID})
	if err != nil {
		t.Fatalf("ListByUserIDs: unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	wantOrder := []uuid.UUID{newest.ID, middle.ID, oldest.ID}
	for i, a := range got {
		if a.ID != wantOrder[i] {
			t.Errorf("position %d: got %s, want %s", i, a.ID, wantOrder[i])
		}
	}
}

func TestRepo_ListByUserIDs_UserWithoutHistory(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)

	got, err := repo.ListByUserIDs(ctx, []uuid.UUID{owner.ID})
	if err != nil {
		t.Fatalf("ListByUserIDs: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestRepo_ListByUserIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u1 := testhelper.SeedUser(t, pool)
	u2 := testhelper.SeedUser(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond)
	testhelper.SeedActivity(t, pool, u1.ID, domain.ActivitySettingsUpdate, base.Add(-time.Minute))
	testhelper.SeedActivity(t, pool, u1.ID, domain.ActivitySettingsUpdate, base)
	testhelper.SeedActivity(t, pool, u2.ID, domain.ActivitySettingsBulkUpdate, base)

	got, err := repo.ListByUserIDs(ctx, []uuid.UUID{u1.ID, u2.ID})
	if err != nil {
		t.Fatalf("ListByUserIDs: unexpected error: %v", err)
	}

	counts := map[uuid.UUID]int{}
	for _, a := range got {
		counts[a.UserID]++
	}
	if counts[u1.ID] != 2 || counts[u2.ID] != 1 {
		t.Fatalf("per-user counts mismatch: %v", counts)
	}
}

// ---------------------------------------------------------------------------
// DeleteByUserID
// ---------------------------------------------------------------------------

func TestRepo_DeleteByUserID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	now := time.Now().UTC()
	testhelper.SeedActivity(t, pool, owner.ID, domain.ActivitySettingsUpdate, now)
	kept := testhelper.SeedActivity(t, pool, other.ID, domain.ActivitySettingsUpdate, now)

	if err := repo.DeleteByUserID(ctx, owner.ID); err != nil {
		t.Fatalf("DeleteByUserID: unexpected error: %v", err)
	}

	gone, err := repo.ListByUserIDs(ctx, []uuid.UUID{owner.ID})
	if err != nil {
		t.Fatalf("ListByUserIDs: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("expected 0 entries after deletion, got %d", len(gone))
	}

	remaining, err := repo.ListByUserIDs(ctx, []uuid.UUID{other.ID})
	if err != nil {
		t.Fatalf("ListByUserIDs other: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Fatalf("other user's history should survive, got %d rows", len(remaining))
	}
}
