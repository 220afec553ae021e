// Package activity implements the Activity repository using PostgreSQL.
// It provides append-only operations for the per-user activity history;
// rows are never updated, only inserted and bulk-deleted with their owner.
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prefstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// Repo provides activity history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const activityColumns = `id, user_id, action, metadata, created_at`

const createSQL = `
INSERT INTO activity_log (id, user_id, action, metadata, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + activityColumns

const listByUserIDsSQL = `
SELECT ` + activityColumns + `
FROM activity_log
WHERE user_id = ANY($1)
ORDER BY created_at DESC`

const deleteByUserIDSQL = `
DELETE FROM activity_log WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends one activity entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return nil, fmt.Errorf("activity marshal metadata: %w", err)
	}

	row := querier.QueryRow(ctx, createSQL, a.ID, a.UserID, a.Action, metadata, a.CreatedAt)

	created, err := scanActivity(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}

	return created, nil
}

// DeleteByUserID removes all activity entries owned by the user.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByUserIDSQL, userID); err != nil {
		return postgres.MapError(err, "activity", userID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUserIDs returns activity entries for all given users in one
// round-trip, newest first. Used by the per-request DataLoader.
func (r *Repo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Activity, error) {
	if len(userIDs) == 0 {
		return []domain.Activity{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserIDsSQL, userIDs)
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	defer rows.Close()

	return collectActivities(rows, uuid.Nil)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var (
		a        domain.Activity
		metadata []byte
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Action, &metadata, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("activity unmarshal metadata: %w", err)
		}
	}
	return &a, nil
}

func collectActivities(rows pgx.Rows, userID uuid.UUID) ([]domain.Activity, error) {
	entries := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, postgres.MapError(err, "activity", userID)
		}
		entries = append(entries, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}
	return entries, nil
}
