// Package setting implements the Setting repository using PostgreSQL.
// Writes go through a single upsert keyed by the (user_id, key) uniqueness
// constraint: inserting an existing key overwrites the value and refreshes
// the timestamp instead of creating a duplicate row.
package setting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/prefstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// Repo provides preference setting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new setting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const settingColumns = `id, user_id, key, value, updated_at, updated_by`

const listByUserIDsSQL = `
SELECT ` + settingColumns + `
FROM user_settings
WHERE user_id = ANY($1)
ORDER BY user_id, key ASC`

const listAllSQL = `
SELECT ` + settingColumns + `
FROM user_settings
ORDER BY user_id, key ASC`

const upsertSQL = `
INSERT INTO user_settings (id, user_id, key, value, updated_at, updated_by)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, key)
DO UPDATE SET value = EXCLUDED.value,
              updated_at = EXCLUDED.updated_at,
              updated_by = EXCLUDED.updated_by
RETURNING ` + settingColumns

const deleteByUserIDSQL = `
DELETE FROM user_settings WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUserIDs returns all settings owned by any of the given users in one
// round-trip, ordered by user then key. Used by the per-request DataLoader.
func (r *Repo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Setting, error) {
	if len(userIDs) == 0 {
		return []domain.Setting{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserIDsSQL, userIDs)
	if err != nil {
		return nil, postgres.MapError(err, "setting", uuid.Nil)
	}
	defer rows.Close()

	return collectSettings(rows, uuid.Nil)
}

// ListAll returns every setting across all users.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Setting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, postgres.MapError(err, "setting", uuid.Nil)
	}
	defer rows.Close()

	return collectSettings(rows, uuid.Nil)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the setting or, when (user_id, key) already exists,
// overwrites its value and refreshes updated_at/updated_by.
// A foreign-key violation (unknown user) maps to domain.ErrNotFound.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, key, value string, updatedBy *uuid.UUID) (*domain.Setting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		uuid.New(), userID, key, value, time.Now().UTC(), updatedBy)

	s, err := scanSetting(row)
	if err != nil {
		return nil, postgres.MapError(err, "setting", userID)
	}

	return s, nil
}

// DeleteByUserID removes all settings owned by the user.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByUserIDSQL, userID); err != nil {
		return postgres.MapError(err, "setting", userID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSetting(row pgx.Row) (*domain.Setting, error) {
	var s domain.Setting
	if err := row.Scan(&s.ID, &s.UserID, &s.Key, &s.Value, &s.UpdatedAt, &s.UpdatedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan setting: %w", err)
	}
	return &s, nil
}

func collectSettings(rows pgx.Rows, userID uuid.UUID) ([]domain.Setting, error) {
	settings := []domain.Setting{}
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, postgres.MapError(err, "setting", userID)
		}
		settings = append(settings, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "setting", userID)
	}
	return settings, nil
}
