package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/prefstore-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a MEMBER user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  "testuser-" + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		Role:      domain.UserRoleMember,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.Role.String(), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedSetting inserts one setting row for the given user and returns it.
func SeedSetting(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, key, value string) domain.Setting {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Setting{
		ID:        uuid.New(),
		UserID:    userID,
		Key:       key,
		Value:     value,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_settings (id, user_id, key, value, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.Key, s.Value, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSetting insert: %v", err)
	}

	return s
}

// SeedActivity appends one activity entry for the given user at the given time.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, action string, at time.Time) domain.Activity {
	t.Helper()
	ctx := context.Background()

	a := domain.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Metadata:  map[string]any{},
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO activity_log (id, user_id, action, metadata, created_at)
		 VALUES ($1, $2, $3, '{}', $4)`,
		a.ID, a.UserID, a.Action, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert: %v", err)
	}

	return a
}
