package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole determines what a user is allowed to do through administrative
// paths. The settings API itself only reads it.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
	UserRoleViewer UserRole = "VIEWER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember, UserRoleViewer:
		return true
	}
	return false
}

// User represents an application user account.
// CreatedAt is immutable; username/email/role only change through
// administrative paths outside this service.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}
