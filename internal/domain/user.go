package domain

import (
	"errors"
	"fmt"
)

// Role of an authenticated user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User identity resolved from the access token
type User struct {
	ID   string
	Role Role
}

// IsAdmin returns true for staff accounts
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrUnknownRole returned by ParseRole
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a role claim
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}
