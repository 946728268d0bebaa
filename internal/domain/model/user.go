package model

import "time"

// Role distinguishes regular clients from administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an authenticated principal of the portal.
type User struct {
	ID           int64
	Email        string
	Name         string
	Image        string
	Role         Role
	PasswordHash *string
	FCMToken     *string
	CreatedAt    time.Time
}

// IsAdmin reports whether the principal holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity carries a profile verified by an external OAuth provider.
type Identity struct {
	Email string
	Name  string
	Image string
}
