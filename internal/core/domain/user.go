package domain

import (
	"errors"
	"time"
)

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRateLimited = errors.New("too many login attempts")
var ErrAccountDisabled = errors.New("account is disabled")
var ErrPermissionDenied = errors.New("permission denied")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired or revoked")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrOwnerImmutable = errors.New("owner accounts cannot be deleted")
var ErrResetTokenInvalid = errors.New("invalid or expired password reset token")
var ErrSettingsNotFound = errors.New("settings not found")

// User models an account in the console. The password hash is excluded
// from JSON so it never appears in a response body.
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Disabled *bool   `json:"disabled,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}
