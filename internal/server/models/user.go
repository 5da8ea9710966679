package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/common"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool { return oneOf(r, RoleAdmin, RoleMember) }

// UserColumns lists the user columns a partial update may touch.
var UserColumns = []string{"email", "name", "password_hash", "role"}

// User is a row of the users table. PasswordHash is stored verbatim and is
// never returned by listings.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ApplyDefaults fills columns the store defaults when left empty.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleMember
	}
}

// Set assigns a single column value.
func (u *User) Set(column, value string) error {
	switch column {
	case "name":
		u.Name = value
	case "email":
		u.Email = value
	case "password_hash":
		u.PasswordHash = value
	case "role":
		u.Role = Role(value)
	default:
		return fmt.Errorf("%w: %q", common.ErrorUnknownField, column)
	}
	return nil
}

// Check mirrors the table constraints.
func (u *User) Check() error {
	if !u.Role.Valid() {
		return fmt.Errorf("%w: role %q", common.ErrorInvalidValue, u.Role)
	}
	return nil
}
