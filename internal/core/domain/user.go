package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role values as the platform sends them on the wire.
const (
	RoleRequester = "pin"     // person in need, owns assistance requests
	RoleResponder = "csr_rep" // corporate volunteer representative
	RoleAdmin     = "admin"
	RolePlatform  = "platform"
)

var ErrMalformedEntity = errors.New("malformed entity")

// ValidRole reports whether r is a role the platform knows about.
func ValidRole(r string) bool {
	switch r {
	case RoleRequester, RoleResponder, RoleAdmin, RolePlatform:
		return true
	}
	return false
}

// User models an authenticated account on the platform.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields a well-formed user payload must carry.
func (u *User) Validate() error {
	if u.ID == 0 {
		return fmt.Errorf("%w: user missing id", ErrMalformedEntity)
	}
	if u.Username == "" {
		return fmt.Errorf("%w: user missing username", ErrMalformedEntity)
	}
	if !ValidRole(u.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrMalformedEntity, u.Role)
	}
	return nil
}

// Session is the client's local record of an authenticated identity. It is
// persisted as a single unit: a token is never stored without its user.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
