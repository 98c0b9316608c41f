package user

import "venuebook/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role mirrors what the external identity provider puts in the token.
// Managers administer a destination's slots, events and bookings;
// customers only book.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleManager:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
