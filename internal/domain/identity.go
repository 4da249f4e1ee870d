package domain

import "github.com/google/uuid"

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	switch i.Role {
	case RoleAdmin:
		return true
	case RoleMember:
		return false
	}
	return false
}
