package mentor

import (
	"context"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/pkg/ctxutil"
)

// Action is an operation a caller may attempt against the community data.
type Action int

const (
	// ActionBrowse covers the public directory and public event listings.
	ActionBrowse Action = iota
	// ActionRegister creates the caller's own mentor record.
	ActionRegister
	// ActionManageOwn reads or edits the caller's own mentor record.
	ActionManageOwn
	// ActionModerate covers approval, deletion and event administration.
	ActionModerate
)

func (a Action) String() string {
	switch a {
	case ActionBrowse:
		return "browse"
	case ActionRegister:
		return "register"
	case ActionManageOwn:
		return "manage_own"
	case ActionModerate:
		return "moderate"
	}
	return "unknown"
}

// Authorize decides whether the caller may perform action.
// Returns ErrUnauthorized when an identity is required but absent and
// ErrForbidden when the role is insufficient.
func Authorize(caller domain.Identity, authenticated bool, action Action) error {
	if action == ActionBrowse {
		return nil
	}
	if !authenticated {
		return domain.ErrUnauthorized
	}

	switch caller.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleMember:
		if action == ActionModerate {
			return domain.ErrForbidden
		}
		return nil
	}
	return domain.ErrForbidden
}

// AuthorizeCtx is Authorize over the identity carried by ctx.
func AuthorizeCtx(ctx context.Context, action Action) (domain.Identity, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if err := Authorize(caller, ok, action); err != nil {
		return domain.Identity{}, err
	}
	return caller, nil
}

// CanView reports whether the caller may see m. Approved mentors are public;
// pending ones are visible to their owner and to admins only.
func CanView(caller domain.Identity, authenticated bool, m domain.Mentor) bool {
	if m.IsApproved {
		return true
	}
	if !authenticated {
		return false
	}

	switch caller.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleMember:
		return m.IsOwnedBy(caller.UserID)
	}
	return false
}
