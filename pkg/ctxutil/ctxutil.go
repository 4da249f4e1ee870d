package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller's role in the context.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the caller's role. Returns false if absent or invalid.
func RoleFromCtx(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return "", false
	}
	return role, true
}

// WithIdentity stores both user ID and role.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return WithRole(WithUserID(ctx, id.UserID), id.Role)
}

// IdentityFromCtx returns the authenticated caller.
// A user ID without a role is treated as a MEMBER.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	userID, ok := UserIDFromCtx(ctx)
	if !ok {
		return domain.Identity{}, false
	}
	role, ok := RoleFromCtx(ctx)
	if !ok {
		role = domain.RoleMember
	}
	return domain.Identity{UserID: userID, Role: role}, true
}

// IsAdminCtx reports whether the context carries an authenticated ADMIN identity.
func IsAdminCtx(ctx context.Context) bool {
	id, ok := IdentityFromCtx(ctx)
	return ok && id.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
