package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/workchatseattle/community-backend/internal/domain"
	"github.com/workchatseattle/community-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized without an identity and
// domain.ErrForbidden if the identity is not an admin.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly guards a route group with RequireAdmin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := RequireAdmin(r.Context()); err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
