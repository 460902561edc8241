package middleware

import (
	"context"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the context caller
// holds the admin role. Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.RoleFromCtx(ctx) != domain.UserRoleAdmin.String() {
		return domain.ErrForbidden
	}
	return nil
}
