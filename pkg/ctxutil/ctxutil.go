package ctxutil

import "context"

type ctxKey string

const (
	principalKey ctxKey = "principal"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithPrincipal stores the caller principal in the context.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromCtx extracts the caller principal from the context.
// Returns "" and false if the value is missing or empty.
func PrincipalFromCtx(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(principalKey).(string)
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// WithRole stores the caller's role tag in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the caller's role tag from the context.
// Returns "guest" if no role was set.
func RoleFromCtx(ctx context.Context) string {
	r, ok := ctx.Value(roleKey).(string)
	if !ok || r == "" {
		return "guest"
	}
	return r
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
