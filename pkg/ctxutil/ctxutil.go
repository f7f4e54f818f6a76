// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "request_id"
)

// WithPrincipal stores the calling principal in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx returns the calling principal.
// A context without one yields the anonymous principal.
func PrincipalFromCtx(ctx context.Context) domain.Principal {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok {
		return domain.Anonymous()
	}
	return p
}

// UserIDFromCtx extracts the authenticated user ID from the context.
// Returns uuid.Nil and false for anonymous callers.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	p := PrincipalFromCtx(ctx)
	if p.IsAnonymous() {
		return uuid.Nil, false
	}
	return p.UserID, true
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
