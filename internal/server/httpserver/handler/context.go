package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

type contextKey string

const identityKey contextKey = "mergington.identity"

// WithIdentity stores the resolved caller identity in ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
// Anything else yields an empty string.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// identity returns the caller identity, resolving the bearer token when no
// middleware did it already.
func (h *Handler) identity(r *http.Request) domain.Identity {
	if id, ok := IdentityFromContext(r.Context()); ok {
		return id
	}
	return h.auth.Resolve(r.Context(), BearerToken(r))
}
