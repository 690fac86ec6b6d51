// Package auth holds the request-scoped identity derived from a
// verified credential, and the permission policy applied per route.
package auth

import (
	"context"
	"fmt"

	"github.com/modaluna/gateway/pkg/token"
)

// Identity describes the authenticated user behind a request.
// It lives for the duration of one request and is never persisted.
type Identity struct {
	UserID      int64
	Email       string
	Role        string
	Permissions []string
}

// FromClaims derives an Identity from a verified claim set.
func FromClaims(claims *token.Claims) *Identity {
	return &Identity{
		UserID:      claims.UserID,
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}
}

// Allowed reports whether the identity holds every required permission.
// An empty requirement always passes.
func (id *Identity) Allowed(required []string) bool {
	for _, req := range required {
		found := false
		for _, p := range id.Permissions {
			if p == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type contextKey struct{}

// WithContext returns a Go context with added identity.
func WithContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity from the Go context.
func FromContext(ctx context.Context) (*Identity, error) {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	if id == nil {
		return nil, fmt.Errorf("invalid auth context")
	}
	return id, nil
}
