package gateway

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/auth"
	"github.com/modaluna/gateway/pkg/token"
)

// AuthMiddleware derives the request identity from the credential on
// protected routes. It runs before any permission check or upstream
// call; a missing or invalid token short-circuits with 401.
type AuthMiddleware struct {
	Verifier *token.Verifier
	Log      *zap.Logger
}

// Authenticate wraps next with credential verification.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := m.Verifier.FromRequest(r)
		if err != nil {
			WriteError(w, http.StatusUnauthorized, MsgNoToken)
			return
		}
		claims, err := m.Verifier.Verify(raw)
		if err != nil {
			if !errors.Is(err, token.ErrInvalidToken) {
				m.Log.Warn("Token verification failed", zap.Error(err))
			}
			WriteError(w, http.StatusUnauthorized, MsgBadToken)
			return
		}
		ctx := auth.WithContext(r.Context(), auth.FromClaims(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermissions enforces that the identity holds every listed
// permission. With no permissions it only demands an identity.
func RequirePermissions(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.FromContext(r.Context())
			if err != nil {
				WriteError(w, http.StatusUnauthorized, MsgNoToken)
				return
			}
			if !id.Allowed(perms) {
				WriteError(w, http.StatusForbidden, MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
