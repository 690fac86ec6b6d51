// Package token verifies the signed credential that browsers present
// to the gateway. Tokens are issued by auth-service; the gateway only
// checks them, it never mints or stores one.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookie is the cookie auth-service sets at login.
const DefaultCookie = "token"

// ErrNoCredential marks a request that carries no token at all.
var ErrNoCredential = errors.New("no credential")

// ErrInvalidToken marks a malformed, tampered or expired token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity claim set embedded in a gateway credential.
type Claims struct {
	UserID      int64    `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"rol"`
	Permissions []string `json:"permisos"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 credentials against a shared secret.
type Verifier struct {
	secret []byte
	cookie string
}

// NewVerifier creates a verifier from the shared signing secret.
// An empty cookie name falls back to DefaultCookie.
func NewVerifier(secret []byte, cookie string) *Verifier {
	if cookie == "" {
		cookie = DefaultCookie
	}
	return &Verifier{secret: secret, cookie: cookie}
}

// CookieName returns the name of the session cookie.
func (v *Verifier) CookieName() string {
	return v.cookie
}

// FromRequest extracts the raw credential from the session cookie,
// falling back to a bearer Authorization header.
func (v *Verifier) FromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(v.cookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	h := r.Header.Get("Authorization")
	if raw := strings.TrimPrefix(h, "Bearer "); raw != "" && raw != h {
		return raw, nil
	}
	return "", ErrNoCredential
}

// Verify parses the raw token, checks its signature and expiration,
// and returns the claim set.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	return claims, nil
}
