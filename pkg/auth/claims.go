// Package auth provides session token utilities with no HTTP dependencies.
// The backend issues the session as a JWT carried in a cookie; the dashboard
// only inspects its claims for display (who is signed in, which roles) and
// for local expiry awareness. Signature validation stays server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession is returned when no session token is available to parse.
var ErrNoSession = errors.New("no session token")

// SessionClaims represents the claims in the session cookie token.
type SessionClaims struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"role"`
	TenantID    int64    `json:"tenantId"`
	jwt.RegisteredClaims
}

// DisplayName returns a human-readable name for the signed-in user.
func (c *SessionClaims) DisplayName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.PhoneNumber
	}
}

// HasRole reports whether the session carries the given role.
func (c *SessionClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Expired reports whether the token's exp claim has passed.
// Tokens without an exp claim are treated as unexpired.
func (c *SessionClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}

// ParseSessionToken parses the session JWT without validating the signature.
// The client has no signing key; the server re-validates on every request,
// so parsing here is for claim inspection only.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrNoSession
	}
	claims := &SessionClaims{}
	_, _, err := jwt.NewParser(jwt.WithoutClaimsValidation()).ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
