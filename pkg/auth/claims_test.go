package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return token
}

func TestParseSessionToken(t *testing.T) {
	token := signedToken(t, SessionClaims{
		FirstName:   "Jane",
		LastName:    "Wanjiku",
		PhoneNumber: "0712345678",
		Roles:       []string{"accountant"},
		TenantID:    7,
	})

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Jane Wanjiku", claims.DisplayName())
	assert.Equal(t, int64(7), claims.TenantID)
	assert.True(t, claims.HasRole("accountant"))
	assert.False(t, claims.HasRole("collector"))
}

func TestParseSessionTokenIgnoresExpiry(t *testing.T) {
	// Display-only parsing must still read claims from an expired token; the
	// server is the one that rejects it.
	token := signedToken(t, SessionClaims{
		FirstName: "Jane",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.True(t, claims.Expired(time.Now()))
}

func TestParseSessionTokenErrors(t *testing.T) {
	_, err := ParseSessionToken("")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = ParseSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "Jane Wanjiku", (&SessionClaims{FirstName: "Jane", LastName: "Wanjiku"}).DisplayName())
	assert.Equal(t, "Jane", (&SessionClaims{FirstName: "Jane"}).DisplayName())
	assert.Equal(t, "0712345678", (&SessionClaims{PhoneNumber: "0712345678"}).DisplayName())
}

func TestExpiredWithoutExpClaim(t *testing.T) {
	assert.False(t, (&SessionClaims{}).Expired(time.Now()))
}
