package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func claims(sub any) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": sub,
		"iss": "wot",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestUserIDFromToken(t *testing.T) {
	a := NewJWTAuthenticator(testSecret, "wot")

	t.Run("numeric subject", func(t *testing.T) {
		id, err := a.UserIDFromToken(sign(t, testSecret, claims(42)))
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("string subject", func(t *testing.T) {
		id, err := a.UserIDFromToken(sign(t, testSecret, claims("17")))
		require.NoError(t, err)
		assert.Equal(t, int64(17), id)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		_, err := a.UserIDFromToken(sign(t, testSecret, claims("alice")))
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := claims(nil)
		delete(c, "sub")
		_, err := a.UserIDFromToken(sign(t, testSecret, c))
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := a.UserIDFromToken(sign(t, "other", claims(42)))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		c := claims(42)
		c["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := a.UserIDFromToken(sign(t, testSecret, c))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := claims(42)
		c["iss"] = "someone-else"
		_, err := a.UserIDFromToken(sign(t, testSecret, c))
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("no expiry", func(t *testing.T) {
		c := claims(42)
		delete(c, "exp")
		_, err := a.UserIDFromToken(sign(t, testSecret, c))
		assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
	})
}
