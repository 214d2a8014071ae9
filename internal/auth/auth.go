package auth

import "github.com/golang-jwt/jwt/v5"

// Authenticator resolves the requester behind a bearer token. Tokens are
// issued elsewhere; this service only verifies them.
type Authenticator interface {
	ValidateToken(token string) (*jwt.Token, error)
	UserIDFromToken(token string) (int64, error)
}
