package auth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSubject = errors.New("token subject is not a user id")

type JWTAuthenticator struct {
	secret string
	iss    string
}

func NewJWTAuthenticator(secret, iss string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, iss: iss}
}

// ValidateToken checks the HS256 signature, expiry and issuer.
func (a *JWTAuthenticator) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.iss),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
}

// UserIDFromToken validates token and returns its sub claim as a user id.
// The claim may be a JSON number or a decimal string.
func (a *JWTAuthenticator) UserIDFromToken(token string) (int64, error) {
	parsed, err := a.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSubject
	}

	var id int64
	switch sub := claims["sub"].(type) {
	case float64:
		id = int64(sub)
		if float64(id) != sub {
			return 0, ErrInvalidSubject
		}
	case string:
		id, err = strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return 0, ErrInvalidSubject
		}
	default:
		return 0, ErrInvalidSubject
	}
	if id <= 0 {
		return 0, ErrInvalidSubject
	}
	return id, nil
}
