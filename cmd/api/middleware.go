package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"wot/internal/params"
)

type requesterKey string

const (
	requesterCtx     requesterKey = "requester"
	authenticatedCtx requesterKey = "authenticated"
)

var errRequesterMismatch = errors.New("userId does not match the authenticated user")

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			username := app.config.Auth.Basic.User
			pass := app.config.Auth.Basic.Pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if pass == "" || len(creds) != 2 || creds[0] != username || creds[1] != pass {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequesterMiddleware resolves who is asking. A bearer token wins; without
// one the userId query parameter is trusted. Anonymous requests pass through.
func (app *application) RequesterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var requester *int64
		authenticated := false

		if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			userID, err := app.authenticator.UserIDFromToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				app.unauthorizedErrorResponse(w, r, err)
				return
			}
			requester = &userID
			authenticated = true
		} else {
			userID, err := params.OptionalInt64(r.URL.Query(), "userId")
			if err != nil {
				app.badRequestResponse(w, r, err)
				return
			}
			requester = userID
		}

		ctx := context.WithValue(r.Context(), requesterCtx, requester)
		ctx = context.WithValue(ctx, authenticatedCtx, authenticated)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getRequester(r *http.Request) *int64 {
	requester, _ := r.Context().Value(requesterCtx).(*int64)
	return requester
}

// bindRequester fills a write payload's user id from the requester. A token
// requester always wins and a different body id is rejected with 403.
func (app *application) bindRequester(w http.ResponseWriter, r *http.Request, userID *int64) bool {
	requester := getRequester(r)
	if requester == nil {
		return true
	}
	if authenticated, _ := r.Context().Value(authenticatedCtx).(bool); authenticated {
		if *userID != 0 && *userID != *requester {
			app.forbiddenResponse(w, r, errRequesterMismatch)
			return false
		}
		*userID = *requester
		return true
	}
	if *userID == 0 {
		*userID = *requester
	}
	return true
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.RateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
