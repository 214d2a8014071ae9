package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wot/internal/auth"
	"wot/internal/config"
	"wot/internal/domain/reactions"
	"wot/internal/enrich"
	"wot/internal/geo"
	"wot/internal/params"
	"wot/internal/ratelimiter"
	"wot/internal/service"
)

const (
	testTokenSecret = "test-secret"
	testBasicUser   = "admin"
	testBasicPass   = "s3cret"
)

type mockToiletService struct {
	mock.Mock
}

func (m *mockToiletService) ListToilets(ctx context.Context, in service.ListToiletsInput) ([]enrich.ToiletView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) ListToiletsNearby(ctx context.Context, in service.NearbyInput) ([]enrich.ToiletView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) ListToiletsInBoundingBox(ctx context.Context, box geo.BoundingBox, requester *int64) ([]enrich.ToiletView, error) {
	args := m.Called(ctx, box, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) ListToiletsByUser(ctx context.Context, userID int64, state *string, page *params.Page) ([]enrich.ToiletView, error) {
	args := m.Called(ctx, userID, state, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) SearchToilets(ctx context.Context, query string, page *params.Page) ([]enrich.ToiletView, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) GetToilet(ctx context.Context, id int64) (*enrich.ToiletView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrich.ToiletView), args.Error(1)
}

func (m *mockToiletService) ReportToilet(ctx context.Context, in service.ReportToiletInput) error {
	return m.Called(ctx, in).Error(0)
}

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) ListCommentsByToilet(ctx context.Context, toiletID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error) {
	args := m.Called(ctx, toiletID, requester, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.CommentView), args.Error(1)
}

func (m *mockCommentService) ListCommentsByUser(ctx context.Context, userID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error) {
	args := m.Called(ctx, userID, requester, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]enrich.CommentView), args.Error(1)
}

func (m *mockCommentService) GetComment(ctx context.Context, id int64) (*enrich.CommentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrich.CommentView), args.Error(1)
}

func (m *mockCommentService) CreateComment(ctx context.Context, in service.CreateCommentInput) (*enrich.CommentView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrich.CommentView), args.Error(1)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCommentService) PutReaction(ctx context.Context, in service.ReactionInput) (*enrich.CommentView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrich.CommentView), args.Error(1)
}

func (m *mockCommentService) DeleteReaction(ctx context.Context, commentID, userID int64) error {
	return m.Called(ctx, commentID, userID).Error(0)
}

func (m *mockCommentService) ListReactions(ctx context.Context, userID int64, commentIDs []int64) ([]reactions.Reaction, error) {
	args := m.Called(ctx, userID, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reactions.Reaction), args.Error(1)
}

func newTestApplication(t *testing.T) (*application, *mockToiletService, *mockCommentService) {
	t.Helper()

	cfg := &config.Config{
		Env:                "test",
		Version:            "test",
		CORSAllowedOrigins: []string{"http://*"},
	}
	cfg.Auth.Token.Secret = testTokenSecret
	cfg.Auth.Token.Iss = "wot"
	cfg.Auth.Basic.User = testBasicUser
	cfg.Auth.Basic.Pass = testBasicPass

	toilets := new(mockToiletService)
	comments := new(mockCommentService)
	t.Cleanup(func() {
		toilets.AssertExpectations(t)
		comments.AssertExpectations(t)
	})

	app := &application{
		config:        cfg,
		logger:        zap.NewNop().Sugar(),
		toilets:       toilets,
		comments:      comments,
		authenticator: auth.NewJWTAuthenticator(testTokenSecret, "wot"),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(1, time.Minute),
	}
	return app, toilets, comments
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func bearerToken(t *testing.T, sub any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iss": "wot",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testTokenSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	env := struct {
		Data any `json:"data"`
	}{Data: dst}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
}

func ptr[T any](v T) *T {
	return &v
}
