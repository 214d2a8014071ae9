package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"wot/internal/domain/aggregates"
	"wot/internal/domain/comments"
	"wot/internal/domain/interactions"
	"wot/internal/domain/reactions"
	"wot/internal/domain/reference"
	"wot/internal/domain/storage"
	"wot/internal/domain/toilets"
	"wot/internal/enrich"
	"wot/internal/params"
)

// --- reference ---

type mockReference struct {
	mock.Mock
}

func (m *mockReference) StateExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockReference) AccessExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockReference) UserExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockReference) ToiletExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockReference) ReactionType(ctx context.Context, name string) (*reference.ReactionType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reference.ReactionType), args.Error(1)
}

func (m *mockReference) ReportType(ctx context.Context, name string) (*reference.ReportType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reference.ReportType), args.Error(1)
}

// --- toilets ---

type mockToilets struct {
	mock.Mock
}

func (m *mockToilets) List(ctx context.Context, f toilets.Filter, page *params.Page) ([]toilets.Toilet, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]toilets.Toilet), args.Error(1)
}

func (m *mockToilets) ListByUser(ctx context.Context, userID int64, f toilets.Filter, page *params.Page) ([]toilets.Toilet, error) {
	args := m.Called(ctx, userID, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]toilets.Toilet), args.Error(1)
}

func (m *mockToilets) GetByID(ctx context.Context, id int64) (*toilets.Toilet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toilets.Toilet), args.Error(1)
}

func (m *mockToilets) Search(ctx context.Context, query string, page *params.Page) ([]toilets.Toilet, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]toilets.Toilet), args.Error(1)
}

// --- comments ---

type mockComments struct {
	mock.Mock
}

func (m *mockComments) List(ctx context.Context, f comments.Filter, page *params.Page) ([]comments.Comment, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comments.Comment), args.Error(1)
}

func (m *mockComments) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *mockComments) Create(ctx context.Context, c *comments.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockComments) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- reactions ---

type mockReactions struct {
	mock.Mock
}

func (m *mockReactions) Put(ctx context.Context, commentID, userID, typeID int64) (*reactions.Reaction, error) {
	args := m.Called(ctx, commentID, userID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reactions.Reaction), args.Error(1)
}

func (m *mockReactions) Delete(ctx context.Context, commentID, userID int64) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *mockReactions) ListByUser(ctx context.Context, userID int64, commentIDs []int64) ([]reactions.Reaction, error) {
	args := m.Called(ctx, userID, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reactions.Reaction), args.Error(1)
}

// --- exclusions ---

type mockExclusions struct {
	mock.Mock
}

func (m *mockExclusions) ExcludedToilets(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]struct{}), args.Error(1)
}

func (m *mockExclusions) ExcludedComments(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]struct{}), args.Error(1)
}

func (m *mockExclusions) ReportToilet(ctx context.Context, interactionID, reportTypeID int64) error {
	args := m.Called(ctx, interactionID, reportTypeID)
	return args.Error(0)
}

func (m *mockExclusions) HideComment(ctx context.Context, interactionID, commentID int64) error {
	args := m.Called(ctx, interactionID, commentID)
	return args.Error(0)
}

func (m *mockExclusions) UnhideComment(ctx context.Context, userID, commentID int64) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

// --- interactions ---

type mockInteractions struct {
	mock.Mock
}

func (m *mockInteractions) GetOrCreate(ctx context.Context, toiletID, userID int64) (*interactions.Interaction, error) {
	args := m.Called(ctx, toiletID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.Interaction), args.Error(1)
}

// fakeTx runs fn against a fixed set of tx-scoped stores.
type fakeTx struct {
	tx    *storage.Tx
	calls int
}

func (f *fakeTx) WithTx(_ context.Context, fn func(tx *storage.Tx) error) error {
	f.calls++
	return fn(f.tx)
}

// noAggregates has nothing precomputed; every view gets the defaults.
type noAggregates struct{}

func (noAggregates) RatingsFor(context.Context, []int64) (map[int64]aggregates.Rating, error) {
	return map[int64]aggregates.Rating{}, nil
}

func (noAggregates) ToiletCommentCountsFor(context.Context, []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func (noAggregates) UserCommentCountsFor(context.Context, []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func (noAggregates) ReactionCountsFor(context.Context, []int64) (map[int64]aggregates.ReactionCount, error) {
	return map[int64]aggregates.ReactionCount{}, nil
}

func (noAggregates) TagsFor(context.Context, []int64) (map[int64][]string, error) {
	return map[int64][]string{}, nil
}

func newMapper() *enrich.Mapper {
	return enrich.NewMapper(noAggregates{}, noAggregates{})
}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func ptr[T any](v T) *T {
	return &v
}
