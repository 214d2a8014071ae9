package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wot/internal/apperr"
)

func newTestRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock), mock
}

func TestRepository_StateExists(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM states").WithArgs("active").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM states").WithArgs("bogus-state").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.StateExists(context.Background(), "active")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.StateExists(context.Background(), "bogus-state")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UserExists_DBError(t *testing.T) {
	repo, mock := newTestRepo(t)

	cause := errors.New("connection refused")
	mock.ExpectQuery("SELECT EXISTS \\(SELECT 1 FROM users").WithArgs(int64(9)).
		WillReturnError(cause)

	_, err := repo.UserExists(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ToiletAndAccessExists(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("FROM toilets").WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("FROM access_types").WithArgs("public").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ToiletExists(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AccessExists(context.Background(), "public")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReactionType(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("FROM reaction_types").WithArgs("spam").
		WillReturnRows(pgxmock.NewRows([]string{"id", "technical_name", "hides_comment"}).
			AddRow(int64(7), "spam", true))

	rt, err := repo.ReactionType(context.Background(), "spam")
	require.NoError(t, err)
	assert.Equal(t, &ReactionType{ID: 7, TechnicalName: "spam", HidesComment: true}, rt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReactionType_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("FROM reaction_types").WithArgs("love").WillReturnError(pgx.ErrNoRows)

	_, err := repo.ReactionType(context.Background(), "love")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Contains(t, err.Error(), `Reaction type with technical name "love" not found`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReportType(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("FROM report_types").WithArgs("others").
		WillReturnRows(pgxmock.NewRows([]string{"id", "technical_name"}).AddRow(int64(6), "others"))
	mock.ExpectQuery("FROM report_types").WithArgs("nope").WillReturnError(pgx.ErrNoRows)

	rt, err := repo.ReportType(context.Background(), "others")
	require.NoError(t, err)
	assert.Equal(t, int64(6), rt.ID)

	_, err = repo.ReportType(context.Background(), "nope")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}
