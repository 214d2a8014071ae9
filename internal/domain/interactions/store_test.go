package interactions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wot/internal/apperr"
)

func TestRepository_GetOrCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewRepository(mock)

	now := time.Now().UTC().Truncate(time.Second)
	cols := []string{"id", "toilet_id", "user_id", "created_at"}

	// Same row comes back for the second call, the insert being a conflict.
	for range 2 {
		mock.ExpectQuery("INSERT INTO interactions .+ ON CONFLICT \\(toilet_id, user_id\\)").
			WithArgs(int64(3), int64(7)).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(11), int64(3), int64(7), now))
	}

	first, err := repo.GetOrCreate(context.Background(), 3, 7)
	require.NoError(t, err)
	second, err := repo.GetOrCreate(context.Background(), 3, 7)
	require.NoError(t, err)

	assert.Equal(t, &Interaction{ID: 11, ToiletID: 3, UserID: 7, CreatedAt: now}, first)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrCreate_ForeignKeyViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO interactions").WithArgs(int64(3), int64(99)).
		WillReturnError(errors.New("violates foreign key constraint"))

	_, err = NewRepository(mock).GetOrCreate(context.Background(), 3, 99)
	assert.True(t, errors.Is(err, apperr.ErrPersistence))
	assert.NoError(t, mock.ExpectationsWereMet())
}
