package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_WithTx_Commits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO interactions").WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "toilet_id", "user_id", "created_at"}).
			AddRow(int64(9), int64(1), int64(2), now))
	mock.ExpectExec("INSERT INTO toilet_reports").WithArgs(int64(9), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	c := NewContainer(mock)
	err = c.WithTx(context.Background(), func(tx *Tx) error {
		i, err := tx.Interactions.GetOrCreate(context.Background(), 1, 2)
		if err != nil {
			return err
		}
		return tx.Exclusions.ReportToilet(context.Background(), i.ID, 3)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainer_WithTx_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = NewContainer(mock).WithTx(context.Background(), func(tx *Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainer_WithTx_BeginError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err = NewContainer(mock).WithTx(context.Background(), func(tx *Tx) error {
		t.Fatal("fn must not run")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}
