package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv").WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewSQLStore(db)
	require.NoError(t, err)
	return store, mock
}

func TestSQLStoreGetPropagatesQueryError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(UserKey).
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := store.Get(context.Background(), UserKey)
	assert.EqualError(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreGetMissingRow(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(HistoryKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := store.Get(context.Background(), HistoryKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStoreUpdateRollsBackOnFuncError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(HistoryKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[]"))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.Update(context.Background(), HistoryKey, func(current string, ok bool) (string, error) {
		assert.True(t, ok)
		assert.Equal(t, "[]", current)
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSQLStoreFailsWhenTableCannotBeCreated(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv").WillReturnError(errors.New("read-only database"))

	_, err = NewSQLStore(db)
	assert.Error(t, err)
}
