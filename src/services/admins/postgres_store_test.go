package admins

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

var columns = []string{"id", "username", "name", "password", "is_active", "last_login", "created_at"}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresFindByUsername(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE username = $1")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("a1", "admin", "관리자", "hash", true, nil, created))

	a, err := store.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "관리자", a.Name)
	assert.Nil(t, a.LastLogin)
	assert.Equal(t, created, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByIDMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM admins WHERE id").WillReturnError(sql.ErrNoRows)

	_, err := store.FindByID(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPostgresCreateAndUpdate(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("INSERT INTO admins").
		WithArgs("a1", "admin", "관리자", "hash", true, nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE admins SET password = $2 WHERE id = $1")).
		WithArgs("a1", "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE admins SET last_login = $2 WHERE id = $1")).
		WithArgs("ghost", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Create(ctx, &models.Admin{ID: "a1", Username: "admin", Name: "관리자", Password: "hash", IsActive: true, CreatedAt: now}))
	require.NoError(t, store.UpdatePassword(ctx, "a1", "new-hash"))

	err := store.TouchLastLogin(ctx, "ghost", now)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
