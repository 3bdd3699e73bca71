package scholarships

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func columnNames() []string {
	parts := strings.Split(scholarshipColumns, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func TestPostgresFindByIDMapsNullableColumns(t *testing.T) {
	store, mock := newMockStore(t)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columnNames()).AddRow(
		"s1", int64(7), "한국장학재단", "국가장학금", "공공기관", nil,
		nil, nil, nil, nil, "3.0 이상",
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil,
		nil, start, nil, "national", 3.0, nil,
		"enrolled", "1,2", nil, nil,
		true, false, created, created,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM scholarships WHERE id = $1")).WithArgs("s1").WillReturnRows(rows)

	s, err := store.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "국가장학금", s.Name)
	assert.Equal(t, 7, *s.CsvRowNumber)
	assert.Equal(t, "공공기관", *s.OrganizationType)
	assert.Nil(t, s.ProductType)
	assert.Equal(t, "3.0 이상", *s.GradeCriteria)
	assert.Equal(t, start, *s.ApplyStart)
	assert.Nil(t, s.ApplyEnd)
	assert.Equal(t, models.ScholarshipTypeNational, s.ScholarshipType)
	assert.Equal(t, 3.0, *s.MinGpa)
	assert.Nil(t, s.MaxIncomeLevel)
	assert.Equal(t, "enrolled", *s.AllowedAcademicStatus)
	assert.Equal(t, "1,2", *s.AllowedGrades)
	assert.Nil(t, s.RegionLimit)
	assert.True(t, s.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByIDMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM scholarships WHERE id").WillReturnRows(sqlmock.NewRows(columnNames()))

	_, err := store.FindByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPostgresFindBuildsFilterAndPaging(t *testing.T) {
	store, mock := newMockStore(t)
	active := true
	f := models.ScholarshipFilter{Search: "희망", IsActive: &active}
	page := models.PaginationParams{Page: 3, Limit: 10}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM scholarships WHERE (name ILIKE $1 OR organization ILIKE $1) AND is_active = $2`)).
		WithArgs("%희망%", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY is_featured DESC, apply_end ASC NULLS LAST LIMIT $3 OFFSET $4`)).
		WithArgs("%희망%", true, 10, int64(20)).
		WillReturnRows(sqlmock.NewRows(columnNames()))

	items, total, err := store.Find(context.Background(), f, page)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLFilterWithoutConditions(t *testing.T) {
	where, args := sqlFilter(models.ScholarshipFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	kind := models.ScholarshipTypeLocal
	where, args = sqlFilter(models.ScholarshipFilter{Type: &kind, AcceptingOn: &day})
	assert.Equal(t, " WHERE scholarship_type = $1 AND apply_start <= $2 AND apply_end >= $2", where)
	assert.Equal(t, []interface{}{"local", day}, args)
}

func TestPostgresSaveManyCommits(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scholarships").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO scholarships").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.SaveMany(context.Background(), []models.Scholarship{
		{ID: "a", Name: "A", Organization: "o"},
		{ID: "b", Name: "B", Organization: "o"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTransactionRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM scholarships").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO scholarships").WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := store.WithTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := store.DeleteAll(ctx); err != nil {
			return err
		}
		// nested call joins the outer transaction
		return store.SaveMany(ctx, []models.Scholarship{{ID: "a", Name: "A", Organization: "o"}})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value too long")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteByIDMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scholarships WHERE id = $1")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteByID(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPostgresCountByOrganizationTypeFallsBack(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT organization_type, COUNT(*) FROM scholarships GROUP BY organization_type")).
		WillReturnRows(sqlmock.NewRows([]string{"organization_type", "count"}).
			AddRow("공공기관", int64(3)).
			AddRow(nil, int64(2)).
			AddRow("", int64(1)))

	got, err := store.CountByOrganizationType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"공공기관": 3, "기타": 3}, got)
}
