package scholarships

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func dayOffset(days int) *time.Time {
	d := Today().AddDate(0, 0, days)
	return &d
}

func seed(t *testing.T, store *MemoryStore, items ...models.Scholarship) {
	t.Helper()
	for i := range items {
		require.NoError(t, store.Create(context.Background(), &items[i]))
	}
}

func newTestService(t *testing.T) (*Service, *MemoryStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewMemoryStore()
	return NewService(store, NewCache(client, time.Minute, logger.NewTestLogger(t)), logger.NewTestLogger(t)), store, mr
}

func summaryIDs(t *testing.T, data interface{}) []string {
	t.Helper()
	var ids []string
	switch items := data.(type) {
	case []models.ScholarshipSummary:
		for _, s := range items {
			ids = append(ids, s.ID)
		}
	case []interface{}:
		for _, raw := range items {
			ids = append(ids, raw.(map[string]interface{})["id"].(string))
		}
	default:
		t.Fatalf("unexpected data type %T", data)
	}
	return ids
}

func TestListPublicOrdersFeaturedThenDeadline(t *testing.T) {
	svc, store, _ := newTestService(t)
	seed(t, store,
		models.Scholarship{ID: "late", Name: "A장학금", Organization: "재단", IsActive: true, ApplyEnd: dayOffset(30)},
		models.Scholarship{ID: "off", Name: "B장학금", Organization: "재단", IsActive: false},
		models.Scholarship{ID: "soon", Name: "C장학금", Organization: "재단", IsActive: true, ApplyEnd: dayOffset(3)},
		models.Scholarship{ID: "pinned", Name: "D장학금", Organization: "재단", IsActive: true, IsFeatured: true},
		models.Scholarship{ID: "open", Name: "E장학금", Organization: "재단", IsActive: true},
	)

	resp, err := svc.ListPublic(context.Background(), PublicQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, []string{"pinned", "soon", "late", "open"}, summaryIDs(t, resp.Data))
}

func TestListPublicSearchAndPaging(t *testing.T) {
	svc, store, _ := newTestService(t)
	seed(t, store,
		models.Scholarship{ID: "1", Name: "희망장학금", Organization: "서울시청", IsActive: true},
		models.Scholarship{ID: "2", Name: "미래인재", Organization: "희망재단", IsActive: true},
		models.Scholarship{ID: "3", Name: "근로장학", Organization: "대학교", IsActive: true},
	)

	q := PublicQuery{PaginationParams: models.PaginationParams{Page: 2, Limit: 1, Search: " 희망 "}}
	resp, err := svc.ListPublic(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasPrevious)
	assert.False(t, resp.HasNext)
	assert.Equal(t, []string{"2"}, summaryIDs(t, resp.Data))
}

func TestListPublicRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ListPublic(context.Background(), PublicQuery{Type: "lottery"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestListPublicIsCachedUntilInvalidated(t *testing.T) {
	svc, store, mr := newTestService(t)
	ctx := context.Background()
	seed(t, store, models.Scholarship{ID: "1", Name: "희망장학금", Organization: "재단", IsActive: true})

	first, err := svc.ListPublic(ctx, PublicQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Total)
	assert.Len(t, mr.Keys(), 1)

	// bypass the service so the cache goes stale
	seed(t, store, models.Scholarship{ID: "2", Name: "미래장학금", Organization: "재단", IsActive: true})

	cached, err := svc.ListPublic(ctx, PublicQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.Total)
	assert.Equal(t, []string{"1"}, summaryIDs(t, cached.Data))

	svc.InvalidateCache(ctx)
	assert.Empty(t, mr.Keys())

	fresh, err := svc.ListPublic(ctx, PublicQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.Total)
}

func TestAcceptingAndFeatured(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	seed(t, store,
		models.Scholarship{ID: "window-late", Name: "A", Organization: "o", IsActive: true, ApplyStart: dayOffset(-5), ApplyEnd: dayOffset(10)},
		models.Scholarship{ID: "window-soon", Name: "B", Organization: "o", IsActive: true, IsFeatured: true, ApplyStart: dayOffset(-1), ApplyEnd: dayOffset(0)},
		models.Scholarship{ID: "future", Name: "C", Organization: "o", IsActive: true, ApplyStart: dayOffset(2), ApplyEnd: dayOffset(9)},
		models.Scholarship{ID: "closed", Name: "D", Organization: "o", IsActive: true, ApplyStart: dayOffset(-9), ApplyEnd: dayOffset(-2)},
		models.Scholarship{ID: "inactive", Name: "E", Organization: "o", IsActive: false, IsFeatured: true, ApplyStart: dayOffset(-1), ApplyEnd: dayOffset(1)},
	)

	accepting, err := svc.Accepting(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"window-soon", "window-late"}, summaryIDs(t, accepting))
	require.NotNil(t, accepting[0].ApplyEnd)
	assert.Equal(t, Today().Format("2006-01-02"), *accepting[0].ApplyEnd)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"window-soon"}, summaryIDs(t, featured))
	assert.Equal(t, "other", featured[0].Type)
}

func TestGetPublicHidesInactive(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	seed(t, store,
		models.Scholarship{ID: "on", Name: "A", Organization: "o", IsActive: true},
		models.Scholarship{ID: "off", Name: "B", Organization: "o"},
	)

	got, err := svc.GetPublic(ctx, "on")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = svc.GetPublic(ctx, "off")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// admin lookup still sees it
	_, err = svc.Get(ctx, "off")
	assert.NoError(t, err)

	_, err = svc.GetPublic(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCreateDetectsTypeAndParsesDates(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	sc, err := svc.Create(ctx, models.ScholarshipCreateRequest{
		Name:         "2025 국가장학금",
		Organization: "한국장학재단",
		ApplyStart:   strPtr("2025.03.01"),
		ApplyEnd:     strPtr("2025-03-31"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sc.ID)
	assert.Equal(t, models.ScholarshipTypeNational, sc.ScholarshipType)
	assert.True(t, sc.IsActive)
	assert.False(t, sc.IsFeatured)
	require.NotNil(t, sc.ApplyEnd)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *sc.ApplyEnd)

	stored, err := store.FindByID(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, sc.Name, stored.Name)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ScholarshipCreateRequest
	}{
		{"missing name", models.ScholarshipCreateRequest{Organization: "o"}},
		{"gpa out of range", models.ScholarshipCreateRequest{Name: "n", Organization: "o", MinGpa: func() *float64 { v := 4.6; return &v }()}},
		{"unknown type", models.ScholarshipCreateRequest{Name: "n", Organization: "o", ScholarshipType: "lottery"}},
		{"bad date", models.ScholarshipCreateRequest{Name: "n", Organization: "o", ApplyEnd: strPtr("다음 달")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
		})
	}
}

func TestUpdateAndBulkUpdate(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	seed(t, store,
		models.Scholarship{ID: "1", Name: "A", Organization: "o", IsActive: true},
		models.Scholarship{ID: "2", Name: "B", Organization: "o", IsActive: true},
	)

	updated, err := svc.Update(ctx, "1", models.ScholarshipUpdateRequest{
		Name:              strPtr("A+"),
		RegionRestriction: strPtr("서울"),
		IsFeatured:        boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "A+", updated.Name)
	assert.Equal(t, "서울", *updated.RegionLimit)
	assert.True(t, updated.IsFeatured)
	assert.True(t, updated.IsActive)

	_, err = svc.Update(ctx, "missing", models.ScholarshipUpdateRequest{Name: strPtr("x")})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	n, err := svc.BulkUpdate(ctx, models.BulkUpdateRequest{IDs: []string{"1", "2", "ghost"}, IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	active, _ := store.CountActive(ctx)
	assert.Equal(t, int64(0), active)

	_, err = svc.BulkUpdate(ctx, models.BulkUpdateRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestBulkDeletes(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	seed(t, store,
		models.Scholarship{ID: "1", Name: "A", Organization: "o", IsActive: true},
		models.Scholarship{ID: "2", Name: "B", Organization: "o"},
		models.Scholarship{ID: "3", Name: "C", Organization: "o", IsActive: true},
	)

	n, err := svc.DeleteInactive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.DeactivateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, svc.Delete(ctx, "1"))
	assert.True(t, errors.Is(svc.Delete(ctx, "1"), apperrors.ErrNotFound))

	n, err = svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDashboard(t *testing.T) {
	svc, store, _ := newTestService(t)
	seed(t, store,
		models.Scholarship{ID: "1", Name: "A", Organization: "o", IsActive: true, IsFeatured: true, ScholarshipType: models.ScholarshipTypeNational, OrganizationType: strPtr("공공기관"), ApplyStart: dayOffset(-1), ApplyEnd: dayOffset(1)},
		models.Scholarship{ID: "2", Name: "B", Organization: "o", IsActive: true, ScholarshipType: models.ScholarshipTypeNational},
		models.Scholarship{ID: "3", Name: "C", Organization: "o"},
	)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalScholarships)
	assert.Equal(t, int64(2), stats.ActiveScholarships)
	assert.Equal(t, int64(1), stats.InactiveScholarships)
	assert.Equal(t, int64(1), stats.FeaturedScholarships)
	assert.Equal(t, int64(1), stats.AcceptingApplications)
	assert.Equal(t, map[string]int64{"national": 2, "other": 1}, stats.ByType)
	assert.Equal(t, map[string]int64{"공공기관": 1, "기타": 2}, stats.ByOrganizationType)
}

func TestCacheWithoutRedisIsNoop(t *testing.T) {
	var c *Cache
	c.Set(context.Background(), "k", 1)
	var v int
	assert.False(t, c.Get(context.Background(), "k", &v))
	c.InvalidateLists(context.Background())

	c = NewCache(nil, time.Minute, nil)
	assert.False(t, c.Get(context.Background(), "k", &v))
}

func TestMemoryStoreTransactionRollsBack(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seed(t, store, models.Scholarship{ID: "keep", Name: "A", Organization: "o", IsActive: true})

	boom := errors.New("boom")
	err := store.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := store.DeleteAll(ctx); err != nil {
			return err
		}
		require.NoError(t, store.Save(ctx, &models.Scholarship{ID: "new", Name: "B", Organization: "o"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, _ := store.Count(ctx)
	assert.Equal(t, int64(1), n)
	_, err = store.FindByID(ctx, "keep")
	assert.NoError(t, err)
}
