package scholarships

import (
	"context"
	"sort"
	"strings"
	"time"

	"Backend-Scholarship-Finder/src/models"
)

// Store is the persistence boundary for scholarship records.
// Lookups of a missing id return apperrors.ErrNotFound.
type Store interface {
	Create(ctx context.Context, s *models.Scholarship) error
	Save(ctx context.Context, s *models.Scholarship) error
	SaveMany(ctx context.Context, items []models.Scholarship) error

	FindByID(ctx context.Context, id string) (*models.Scholarship, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Scholarship, error)
	// FindActive: featured desc, updatedAt desc
	FindActive(ctx context.Context) ([]models.Scholarship, error)
	// FindFeatured: featured and active, updatedAt desc
	FindFeatured(ctx context.Context) ([]models.Scholarship, error)
	// FindAccepting: active, applyStart <= day <= applyEnd, applyEnd asc
	FindAccepting(ctx context.Context, day time.Time) ([]models.Scholarship, error)
	Find(ctx context.Context, filter models.ScholarshipFilter, page models.PaginationParams) ([]models.Scholarship, int64, error)

	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountInactive(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
	CountByOrganizationType(ctx context.Context) (map[string]int64, error)

	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	DeleteInactive(ctx context.Context) (int64, error)
	DeactivateAll(ctx context.Context) (int64, error)

	// WithTransaction runs fn so that its writes commit together or not at all.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// organization type bucket for records without one
const unknownOrganizationType = "기타"

// Today returns the current date at UTC midnight, matching stored dates.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func matchesFilter(s *models.Scholarship, f models.ScholarshipFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(strings.ToLower(s.Organization), q) {
			return false
		}
	}
	if f.Type != nil && s.ScholarshipType != *f.Type {
		return false
	}
	if f.IsActive != nil && s.IsActive != *f.IsActive {
		return false
	}
	if f.IsFeatured != nil && s.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.AcceptingOn != nil && !isAccepting(s, *f.AcceptingOn) {
		return false
	}
	return true
}

func isAccepting(s *models.Scholarship, day time.Time) bool {
	if s.ApplyStart == nil || s.ApplyEnd == nil {
		return false
	}
	return !s.ApplyStart.After(day) && !s.ApplyEnd.Before(day)
}

// dates compare with missing values last
func dateLess(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return a.Before(*b)
}

func sortScholarships(items []models.Scholarship, order models.ScholarshipSort) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		switch order {
		case models.SortActiveRecent:
			if a.IsActive != b.IsActive {
				return a.IsActive
			}
			return a.UpdatedAt.After(b.UpdatedAt)
		default:
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
			return dateLess(a.ApplyEnd, b.ApplyEnd)
		}
	})
}
