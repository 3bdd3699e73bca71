package scholarships

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// MemoryStore keeps records in process. It backs STORAGE_DRIVER=memory and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]models.Scholarship
	// insertion order, so listings stay deterministic
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]models.Scholarship{}}
}

func (m *MemoryStore) Create(_ context.Context, s *models.Scholarship) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[s.ID]; exists {
		return fmt.Errorf("scholarship %s already exists", s.ID)
	}
	m.items[s.ID] = *s
	m.order = append(m.order, s.ID)
	return nil
}

func (m *MemoryStore) Save(_ context.Context, s *models.Scholarship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(*s)
	return nil
}

func (m *MemoryStore) SaveMany(_ context.Context, items []models.Scholarship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range items {
		m.put(s)
	}
	return nil
}

func (m *MemoryStore) put(s models.Scholarship) {
	if _, exists := m.items[s.ID]; !exists {
		m.order = append(m.order, s.ID)
	}
	m.items[s.ID] = s
}

func (m *MemoryStore) FindByID(_ context.Context, id string) (*models.Scholarship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) FindByIDs(_ context.Context, ids []string) ([]models.Scholarship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Scholarship, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.items[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindActive(_ context.Context) ([]models.Scholarship, error) {
	out := m.filter(func(s *models.Scholarship) bool { return s.IsActive })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (m *MemoryStore) FindFeatured(_ context.Context) ([]models.Scholarship, error) {
	out := m.filter(func(s *models.Scholarship) bool { return s.IsActive && s.IsFeatured })
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *MemoryStore) FindAccepting(_ context.Context, day time.Time) ([]models.Scholarship, error) {
	out := m.filter(func(s *models.Scholarship) bool { return s.IsActive && isAccepting(s, day) })
	sort.SliceStable(out, func(i, j int) bool { return dateLess(out[i].ApplyEnd, out[j].ApplyEnd) })
	return out, nil
}

func (m *MemoryStore) Find(_ context.Context, f models.ScholarshipFilter, page models.PaginationParams) ([]models.Scholarship, int64, error) {
	all := m.filter(func(s *models.Scholarship) bool { return matchesFilter(s, f) })
	sortScholarships(all, f.Sort)

	total := int64(len(all))
	start := int(page.GetSkip())
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if page.Limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.items)), nil
}

func (m *MemoryStore) CountActive(_ context.Context) (int64, error) {
	return int64(len(m.filter(func(s *models.Scholarship) bool { return s.IsActive }))), nil
}

func (m *MemoryStore) CountInactive(_ context.Context) (int64, error) {
	return int64(len(m.filter(func(s *models.Scholarship) bool { return !s.IsActive }))), nil
}

func (m *MemoryStore) CountFeatured(_ context.Context) (int64, error) {
	return int64(len(m.filter(func(s *models.Scholarship) bool { return s.IsFeatured }))), nil
}

func (m *MemoryStore) CountByType(_ context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, s := range m.filter(nil) {
		t := s.ScholarshipType
		if t == "" {
			t = models.ScholarshipTypeOther
		}
		out[string(t)]++
	}
	return out, nil
}

func (m *MemoryStore) CountByOrganizationType(_ context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, s := range m.filter(nil) {
		key := unknownOrganizationType
		if s.OrganizationType != nil {
			key = *s.OrganizationType
		}
		out[key]++
	}
	return out, nil
}

func (m *MemoryStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.items, id)
	m.compact()
	return nil
}

func (m *MemoryStore) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.items))
	m.items = map[string]models.Scholarship{}
	m.order = nil
	return n, nil
}

func (m *MemoryStore) DeleteInactive(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, s := range m.items {
		if !s.IsActive {
			delete(m.items, id)
			n++
		}
	}
	m.compact()
	return n, nil
}

func (m *MemoryStore) DeactivateAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	now := time.Now()
	for id, s := range m.items {
		if s.IsActive {
			s.IsActive = false
			s.UpdatedAt = now
			m.items[id] = s
			n++
		}
	}
	return n, nil
}

// WithTransaction snapshots the set and restores it when fn fails.
func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.RLock()
	items := make(map[string]models.Scholarship, len(m.items))
	for k, v := range m.items {
		items[k] = v
	}
	order := append([]string(nil), m.order...)
	m.mu.RUnlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.items, m.order = items, order
		m.mu.Unlock()
		return err
	}
	return nil
}

// filter returns copies in insertion order; nil keeps everything.
func (m *MemoryStore) filter(keep func(s *models.Scholarship) bool) []models.Scholarship {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Scholarship, 0, len(m.items))
	for _, id := range m.order {
		s := m.items[id]
		if keep == nil || keep(&s) {
			out = append(out, s)
		}
	}
	return out
}

func (m *MemoryStore) compact() {
	kept := m.order[:0]
	for _, id := range m.order {
		if _, ok := m.items[id]; ok {
			kept = append(kept, id)
		}
	}
	m.order = kept
}
