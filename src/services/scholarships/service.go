package scholarships

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/extractors"
	"Backend-Scholarship-Finder/src/utils"
)

const dateLayout = "2006-01-02"

// PublicQuery ตัวกรองของรายการทุนฝั่งผู้ใช้
type PublicQuery struct {
	models.PaginationParams
	Type          string `query:"type"`
	OnlyAccepting bool   `query:"onlyAccepting"`
}

// AdminQuery ตัวกรองของรายการทุนฝั่งผู้ดูแล
type AdminQuery struct {
	models.PaginationParams
	Type       string `query:"type"`
	IsActive   *bool  `query:"isActive"`
	IsFeatured *bool  `query:"isFeatured"`
}

// Service จัดการทุนการศึกษาสำหรับ API ฝั่งผู้ใช้และผู้ดูแล
type Service struct {
	store Store
	cache *Cache
	log   logger.Logger
	now   func() time.Time
}

func NewService(store Store, cache *Cache, log logger.Logger) *Service {
	return &Service{store: store, cache: cache, log: log, now: time.Now}
}

// ---------- public ----------

// ListPublic ดึงทุนที่เปิดใช้งาน แบ่งหน้า ค้นหาจากชื่อ/หน่วยงาน
func (s *Service) ListPublic(ctx context.Context, q PublicQuery) (*models.PaginatedResponse, error) {
	q.PaginationParams = q.PaginationParams.Normalize()

	key := ListKey("public", q)
	var cached models.PaginatedResponse
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	active := true
	filter := models.ScholarshipFilter{
		Search:   strings.TrimSpace(q.Search),
		IsActive: &active,
		Sort:     models.SortFeaturedDeadline,
	}
	if q.Type != "" {
		t, ok := models.ParseScholarshipType(q.Type)
		if !ok {
			return nil, fmt.Errorf("%w: unknown scholarship type %q", apperrors.ErrValidation, q.Type)
		}
		filter.Type = &t
	}
	if q.OnlyAccepting {
		today := Today()
		filter.AcceptingOn = &today
	}

	items, total, err := s.store.Find(ctx, filter, q.PaginationParams)
	if err != nil {
		return nil, err
	}

	resp := models.NewPaginatedResponse(ToSummaries(items), total, q.PaginationParams)
	s.cache.Set(ctx, key, resp)
	return resp, nil
}

func (s *Service) Featured(ctx context.Context) ([]models.ScholarshipSummary, error) {
	key := ListKey("featured", nil)
	var cached []models.ScholarshipSummary
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.store.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	out := ToSummaries(items)
	s.cache.Set(ctx, key, out)
	return out, nil
}

// Accepting ทุนที่อยู่ในช่วงรับสมัครวันนี้ เรียงตามวันปิดรับ
func (s *Service) Accepting(ctx context.Context) ([]models.ScholarshipSummary, error) {
	today := Today()
	key := ListKey("accepting", today.Format(dateLayout))
	var cached []models.ScholarshipSummary
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.store.FindAccepting(ctx, today)
	if err != nil {
		return nil, err
	}
	out := ToSummaries(items)
	s.cache.Set(ctx, key, out)
	return out, nil
}

// GetPublic ทุนที่ปิดใช้งานแล้วจะถือว่าไม่พบ
func (s *Service) GetPublic(ctx context.Context, id string) (*models.Scholarship, error) {
	sc, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sc.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return sc, nil
}

// ---------- admin ----------

func (s *Service) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalScholarships, err = s.store.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveScholarships, err = s.store.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.InactiveScholarships, err = s.store.CountInactive(ctx); err != nil {
		return nil, err
	}
	if stats.FeaturedScholarships, err = s.store.CountFeatured(ctx); err != nil {
		return nil, err
	}
	accepting, err := s.store.FindAccepting(ctx, Today())
	if err != nil {
		return nil, err
	}
	stats.AcceptingApplications = int64(len(accepting))

	// breakdowns are best effort
	if stats.ByType, err = s.store.CountByType(ctx); err != nil {
		s.log.Warn("⚠️ count by type failed", map[string]interface{}{"error": err.Error()})
		stats.ByType = map[string]int64{}
	}
	if stats.ByOrganizationType, err = s.store.CountByOrganizationType(ctx); err != nil {
		s.log.Warn("⚠️ count by organization type failed", map[string]interface{}{"error": err.Error()})
		stats.ByOrganizationType = map[string]int64{}
	}
	return stats, nil
}

func (s *Service) ListAdmin(ctx context.Context, q AdminQuery) (*models.PaginatedResponse, error) {
	q.PaginationParams = q.PaginationParams.Normalize()

	filter := models.ScholarshipFilter{
		Search:     strings.TrimSpace(q.Search),
		IsActive:   q.IsActive,
		IsFeatured: q.IsFeatured,
		Sort:       models.SortActiveRecent,
	}
	if q.Type != "" {
		t, ok := models.ParseScholarshipType(q.Type)
		if !ok {
			return nil, fmt.Errorf("%w: unknown scholarship type %q", apperrors.ErrValidation, q.Type)
		}
		filter.Type = &t
	}

	items, total, err := s.store.Find(ctx, filter, q.PaginationParams)
	if err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(items, total, q.PaginationParams), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Scholarship, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req models.ScholarshipCreateRequest) (*models.Scholarship, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := s.now()
	sc := &models.Scholarship{
		ID:                    uuid.NewString(),
		Name:                  strings.TrimSpace(req.Name),
		Organization:          strings.TrimSpace(req.Organization),
		OrganizationType:      req.OrganizationType,
		ProductType:           req.ProductType,
		GradeCriteria:         req.GpaRequirementText,
		IncomeCriteria:        req.IncomeRequirementText,
		SupportDetails:        req.SupportDetails,
		MinGpa:                req.MinGpa,
		MaxIncomeLevel:        req.MaxIncomeLevel,
		AllowedAcademicStatus: req.AllowedStatus,
		AllowedGrades:         req.AllowedGrades,
		WebsiteURL:            req.WebsiteURL,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if req.IsActive != nil {
		sc.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		sc.IsFeatured = *req.IsFeatured
	}

	if req.ScholarshipType != "" {
		t, ok := models.ParseScholarshipType(req.ScholarshipType)
		if !ok {
			return nil, fmt.Errorf("%w: unknown scholarship type %q", apperrors.ErrValidation, req.ScholarshipType)
		}
		sc.ScholarshipType = t
	} else {
		sc.ScholarshipType = extractors.DetectScholarshipType(sc.Name, "", sc.Organization, extractors.Deref(sc.ProductType))
	}

	var err error
	if sc.ApplyStart, err = parseRequestDate("applyStart", req.ApplyStart); err != nil {
		return nil, err
	}
	if sc.ApplyEnd, err = parseRequestDate("applyEnd", req.ApplyEnd); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, sc); err != nil {
		return nil, err
	}
	s.cache.InvalidateLists(ctx)
	s.log.Info("✅ scholarship created", map[string]interface{}{"id": sc.ID, "name": sc.Name})
	return sc, nil
}

func (s *Service) Update(ctx context.Context, id string, req models.ScholarshipUpdateRequest) (*models.Scholarship, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	sc, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sc.Name = *req.Name
	}
	if req.Organization != nil {
		sc.Organization = *req.Organization
	}
	if req.MinGpa != nil {
		sc.MinGpa = req.MinGpa
	}
	if req.MaxIncomeLevel != nil {
		sc.MaxIncomeLevel = req.MaxIncomeLevel
	}
	if req.AllowedStatus != nil {
		sc.AllowedAcademicStatus = req.AllowedStatus
	}
	if req.AllowedGrades != nil {
		sc.AllowedGrades = req.AllowedGrades
	}
	if req.RegionRestriction != nil {
		sc.RegionLimit = req.RegionRestriction
	}
	if req.IsActive != nil {
		sc.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		sc.IsFeatured = *req.IsFeatured
	}
	if req.WebsiteURL != nil {
		sc.WebsiteURL = req.WebsiteURL
	}
	sc.UpdatedAt = s.now()

	if err := s.store.Save(ctx, sc); err != nil {
		return nil, err
	}
	s.cache.InvalidateLists(ctx)
	return sc, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateLists(ctx)
	return nil
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.InvalidateLists(ctx)
	s.log.Warn("⚠️ all scholarships deleted", map[string]interface{}{"count": n})
	return n, nil
}

func (s *Service) DeactivateAll(ctx context.Context) (int64, error) {
	n, err := s.store.DeactivateAll(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.InvalidateLists(ctx)
	return n, nil
}

func (s *Service) DeleteInactive(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteInactive(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.InvalidateLists(ctx)
	return n, nil
}

// BulkUpdate เปลี่ยน isActive/isFeatured ของหลายรายการ คืนจำนวนที่พบ
func (s *Service) BulkUpdate(ctx context.Context, req models.BulkUpdateRequest) (int, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return 0, err
	}

	items, err := s.store.FindByIDs(ctx, req.IDs)
	if err != nil {
		return 0, err
	}
	now := s.now()
	for i := range items {
		if req.IsActive != nil {
			items[i].IsActive = *req.IsActive
		}
		if req.IsFeatured != nil {
			items[i].IsFeatured = *req.IsFeatured
		}
		items[i].UpdatedAt = now
	}
	if err := s.store.SaveMany(ctx, items); err != nil {
		return 0, err
	}
	s.cache.InvalidateLists(ctx)
	return len(items), nil
}

// InvalidateCache ใช้หลังการนำเข้าไฟล์
func (s *Service) InvalidateCache(ctx context.Context) {
	s.cache.InvalidateLists(ctx)
}

// ---------- mapping ----------

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func ToSummary(s *models.Scholarship) models.ScholarshipSummary {
	return models.ScholarshipSummary{
		ID:           s.ID,
		Name:         s.Name,
		Organization: s.Organization,
		Type:         TypeOrOther(s.ScholarshipType),
		Description:  s.SupportDetails,
		ApplyStart:   FormatDate(s.ApplyStart),
		ApplyEnd:     FormatDate(s.ApplyEnd),
		WebsiteURL:   s.WebsiteURL,
		IsFeatured:   s.IsFeatured,
	}
}

func ToSummaries(items []models.Scholarship) []models.ScholarshipSummary {
	out := make([]models.ScholarshipSummary, 0, len(items))
	for i := range items {
		out = append(out, ToSummary(&items[i]))
	}
	return out
}

// TypeOrOther reports an unset category as "other".
func TypeOrOther(t models.ScholarshipType) string {
	if t == "" {
		return string(models.ScholarshipTypeOther)
	}
	return string(t)
}

func parseRequestDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	d := extractors.ParseDate(*raw)
	if d == nil {
		return nil, fmt.Errorf("%w: %s is not a date: %q", apperrors.ErrValidation, field, *raw)
	}
	return d, nil
}
