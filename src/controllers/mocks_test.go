package controllers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"Backend-Scholarship-Finder/src/jobs"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/ingestion"
	"Backend-Scholarship-Finder/src/services/scholarships"
)

type mockScholarshipService struct{ mock.Mock }

func (m *mockScholarshipService) ListPublic(ctx context.Context, q scholarships.PublicQuery) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(*models.PaginatedResponse)
	return resp, args.Error(1)
}

func (m *mockScholarshipService) Featured(ctx context.Context) ([]models.ScholarshipSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.ScholarshipSummary)
	return items, args.Error(1)
}

func (m *mockScholarshipService) Accepting(ctx context.Context) ([]models.ScholarshipSummary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.ScholarshipSummary)
	return items, args.Error(1)
}

func (m *mockScholarshipService) GetPublic(ctx context.Context, id string) (*models.Scholarship, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Scholarship)
	return s, args.Error(1)
}

func (m *mockScholarshipService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.DashboardStats)
	return s, args.Error(1)
}

func (m *mockScholarshipService) ListAdmin(ctx context.Context, q scholarships.AdminQuery) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).(*models.PaginatedResponse)
	return resp, args.Error(1)
}

func (m *mockScholarshipService) Get(ctx context.Context, id string) (*models.Scholarship, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Scholarship)
	return s, args.Error(1)
}

func (m *mockScholarshipService) Create(ctx context.Context, req models.ScholarshipCreateRequest) (*models.Scholarship, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*models.Scholarship)
	return s, args.Error(1)
}

func (m *mockScholarshipService) Update(ctx context.Context, id string, req models.ScholarshipUpdateRequest) (*models.Scholarship, error) {
	args := m.Called(ctx, id, req)
	s, _ := args.Get(0).(*models.Scholarship)
	return s, args.Error(1)
}

func (m *mockScholarshipService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScholarshipService) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockScholarshipService) DeactivateAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockScholarshipService) DeleteInactive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockScholarshipService) BulkUpdate(ctx context.Context, req models.BulkUpdateRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *mockScholarshipService) InvalidateCache(ctx context.Context) {
	m.Called(ctx)
}

type mockEvaluator struct{ mock.Mock }

func (m *mockEvaluator) Evaluate(ctx context.Context, p models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error) {
	args := m.Called(ctx, p)
	resp, _ := args.Get(0).(*models.EligibilityCheckResponse)
	return resp, args.Error(1)
}

type mockImporter struct{ mock.Mock }

func (m *mockImporter) Ingest(ctx context.Context, req ingestion.ImportRequest) (*models.CsvUploadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.CsvUploadResponse)
	return resp, args.Error(1)
}

type mockQueue struct{ mock.Mock }

func (m *mockQueue) EnqueueImport(ctx context.Context, p jobs.ImportPayload) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

type mockReports struct{ mock.Mock }

func (m *mockReports) Recent(ctx context.Context, limit int) ([]models.ImportReport, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]models.ImportReport)
	return items, args.Error(1)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AdminLoginResponse)
	return resp, args.Error(1)
}

func (m *mockAdminService) Me(ctx context.Context, id string) (*models.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockAdminService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockAdminService) Logout(ctx context.Context, token string, ttl time.Duration) error {
	return m.Called(ctx, token, ttl).Error(0)
}
