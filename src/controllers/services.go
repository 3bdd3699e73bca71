package controllers

import (
	"context"
	"time"

	"Backend-Scholarship-Finder/src/jobs"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/ingestion"
	"Backend-Scholarship-Finder/src/services/scholarships"
)

// ScholarshipService is the scholarship use-case layer the handlers call.
type ScholarshipService interface {
	ListPublic(ctx context.Context, q scholarships.PublicQuery) (*models.PaginatedResponse, error)
	Featured(ctx context.Context) ([]models.ScholarshipSummary, error)
	Accepting(ctx context.Context) ([]models.ScholarshipSummary, error)
	GetPublic(ctx context.Context, id string) (*models.Scholarship, error)

	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	ListAdmin(ctx context.Context, q scholarships.AdminQuery) (*models.PaginatedResponse, error)
	Get(ctx context.Context, id string) (*models.Scholarship, error)
	Create(ctx context.Context, req models.ScholarshipCreateRequest) (*models.Scholarship, error)
	Update(ctx context.Context, id string, req models.ScholarshipUpdateRequest) (*models.Scholarship, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	DeactivateAll(ctx context.Context) (int64, error)
	DeleteInactive(ctx context.Context) (int64, error)
	BulkUpdate(ctx context.Context, req models.BulkUpdateRequest) (int, error)
	InvalidateCache(ctx context.Context)
}

type Evaluator interface {
	Evaluate(ctx context.Context, profile models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error)
}

type Importer interface {
	Ingest(ctx context.Context, req ingestion.ImportRequest) (*models.CsvUploadResponse, error)
}

type ImportQueue interface {
	EnqueueImport(ctx context.Context, p jobs.ImportPayload) (string, error)
}

type ImportReports interface {
	Recent(ctx context.Context, limit int) ([]models.ImportReport, error)
}

type AdminService interface {
	Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminLoginResponse, error)
	Me(ctx context.Context, id string) (*models.Admin, error)
	ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) error
	Logout(ctx context.Context, token string, ttl time.Duration) error
}
