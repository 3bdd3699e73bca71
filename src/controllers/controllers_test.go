package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/jobs"
	"Backend-Scholarship-Finder/src/middleware"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/ingestion"
	"Backend-Scholarship-Finder/src/services/scholarships"
	"Backend-Scholarship-Finder/src/utils"
)

// asAdmin stands in for AuthJWT so handlers see the usual locals.
func asAdmin(c *fiber.Ctx) error {
	c.Locals(middleware.LocalAdminID, "admin-1")
	c.Locals(middleware.LocalUsername, "admin")
	c.Locals(middleware.LocalToken, "token-abc")
	c.Locals(middleware.LocalClaims, &utils.JWTClaims{
		UserID: "admin-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	return c.Next()
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, target, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// ---------- public ----------

func newPublicApp(svc *mockScholarshipService, ev *mockEvaluator) *fiber.App {
	h := NewScholarshipController(svc, ev)
	app := fiber.New()
	app.Get("/scholarships", h.ListScholarships)
	app.Post("/scholarships/check", h.CheckEligibility)
	app.Get("/scholarships/featured", h.GetFeatured)
	app.Get("/scholarships/:id", h.GetScholarship)
	return app
}

func TestListScholarshipsParsesQuery(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("ListPublic", mock.Anything, mock.MatchedBy(func(q scholarships.PublicQuery) bool {
		return q.Page == 2 && q.Limit == 5 && q.Search == "희망" && q.Type == "local" && q.OnlyAccepting
	})).Return(&models.PaginatedResponse{Data: []models.ScholarshipSummary{}, Total: 7, Page: 2, Limit: 5}, nil)

	app := newPublicApp(svc, new(mockEvaluator))
	req := httptest.NewRequest("GET", "/scholarships?page=2&limit=5&search=%ED%9D%AC%EB%A7%9D&type=local&onlyAccepting=true", nil)
	status, body := do(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(7), body["total"])
	svc.AssertExpectations(t)
}

func TestListScholarshipsMapsValidationError(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("ListPublic", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown scholarship type", apperrors.ErrValidation))

	status, _ := do(t, newPublicApp(svc, new(mockEvaluator)), httptest.NewRequest("GET", "/scholarships?type=x", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetFeaturedWrapsList(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("Featured", mock.Anything).Return([]models.ScholarshipSummary{{ID: "a"}, {ID: "b"}}, nil)

	status, body := do(t, newPublicApp(svc, new(mockEvaluator)), httptest.NewRequest("GET", "/scholarships/featured", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["scholarships"], 2)
}

func TestGetScholarshipNotFound(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("GetPublic", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	status, body := do(t, newPublicApp(svc, new(mockEvaluator)), httptest.NewRequest("GET", "/scholarships/missing", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(404), body["status"])
}

func TestCheckEligibility(t *testing.T) {
	profile := models.EligibilityCheckRequest{
		AcademicStatus: models.AcademicStatusEnrolled,
		Grade:          2,
		BirthYear:      2003,
		Gpa:            3.8,
		IncomeLevel:    4,
	}
	ev := new(mockEvaluator)
	ev.On("Evaluate", mock.Anything, profile).Return(&models.EligibilityCheckResponse{
		Results:        []models.EligibilityResult{},
		Summary:        models.CheckSummary{TotalCount: 3, PublicDataCount: 3},
		UserConditions: profile,
	}, nil)

	app := newPublicApp(new(mockScholarshipService), ev)
	status, body := do(t, app, jsonRequest("POST", "/scholarships/check", profile))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["summary"].(map[string]interface{})["totalCount"])
	ev.AssertExpectations(t)
}

func TestCheckEligibilityRejectsBadBody(t *testing.T) {
	ev := new(mockEvaluator)
	app := newPublicApp(new(mockScholarshipService), ev)

	req := httptest.NewRequest("POST", "/scholarships/check", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	status, _ := do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)

	ev.On("Evaluate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Grade is required", apperrors.ErrValidation))
	status, body := do(t, app, jsonRequest("POST", "/scholarships/check", map[string]interface{}{"academicStatus": "enrolled"}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "Grade is required")
}

// ---------- admin ----------

func newAdminApp(svc *mockScholarshipService) *fiber.App {
	h := NewAdminController(svc)
	app := fiber.New()
	app.Use(asAdmin)
	app.Post("/scholarships", h.CreateScholarship)
	app.Delete("/scholarships/all", h.DeleteAllScholarships)
	app.Post("/scholarships/bulk-update", h.BulkUpdateScholarships)
	app.Put("/scholarships/:id", h.UpdateScholarship)
	app.Delete("/scholarships/:id", h.DeleteScholarship)
	return app
}

func TestCreateScholarshipReturnsCreated(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(r models.ScholarshipCreateRequest) bool {
		return r.Name == "희망장학금" && r.Organization == "재단"
	})).Return(&models.Scholarship{ID: "new-id", Name: "희망장학금", Organization: "재단"}, nil)

	status, body := do(t, newAdminApp(svc), jsonRequest("POST", "/scholarships", map[string]string{
		"name": "희망장학금", "organization": "재단",
	}))
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "new-id", body["id"])
}

func TestUpdateScholarshipNotFound(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("Update", mock.Anything, "ghost", mock.Anything).Return(nil, apperrors.ErrNotFound)

	status, _ := do(t, newAdminApp(svc), jsonRequest("PUT", "/scholarships/ghost", map[string]bool{"isActive": false}))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBulkEndpointsReportCounts(t *testing.T) {
	svc := new(mockScholarshipService)
	svc.On("DeleteAll", mock.Anything).Return(int64(12), nil)
	svc.On("BulkUpdate", mock.Anything, mock.MatchedBy(func(r models.BulkUpdateRequest) bool {
		return len(r.IDs) == 2 && r.IsFeatured != nil && *r.IsFeatured
	})).Return(2, nil)
	app := newAdminApp(svc)

	status, body := do(t, app, httptest.NewRequest("DELETE", "/scholarships/all", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(12), body["count"])

	status, body = do(t, app, jsonRequest("POST", "/scholarships/bulk-update", map[string]interface{}{
		"ids": []string{"a", "b"}, "isFeatured": true,
	}))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["count"])
	svc.AssertExpectations(t)
}

// ---------- import ----------

type importFixture struct {
	importer *mockImporter
	queue    *mockQueue
	reports  *mockReports
	svc      *mockScholarshipService
	app      *fiber.App
}

func newImportApp(maxUpload int64) *importFixture {
	f := &importFixture{
		importer: new(mockImporter),
		queue:    new(mockQueue),
		reports:  new(mockReports),
		svc:      new(mockScholarshipService),
	}
	h := NewImportController(f.importer, f.queue, f.reports, f.svc, maxUpload)
	f.app = fiber.New()
	f.app.Use(asAdmin)
	f.app.Post("/upload-csv", h.UploadCSV)
	f.app.Get("/imports", h.ListImports)
	return f
}

const sampleCSV = "번호,운영기관명,상품명\n1,재단,희망장학금\n"

func TestUploadCSVImportsSynchronously(t *testing.T) {
	f := newImportApp(1 << 20)
	f.importer.On("Ingest", mock.Anything, mock.MatchedBy(func(r ingestion.ImportRequest) bool {
		return r.Filename == "list.CSV" && r.Mode == models.ImportModeReplace && r.Actor == "admin"
	})).Return(&models.CsvUploadResponse{Success: 1, Mode: models.ImportModeReplace}, nil)
	f.svc.On("InvalidateCache", mock.Anything).Return()

	status, body := do(t, f.app, uploadRequest(t, "/upload-csv", "list.CSV", sampleCSV, map[string]string{"mode": "Replace"}))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["success"])
	f.importer.AssertExpectations(t)
	f.svc.AssertCalled(t, "InvalidateCache", mock.Anything)
}

func TestUploadCSVRejections(t *testing.T) {
	f := newImportApp(16)

	status, body := do(t, f.app, uploadRequest(t, "/upload-csv", "list.xlsx", "x", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CSV 파일만 업로드 가능합니다.", body["message"])

	status, _ = do(t, f.app, uploadRequest(t, "/upload-csv", "big.csv", sampleCSV, nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)

	status, _ = do(t, f.app, uploadRequest(t, "/upload-csv", "a.csv", "x", map[string]string{"mode": "merge"}))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, f.app, httptest.NewRequest("POST", "/upload-csv", nil))
	assert.Equal(t, http.StatusBadRequest, status)

	f.importer.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestUploadCSVEmptyFileIsBadRequest(t *testing.T) {
	f := newImportApp(0)
	f.importer.On("Ingest", mock.Anything, mock.Anything).Return(nil, apperrors.ErrEmptyFile)

	status, body := do(t, f.app, uploadRequest(t, "/upload-csv", "empty.csv", "", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrEmptyFile.Error(), body["message"])
	f.svc.AssertNotCalled(t, "InvalidateCache", mock.Anything)
}

func TestUploadCSVAsync(t *testing.T) {
	f := newImportApp(0)
	f.queue.On("EnqueueImport", mock.Anything, mock.MatchedBy(func(p jobs.ImportPayload) bool {
		return p.Filename == "list.csv" && string(p.Content) == sampleCSV && p.Mode == models.ImportModeAppend && p.Actor == "admin"
	})).Return("import-123", nil)

	status, body := do(t, f.app, uploadRequest(t, "/upload-csv?async=true", "list.csv", sampleCSV, nil))
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "import-123", body["taskId"])
	assert.Equal(t, "append", body["mode"])
	f.importer.AssertNotCalled(t, "Ingest", mock.Anything, mock.Anything)
}

func TestUploadCSVAsyncWithoutQueue(t *testing.T) {
	f := newImportApp(0)
	f.queue.On("EnqueueImport", mock.Anything, mock.Anything).Return("", jobs.ErrQueueUnavailable)

	status, _ := do(t, f.app, uploadRequest(t, "/upload-csv?async=true", "list.csv", sampleCSV, nil))
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestListImports(t *testing.T) {
	f := newImportApp(0)
	f.reports.On("Recent", mock.Anything, recentImportsLimit).
		Return([]models.ImportReport{{ID: "r1", Status: jobs.StatusCompleted}}, nil)

	resp, err := f.app.Test(httptest.NewRequest("GET", "/imports", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []models.ImportReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
}

// ---------- auth ----------

func newAuthApp(svc *mockAdminService) *fiber.App {
	h := NewAuthController(svc)
	app := fiber.New()
	app.Post("/login", h.Login)
	app.Get("/me", asAdmin, h.Me)
	app.Post("/logout", asAdmin, h.Logout)
	app.Post("/change-password", asAdmin, h.ChangePassword)
	return app
}

func TestLogin(t *testing.T) {
	svc := new(mockAdminService)
	svc.On("Login", mock.Anything, models.AdminLoginRequest{Username: "admin", Password: "1234"}).
		Return(&models.AdminLoginResponse{AccessToken: "tok", TokenType: "bearer"}, nil)
	svc.On("Login", mock.Anything, models.AdminLoginRequest{Username: "admin", Password: "nope"}).
		Return(nil, fmt.Errorf("%w: 아이디 또는 비밀번호가 올바르지 않습니다.", apperrors.ErrUnauthorized))
	app := newAuthApp(svc)

	resp, err := app.Test(jsonRequest("POST", "/login", models.AdminLoginRequest{Username: "admin", Password: "1234"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))

	status, _ := do(t, app, jsonRequest("POST", "/login", models.AdminLoginRequest{Username: "admin", Password: "nope"}))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMeAndLogoutUseLocals(t *testing.T) {
	svc := new(mockAdminService)
	svc.On("Me", mock.Anything, "admin-1").Return(&models.Admin{ID: "admin-1", Username: "admin"}, nil)
	svc.On("Logout", mock.Anything, "token-abc", mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 50*time.Minute && ttl <= time.Hour
	})).Return(nil)
	app := newAuthApp(svc)

	status, body := do(t, app, httptest.NewRequest("GET", "/me", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", body["username"])
	assert.NotContains(t, body, "password")

	status, _ = do(t, app, httptest.NewRequest("POST", "/logout", nil))
	assert.Equal(t, http.StatusOK, status)
	svc.AssertExpectations(t)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := new(mockAdminService)
	svc.On("ChangePassword", mock.Anything, "admin-1", mock.Anything).
		Return(fmt.Errorf("%w: 현재 비밀번호가 올바르지 않습니다.", apperrors.ErrValidation))

	status, _ := do(t, newAuthApp(svc), jsonRequest("POST", "/change-password", models.ChangePasswordRequest{
		CurrentPassword: "x", NewPassword: "abcd",
	}))
	assert.Equal(t, http.StatusBadRequest, status)
}
