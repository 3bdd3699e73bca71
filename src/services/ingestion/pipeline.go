// Package ingestion loads scholarship CSV files into the record store.
package ingestion

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/metrics"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/extractors"
	"Backend-Scholarship-Finder/src/utils"
)

// MaxRowErrors stops a batch once this many rows have failed.
const MaxRowErrors = 30

const (
	unknownOrganization = "미상"
	unknownName         = "Unknown"
	errMissingName      = "상품명이 없습니다."
)

// Store is what the pipeline needs from the record store.
type Store interface {
	Create(ctx context.Context, s *models.Scholarship) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeactivateAll(ctx context.Context) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImportRequest is one uploaded file plus how to treat existing records.
type ImportRequest struct {
	Filename string
	Content  io.Reader
	Mode     models.ImportMode
	Actor    string
}

type Pipeline struct {
	store Store
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewPipeline(store Store, log logger.Logger) *Pipeline {
	return &Pipeline{store: store, log: log, now: time.Now, newID: uuid.NewString}
}

// ParseMode normalizes the mode parameter; empty means append.
func ParseMode(raw string) (models.ImportMode, error) {
	mode := models.ImportMode(strings.ToLower(strings.TrimSpace(raw)))
	if mode == "" {
		return models.ImportModeAppend, nil
	}
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q (append, replace, deactivate)", apperrors.ErrInvalidMode, raw)
	}
	return mode, nil
}

// Ingest runs one batch inside a store transaction. Row failures are
// reported in the response; any returned error means nothing was kept.
func (p *Pipeline) Ingest(ctx context.Context, req ImportRequest) (*models.CsvUploadResponse, error) {
	mode, err := ParseMode(string(req.Mode))
	if err != nil {
		return nil, err
	}

	resp := &models.CsvUploadResponse{
		Filename:   req.Filename,
		UploadedBy: req.Actor,
		Mode:       mode,
		Errors:     []models.RowError{},
	}
	log := p.log.WithFields(map[string]interface{}{"filename": req.Filename, "mode": mode, "actor": req.Actor})

	// ไฟล์ต้องอ่านและ parse ได้ครบก่อนแตะข้อมูลเดิม (store บางตัวไม่มี transaction จริง)
	rows, err := readRows(req.Content, log)
	if err == nil {
		err = p.store.WithTransaction(ctx, func(ctx context.Context) error {
			return p.run(ctx, log, rows, resp)
		})
	}
	if err != nil {
		metrics.IngestBatches.WithLabelValues(string(mode), "failed").Inc()
		log.WithError(err).Error("❌ CSV ingestion failed", nil)
		return nil, err
	}

	metrics.IngestBatches.WithLabelValues(string(mode), "completed").Inc()
	metrics.IngestRows.WithLabelValues("success").Add(float64(resp.Success))
	metrics.IngestRows.WithLabelValues("failed").Add(float64(resp.Failed))
	log.Info("✅ CSV upload completed", map[string]interface{}{
		"success": resp.Success,
		"failed":  resp.Failed,
	})
	return resp, nil
}

func (p *Pipeline) run(ctx context.Context, log logger.Logger, rows [][]string, resp *models.CsvUploadResponse) error {
	prev, err := p.stats(ctx)
	if err != nil {
		return err
	}
	resp.PreviousStats = prev

	switch resp.Mode {
	case models.ImportModeReplace:
		n, err := p.store.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("delete existing scholarships: %w", err)
		}
		resp.DeletedCount = int(n)
		log.Info("existing records deleted", map[string]interface{}{"count": n})
	case models.ImportModeDeactivate:
		n, err := p.store.DeactivateAll(ctx)
		if err != nil {
			return fmt.Errorf("deactivate existing scholarships: %w", err)
		}
		resp.DeactivatedCount = int(n)
		log.Info("existing records deactivated", map[string]interface{}{"count": n})
	}

	header := buildHeaderIndex(rows[0])
	log.Debug("header index built", map[string]interface{}{"columns": header.size()})

	now := p.now()
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		err := p.ingestRow(ctx, row, header, rowNum, now)
		if err == nil {
			resp.Success++
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp.Failed++
		name, ok := header.cell(row, "name")
		if !ok {
			name = unknownName
		}
		log.Warn("⚠️ row skipped", map[string]interface{}{"row": rowNum, "name": name, "error": err.Error()})
		resp.Errors = append(resp.Errors, models.RowError{Row: rowNum, Error: rowMessage(err), Name: name})

		if len(resp.Errors) >= MaxRowErrors {
			log.Warn("⚠️ too many row errors, stopping", map[string]interface{}{"row": rowNum})
			break
		}
	}

	resp.TotalRows = resp.Success + resp.Failed
	if resp.NewStats, err = p.stats(ctx); err != nil {
		return err
	}
	resp.Message = "CSV 업로드 완료"
	return nil
}

func (p *Pipeline) ingestRow(ctx context.Context, row []string, header headerIndex, rowNum int, now time.Time) error {
	sc, err := buildScholarship(row, header, rowNum)
	if err != nil {
		return err
	}
	sc.ID = p.newID()
	sc.IsActive = true
	sc.IsFeatured = false
	sc.CreatedAt = now
	sc.UpdatedAt = now

	if err := utils.ValidateStruct(sc); err != nil {
		return err
	}
	return p.store.Create(ctx, sc)
}

func (p *Pipeline) stats(ctx context.Context) (models.RecordStats, error) {
	total, err := p.store.Count(ctx)
	if err != nil {
		return models.RecordStats{}, fmt.Errorf("count scholarships: %w", err)
	}
	active, err := p.store.CountActive(ctx)
	if err != nil {
		return models.RecordStats{}, fmt.Errorf("count active scholarships: %w", err)
	}
	return models.RecordStats{Total: total, Active: active}, nil
}

// readRows decodes the upload and splits it into CSV records.
func readRows(content io.Reader, log logger.Logger) ([][]string, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	enc := DetectEncoding(raw)
	log.Info("detected encoding", map[string]interface{}{"encoding": enc.Name})

	text, err := enc.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", enc.Name, err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV 파일 처리 중 오류 발생: %v", apperrors.ErrValidation, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyFile
	}
	return rows, nil
}

// buildScholarship maps one CSV row to a record and runs every extractor.
func buildScholarship(row []string, h headerIndex, rowNum int) (*models.Scholarship, error) {
	name, ok := h.cell(row, "name")
	if !ok {
		return nil, errors.New(errMissingName)
	}
	organization, ok := h.cell(row, "organization")
	if !ok {
		organization = unknownOrganization
	}

	sc := &models.Scholarship{
		Name:                   name,
		Organization:           organization,
		CsvRowNumber:           sourceRowNumber(row, h, rowNum),
		OrganizationType:       h.optional(row, "organizationType"),
		ProductType:            h.optional(row, "productType"),
		FinancialAidType:       h.optional(row, "financialAidType"),
		UniversityCategory:     h.optional(row, "universityCategory"),
		GradeSemester:          h.optional(row, "gradeSemester"),
		MajorCategory:          h.optional(row, "majorCategory"),
		GradeCriteria:          h.optional(row, "gradeCriteria"),
		IncomeCriteria:         h.optional(row, "incomeCriteria"),
		SupportDetails:         h.optional(row, "supportDetails"),
		SpecialQualification:   h.optional(row, "specialQualification"),
		ResidencyDetail:        h.optional(row, "residencyDetail"),
		SelectionMethod:        h.optional(row, "selectionMethod"),
		SelectionCount:         h.optional(row, "selectionCount"),
		EligibilityRestriction: h.optional(row, "eligibilityRestriction"),
		RecommendationRequired: h.optional(row, "recommendationRequired"),
		RequiredDocuments:      h.optional(row, "requiredDocuments"),
		WebsiteURL:             h.optional(row, "websiteUrl"),
	}
	if v, ok := h.cell(row, "applyStart"); ok {
		sc.ApplyStart = extractors.ParseDate(v)
	}
	if v, ok := h.cell(row, "applyEnd"); ok {
		sc.ApplyEnd = extractors.ParseDate(v)
	}

	d := extractors.Deref
	sc.MinGpa = extractors.ExtractMinGpa(d(sc.GradeCriteria))
	sc.MaxIncomeLevel = extractors.ExtractMaxIncomeLevel(d(sc.IncomeCriteria))
	sc.AllowedAcademicStatus = extractors.ExtractAcademicStatus(d(sc.UniversityCategory), d(sc.SpecialQualification), d(sc.EligibilityRestriction))
	sc.AllowedGrades = extractors.ExtractGrades(d(sc.GradeSemester), d(sc.EligibilityRestriction))
	sc.AllowedUniversityTypes = extractors.ExtractUniversityTypes(d(sc.UniversityCategory))
	sc.RegionLimit = extractors.ExtractRegionLimit(d(sc.ResidencyDetail))
	sc.ScholarshipType = extractors.DetectScholarshipType(name, d(sc.FinancialAidType), organization, d(sc.ProductType))
	return sc, nil
}

// sourceRowNumber prefers the digits of the 번호 column.
func sourceRowNumber(row []string, h headerIndex, rowNum int) *int {
	n := rowNum
	if v, ok := h.cell(row, "rowNumber"); ok {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, v)
		if parsed, err := strconv.Atoi(digits); err == nil {
			n = parsed
		}
	}
	return &n
}

// rowMessage strips the validation sentinel prefix for the report.
func rowMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidation.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}
