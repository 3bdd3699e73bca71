package scholarships

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// Schema creates the scholarships table used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS scholarships (
	id                       TEXT PRIMARY KEY,
	csv_row_number           INTEGER,
	organization             TEXT NOT NULL,
	name                     TEXT NOT NULL,
	organization_type        TEXT,
	product_type             TEXT,
	financial_aid_type       TEXT,
	university_category      TEXT,
	grade_semester           TEXT,
	major_category           TEXT,
	grade_criteria           TEXT,
	income_criteria          TEXT,
	support_details          TEXT,
	special_qualification    TEXT,
	residency_detail         TEXT,
	selection_method         TEXT,
	selection_count          TEXT,
	eligibility_restriction  TEXT,
	recommendation_required  TEXT,
	required_documents       TEXT,
	website_url              TEXT,
	apply_start              DATE,
	apply_end                DATE,
	scholarship_type         TEXT NOT NULL DEFAULT 'other',
	min_gpa                  NUMERIC(3,2),
	max_income_level         INTEGER,
	allowed_academic_status  TEXT,
	allowed_grades           TEXT,
	allowed_university_types TEXT,
	region_limit             TEXT,
	is_active                BOOLEAN NOT NULL DEFAULT TRUE,
	is_featured              BOOLEAN NOT NULL DEFAULT FALSE,
	created_at               TIMESTAMPTZ NOT NULL,
	updated_at               TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scholarships_active ON scholarships (is_active, is_featured DESC, updated_at DESC);
`

const scholarshipColumns = `id, csv_row_number, organization, name, organization_type, product_type,
	financial_aid_type, university_category, grade_semester, major_category, grade_criteria,
	income_criteria, support_details, special_qualification, residency_detail, selection_method,
	selection_count, eligibility_restriction, recommendation_required, required_documents,
	website_url, apply_start, apply_end, scholarship_type, min_gpa, max_income_level,
	allowed_academic_status, allowed_grades, allowed_university_types, region_limit,
	is_active, is_featured, created_at, updated_at`

const upsertScholarship = `INSERT INTO scholarships (` + scholarshipColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34)
ON CONFLICT (id) DO UPDATE SET
	csv_row_number = EXCLUDED.csv_row_number, organization = EXCLUDED.organization, name = EXCLUDED.name,
	organization_type = EXCLUDED.organization_type, product_type = EXCLUDED.product_type,
	financial_aid_type = EXCLUDED.financial_aid_type, university_category = EXCLUDED.university_category,
	grade_semester = EXCLUDED.grade_semester, major_category = EXCLUDED.major_category,
	grade_criteria = EXCLUDED.grade_criteria, income_criteria = EXCLUDED.income_criteria,
	support_details = EXCLUDED.support_details, special_qualification = EXCLUDED.special_qualification,
	residency_detail = EXCLUDED.residency_detail, selection_method = EXCLUDED.selection_method,
	selection_count = EXCLUDED.selection_count, eligibility_restriction = EXCLUDED.eligibility_restriction,
	recommendation_required = EXCLUDED.recommendation_required, required_documents = EXCLUDED.required_documents,
	website_url = EXCLUDED.website_url, apply_start = EXCLUDED.apply_start, apply_end = EXCLUDED.apply_end,
	scholarship_type = EXCLUDED.scholarship_type, min_gpa = EXCLUDED.min_gpa,
	max_income_level = EXCLUDED.max_income_level, allowed_academic_status = EXCLUDED.allowed_academic_status,
	allowed_grades = EXCLUDED.allowed_grades, allowed_university_types = EXCLUDED.allowed_university_types,
	region_limit = EXCLUDED.region_limit, is_active = EXCLUDED.is_active, is_featured = EXCLUDED.is_featured,
	updated_at = EXCLUDED.updated_at`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// PostgresStore stores scholarships through database/sql and lib/pq.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the table and index when missing.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create scholarships schema: %w", err)
	}
	return nil
}

func (p *PostgresStore) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return p.db
}

func (p *PostgresStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := ctx.Value(txKey{}).(*sql.Tx); nested {
		return fn(ctx)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (p *PostgresStore) Create(ctx context.Context, s *models.Scholarship) error {
	return p.Save(ctx, s)
}

func (p *PostgresStore) Save(ctx context.Context, s *models.Scholarship) error {
	if _, err := p.q(ctx).ExecContext(ctx, upsertScholarship, scholarshipArgs(s)...); err != nil {
		return fmt.Errorf("save scholarship %s: %w", s.ID, err)
	}
	return nil
}

func (p *PostgresStore) SaveMany(ctx context.Context, items []models.Scholarship) error {
	return p.WithTransaction(ctx, func(ctx context.Context) error {
		for i := range items {
			if err := p.Save(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *PostgresStore) FindByID(ctx context.Context, id string) (*models.Scholarship, error) {
	items, err := p.query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (p *PostgresStore) FindByIDs(ctx context.Context, ids []string) ([]models.Scholarship, error) {
	return p.query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships WHERE id = ANY($1)`, pq.Array(ids))
}

func (p *PostgresStore) FindActive(ctx context.Context) ([]models.Scholarship, error) {
	return p.query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships
		WHERE is_active = TRUE ORDER BY is_featured DESC, updated_at DESC`)
}

func (p *PostgresStore) FindFeatured(ctx context.Context) ([]models.Scholarship, error) {
	return p.query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships
		WHERE is_active = TRUE AND is_featured = TRUE ORDER BY updated_at DESC`)
}

func (p *PostgresStore) FindAccepting(ctx context.Context, day time.Time) ([]models.Scholarship, error) {
	return p.query(ctx, `SELECT `+scholarshipColumns+` FROM scholarships
		WHERE is_active = TRUE AND apply_start <= $1 AND apply_end >= $1 ORDER BY apply_end ASC`, day)
}

func (p *PostgresStore) Find(ctx context.Context, f models.ScholarshipFilter, page models.PaginationParams) ([]models.Scholarship, int64, error) {
	where, args := sqlFilter(f)

	var total int64
	if err := p.q(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM scholarships`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count scholarships: %w", err)
	}

	order := ` ORDER BY is_featured DESC, apply_end ASC NULLS LAST`
	if f.Sort == models.SortActiveRecent {
		order = ` ORDER BY is_active DESC, updated_at DESC`
	}
	args = append(args, page.Limit, page.GetSkip())
	query := fmt.Sprintf(`SELECT %s FROM scholarships%s%s LIMIT $%d OFFSET $%d`,
		scholarshipColumns, where, order, len(args)-1, len(args))

	items, err := p.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func sqlFilter(f models.ScholarshipFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR organization ILIKE %s)", p, p))
	}
	if f.Type != nil {
		conds = append(conds, "scholarship_type = "+arg(string(*f.Type)))
	}
	if f.IsActive != nil {
		conds = append(conds, "is_active = "+arg(*f.IsActive))
	}
	if f.IsFeatured != nil {
		conds = append(conds, "is_featured = "+arg(*f.IsFeatured))
	}
	if f.AcceptingOn != nil {
		d := arg(*f.AcceptingOn)
		conds = append(conds, fmt.Sprintf("apply_start <= %s AND apply_end >= %s", d, d))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (p *PostgresStore) Count(ctx context.Context) (int64, error) {
	return p.count(ctx, `SELECT COUNT(*) FROM scholarships`)
}

func (p *PostgresStore) CountActive(ctx context.Context) (int64, error) {
	return p.count(ctx, `SELECT COUNT(*) FROM scholarships WHERE is_active = TRUE`)
}

func (p *PostgresStore) CountInactive(ctx context.Context) (int64, error) {
	return p.count(ctx, `SELECT COUNT(*) FROM scholarships WHERE is_active = FALSE`)
}

func (p *PostgresStore) CountFeatured(ctx context.Context) (int64, error) {
	return p.count(ctx, `SELECT COUNT(*) FROM scholarships WHERE is_featured = TRUE`)
}

func (p *PostgresStore) CountByType(ctx context.Context) (map[string]int64, error) {
	return p.countBy(ctx, "scholarship_type", string(models.ScholarshipTypeOther))
}

func (p *PostgresStore) CountByOrganizationType(ctx context.Context) (map[string]int64, error) {
	return p.countBy(ctx, "organization_type", unknownOrganizationType)
}

func (p *PostgresStore) countBy(ctx context.Context, column, fallback string) (map[string]int64, error) {
	rows, err := p.q(ctx).QueryContext(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) FROM scholarships GROUP BY %s`, column, column))
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var key sql.NullString
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan %s count: %w", column, err)
		}
		k := fallback
		if key.Valid && key.String != "" {
			k = key.String
		}
		out[k] += n
	}
	return out, rows.Err()
}

func (p *PostgresStore) DeleteByID(ctx context.Context, id string) error {
	n, err := p.exec(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (p *PostgresStore) DeleteAll(ctx context.Context) (int64, error) {
	return p.exec(ctx, `DELETE FROM scholarships`)
}

func (p *PostgresStore) DeleteInactive(ctx context.Context) (int64, error) {
	return p.exec(ctx, `DELETE FROM scholarships WHERE is_active = FALSE`)
}

func (p *PostgresStore) DeactivateAll(ctx context.Context) (int64, error) {
	return p.exec(ctx, `UPDATE scholarships SET is_active = FALSE, updated_at = $1 WHERE is_active = TRUE`, time.Now())
}

func (p *PostgresStore) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := p.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec %q: %w", firstLine(query), err)
	}
	return res.RowsAffected()
}

func (p *PostgresStore) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := p.q(ctx).QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %q: %w", firstLine(query), err)
	}
	return n, nil
}

func (p *PostgresStore) query(ctx context.Context, query string, args ...interface{}) ([]models.Scholarship, error) {
	rows, err := p.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query scholarships: %w", err)
	}
	defer rows.Close()

	items := []models.Scholarship{}
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scholarships: %w", err)
	}
	return items, nil
}

func scholarshipArgs(s *models.Scholarship) []interface{} {
	return []interface{}{
		s.ID, s.CsvRowNumber, s.Organization, s.Name, s.OrganizationType, s.ProductType,
		s.FinancialAidType, s.UniversityCategory, s.GradeSemester, s.MajorCategory, s.GradeCriteria,
		s.IncomeCriteria, s.SupportDetails, s.SpecialQualification, s.ResidencyDetail, s.SelectionMethod,
		s.SelectionCount, s.EligibilityRestriction, s.RecommendationRequired, s.RequiredDocuments,
		s.WebsiteURL, s.ApplyStart, s.ApplyEnd, string(s.ScholarshipType), s.MinGpa, s.MaxIncomeLevel,
		s.AllowedAcademicStatus, s.AllowedGrades, s.AllowedUniversityTypes, s.RegionLimit,
		s.IsActive, s.IsFeatured, s.CreatedAt, s.UpdatedAt,
	}
}

func scanScholarship(rows *sql.Rows) (models.Scholarship, error) {
	var (
		s          models.Scholarship
		rowNumber  sql.NullInt64
		applyStart sql.NullTime
		applyEnd   sql.NullTime
		minGpa     sql.NullFloat64
		maxIncome  sql.NullInt64
		kind       string
		text       [21]sql.NullString
	)
	err := rows.Scan(
		&s.ID, &rowNumber, &s.Organization, &s.Name, &text[0], &text[1],
		&text[2], &text[3], &text[4], &text[5], &text[6],
		&text[7], &text[8], &text[9], &text[10], &text[11],
		&text[12], &text[13], &text[14], &text[15],
		&text[16], &applyStart, &applyEnd, &kind, &minGpa, &maxIncome,
		&text[17], &text[18], &text[19], &text[20],
		&s.IsActive, &s.IsFeatured, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return s, fmt.Errorf("scan scholarship: %w", err)
	}

	targets := []**string{
		&s.OrganizationType, &s.ProductType, &s.FinancialAidType, &s.UniversityCategory,
		&s.GradeSemester, &s.MajorCategory, &s.GradeCriteria, &s.IncomeCriteria,
		&s.SupportDetails, &s.SpecialQualification, &s.ResidencyDetail, &s.SelectionMethod,
		&s.SelectionCount, &s.EligibilityRestriction, &s.RecommendationRequired, &s.RequiredDocuments,
		&s.WebsiteURL, &s.AllowedAcademicStatus, &s.AllowedGrades, &s.AllowedUniversityTypes, &s.RegionLimit,
	}
	for i, target := range targets {
		if text[i].Valid {
			v := text[i].String
			*target = &v
		}
	}

	if rowNumber.Valid {
		n := int(rowNumber.Int64)
		s.CsvRowNumber = &n
	}
	if applyStart.Valid {
		t := applyStart.Time.UTC()
		s.ApplyStart = &t
	}
	if applyEnd.Valid {
		t := applyEnd.Time.UTC()
		s.ApplyEnd = &t
	}
	if minGpa.Valid {
		v := minGpa.Float64
		s.MinGpa = &v
	}
	if maxIncome.Valid {
		v := int(maxIncome.Int64)
		s.MaxIncomeLevel = &v
	}
	s.ScholarshipType = models.ScholarshipType(kind)
	return s, nil
}

func firstLine(q string) string {
	q = strings.TrimSpace(q)
	if i := strings.IndexByte(q, '\n'); i >= 0 {
		return q[:i]
	}
	return q
}
