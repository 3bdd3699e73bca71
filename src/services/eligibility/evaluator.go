// Package eligibility checks a user profile against every active scholarship
// and ranks the verdicts.
package eligibility

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/metrics"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/scholarships"
	"Backend-Scholarship-Finder/src/utils"
)

const (
	manualReviewNote = "상세 조건 직접 확인 필요"
	checkedAtLayout  = "2006-01-02T15:04:05"
	periodLayout     = "01.02"
)

// Source supplies active records, featured first then most recently updated.
type Source interface {
	FindActive(ctx context.Context) ([]models.Scholarship, error)
}

type Evaluator struct {
	source Source
	log    logger.Logger
	now    func() time.Time
}

func NewEvaluator(source Source, log logger.Logger) *Evaluator {
	return &Evaluator{source: source, log: log, now: time.Now}
}

// Evaluate validates the profile, checks it against every active record and
// returns the ranked verdicts with a summary.
func (e *Evaluator) Evaluate(ctx context.Context, profile models.EligibilityCheckRequest) (*models.EligibilityCheckResponse, error) {
	if err := utils.ValidateStruct(profile); err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.EligibilityDuration)
	defer timer.ObserveDuration()

	records, err := e.source.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active scholarships: %w", err)
	}
	e.log.Info("eligibility check started", map[string]interface{}{
		"scholarships":   len(records),
		"academicStatus": profile.AcademicStatus,
		"grade":          profile.Grade,
		"gpa":            profile.Gpa,
		"incomeLevel":    profile.IncomeLevel,
	})

	results := make([]models.EligibilityResult, len(records))
	for i := range records {
		results[i] = EvaluateOne(&records[i], profile)
	}
	Rank(results)

	var eligible, notEligible int
	for _, r := range results {
		switch r.IsEligible {
		case models.EligibilityEligible:
			eligible++
		case models.EligibilityNotEligible:
			notEligible++
		}
	}
	metrics.EligibilityChecks.Inc()
	e.log.Info("✅ eligibility check completed", map[string]interface{}{
		"eligible":     eligible,
		"notEligible":  notEligible,
		"undetermined": len(results) - eligible - notEligible,
	})

	return &models.EligibilityCheckResponse{
		Results:   results,
		CheckedAt: e.now().Format(checkedAtLayout),
		Summary: models.CheckSummary{
			EligibleCount:   eligible,
			TotalCount:      len(results),
			AiAnalyzedCount: 0,
			PublicDataCount: len(records),
		},
		UserConditions: profile,
	}, nil
}

// EvaluateOne runs every criterion against one record and aggregates them.
func EvaluateOne(s *models.Scholarship, profile models.EligibilityCheckRequest) models.EligibilityResult {
	detail := models.EligibilityDetail{Satisfied: []string{}, NotSatisfied: []string{}, Unknown: []string{}}
	var results []models.CriterionResult

	for _, check := range criteria {
		r, ok := check(s, profile)
		if !ok {
			continue
		}
		results = append(results, r)
		switch r.Status {
		case models.CriterionSatisfied:
			detail.Satisfied = append(detail.Satisfied, r.Reason)
		case models.CriterionNotSatisfied:
			detail.NotSatisfied = append(detail.NotSatisfied, r.Reason)
		default:
			detail.Unknown = append(detail.Unknown, r.Reason)
		}
	}

	verdict := Aggregate(len(detail.Satisfied), len(detail.NotSatisfied))
	if verdict == models.EligibilityUndetermined && len(detail.Unknown) == 0 {
		detail.Unknown = append(detail.Unknown, manualReviewNote)
		results = append(results, models.CriterionResult{
			Criterion: CriterionOverall,
			Status:    models.CriterionUnknown,
			Reason:    manualReviewNote,
		})
	}

	return models.EligibilityResult{
		Scholarship:       info(s),
		IsEligible:        verdict,
		EligibilityDetail: detail,
		Criteria:          results,
		ApplyPeriod:       applyPeriod(s),
	}
}

// Aggregate: any failure wins, then any success, else undetermined.
func Aggregate(satisfiedCount, notSatisfiedCount int) models.Eligibility {
	switch {
	case notSatisfiedCount > 0:
		return models.EligibilityNotEligible
	case satisfiedCount > 0:
		return models.EligibilityEligible
	}
	return models.EligibilityUndetermined
}

// Rank orders eligible, then undetermined, then not eligible. Equal verdicts
// keep their input order.
func Rank(results []models.EligibilityResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].IsEligible.Rank() < results[j].IsEligible.Rank()
	})
}

func info(s *models.Scholarship) models.ScholarshipInfo {
	return models.ScholarshipInfo{
		ID:           s.ID,
		Name:         s.Name,
		Type:         scholarships.TypeOrOther(s.ScholarshipType),
		Description:  s.SupportDetails,
		ApplyStart:   scholarships.FormatDate(s.ApplyStart),
		ApplyEnd:     scholarships.FormatDate(s.ApplyEnd),
		ExternalURL:  s.WebsiteURL,
		IsActive:     s.IsActive,
		Organization: s.Organization,
	}
}

// applyPeriod renders "MM.DD ~ MM.DD" with "?" for a missing side.
func applyPeriod(s *models.Scholarship) *string {
	if s.ApplyStart == nil && s.ApplyEnd == nil {
		return nil
	}
	side := func(t *time.Time) string {
		if t == nil {
			return "?"
		}
		return t.Format(periodLayout)
	}
	p := side(s.ApplyStart) + " ~ " + side(s.ApplyEnd)
	return &p
}
