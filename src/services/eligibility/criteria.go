package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/extractors"
)

const (
	CriterionAcademicStatus = "academicStatus"
	CriterionGrade          = "grade"
	CriterionGpa            = "gpa"
	CriterionIncome         = "income"
	CriterionRegion         = "region"
	CriterionQualification  = "specialQualification"
	CriterionOverall        = "overall"
)

// excerpt lengths used in "직접 확인" reasons
const (
	gradeExcerpt         = 20
	thresholdExcerpt     = 25
	qualificationExcerpt = 30
)

var (
	statusHints        = []string{"재학", "신입", "휴학", "입학"}
	gradeUnrestricted  = []string{"전학년", "제한없음", "무관"}
	gpaUnrestricted    = []string{"제한없음", "무관", "해당없음"}
	incomeUnrestricted = []string{"제한없음", "무관", "해당없음", "소득무관"}
	regionUnrestricted = []string{"전국", "제한없음", "무관"}
	qualUnrestricted   = []string{"제한없음", "무관", "해당없음"}
)

// criterion evaluates one dimension. ok is false when the record makes no
// claim about it and nothing should be reported.
type criterion func(s *models.Scholarship, p models.EligibilityCheckRequest) (r models.CriterionResult, ok bool)

// criteria in reporting order
var criteria = []criterion{
	checkAcademicStatus,
	checkGrade,
	checkGpa,
	checkIncome,
	checkRegion,
	checkSpecialQualification,
}

func satisfied(name, reason string) (models.CriterionResult, bool) {
	return models.CriterionResult{Criterion: name, Status: models.CriterionSatisfied, Reason: reason}, true
}

func notSatisfied(name, reason string) (models.CriterionResult, bool) {
	return models.CriterionResult{Criterion: name, Status: models.CriterionNotSatisfied, Reason: reason}, true
}

func unknown(name, reason string) (models.CriterionResult, bool) {
	return models.CriterionResult{Criterion: name, Status: models.CriterionUnknown, Reason: reason}, true
}

func skip() (models.CriterionResult, bool) {
	return models.CriterionResult{}, false
}

func checkAcademicStatus(s *models.Scholarship, p models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	allowed := extractors.Deref(s.AllowedAcademicStatus)
	if allowed == "" {
		hint := extractors.Combine(extractors.Deref(s.UniversityCategory), extractors.Deref(s.SpecialQualification))
		if extractors.ContainsAny(hint, statusHints...) {
			return unknown(CriterionAcademicStatus, "학적상태 직접 확인 필요")
		}
		return skip()
	}

	var labels []string
	for _, st := range strings.Split(allowed, ",") {
		st = strings.TrimSpace(st)
		if strings.EqualFold(st, string(p.AcademicStatus)) {
			return satisfied(CriterionAcademicStatus, fmt.Sprintf("학적상태 충족 (%s)", p.AcademicStatus.Label()))
		}
		labels = append(labels, models.AcademicStatus(st).Label())
	}
	return notSatisfied(CriterionAcademicStatus, fmt.Sprintf("학적상태 미충족 (요구: %s)", strings.Join(labels, "/")))
}

func checkGrade(s *models.Scholarship, p models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	if s.AllowedGrades != nil && *s.AllowedGrades != "" {
		grades := extractors.ParseGrades(*s.AllowedGrades)
		if len(grades) == 0 {
			return skip()
		}
		labels := make([]string, len(grades))
		for i, g := range grades {
			if g == p.Grade {
				return satisfied(CriterionGrade, fmt.Sprintf("학년 충족 (%d학년)", p.Grade))
			}
			labels[i] = strconv.Itoa(g) + "학년"
		}
		return notSatisfied(CriterionGrade, fmt.Sprintf("학년 미충족 (요구: %s)", strings.Join(labels, "/")))
	}

	raw := extractors.Deref(s.GradeSemester)
	if raw == "" || extractors.ContainsAny(raw, gradeUnrestricted...) {
		return skip()
	}
	return unknown(CriterionGrade, "학년 조건 직접 확인: "+extractors.Truncate(raw, gradeExcerpt))
}

func checkGpa(s *models.Scholarship, p models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	if s.MinGpa != nil {
		if p.Gpa >= *s.MinGpa {
			return satisfied(CriterionGpa, fmt.Sprintf("성적 충족 (%.1f ≥ %.1f)", p.Gpa, *s.MinGpa))
		}
		return notSatisfied(CriterionGpa, fmt.Sprintf("성적 미충족 (%.1f < %.1f 이상 필요)", p.Gpa, *s.MinGpa))
	}

	raw := extractors.Deref(s.GradeCriteria)
	switch {
	case raw == "":
		return skip()
	case extractors.ContainsAny(raw, gpaUnrestricted...):
		return satisfied(CriterionGpa, "성적 제한 없음")
	}
	return unknown(CriterionGpa, "성적 조건 직접 확인: "+extractors.Truncate(raw, thresholdExcerpt))
}

func checkIncome(s *models.Scholarship, p models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	if s.MaxIncomeLevel != nil {
		limit := *s.MaxIncomeLevel
		if p.IncomeLevel <= limit {
			return satisfied(CriterionIncome, fmt.Sprintf("소득분위 충족 (%d분위 ≤ %d분위 이하)", p.IncomeLevel, limit))
		}
		return notSatisfied(CriterionIncome, fmt.Sprintf("소득분위 미충족 (%d분위 > %d분위 이하 필요)", p.IncomeLevel, limit))
	}

	raw := extractors.Deref(s.IncomeCriteria)
	switch {
	case raw == "":
		return skip()
	case extractors.ContainsAny(raw, incomeUnrestricted...):
		return satisfied(CriterionIncome, "소득 제한 없음")
	}
	return unknown(CriterionIncome, "소득 조건 직접 확인: "+extractors.Truncate(raw, thresholdExcerpt))
}

// Region is never decided automatically.
func checkRegion(s *models.Scholarship, _ models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	if limit := extractors.Deref(s.RegionLimit); limit != "" {
		return unknown(CriterionRegion, "지역 제한 확인 필요: "+limit)
	}
	raw := extractors.Deref(s.ResidencyDetail)
	if raw == "" || extractors.ContainsAny(raw, regionUnrestricted...) {
		return skip()
	}
	return unknown(CriterionRegion, "지역 조건 직접 확인 필요")
}

func checkSpecialQualification(s *models.Scholarship, _ models.EligibilityCheckRequest) (models.CriterionResult, bool) {
	raw := extractors.Deref(s.SpecialQualification)
	if raw == "" || extractors.ContainsAny(raw, qualUnrestricted...) {
		return skip()
	}
	return unknown(CriterionQualification, "특정자격 확인 필요: "+extractors.Truncate(raw, qualificationExcerpt))
}
