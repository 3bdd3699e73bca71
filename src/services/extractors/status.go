package extractors

import "Backend-Scholarship-Finder/src/models"

var statusRules = []keywordRule[string]{
	{string(models.AcademicStatusEnrolled), []string{"재학", "재학생", "재학 중"}},
	{string(models.AcademicStatusExpected), []string{"신입생", "입학예정", "입학 예정", "예비", "합격자", "신입"}},
	{string(models.AcademicStatusLeave), []string{"휴학", "휴학생"}},
}

// ExtractAcademicStatus returns the allowed statuses as "enrolled,expected,leave" order.
func ExtractAcademicStatus(universityCategory, specialQualification, eligibilityRestriction string) *string {
	combined := Combine(universityCategory, specialQualification, eligibilityRestriction)
	if combined == "" {
		return nil
	}
	return joined(matchAll(combined, statusRules))
}
