package extractors

import (
	"strings"

	"Backend-Scholarship-Finder/src/models"
)

var categoryRules = []keywordRule[models.ScholarshipType]{
	{models.ScholarshipTypeNational, []string{"국가장학", "한국장학재단"}},
	{models.ScholarshipTypeWorkStudy, []string{"근로장학", "교내근로", "근로"}},
	{models.ScholarshipTypeTuitionLoan, []string{"등록금대출", "학자금대출", "취업후상환", "icl"}},
	{models.ScholarshipTypeLivingLoan, []string{"생활비대출", "생활비"}},
	{models.ScholarshipTypeLocal, []string{"지자체", "시청", "군청", "구청", "도청"}},
	{models.ScholarshipTypeUniversity, []string{"교내", "대학교", "학교"}},
	{models.ScholarshipTypePrivate, []string{"기업", "재단", "민간", "장학회"}},
}

// DetectScholarshipType classifies a program from its name, aid type,
// organization and product type.
func DetectScholarshipType(name, financialAidType, organization, productType string) models.ScholarshipType {
	combined := strings.ToLower(Combine(name, financialAidType, organization, productType))
	if t, ok := matchFirst(combined, categoryRules); ok {
		return t
	}
	return models.ScholarshipTypeOther
}
