package extractors

var universityTypeRules = []keywordRule[string]{
	{"4년제", []string{"4년제", "4년", "대학교"}},
	{"전문대", []string{"전문대", "2년제", "2,3년제", "2년", "3년"}},
	{"대학원", []string{"대학원", "석사", "박사"}},
	{"원격대학", []string{"사이버", "방송통신", "원격"}},
}

// ExtractUniversityTypes classifies the eligible-institution text.
func ExtractUniversityTypes(universityCategory string) *string {
	if universityCategory == "" {
		return nil
	}
	return joined(matchAll(universityCategory, universityTypeRules))
}
