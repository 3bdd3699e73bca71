package ingestion

import (
	"strings"

	"Backend-Scholarship-Finder/src/services/extractors"
)

// logical field -> accepted header names, first non-empty cell wins
var fieldAliases = map[string][]string{
	"rowNumber":              {"번호", "순번"},
	"organization":           {"운영기관명", "기관명"},
	"name":                   {"상품명", "장학금명"},
	"organizationType":       {"운영기관구분", "기관구분"},
	"productType":            {"상품구분"},
	"financialAidType":       {"학자금유형구분", "학자금유형"},
	"universityCategory":     {"대학구분"},
	"gradeSemester":          {"학년구분"},
	"majorCategory":          {"학과구분"},
	"gradeCriteria":          {"성적기준 상세내용", "성적기준"},
	"incomeCriteria":         {"소득기준 상세내용", "소득기준"},
	"supportDetails":         {"지원내역 상세내용", "지원내역"},
	"specialQualification":   {"특정자격 상세내용", "특정자격"},
	"residencyDetail":        {"지역거주여부 상세내용", "지역거주여부"},
	"selectionMethod":        {"선발방법 상세내용", "선발방법"},
	"selectionCount":         {"선발인원 상세내용", "선발인원"},
	"eligibilityRestriction": {"자격제한 상세내용", "자격제한"},
	"recommendationRequired": {"추천필요여부 상세내용", "추천필요여부"},
	"requiredDocuments":      {"제출서류 상세내용", "제출서류"},
	"websiteUrl":             {"홈페이지 주소", "홈페이지"},
	"applyStart":             {"모집시작일"},
	"applyEnd":               {"모집종료일"},
}

// headerIndex maps canonical header text to its column.
type headerIndex struct {
	exact map[string]int
	// same headers with every space removed, for "성적기준상세내용" style files
	compact map[string]int
}

func buildHeaderIndex(headers []string) headerIndex {
	idx := headerIndex{exact: map[string]int{}, compact: map[string]int{}}
	for i, h := range headers {
		name := extractors.CleanHeader(h)
		if name == "" {
			continue
		}
		if _, seen := idx.exact[name]; !seen {
			idx.exact[name] = i
		}
		key := compactKey(name)
		if _, seen := idx.compact[key]; !seen {
			idx.compact[key] = i
		}
	}
	return idx
}

func (h headerIndex) column(name string) (int, bool) {
	if i, ok := h.exact[name]; ok {
		return i, true
	}
	i, ok := h.compact[compactKey(name)]
	return i, ok
}

func (h headerIndex) size() int {
	return len(h.exact)
}

// cell returns the first clean value among the aliases of field.
func (h headerIndex) cell(row []string, field string) (string, bool) {
	for _, name := range fieldAliases[field] {
		i, ok := h.column(name)
		if !ok || i >= len(row) {
			continue
		}
		if v, ok := extractors.Clean(row[i]); ok {
			return v, true
		}
	}
	return "", false
}

func (h headerIndex) optional(row []string, field string) *string {
	if v, ok := h.cell(row, field); ok {
		return &v
	}
	return nil
}

func compactKey(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
