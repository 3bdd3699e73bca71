package models

import "encoding/json"

// AcademicStatus สถานะการเป็นนักศึกษาของผู้สมัคร
type AcademicStatus string

const (
	AcademicStatusEnrolled AcademicStatus = "enrolled"
	AcademicStatusExpected AcademicStatus = "expected"
	AcademicStatusLeave    AcademicStatus = "leave"
)

// Label ชื่อภาษาเกาหลีที่ใช้ในคำอธิบายผลตรวจ
func (s AcademicStatus) Label() string {
	switch s {
	case AcademicStatusEnrolled:
		return "재학"
	case AcademicStatusExpected:
		return "입학예정"
	case AcademicStatusLeave:
		return "휴학"
	}
	return string(s)
}

// EligibilityCheckRequest ข้อมูลผู้ใช้สำหรับตรวจสิทธิ์ ไม่ถูกบันทึกลงฐานข้อมูล
type EligibilityCheckRequest struct {
	AcademicStatus AcademicStatus `json:"academicStatus" validate:"required,oneof=enrolled expected leave" example:"enrolled"`
	Grade          int            `json:"grade" validate:"required,gte=1,lte=6" example:"2"`
	BirthYear      int            `json:"birthYear" validate:"required,gte=1980,lte=2010" example:"2003"`
	Gpa            float64        `json:"gpa" validate:"gte=0,lte=4.5" example:"3.8"`
	IncomeLevel    int            `json:"incomeLevel" validate:"required,gte=1,lte=10" example:"4"`
}

// CriterionStatus ผลของเงื่อนไขเดียว แบบสามสถานะ
type CriterionStatus string

const (
	CriterionSatisfied    CriterionStatus = "satisfied"
	CriterionNotSatisfied CriterionStatus = "not_satisfied"
	CriterionUnknown      CriterionStatus = "unknown"
)

// CriterionResult one evaluated dimension with its explanation.
type CriterionResult struct {
	Criterion string          `json:"criterion" example:"gpa"`
	Status    CriterionStatus `json:"status" example:"satisfied"`
	Reason    string          `json:"reason" example:"성적 충족 (3.8 ≥ 3.0)"`
}

// Eligibility verdict ของทุนหนึ่งรายการ
type Eligibility int

const (
	EligibilityUndetermined Eligibility = iota
	EligibilityEligible
	EligibilityNotEligible
)

// Rank ลำดับการเรียง: eligible ก่อน, undetermined, แล้ว not eligible
func (e Eligibility) Rank() int {
	switch e {
	case EligibilityEligible:
		return 0
	case EligibilityUndetermined:
		return 1
	}
	return 2
}

func (e Eligibility) String() string {
	switch e {
	case EligibilityEligible:
		return "eligible"
	case EligibilityNotEligible:
		return "not_eligible"
	}
	return "undetermined"
}

// MarshalJSON writes true, false or null.
func (e Eligibility) MarshalJSON() ([]byte, error) {
	switch e {
	case EligibilityEligible:
		return []byte("true"), nil
	case EligibilityNotEligible:
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

func (e *Eligibility) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v == nil:
		*e = EligibilityUndetermined
	case *v:
		*e = EligibilityEligible
	default:
		*e = EligibilityNotEligible
	}
	return nil
}

// ScholarshipInfo ข้อมูลทุนที่แนบไปกับผลตรวจ
type ScholarshipInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	ApplyStart   *string `json:"applyStart"`
	ApplyEnd     *string `json:"applyEnd"`
	ExternalURL  *string `json:"externalUrl"`
	IsActive     bool    `json:"isActive"`
	Organization string  `json:"organization"`
}

// EligibilityDetail รายการคำอธิบาย แยกตามผล
type EligibilityDetail struct {
	Satisfied    []string `json:"satisfied"`
	NotSatisfied []string `json:"notSatisfied"`
	Unknown      []string `json:"unknown"`
}

// EligibilityResult ผลตรวจสิทธิ์ของทุนหนึ่งรายการ (คำนวณใหม่ทุกครั้ง)
type EligibilityResult struct {
	Scholarship       ScholarshipInfo   `json:"scholarship"`
	IsEligible        Eligibility       `json:"isEligible" swaggertype:"boolean"`
	EligibilityDetail EligibilityDetail `json:"eligibilityDetail"`
	Criteria          []CriterionResult `json:"criteria"`
	ApplyPeriod       *string           `json:"applyPeriod" example:"03.01 ~ 03.31"`
}

// CheckSummary สรุปผลตรวจทั้งชุด
type CheckSummary struct {
	EligibleCount   int `json:"eligibleCount"`
	TotalCount      int `json:"totalCount"`
	AiAnalyzedCount int `json:"aiAnalyzedCount"`
	PublicDataCount int `json:"publicDataCount"`
}

// EligibilityCheckResponse รายงานผลตรวจที่เรียงลำดับแล้ว
type EligibilityCheckResponse struct {
	Results        []EligibilityResult     `json:"results"`
	CheckedAt      string                  `json:"checkedAt"`
	Summary        CheckSummary            `json:"summary"`
	UserConditions EligibilityCheckRequest `json:"userConditions"`
}
