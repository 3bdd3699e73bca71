package models

import (
	"time"
)

// ScholarshipType หมวดหมู่ของทุนที่จัดจากคำสำคัญในชื่อ/หน่วยงาน
type ScholarshipType string

const (
	ScholarshipTypeNational    ScholarshipType = "national"
	ScholarshipTypeWorkStudy   ScholarshipType = "work_study"
	ScholarshipTypeTuitionLoan ScholarshipType = "tuition_loan"
	ScholarshipTypeLivingLoan  ScholarshipType = "living_loan"
	ScholarshipTypeLocal       ScholarshipType = "local"
	ScholarshipTypePrivate     ScholarshipType = "private"
	ScholarshipTypeUniversity  ScholarshipType = "university"
	ScholarshipTypeOther       ScholarshipType = "other"
)

// ParseScholarshipType maps a query value onto a known type; unknown values become other.
func ParseScholarshipType(value string) (ScholarshipType, bool) {
	switch ScholarshipType(value) {
	case ScholarshipTypeNational, ScholarshipTypeWorkStudy, ScholarshipTypeTuitionLoan,
		ScholarshipTypeLivingLoan, ScholarshipTypeLocal, ScholarshipTypePrivate,
		ScholarshipTypeUniversity, ScholarshipTypeOther:
		return ScholarshipType(value), true
	}
	return ScholarshipTypeOther, false
}

// Scholarship one normalized scholarship program.
// Raw columns are kept verbatim (after text cleanup); the normalized block is what eligibility reads.
type Scholarship struct {
	ID           string `json:"id" bson:"_id" validate:"required"`
	CsvRowNumber *int   `json:"csvRowNumber,omitempty" bson:"csvRowNumber,omitempty"`

	// source columns
	Organization           string     `json:"organization" bson:"organization" validate:"required" example:"한국장학재단"`
	Name                   string     `json:"name" bson:"name" validate:"required" example:"국가장학금 I유형"`
	OrganizationType       *string    `json:"organizationType" bson:"organizationType,omitempty"`
	ProductType            *string    `json:"productType" bson:"productType,omitempty"`
	FinancialAidType       *string    `json:"financialAidType" bson:"financialAidType,omitempty"`
	UniversityCategory     *string    `json:"universityCategory" bson:"universityCategory,omitempty"`
	GradeSemester          *string    `json:"gradeSemester" bson:"gradeSemester,omitempty"`
	MajorCategory          *string    `json:"majorCategory" bson:"majorCategory,omitempty"`
	GradeCriteria          *string    `json:"gradeCriteria" bson:"gradeCriteria,omitempty"`
	IncomeCriteria         *string    `json:"incomeCriteria" bson:"incomeCriteria,omitempty"`
	SupportDetails         *string    `json:"supportDetails" bson:"supportDetails,omitempty"`
	SpecialQualification   *string    `json:"specialQualification" bson:"specialQualification,omitempty"`
	ResidencyDetail        *string    `json:"residencyDetail" bson:"residencyDetail,omitempty"`
	SelectionMethod        *string    `json:"selectionMethod" bson:"selectionMethod,omitempty"`
	SelectionCount         *string    `json:"selectionCount" bson:"selectionCount,omitempty"`
	EligibilityRestriction *string    `json:"eligibilityRestriction" bson:"eligibilityRestriction,omitempty"`
	RecommendationRequired *string    `json:"recommendationRequired" bson:"recommendationRequired,omitempty"`
	RequiredDocuments      *string    `json:"requiredDocuments" bson:"requiredDocuments,omitempty"`
	WebsiteURL             *string    `json:"websiteUrl" bson:"websiteUrl,omitempty"`
	ApplyStart             *time.Time `json:"applyStart" bson:"applyStart,omitempty"`
	ApplyEnd               *time.Time `json:"applyEnd" bson:"applyEnd,omitempty"`

	// normalized criteria, nil = unresolved
	ScholarshipType        ScholarshipType `json:"scholarshipType" bson:"scholarshipType" example:"national"`
	MinGpa                 *float64        `json:"minGpa" bson:"minGpa,omitempty" validate:"omitempty,gte=0,lte=4.5" example:"3.0"`
	MaxIncomeLevel         *int            `json:"maxIncomeLevel" bson:"maxIncomeLevel,omitempty" validate:"omitempty,gte=1,lte=10" example:"8"`
	AllowedAcademicStatus  *string         `json:"allowedAcademicStatus" bson:"allowedAcademicStatus,omitempty" example:"enrolled,expected"`
	AllowedGrades          *string         `json:"allowedGrades" bson:"allowedGrades,omitempty" example:"1,2,3,4"`
	AllowedUniversityTypes *string         `json:"allowedUniversityTypes" bson:"allowedUniversityTypes,omitempty" example:"4년제,전문대"`
	RegionLimit            *string         `json:"regionLimit" bson:"regionLimit,omitempty" example:"서울,경기"`

	IsActive   bool      `json:"isActive" bson:"isActive"`
	IsFeatured bool      `json:"isFeatured" bson:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ScholarshipSort ลำดับผลลัพธ์ของการค้นหา
type ScholarshipSort int

const (
	// SortFeaturedDeadline: featured desc, applyEnd asc (หน้าผู้ใช้)
	SortFeaturedDeadline ScholarshipSort = iota
	// SortActiveRecent: isActive desc, updatedAt desc (หน้าผู้ดูแล)
	SortActiveRecent
)

// ScholarshipFilter เงื่อนไขค้นหา (nil = ไม่กรอง)
type ScholarshipFilter struct {
	Search     string
	Type       *ScholarshipType
	IsActive   *bool
	IsFeatured *bool
	// AcceptingOn keeps only records whose application window contains the date.
	AcceptingOn *time.Time
	Sort        ScholarshipSort
}

// ScholarshipSummary รูปแบบย่อสำหรับรายการฝั่งผู้ใช้
type ScholarshipSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Organization string  `json:"organization"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	ApplyStart   *string `json:"applyStart"`
	ApplyEnd     *string `json:"applyEnd"`
	WebsiteURL   *string `json:"websiteUrl"`
	IsFeatured   bool    `json:"isFeatured"`
}

// ScholarshipCreateRequest ข้อมูลสำหรับสร้างทุนโดยผู้ดูแล
type ScholarshipCreateRequest struct {
	Name                  string   `json:"name" validate:"required"`
	Organization          string   `json:"organization" validate:"required"`
	OrganizationType      *string  `json:"organizationType"`
	ProductType           *string  `json:"productType"`
	ScholarshipType       string   `json:"scholarshipType"`
	GpaRequirementText    *string  `json:"gpaRequirementText"`
	IncomeRequirementText *string  `json:"incomeRequirementText"`
	SupportDetails        *string  `json:"supportDetails"`
	MinGpa                *float64 `json:"minGpa" validate:"omitempty,gte=0,lte=4.5"`
	MaxIncomeLevel        *int     `json:"maxIncomeLevel" validate:"omitempty,gte=1,lte=10"`
	AllowedStatus         *string  `json:"allowedStatus"`
	AllowedGrades         *string  `json:"allowedGrades"`
	WebsiteURL            *string  `json:"websiteUrl"`
	ApplyStart            *string  `json:"applyStart" example:"2025-03-01"`
	ApplyEnd              *string  `json:"applyEnd" example:"2025-03-31"`
	IsActive              *bool    `json:"isActive"`
	IsFeatured            *bool    `json:"isFeatured"`
}

// ScholarshipUpdateRequest แก้ไขบางฟิลด์ (nil = ไม่เปลี่ยน)
type ScholarshipUpdateRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1"`
	Organization      *string  `json:"organization" validate:"omitempty,min=1"`
	MinGpa            *float64 `json:"minGpa" validate:"omitempty,gte=0,lte=4.5"`
	MaxIncomeLevel    *int     `json:"maxIncomeLevel" validate:"omitempty,gte=1,lte=10"`
	AllowedStatus     *string  `json:"allowedStatus"`
	AllowedGrades     *string  `json:"allowedGrades"`
	RegionRestriction *string  `json:"regionRestriction"`
	IsActive          *bool    `json:"isActive"`
	IsFeatured        *bool    `json:"isFeatured"`
	WebsiteURL        *string  `json:"websiteUrl"`
}

// BulkUpdateRequest เปิด/ปิด หรือปักหมุดหลายรายการพร้อมกัน
type BulkUpdateRequest struct {
	IDs        []string `json:"ids" validate:"required,min=1"`
	IsActive   *bool    `json:"isActive"`
	IsFeatured *bool    `json:"isFeatured"`
}

// ScholarshipList รายการทุนแบบไม่แบ่งหน้า (featured / accepting)
type ScholarshipList struct {
	Scholarships []ScholarshipSummary `json:"scholarships"`
	Total        int                  `json:"total"`
}
