package models

import "math"

const maxPageLimit = 100

// PaginationParams ใช้เก็บค่าการแบ่งหน้า และคำค้นหา
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`     // หมายเลขหน้าที่ต้องการ
	Limit  int    `json:"limit" query:"limit" example:"20"`  // จำนวนรายการต่อหน้า
	Search string `json:"search" query:"search" example:""` // คำค้นหา (ชื่อทุน/หน่วยงาน)
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{Page: 1, Limit: 20}
}

// Normalize แก้ค่าที่ผิดช่วงให้อยู่ในขอบเขตที่ใช้ได้
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// NewPaginatedResponse สร้าง PaginatedResponse ใหม่
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}
