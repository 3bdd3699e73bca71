package models

import "time"

// ImportMode วิธีจัดการข้อมูลเดิมก่อนนำเข้าไฟล์ใหม่
type ImportMode string

const (
	ImportModeAppend     ImportMode = "append"
	ImportModeReplace    ImportMode = "replace"
	ImportModeDeactivate ImportMode = "deactivate"
)

func (m ImportMode) Valid() bool {
	return m == ImportModeAppend || m == ImportModeReplace || m == ImportModeDeactivate
}

// RecordStats จำนวนทุนทั้งหมด/ที่เปิดใช้งาน ก่อนและหลังนำเข้า
type RecordStats struct {
	Total  int64 `json:"total" bson:"total"`
	Active int64 `json:"active" bson:"active"`
}

// RowError ข้อผิดพลาดของแถวเดียวในไฟล์
type RowError struct {
	Row   int    `json:"row" bson:"row" example:"5"`
	Error string `json:"error" bson:"error" example:"상품명이 없습니다."`
	Name  string `json:"name" bson:"name" example:"Unknown"`
}

// CsvUploadResponse รายงานผลการนำเข้า 1 ครั้ง
type CsvUploadResponse struct {
	Message          string      `json:"message" bson:"message"`
	Filename         string      `json:"filename" bson:"filename"`
	UploadedBy       string      `json:"uploadedBy" bson:"uploadedBy"`
	Mode             ImportMode  `json:"mode" bson:"mode"`
	TotalRows        int         `json:"totalRows" bson:"totalRows"`
	Success          int         `json:"success" bson:"success"`
	Failed           int         `json:"failed" bson:"failed"`
	DeletedCount     int         `json:"deletedCount" bson:"deletedCount"`
	DeactivatedCount int         `json:"deactivatedCount" bson:"deactivatedCount"`
	PreviousStats    RecordStats `json:"previousStats" bson:"previousStats"`
	NewStats         RecordStats `json:"newStats" bson:"newStats"`
	Errors           []RowError  `json:"errors" bson:"errors"`
}

// ImportReport ผลการนำเข้าแบบ background ที่ worker บันทึกไว้
type ImportReport struct {
	ID         string             `json:"id" bson:"_id"`
	TaskID     string             `json:"taskId" bson:"taskId"`
	Status     string             `json:"status" bson:"status" example:"completed"`
	Failure    string             `json:"failure,omitempty" bson:"failure,omitempty"`
	Report     *CsvUploadResponse `json:"report,omitempty" bson:"report,omitempty"`
	FinishedAt time.Time          `json:"finishedAt" bson:"finishedAt"`
}

// ImportQueued ตอบกลับเมื่อส่งงานนำเข้าเข้าคิว
type ImportQueued struct {
	Message  string     `json:"message"`
	TaskID   string     `json:"taskId"`
	Filename string     `json:"filename"`
	Mode     ImportMode `json:"mode"`
}
