package models

// DashboardStats ภาพรวมสำหรับหน้าผู้ดูแล
type DashboardStats struct {
	TotalScholarships     int64            `json:"totalScholarships"`
	ActiveScholarships    int64            `json:"activeScholarships"`
	InactiveScholarships  int64            `json:"inactiveScholarships"`
	FeaturedScholarships  int64            `json:"featuredScholarships"`
	AcceptingApplications int64            `json:"acceptingApplications"`
	RecentUpdates         int64            `json:"recentUpdates"`
	ByType                map[string]int64 `json:"byType"`
	ByOrganizationType    map[string]int64 `json:"byOrganizationType"`
}

// CountResponse ผลลัพธ์ของคำสั่งแบบกลุ่ม (ลบ/ปิดใช้งาน)
type CountResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// MessageResponse ข้อความตอบกลับทั่วไป
type MessageResponse struct {
	Message string `json:"message"`
}
