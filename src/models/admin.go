package models

import "time"

// Admin บัญชีผู้ดูแลระบบทุน
type Admin struct {
	ID        string     `json:"id" bson:"_id"`
	Username  string     `json:"username" bson:"username"`
	Name      string     `json:"name" bson:"name"`
	Password  string     `json:"-" bson:"password"`
	IsActive  bool       `json:"isActive" bson:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

// AdminLoginRequest ข้อมูลเข้าสู่ระบบ
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"1234"`
}

// AdminInfo ข้อมูลผู้ดูแลที่เปิดเผยได้
type AdminInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// AdminLoginResponse token ที่ออกให้หลังเข้าสู่ระบบ
type AdminLoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType" example:"Bearer"`
	Admin       AdminInfo `json:"admin"`
}

// ChangePasswordRequest เปลี่ยนรหัสผ่านผู้ดูแล
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=4"`
}
