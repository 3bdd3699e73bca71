package routes

import (
	"Backend-Scholarship-Finder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers รวม controller ทุกตัวที่ main ประกอบไว้
type Handlers struct {
	Scholarships *controllers.ScholarshipController
	Admin        *controllers.AdminController
	Imports      *controllers.ImportController
	Auth         *controllers.AuthController
}

func InitRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	// auth ต้องลงทะเบียนก่อน admin group เพราะ login ไม่ต้องใช้ token
	authRoutes(api, h.Auth)
	scholarshipRoutes(api, h.Scholarships)
	adminRoutes(api, h.Admin, h.Imports)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
