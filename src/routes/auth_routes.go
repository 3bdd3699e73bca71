package routes

import (
	"Backend-Scholarship-Finder/src/controllers"
	"Backend-Scholarship-Finder/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes เข้าสู่ระบบผู้ดูแล (login ไม่ต้องมี token)
func authRoutes(api fiber.Router, h *controllers.AuthController) {
	auth := api.Group("/admin/auth")

	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthJWT, h.Me)
	auth.Post("/logout", middleware.AuthJWT, h.Logout)
	auth.Post("/change-password", middleware.AuthJWT, h.ChangePassword)
}
