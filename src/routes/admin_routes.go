package routes

import (
	"Backend-Scholarship-Finder/src/controllers"
	"Backend-Scholarship-Finder/src/middleware"
	"Backend-Scholarship-Finder/src/services/admins"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API (ต้องมี token ของผู้ดูแล)
func adminRoutes(api fiber.Router, h *controllers.AdminController, imports *controllers.ImportController) {
	admin := api.Group("/admin", middleware.AuthJWT, middleware.RequireRole(admins.RoleAdmin))

	admin.Get("/dashboard", h.GetDashboard)
	admin.Post("/upload-csv", imports.UploadCSV)
	admin.Get("/imports", imports.ListImports)

	// path คงที่ต้องมาก่อน /:id
	admin.Get("/scholarships", h.ListScholarships)
	admin.Post("/scholarships", h.CreateScholarship)
	admin.Delete("/scholarships/all", h.DeleteAllScholarships)
	admin.Delete("/scholarships/inactive", h.DeleteInactiveScholarships)
	admin.Post("/scholarships/deactivate-all", h.DeactivateAllScholarships)
	admin.Post("/scholarships/bulk-update", h.BulkUpdateScholarships)
	admin.Get("/scholarships/:id", h.GetScholarship)
	admin.Put("/scholarships/:id", h.UpdateScholarship)
	admin.Delete("/scholarships/:id", h.DeleteScholarship)
}
