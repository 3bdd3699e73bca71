package routes

import (
	"Backend-Scholarship-Finder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func scholarshipRoutes(api fiber.Router, h *controllers.ScholarshipController) {
	scholarships := api.Group("/scholarships")

	scholarships.Get("/", h.ListScholarships)
	scholarships.Post("/check", h.CheckEligibility) // ตรวจสิทธิ์
	scholarships.Get("/featured", h.GetFeatured)
	scholarships.Get("/accepting", h.GetAccepting)
	scholarships.Get("/:id", h.GetScholarship)
}
