package controllers

import (
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/scholarships"
	"Backend-Scholarship-Finder/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ScholarshipController API ฝั่งผู้ใช้ทั่วไป
type ScholarshipController struct {
	svc       ScholarshipService
	evaluator Evaluator
}

func NewScholarshipController(svc ScholarshipService, evaluator Evaluator) *ScholarshipController {
	return &ScholarshipController{svc: svc, evaluator: evaluator}
}

// ListScholarships godoc
// @Summary      List active scholarships
// @Description  Paginated list of active scholarships, featured first then closing soonest
// @Tags         scholarships
// @Produce      json
// @Param        page           query int    false "Page number" default(1)
// @Param        limit          query int    false "Items per page" default(20)
// @Param        search         query string false "Search in name and organization"
// @Param        type           query string false "Scholarship type"
// @Param        onlyAccepting  query bool   false "Only programs open today"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/scholarships [get]
func (h *ScholarshipController) ListScholarships(c *fiber.Ctx) error {
	var q scholarships.PublicQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}

	resp, err := h.svc.ListPublic(c.UserContext(), q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// GetFeatured godoc
// @Summary      Featured scholarships
// @Tags         scholarships
// @Produce      json
// @Success      200  {object}  models.ScholarshipList
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/scholarships/featured [get]
func (h *ScholarshipController) GetFeatured(c *fiber.Ctx) error {
	items, err := h.svc.Featured(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.ScholarshipList{Scholarships: items, Total: len(items)})
}

// GetAccepting godoc
// @Summary      Scholarships accepting applications today
// @Tags         scholarships
// @Produce      json
// @Success      200  {object}  models.ScholarshipList
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/scholarships/accepting [get]
func (h *ScholarshipController) GetAccepting(c *fiber.Ctx) error {
	items, err := h.svc.Accepting(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.ScholarshipList{Scholarships: items, Total: len(items)})
}

// GetScholarship godoc
// @Summary      Scholarship detail
// @Tags         scholarships
// @Produce      json
// @Param        id   path      string  true  "Scholarship ID"
// @Success      200  {object}  models.Scholarship
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/v1/scholarships/{id} [get]
func (h *ScholarshipController) GetScholarship(c *fiber.Ctx) error {
	s, err := h.svc.GetPublic(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(s)
}

// CheckEligibility godoc
// @Summary      Check eligibility
// @Description  Evaluates the profile against every active scholarship. Results are ordered eligible, undetermined, not eligible.
// @Tags         scholarships
// @Accept       json
// @Produce      json
// @Param        body body models.EligibilityCheckRequest true "User profile"
// @Success      200  {object}  models.EligibilityCheckResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/scholarships/check [post]
func (h *ScholarshipController) CheckEligibility(c *fiber.Ctx) error {
	var req models.EligibilityCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	resp, err := h.evaluator.Evaluate(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}
