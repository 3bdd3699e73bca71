package controllers

import (
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/scholarships"
	"Backend-Scholarship-Finder/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController จัดการทุนสำหรับผู้ดูแล (ต้องผ่าน AuthJWT)
type AdminController struct {
	svc ScholarshipService
}

func NewAdminController(svc ScholarshipService) *AdminController {
	return &AdminController{svc: svc}
}

// GetDashboard godoc
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.DashboardStats
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/admin/dashboard [get]
func (h *AdminController) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.svc.Dashboard(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}

// ListScholarships godoc
// @Summary      List scholarships (admin)
// @Description  All scholarships with filters, active first then most recently updated
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page        query int    false "Page number" default(1)
// @Param        limit       query int    false "Items per page" default(20)
// @Param        search      query string false "Search in name and organization"
// @Param        type        query string false "Scholarship type"
// @Param        isActive    query bool   false "Active flag"
// @Param        isFeatured  query bool   false "Featured flag"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships [get]
func (h *AdminController) ListScholarships(c *fiber.Ctx) error {
	var q scholarships.AdminQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}

	resp, err := h.svc.ListAdmin(c.UserContext(), q)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// GetScholarship godoc
// @Summary      Scholarship detail (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Scholarship ID"
// @Success      200  {object}  models.Scholarship
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships/{id} [get]
func (h *AdminController) GetScholarship(c *fiber.Ctx) error {
	s, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(s)
}

// CreateScholarship godoc
// @Summary      Create a scholarship
// @Description  Type is detected from the name and organization when omitted
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.ScholarshipCreateRequest true "Scholarship"
// @Success      201  {object}  models.Scholarship
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships [post]
func (h *AdminController) CreateScholarship(c *fiber.Ctx) error {
	var req models.ScholarshipCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	s, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// UpdateScholarship godoc
// @Summary      Update a scholarship
// @Description  Only the fields present in the body are changed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Scholarship ID"
// @Param        body body models.ScholarshipUpdateRequest true "Fields to change"
// @Success      200  {object}  models.Scholarship
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships/{id} [put]
func (h *AdminController) UpdateScholarship(c *fiber.Ctx) error {
	var req models.ScholarshipUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	s, err := h.svc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(s)
}

// DeleteScholarship godoc
// @Summary      Delete a scholarship
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Scholarship ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships/{id} [delete]
func (h *AdminController) DeleteScholarship(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "장학금이 삭제되었습니다."})
}

// DeleteAllScholarships godoc
// @Summary      Delete every scholarship
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CountResponse
// @Router       /api/v1/admin/scholarships/all [delete]
func (h *AdminController) DeleteAllScholarships(c *fiber.Ctx) error {
	n, err := h.svc.DeleteAll(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.CountResponse{Message: "모든 장학금이 삭제되었습니다.", Count: n})
}

// DeactivateAllScholarships godoc
// @Summary      Deactivate every active scholarship
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CountResponse
// @Router       /api/v1/admin/scholarships/deactivate-all [post]
func (h *AdminController) DeactivateAllScholarships(c *fiber.Ctx) error {
	n, err := h.svc.DeactivateAll(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.CountResponse{Message: "모든 장학금이 비활성화되었습니다.", Count: n})
}

// DeleteInactiveScholarships godoc
// @Summary      Delete inactive scholarships
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CountResponse
// @Router       /api/v1/admin/scholarships/inactive [delete]
func (h *AdminController) DeleteInactiveScholarships(c *fiber.Ctx) error {
	n, err := h.svc.DeleteInactive(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.CountResponse{Message: "비활성 장학금이 삭제되었습니다.", Count: n})
}

// BulkUpdateScholarships godoc
// @Summary      Bulk update flags
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.BulkUpdateRequest true "IDs and flags"
// @Success      200  {object}  models.CountResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/v1/admin/scholarships/bulk-update [post]
func (h *AdminController) BulkUpdateScholarships(c *fiber.Ctx) error {
	var req models.BulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	n, err := h.svc.BulkUpdate(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.CountResponse{Message: "일괄 수정되었습니다.", Count: int64(n)})
}
