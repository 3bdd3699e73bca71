package controllers

import (
	"Backend-Scholarship-Finder/src/middleware"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController เข้าสู่ระบบ/ออกจากระบบของผู้ดูแล
type AuthController struct {
	svc AdminService
}

func NewAuthController(svc AdminService) *AuthController {
	return &AuthController{svc: svc}
}

// Login godoc
// @Summary      Admin login
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Param        body body models.AdminLoginRequest true "Credentials"
// @Success      200  {object}  models.AdminLoginResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/v1/admin/auth/login [post]
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	resp, err := h.svc.Login(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")
	return c.JSON(resp)
}

// Me godoc
// @Summary      Current admin
// @Tags         admin-auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Admin
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/v1/admin/auth/me [get]
func (h *AuthController) Me(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalAdminID).(string)
	admin, err := h.svc.Me(c.UserContext(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(admin)
}

// Logout godoc
// @Summary      Admin logout
// @Description  Revokes the current token until it expires
// @Tags         admin-auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.MessageResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/admin/auth/logout [post]
func (h *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.LocalToken).(string)
	claims, _ := c.Locals(middleware.LocalClaims).(*utils.JWTClaims)

	ttl := claims.RemainingTTL()
	if err := h.svc.Logout(c.UserContext(), token, ttl); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Logged out successfully"})
}

// ChangePassword godoc
// @Summary      Change admin password
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.ChangePasswordRequest true "Current and new password"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/v1/admin/auth/change-password [post]
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	id, _ := c.Locals(middleware.LocalAdminID).(string)
	if err := h.svc.ChangePassword(c.UserContext(), id, req); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Password changed successfully"})
}
