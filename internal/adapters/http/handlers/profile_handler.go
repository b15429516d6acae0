package handlers

import (
	"errors"

	"estatehub/internal/core/services"
	"estatehub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userService *services.UserService, authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authService: authService,
	}
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword1    string `json:"new_password1"`
	NewPassword2    string `json:"new_password2"`
}

// GetUser returns the authenticated user's profile
// @Summary Get current user
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} problem.Detail
// @Router /profile/user [get]
func (h *ProfileHandler) GetUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return problem.NotFound(c, problem.CodeUserNotFound, "Not found", "User not found")
		}
		return problem.InternalServerError(c)
	}
	return c.JSON(user)
}

// UpdateProfile applies a partial profile update
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateProfileInput true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} problem.Detail
// @Router /profile/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return problem.NotFound(c, problem.CodeUserNotFound, "Not found", "User not found")
		case errors.Is(err, services.ErrEmailExists):
			return problem.BadRequest(c, problem.CodeEmailExists, "Update failed", err.Error())
		case errors.Is(err, services.ErrPhoneExists):
			return problem.BadRequest(c, problem.CodePhoneExists, "Update failed", err.Error())
		default:
			return problem.InternalServerError(c)
		}
	}
	return c.JSON(user)
}

// ChangePassword updates the password of the authenticated user
// @Summary Change password
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} problem.Detail
// @Router /profile/change-password [post]
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}

	err := h.authService.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword1, req.NewPassword2)
	if err != nil {
		var weak *services.WeakPasswordError
		switch {
		case errors.Is(err, services.ErrInvalidCurrentPassword):
			return problem.BadRequest(c, problem.CodeInvalidCurrentPassword, "Change failed", err.Error())
		case errors.Is(err, services.ErrPasswordMismatch):
			return problem.BadRequest(c, problem.CodePasswordMismatch, "Change failed", err.Error())
		case errors.As(err, &weak):
			return problem.BadRequest(c, problem.CodePasswordValidationFailed, "Change failed", weak.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return problem.NotFound(c, problem.CodeUserNotFound, "Not found", "User not found")
		default:
			return problem.InternalServerError(c)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}
