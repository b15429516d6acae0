package handlers

import (
	"errors"
	"strings"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/core/services"
	"estatehub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	UserType         string  `json:"user_type"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone"`
	Password1        string  `json:"password1"`
	Password2        string  `json:"password2"`
	OrganizationName string  `json:"organization_name"`
	INN              string  `json:"inn"`
	UseCookies       *bool   `json:"use_cookies"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	UseCookies *bool  `json:"use_cookies"`
}

// wantCookies reports whether the client opted into cookie delivery.
// Absent means yes; tokens still travel in the body either way.
func wantCookies(flag *bool) bool {
	return flag == nil || *flag
}

// PasswordResetRequest represents password reset request body
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest represents reset confirmation body
type PasswordResetConfirmRequest struct {
	Token        string `json:"token"`
	NewPassword1 string `json:"new_password1"`
	NewPassword2 string `json:"new_password2"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register an individual or agent account and issue tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} problem.Detail
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}

	if req.Email == "" {
		return problem.BadRequest(c, problem.CodeRegistrationError, "Registration failed", "Email is required")
	}
	if req.Password1 == "" {
		return problem.BadRequest(c, problem.CodeRegistrationError, "Registration failed", "Password is required")
	}

	input := services.RegisterInput{
		UserType:         strings.TrimSpace(req.UserType),
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:            req.Phone,
		Password1:        req.Password1,
		Password2:        req.Password2,
		OrganizationName: strings.TrimSpace(req.OrganizationName),
		INN:              strings.TrimSpace(req.INN),
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		var weak *services.WeakPasswordError
		switch {
		case errors.Is(err, services.ErrInvalidUserType):
			return problem.BadRequest(c, problem.CodeInvalidUserType, "Registration failed", err.Error())
		case errors.Is(err, services.ErrMissingOrganizationName):
			return problem.BadRequest(c, problem.CodeMissingOrganizationName, "Registration failed", err.Error())
		case errors.Is(err, services.ErrMissingINN):
			return problem.BadRequest(c, problem.CodeMissingINN, "Registration failed", err.Error())
		case errors.Is(err, services.ErrPasswordMismatch):
			return problem.BadRequest(c, problem.CodePasswordMismatch, "Registration failed", err.Error())
		case errors.As(err, &weak):
			return problem.BadRequest(c, problem.CodePasswordValidationFailed, "Registration failed", weak.Error())
		case errors.Is(err, services.ErrEmailExists):
			return problem.BadRequest(c, problem.CodeEmailExists, "Registration failed", err.Error())
		case errors.Is(err, services.ErrPhoneExists):
			return problem.BadRequest(c, problem.CodePhoneExists, "Registration failed", err.Error())
		default:
			return problem.BadRequest(c, problem.CodeRegistrationError, "Registration failed", "Could not register user")
		}
	}

	if wantCookies(req.UseCookies) {
		h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	}

	return c.JSON(fiber.Map{
		"message":       "User registered successfully",
		"user":          result.User,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by email and password and issue tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 401 {object} problem.Detail
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return problem.Unauthorized(c, problem.CodeInvalidCredentials, "Login failed", "Invalid email or password")
		}
		return problem.BadRequest(c, problem.CodeLoginError, "Login failed", "Could not log in")
	}

	if wantCookies(req.UseCookies) {
		h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	}

	return c.JSON(fiber.Map{
		"message":       "Login successful",
		"user":          result.User,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// Logout handles user logout
// @Summary Logout user
// @Description Clear the auth cookies; issued tokens stay valid until expiry
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} fiber.Map
// @Failure 401 {object} problem.Detail
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookies(c)
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Exchange the refresh_token cookie for a new token pair
// @Tags Auth
// @Produce json
// @Success 200 {object} services.AuthResponse
// @Failure 401 {object} problem.Detail
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	// The refresh token travels in its cookie only, never in a header
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return problem.Unauthorized(c, problem.CodeNoRefreshToken, "Refresh failed", "No refresh token provided")
	}

	result, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			h.clearAuthCookies(c)
			return problem.Unauthorized(c, problem.CodeTokenExpired, "Refresh failed", "Refresh token expired, please login again")
		case errors.Is(err, services.ErrUserNotFound):
			h.clearAuthCookies(c)
			return problem.Unauthorized(c, problem.CodeUserNotFound, "Refresh failed", "User no longer exists")
		default:
			h.clearAuthCookies(c)
			return problem.Unauthorized(c, problem.CodeInvalidToken, "Refresh failed", "Invalid refresh token")
		}
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return c.JSON(fiber.Map{
		"message":       "Token refreshed successfully",
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// PasswordReset handles the reset request
// @Summary Request password reset
// @Description Email a password reset link; the response does not reveal whether the email is registered
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body PasswordResetRequest true "Account email"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} problem.Detail
// @Router /auth/password-reset [post]
func (h *AuthHandler) PasswordReset(c *fiber.Ctx) error {
	var req PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}
	if req.Email == "" {
		return problem.BadRequest(c, problem.CodePasswordResetError, "Password reset failed", "Email is required")
	}

	if err := h.authService.RequestPasswordReset(c.Context(), strings.TrimSpace(strings.ToLower(req.Email))); err != nil {
		if errors.Is(err, services.ErrEmailDeliveryFailed) {
			return problem.BadRequest(c, problem.CodePasswordResetError, "Password reset failed", "Failed to send the reset email")
		}
		return problem.InternalServerError(c)
	}

	// Same answer whether the email exists or not
	return c.JSON(fiber.Map{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// PasswordResetConfirm finalizes the reset
// @Summary Confirm password reset
// @Description Set a new password using a reset token from the emailed link
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body PasswordResetConfirmRequest true "Reset token and new password"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} problem.Detail
// @Failure 401 {object} problem.Detail
// @Router /auth/password-reset/confirm [post]
func (h *AuthHandler) PasswordResetConfirm(c *fiber.Ctx) error {
	var req PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return problem.BadRequest(c, problem.CodeInvalidBody, "Invalid request body", "Request body could not be parsed")
	}
	if req.Token == "" {
		return problem.Unauthorized(c, problem.CodePasswordResetTokenInvalid, "Password reset failed", "Reset token is required")
	}

	err := h.authService.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword1, req.NewPassword2)
	if err != nil {
		var weak *services.WeakPasswordError
		switch {
		case errors.Is(err, services.ErrResetTokenInvalid):
			return problem.Unauthorized(c, problem.CodePasswordResetTokenInvalid, "Password reset failed", "Reset token is invalid or expired")
		case errors.Is(err, services.ErrPasswordMismatch):
			return problem.BadRequest(c, problem.CodePasswordMismatch, "Password reset failed", err.Error())
		case errors.As(err, &weak):
			return problem.BadRequest(c, problem.CodePasswordValidationFailed, "Password reset failed", weak.Error())
		default:
			return problem.InternalServerError(c)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Password has been reset successfully",
	})
}

// setAuthCookies sets access and refresh token cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.RefreshDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookies clears auth cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
