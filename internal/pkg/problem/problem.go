package problem

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TypeBase is the base URI for problem types; the full type URI is
// derived from the machine code.
const TypeBase = "https://api.example.com/problems"

// Detail is the RFC 7807 error envelope used by every failure response.
// Code is the stable machine-readable discriminator consumers branch on.
type Detail struct {
	Type     string `json:"type"`
	Status   int    `json:"status"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
	Code     string `json:"code"`
}

// Accounts error codes
const (
	CodeInvalidCredentials        = "ACCOUNTS_INVALID_CREDENTIALS"
	CodeEmailExists               = "ACCOUNTS_EMAIL_EXISTS"
	CodePhoneExists               = "ACCOUNTS_PHONE_EXISTS"
	CodePasswordMismatch          = "ACCOUNTS_PASSWORD_MISMATCH"
	CodePasswordValidationFailed  = "ACCOUNTS_PASSWORD_VALIDATION_FAILED"
	CodeInvalidUserType           = "ACCOUNTS_INVALID_USER_TYPE"
	CodeMissingOrganizationName   = "ACCOUNTS_MISSING_ORGANIZATION_NAME"
	CodeMissingINN                = "ACCOUNTS_MISSING_INN"
	CodeUnauthorized              = "ACCOUNTS_UNAUTHORIZED"
	CodeTokenExpired              = "ACCOUNTS_TOKEN_EXPIRED"
	CodeInvalidToken              = "ACCOUNTS_INVALID_TOKEN"
	CodeNoRefreshToken            = "ACCOUNTS_NO_REFRESH_TOKEN"
	CodeUserNotFound              = "ACCOUNTS_USER_NOT_FOUND"
	CodeInvalidCurrentPassword    = "ACCOUNTS_INVALID_CURRENT_PASSWORD"
	CodeRegistrationError         = "ACCOUNTS_REGISTRATION_ERROR"
	CodeLoginError                = "ACCOUNTS_LOGIN_ERROR"
	CodePasswordResetError        = "ACCOUNTS_PASSWORD_RESET_ERROR"
	CodePasswordResetTokenInvalid = "ACCOUNTS_PASSWORD_RESET_TOKEN_INVALID"
)

// Premise and common error codes
const (
	CodePremiseNotFound = "RE_OBJECTS_NOT_FOUND"
	CodeInternalError   = "COMMON_INTERNAL_ERROR"
	CodeInvalidBody     = "COMMON_INVALID_BODY"
)

// TypeURI derives the problem type URI from a machine code.
func TypeURI(code string) string {
	return TypeBase + "/" + strings.ReplaceAll(strings.ToLower(code), "_", "-")
}

// New builds a Detail for the current request path.
func New(c *fiber.Ctx, status int, code, title, detail string) Detail {
	return Detail{
		Type:     TypeURI(code),
		Status:   status,
		Title:    title,
		Detail:   detail,
		Instance: c.Path(),
		Code:     code,
	}
}

// Send writes a Detail response with the matching HTTP status.
func Send(c *fiber.Ctx, status int, code, title, detail string) error {
	return c.Status(status).JSON(New(c, status, code, title, detail))
}

// BadRequest sends a 400 problem response
func BadRequest(c *fiber.Ctx, code, title, detail string) error {
	return Send(c, fiber.StatusBadRequest, code, title, detail)
}

// Unauthorized sends a 401 problem response
func Unauthorized(c *fiber.Ctx, code, title, detail string) error {
	return Send(c, fiber.StatusUnauthorized, code, title, detail)
}

// NotFound sends a 404 problem response
func NotFound(c *fiber.Ctx, code, title, detail string) error {
	return Send(c, fiber.StatusNotFound, code, title, detail)
}

// InternalServerError sends a 500 problem response without leaking the cause
func InternalServerError(c *fiber.Ctx) error {
	return Send(c, fiber.StatusInternalServerError, CodeInternalError,
		"Internal server error", "An unexpected error occurred")
}
