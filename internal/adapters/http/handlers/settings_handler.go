package handlers

import (
	"estatehub/internal/core/services"
	"estatehub/internal/pkg/problem"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles public site settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// MainInfo returns the public main site settings
// @Summary Get main site settings
// @Tags SiteSettings
// @Produce json
// @Success 200 {object} models.MainSettingsResponse
// @Router /site-settings/main-info [get]
func (h *SettingsHandler) MainInfo(c *fiber.Ctx) error {
	info, err := h.settingsService.MainInfo(c.Context())
	if err != nil {
		return problem.InternalServerError(c)
	}
	return c.JSON(info)
}

// Contacts returns the public contacts block with legal requisites
// @Summary Get contact settings
// @Tags SiteSettings
// @Produce json
// @Success 200 {object} models.ContactsSettingsResponse
// @Router /site-settings/contacts [get]
func (h *SettingsHandler) Contacts(c *fiber.Ctx) error {
	contacts, err := h.settingsService.Contacts(c.Context())
	if err != nil {
		return problem.InternalServerError(c)
	}
	return c.JSON(contacts)
}
