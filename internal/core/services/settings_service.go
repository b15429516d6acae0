package services

import (
	"context"
	"fmt"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
)

// SettingsService projects the singleton site settings
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// MainInfo returns the main settings projection. The first read
// materializes a default row, so the response is never a 404.
func (s *SettingsService) MainInfo(ctx context.Context) (*models.MainSettingsResponse, error) {
	main, err := s.settingsRepo.LoadMain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load main settings: %w", err)
	}
	return main.ToResponse(), nil
}

// Contacts merges the contact block from main settings with the
// requisites row.
func (s *SettingsService) Contacts(ctx context.Context) (*models.ContactsSettingsResponse, error) {
	main, err := s.settingsRepo.LoadMain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load main settings: %w", err)
	}
	contacts, err := s.settingsRepo.LoadContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts settings: %w", err)
	}
	return models.MergeContacts(main, contacts), nil
}
