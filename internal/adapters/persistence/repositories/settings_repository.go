package repositories

import (
	"context"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/core/domain"

	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// LoadMain returns the main settings singleton, creating a default row
// on first access. The primary key is pinned so a second row can never
// appear.
func (r *settingsRepository) LoadMain(ctx context.Context) (*models.MainSettings, error) {
	settings := models.MainSettings{ID: models.SingletonID}
	err := r.db.WithContext(ctx).
		Where("id = ?", models.SingletonID).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// LoadContacts returns the contacts settings singleton with the same
// get-or-create semantics.
func (r *settingsRepository) LoadContacts(ctx context.Context) (*models.ContactsSettings, error) {
	settings := models.ContactsSettings{ID: models.SingletonID}
	err := r.db.WithContext(ctx).
		Where("id = ?", models.SingletonID).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// DeleteMain is rejected by contract: singleton rows outlive callers.
func (r *settingsRepository) DeleteMain(ctx context.Context) error {
	return domain.ErrSingletonDelete
}

// DeleteContacts is rejected by contract.
func (r *settingsRepository) DeleteContacts(ctx context.Context) error {
	return domain.ErrSingletonDelete
}
