package repositories

import (
	"context"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDAndEmail(ctx context.Context, id uint, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// PremiseRepository defines the premise search interface
type PremiseRepository interface {
	List(ctx context.Context, filter domain.PremiseFilter, offset, limit int) ([]*models.Premise, int64, error)
	GetAvailableByUUID(ctx context.Context, uuid string) (*models.Premise, error)
	BuildingsForFilter(ctx context.Context, saleType domain.SaleType, available bool) ([]models.BuildingOption, error)
	RecomputeStalePricePerSqm(ctx context.Context) (int64, error)
}

// SettingsRepository defines singleton settings access. Load methods
// never report absence: the first call materializes a default row.
type SettingsRepository interface {
	LoadMain(ctx context.Context) (*models.MainSettings, error)
	LoadContacts(ctx context.Context) (*models.ContactsSettings, error)
	DeleteMain(ctx context.Context) error
	DeleteContacts(ctx context.Context) error
}
