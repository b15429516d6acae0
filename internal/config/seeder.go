package config

import (
	"log"

	"estatehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultLocation(); err != nil {
		return err
	}
	if err := s.seedSiteSettings(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultLocation ensures one region and one city exist so new
// buildings always have a location to attach to.
func (s *Seeder) seedDefaultLocation() error {
	region := models.Region{Name: s.cfg.Defaults.Region, IsDefault: true}
	if err := s.db.Where(models.Region{Name: s.cfg.Defaults.Region}).FirstOrCreate(&region).Error; err != nil {
		return err
	}

	city := models.City{Name: s.cfg.Defaults.City, RegionID: region.ID, IsDefault: true}
	if err := s.db.Where(models.City{Name: s.cfg.Defaults.City, RegionID: region.ID}).FirstOrCreate(&city).Error; err != nil {
		return err
	}

	log.Printf("🌍 Default location ready: %s / %s", region.Name, city.Name)
	return nil
}

// seedSiteSettings materializes both settings singletons up front so
// the public endpoints never race the first read.
func (s *Seeder) seedSiteSettings() error {
	main := models.MainSettings{ID: models.SingletonID}
	if err := s.db.FirstOrCreate(&main, models.MainSettings{ID: models.SingletonID}).Error; err != nil {
		return err
	}

	contacts := models.ContactsSettings{ID: models.SingletonID}
	if err := s.db.FirstOrCreate(&contacts, models.ContactsSettings{ID: models.SingletonID}).Error; err != nil {
		return err
	}
	return nil
}
