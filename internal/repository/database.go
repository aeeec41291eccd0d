package repository

import (
	"github.com/ecosaver/energy-server/internal/config"
	"github.com/ecosaver/energy-server/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate
	err = db.AutoMigrate(
		&models.Device{},
		&models.EnergyUsage{},
		&models.AdminUser{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// SeedAdmin creates the configured admin account if it does not exist.
// A blank password disables the admin surface entirely.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Password == "" {
		return nil
	}

	var existing models.AdminUser
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		return nil
	}

	admin := models.AdminUser{Email: cfg.Email}
	if err := admin.SetPassword(cfg.Password); err != nil {
		return err
	}

	return db.Create(&admin).Error
}
