package repository

import (
	"errors"
	"time"

	"github.com/ecosaver/energy-server/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches the requested ID.
var ErrNotFound = errors.New("record not found")

// Store owns all record access. Handlers hold a *Store rather than
// touching the database directly.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Devices ---

func (s *Store) CreateDevice(device *models.Device) error {
	return s.db.Create(device).Error
}

func (s *Store) GetDevice(id uint) (*models.Device, error) {
	var device models.Device
	if err := s.db.First(&device, id).Error; err != nil {
		return nil, translate(err)
	}
	return &device, nil
}

func (s *Store) ListDevices() ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *Store) SaveDevice(device *models.Device) error {
	return s.db.Save(device).Error
}

// DeleteDevice removes a device and all its readings.
func (s *Store) DeleteDevice(id uint) error {
	var device models.Device
	if err := s.db.First(&device, id).Error; err != nil {
		return translate(err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", id).Delete(&models.EnergyUsage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&device).Error
	})
}

func (s *Store) DeviceExists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Device{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --- Energy usage ---

// CreateUsage persists a reading, stamping it with the insert time.
func (s *Store) CreateUsage(usage *models.EnergyUsage) error {
	usage.Timestamp = time.Now().UTC()
	return s.db.Create(usage).Error
}

func (s *Store) GetUsage(id uint) (*models.EnergyUsage, error) {
	var usage models.EnergyUsage
	if err := s.db.First(&usage, id).Error; err != nil {
		return nil, translate(err)
	}
	return &usage, nil
}

// ListUsages returns all readings, newest first.
func (s *Store) ListUsages() ([]models.EnergyUsage, error) {
	var usages []models.EnergyUsage
	if err := s.db.Order("timestamp DESC").Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

// SaveUsage updates a reading. The timestamp set at insert is kept.
func (s *Store) SaveUsage(usage *models.EnergyUsage) error {
	return s.db.Save(usage).Error
}

func (s *Store) DeleteUsage(id uint) error {
	var usage models.EnergyUsage
	if err := s.db.First(&usage, id).Error; err != nil {
		return translate(err)
	}
	return s.db.Delete(&usage).Error
}
