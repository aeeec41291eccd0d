package models

import (
	"time"
)

type Device struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:100;not null" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Readings []EnergyUsage `gorm:"foreignKey:DeviceID" json:"readings,omitempty"`
}
