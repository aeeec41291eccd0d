package models

import (
	"time"
)

type EnergyUsage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DeviceID       uint      `gorm:"index;not null" json:"device_id"`
	Timestamp      time.Time `gorm:"index;not null" json:"timestamp"`
	EnergyConsumed float64   `gorm:"not null" json:"energy_consumed"` // kWh by caller convention

	Device Device `gorm:"foreignKey:DeviceID" json:"-"`
}

func (EnergyUsage) TableName() string {
	return "energy_usage"
}
