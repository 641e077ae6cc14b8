package models

import (
	"time"

	"gorm.io/gorm"
)

// Driver verification status constants
const (
	DriverStatusPending = "pending"
	DriverStatusActive  = "active"
	DriverStatusDenied  = "denied"
)

// DriverProfile holds the dispatch-facing profile for a driver account.
// Verification is admin-controlled; a driver only receives orders while active.
type DriverProfile struct {
	gorm.Model
	UserID          uint       `json:"userId" gorm:"not null;uniqueIndex"`
	Status          string     `json:"status" gorm:"not null;default:'pending'"` // pending, active, denied
	LicenseNumber   string     `json:"licenseNumber"`
	LicenseExpiry   *time.Time `json:"licenseExpiry,omitempty"`
	InsuranceExpiry *time.Time `json:"insuranceExpiry,omitempty"`
	CarPlate        string     `json:"carPlate"`
	CarMake         string     `json:"carMake"`
	CarColor        string     `json:"carColor"`
	LicenseDocURL   string     `json:"licenseDocUrl"`
	InsuranceDocURL string     `json:"insuranceDocUrl"`
	User            *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name
func (DriverProfile) TableName() string {
	return "driver_profiles"
}

// IsActive reports whether the driver passed verification and may be dispatched.
func (d *DriverProfile) IsActive() bool {
	return d.Status == DriverStatusActive
}
