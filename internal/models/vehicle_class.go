package models

import (
	"gorm.io/gorm"
)

// VehicleClass is one row of the price table: a priced category of vehicle
// with its own surcharge schedule. All amounts are integer currency units.
type VehicleClass struct {
	gorm.Model
	Name                   string `json:"name" gorm:"not null;unique"`
	Description            string `json:"description"`
	PassengerCapacity      int    `json:"passengerCapacity" gorm:"not null"`
	LuggageCapacity        int    `json:"luggageCapacity" gorm:"not null"`
	BasePrice              int64  `json:"basePrice" gorm:"not null"`
	ClassSurcharge         int64  `json:"classSurcharge" gorm:"not null;default:0"`
	SeatRearFacingPrice    int64  `json:"seatRearFacingPrice" gorm:"not null;default:0"`
	SeatForwardFacingPrice int64  `json:"seatForwardFacingPrice" gorm:"not null;default:0"`
	SeatBoosterPrice       int64  `json:"seatBoosterPrice" gorm:"not null;default:0"`
	SignboardPrice         int64  `json:"signboardPrice" gorm:"not null;default:0"`
	IsActive               bool   `json:"isActive" gorm:"not null;default:true"`
}

// TableName specifies the table name
func (VehicleClass) TableName() string {
	return "vehicle_classes"
}
