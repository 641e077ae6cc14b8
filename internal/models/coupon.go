package models

import (
	"gorm.io/gorm"
)

// Coupon exists so the booking front end can show a code the passenger
// entered. Applying one never changes the computed total; the discount
// line of a price breakdown stays zero.
type Coupon struct {
	gorm.Model
	Code     string `json:"code" gorm:"not null;unique"`
	Label    string `json:"label"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`
}

// TableName specifies the table name
func (Coupon) TableName() string {
	return "coupons"
}
