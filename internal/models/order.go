package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status constants
const (
	OrderStatusPending       = "pending"
	OrderStatusConfirmed     = "confirmed"
	OrderStatusEnRoute       = "en_route"
	OrderStatusPickedUp      = "picked_up"
	OrderStatusCompleted     = "completed"
	OrderStatusCancelled     = "cancelled"
	OrderStatusRefundPending = "refund_pending"
)

// Order is the central dispatch record. Orders are never deleted, only
// status-transitioned; each transition stamps its audit timestamp.
type Order struct {
	gorm.Model
	OrderNo      string    `json:"orderNo" gorm:"not null;uniqueIndex"`
	PassengerID  uint      `json:"passengerId" gorm:"not null"`
	DriverID     *uint     `json:"driverId,omitempty" gorm:"null"`
	ContactName  string    `json:"contactName" gorm:"not null"`
	ContactPhone string    `json:"contactPhone" gorm:"not null"`
	ContactEmail string    `json:"contactEmail"`
	PickupAddr   string    `json:"pickupAddress" gorm:"not null"`
	DropoffAddr  string    `json:"dropoffAddress" gorm:"not null"`
	PickupTime   time.Time `json:"pickupTime" gorm:"not null"`

	VehicleClassID     uint   `json:"vehicleClassId" gorm:"not null"`
	Adults             int    `json:"adults" gorm:"not null"`
	Children           int    `json:"children" gorm:"not null;default:0"`
	RearFacingSeats    int    `json:"rearFacingSeats" gorm:"not null;default:0"`
	ForwardFacingSeats int    `json:"forwardFacingSeats" gorm:"not null;default:0"`
	BoosterSeats       int    `json:"boosterSeats" gorm:"not null;default:0"`
	CabinBags          int    `json:"cabinBags" gorm:"not null;default:0"`
	CheckedBags        int    `json:"checkedBags" gorm:"not null;default:0"`
	OversizedBags      int    `json:"oversizedBags" gorm:"not null;default:0"`
	Signboard          bool   `json:"signboard" gorm:"not null;default:false"`
	SignboardText      string `json:"signboardText"`
	Note               string `json:"note"`

	Status string `json:"status" gorm:"not null;default:'pending'"`

	// Stored price breakdown, integer currency units.
	BaseFare            int64 `json:"baseFare" gorm:"not null"`
	ClassSurcharge      int64 `json:"classSurcharge" gorm:"not null;default:0"`
	ChildSeatSurcharge  int64 `json:"childSeatSurcharge" gorm:"not null;default:0"`
	SignboardSurcharge  int64 `json:"signboardSurcharge" gorm:"not null;default:0"`
	NightSurcharge      int64 `json:"nightSurcharge" gorm:"not null;default:0"`
	HolidaySurcharge    int64 `json:"holidaySurcharge" gorm:"not null;default:0"`
	RemoteAreaSurcharge int64 `json:"remoteAreaSurcharge" gorm:"not null;default:0"`
	MultiStopSurcharge  int64 `json:"multiStopSurcharge" gorm:"not null;default:0"`
	Discount            int64 `json:"discount" gorm:"not null;default:0"`
	Total               int64 `json:"total" gorm:"not null"`

	// Audit timestamps, one per lifecycle transition.
	ConfirmedAt       *time.Time `json:"confirmedAt,omitempty"`
	EnRouteAt         *time.Time `json:"enRouteAt,omitempty"`
	PickedAt          *time.Time `json:"pickedAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
	RefundRequestedAt *time.Time `json:"refundRequestedAt,omitempty"`

	Passenger    *User         `json:"passenger,omitempty" gorm:"foreignKey:PassengerID"`
	Driver       *User         `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	VehicleClass *VehicleClass `json:"vehicleClass,omitempty" gorm:"foreignKey:VehicleClassID"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}
