package handlers

import (
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehicleClassInput struct {
	Name                   string `json:"name" binding:"required"`
	Description            string `json:"description"`
	PassengerCapacity      int    `json:"passengerCapacity" binding:"required,min=1"`
	LuggageCapacity        int    `json:"luggageCapacity" binding:"min=0"`
	BasePrice              int64  `json:"basePrice" binding:"required,min=0"`
	ClassSurcharge         int64  `json:"classSurcharge" binding:"min=0"`
	SeatRearFacingPrice    int64  `json:"seatRearFacingPrice" binding:"min=0"`
	SeatForwardFacingPrice int64  `json:"seatForwardFacingPrice" binding:"min=0"`
	SeatBoosterPrice       int64  `json:"seatBoosterPrice" binding:"min=0"`
	SignboardPrice         int64  `json:"signboardPrice" binding:"min=0"`
}

// CreateVehicleClass adds a row to the price table
func CreateVehicleClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VehicleClassInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		class := models.VehicleClass{
			Name:                   input.Name,
			Description:            input.Description,
			PassengerCapacity:      input.PassengerCapacity,
			LuggageCapacity:        input.LuggageCapacity,
			BasePrice:              input.BasePrice,
			ClassSurcharge:         input.ClassSurcharge,
			SeatRearFacingPrice:    input.SeatRearFacingPrice,
			SeatForwardFacingPrice: input.SeatForwardFacingPrice,
			SeatBoosterPrice:       input.SeatBoosterPrice,
			SignboardPrice:         input.SignboardPrice,
			IsActive:               true,
		}

		if err := db.Create(&class).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create vehicle class"})
			return
		}

		c.JSON(201, class)
	}
}

// UpdateVehicleClass edits a price table row. Existing orders keep the
// breakdown they were priced with; only new quotes see the change.
func UpdateVehicleClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VehicleClassInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var class models.VehicleClass
		if err := db.First(&class, c.Param("classId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle class not found"})
			return
		}

		class.Name = input.Name
		class.Description = input.Description
		class.PassengerCapacity = input.PassengerCapacity
		class.LuggageCapacity = input.LuggageCapacity
		class.BasePrice = input.BasePrice
		class.ClassSurcharge = input.ClassSurcharge
		class.SeatRearFacingPrice = input.SeatRearFacingPrice
		class.SeatForwardFacingPrice = input.SeatForwardFacingPrice
		class.SeatBoosterPrice = input.SeatBoosterPrice
		class.SignboardPrice = input.SignboardPrice

		if err := db.Save(&class).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update vehicle class"})
			return
		}

		c.JSON(200, class)
	}
}

// DeactivateVehicleClass hides a class from new bookings without touching
// the orders that reference it
func DeactivateVehicleClass(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var class models.VehicleClass
		if err := db.First(&class, c.Param("classId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Vehicle class not found"})
			return
		}

		class.IsActive = false
		if err := db.Save(&class).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to deactivate vehicle class"})
			return
		}

		c.JSON(200, gin.H{"message": "Vehicle class deactivated", "id": class.ID})
	}
}
