package handlers

import (
	"context"
	"errors"

	"github.com/MRsugoii/skycar-system-sub001/internal/fare"
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// GetVehicleClasses lists the active price table for the booking screen
func GetVehicleClasses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var classes []models.VehicleClass
		if err := db.Where("is_active = ?", true).Order("base_price ASC").Find(&classes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch vehicle classes"})
			return
		}

		c.JSON(200, classes)
	}
}

// QuoteBooking prices a trip configuration without creating anything
func QuoteBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var config fare.TripConfiguration
		if err := c.ShouldBindJSON(&config); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		table, err := loadPriceTable(db)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to load price table"})
			return
		}

		breakdown, err := fare.Calculate(config, table)
		if err != nil {
			var confErr *fare.ConfigurationError
			var valErr *fare.ValidationError
			switch {
			case errors.As(err, &confErr):
				c.JSON(404, gin.H{"error": err.Error()})
			case errors.As(err, &valErr):
				c.JSON(422, gin.H{"error": err.Error()})
			default:
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(200, breakdown)
	}
}

// SaveBookingDraft caches the passenger's in-progress trip configuration.
// The draft is transient: it carries no authority and expires on its own.
func SaveBookingDraft() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var config fare.TripConfiguration
		if err := c.ShouldBindJSON(&config); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := services.SetBookingDraft(context.Background(), userId, config); err != nil {
			c.JSON(500, gin.H{"error": "Failed to save draft"})
			return
		}

		c.JSON(200, gin.H{"message": "Draft saved"})
	}
}

// GetBookingDraft returns the passenger's cached trip configuration
func GetBookingDraft() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		config, err := services.GetBookingDraft(context.Background(), userId)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				c.JSON(404, gin.H{"error": "No draft found"})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to load draft"})
			return
		}

		c.JSON(200, config)
	}
}

// LookupCoupon checks a coupon code for the booking UI. Coupons are
// display-only: the discount line of every breakdown stays zero.
func LookupCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.Where("code = ? AND is_active = ?", c.Param("code"), true).
			First(&coupon).Error; err != nil {
			c.JSON(404, gin.H{"error": "Coupon not found"})
			return
		}

		c.JSON(200, gin.H{
			"code":     coupon.Code,
			"label":    coupon.Label,
			"discount": 0,
		})
	}
}

// loadPriceTable reads the active vehicle classes into a fare lookup table
func loadPriceTable(db *gorm.DB) (fare.PriceTable, error) {
	var classes []models.VehicleClass
	if err := db.Where("is_active = ?", true).Find(&classes).Error; err != nil {
		return nil, err
	}
	return fare.NewPriceTable(classes), nil
}
