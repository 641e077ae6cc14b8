package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/fare"
	"github.com/MRsugoii/skycar-system-sub001/internal/lifecycle"
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/MRsugoii/skycar-system-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOrderInput struct {
	ContactName  string    `json:"contactName" binding:"required"`
	ContactPhone string    `json:"contactPhone" binding:"required"`
	ContactEmail string    `json:"contactEmail" binding:"omitempty,email"`
	PickupAddr   string    `json:"pickupAddress" binding:"required"`
	DropoffAddr  string    `json:"dropoffAddress" binding:"required"`
	PickupTime   time.Time `json:"pickupTime" binding:"required"`

	fare.TripConfiguration
}

// CreateOrder validates and prices a booking, then creates the order in
// pending status. The stored breakdown is immutable from here on.
func CreateOrder(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		table, err := loadPriceTable(db)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to load price table"})
			return
		}

		breakdown, err := fare.Calculate(input.TripConfiguration, table)
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

		now := time.Now()
		dayStart, dayEnd := utils.DayRange(now)
		var todayCount int64
		if err := db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&todayCount).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create order"})
			return
		}

		order := models.Order{
			OrderNo:      utils.FormatOrderNo(now, int(todayCount)+1),
			PassengerID:  userId,
			ContactName:  input.ContactName,
			ContactPhone: input.ContactPhone,
			ContactEmail: input.ContactEmail,
			PickupAddr:   input.PickupAddr,
			DropoffAddr:  input.DropoffAddr,
			PickupTime:   input.PickupTime,

			VehicleClassID:     input.VehicleClassID,
			Adults:             input.Adults,
			Children:           input.Children,
			RearFacingSeats:    input.RearFacingSeats,
			ForwardFacingSeats: input.ForwardFacingSeats,
			BoosterSeats:       input.BoosterSeats,
			CabinBags:          input.CabinBags,
			CheckedBags:        input.CheckedBags,
			OversizedBags:      input.OversizedBags,
			Signboard:          input.Signboard,
			SignboardText:      input.SignboardText,
			Note:               input.Notes,

			Status: models.OrderStatusPending,

			BaseFare:            breakdown.BaseFare,
			ClassSurcharge:      breakdown.ClassSurcharge,
			ChildSeatSurcharge:  breakdown.ChildSeatSurcharge,
			SignboardSurcharge:  breakdown.SignboardSurcharge,
			NightSurcharge:      breakdown.NightSurcharge,
			HolidaySurcharge:    breakdown.HolidaySurcharge,
			RemoteAreaSurcharge: breakdown.RemoteAreaSurcharge,
			MultiStopSurcharge:  breakdown.MultiStopSurcharge,
			Discount:            breakdown.Discount,
			Total:               breakdown.Total,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create order"})
			return
		}

		// The draft served its purpose
		if err := services.ClearBookingDraft(context.Background(), userId); err != nil {
			log.Printf("Failed to clear booking draft for user %d: %v", userId, err)
		}

		if order.ContactEmail != "" {
			go func() {
				if err := utils.SendOrderConfirmationEmail(order.ContactEmail, order.OrderNo,
					order.PickupAddr, order.DropoffAddr, order.PickupTime, order.Total); err != nil {
					log.Printf("Failed to send confirmation email for %s: %v", order.OrderNo, err)
				}
			}()
		}

		notifyOrderUpdate(hub, &order, "New booking created")

		c.JSON(201, order)
	}
}

// GetPassengerOrders lists the requesting passenger's orders, newest first
func GetPassengerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		query := db.Where("passenger_id = ?", userId)
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Preload("Driver").Preload("VehicleClass").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(200, orders)
	}
}

// GetOrder retrieves a single order visible to the requester
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		userType := c.GetString("userType")

		var order models.Order
		if err := db.Preload("Driver").Preload("VehicleClass").
			First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		isAssignedDriver := order.DriverID != nil && *order.DriverID == userId
		if order.PassengerID != userId && !isAssignedDriver && userType != string(models.UserTypeAdmin) {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, order)
	}
}

// CancelOrder lets the passenger cancel before the trip starts
func CancelOrder(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var order models.Order
		if err := db.First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		if order.PassengerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if err := lifecycle.Apply(&order, lifecycle.ActionCancel, time.Now()); err != nil {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to cancel order"})
			return
		}

		notifyOrderUpdate(hub, &order, "Booking cancelled by passenger")

		c.JSON(200, gin.H{
			"message": "Order cancelled successfully",
			"orderNo": order.OrderNo,
			"status":  order.Status,
		})
	}
}

// RequestRefund moves a pre-completion order into refund_pending. Only an
// external admin process finalizes the refund from there.
func RequestRefund(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var order models.Order
		if err := db.First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		if order.PassengerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if err := lifecycle.Apply(&order, lifecycle.ActionRequestRefund, time.Now()); err != nil {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to request refund"})
			return
		}

		notifyOrderUpdate(hub, &order, "Refund requested by passenger")

		c.JSON(200, gin.H{
			"message": "Refund requested successfully",
			"orderNo": order.OrderNo,
			"status":  order.Status,
		})
	}
}
