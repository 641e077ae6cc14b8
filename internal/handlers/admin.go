package handlers

import (
	"context"
	"log"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/lifecycle"
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/MRsugoii/skycar-system-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllOrders lists orders for the admin console, filterable by status
// and scheduled pickup date range
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Passenger").Preload("Driver").Preload("VehicleClass")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if from := c.Query("from"); from != "" {
			if t, err := time.Parse("2006-01-02", from); err == nil {
				query = query.Where("pickup_time >= ?", t)
			}
		}
		if to := c.Query("to"); to != "" {
			if t, err := time.Parse("2006-01-02", to); err == nil {
				query = query.Where("pickup_time < ?", t.AddDate(0, 0, 1))
			}
		}

		var orders []models.Order
		if err := query.Order("pickup_time DESC").Find(&orders).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(200, orders)
	}
}

// AssignDriver dispatches an order: sets the driver reference and moves
// pending to confirmed. Only verified drivers are eligible.
func AssignDriver(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DriverID uint `json:"driverId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		var profile models.DriverProfile
		if err := db.Preload("User").Where("user_id = ?", input.DriverID).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		if !profile.IsActive() {
			c.JSON(422, gin.H{"error": "Driver has not passed verification"})
			return
		}

		order.DriverID = &input.DriverID
		if err := lifecycle.Apply(&order, lifecycle.ActionAssignDriver, time.Now()); err != nil {
			c.JSON(409, gin.H{"error": err.Error(), "status": order.Status})
			return
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to assign driver"})
			return
		}

		if err := services.SetDriverAvailability(context.Background(), input.DriverID, false); err != nil {
			log.Printf("Failed to cache driver availability for %d: %v", input.DriverID, err)
		}

		if order.ContactEmail != "" && profile.User != nil {
			go func() {
				if err := utils.SendDriverAssignedEmail(order.ContactEmail, order.OrderNo,
					profile.User.Username, profile.CarPlate); err != nil {
					log.Printf("Failed to send assignment email for %s: %v", order.OrderNo, err)
				}
			}()
		}

		notifyOrderUpdate(hub, &order, "Driver assigned")

		c.JSON(200, gin.H{
			"message":  "Driver assigned successfully",
			"orderNo":  order.OrderNo,
			"driverId": input.DriverID,
			"status":   order.Status,
		})
	}
}

// AdminCancelOrder cancels an order on behalf of the business
func AdminCancelOrder(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		if err := lifecycle.Apply(&order, lifecycle.ActionCancel, time.Now()); err != nil {
			c.JSON(409, gin.H{"error": err.Error(), "status": order.Status})
			return
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to cancel order"})
			return
		}

		notifyOrderUpdate(hub, &order, "Booking cancelled by dispatch")

		c.JSON(200, gin.H{
			"message": "Order cancelled successfully",
			"orderNo": order.OrderNo,
			"status":  order.Status,
		})
	}
}

// GetDrivers lists driver profiles for the admin console
func GetDrivers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var profiles []models.DriverProfile
		if err := query.Order("created_at DESC").Find(&profiles).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch drivers"})
			return
		}

		c.JSON(200, profiles)
	}
}

// VerifyDriver approves or denies a driver's verification
func VerifyDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required,oneof=active denied"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var profile models.DriverProfile
		if err := db.Where("user_id = ?", c.Param("driverId")).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver not found"})
			return
		}

		profile.Status = input.Status
		if err := db.Save(&profile).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update driver status"})
			return
		}

		c.JSON(200, gin.H{
			"message":  "Driver verification updated",
			"driverId": profile.UserID,
			"status":   profile.Status,
		})
	}
}

// GetDailyReport aggregates order counts and revenue per day for the
// reporting/invoicing view. Only completed orders count toward revenue.
func GetDailyReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := 30
		since := time.Now().AddDate(0, 0, -days)

		type dailyRow struct {
			Day       time.Time `json:"day"`
			Orders    int64     `json:"orders"`
			Completed int64     `json:"completed"`
			Cancelled int64     `json:"cancelled"`
			Revenue   int64     `json:"revenue"`
		}

		var rows []dailyRow
		err := db.Model(&models.Order{}).
			Select(`date_trunc('day', created_at) AS day,
				count(*) AS orders,
				count(*) FILTER (WHERE status = 'completed') AS completed,
				count(*) FILTER (WHERE status = 'cancelled') AS cancelled,
				coalesce(sum(total) FILTER (WHERE status = 'completed'), 0) AS revenue`).
			Where("created_at >= ?", since).
			Group("day").
			Order("day DESC").
			Scan(&rows).Error
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to build report"})
			return
		}

		c.JSON(200, rows)
	}
}
