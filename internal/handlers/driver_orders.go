package handlers

import (
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/lifecycle"
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDriverOrders lists the driver's assigned orders still in the trip flow
func GetDriverOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverId := c.GetUint("userId")

		var orders []models.Order
		if err := db.Preload("Passenger").Preload("VehicleClass").
			Where("driver_id = ? AND status IN (?)", driverId, []string{
				models.OrderStatusConfirmed,
				models.OrderStatusEnRoute,
				models.OrderStatusPickedUp,
			}).
			Order("pickup_time ASC").
			Find(&orders).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch assigned orders"})
			return
		}

		c.JSON(200, orders)
	}
}

// GetDriverTripHistory lists the driver's completed orders
func GetDriverTripHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverId := c.GetUint("userId")

		var orders []models.Order
		if err := db.Preload("VehicleClass").
			Where("driver_id = ? AND status = ?", driverId, models.OrderStatusCompleted).
			Order("completed_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch trip history"})
			return
		}

		c.JSON(200, orders)
	}
}

// StartTrip moves a confirmed order to en_route
func StartTrip(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return driverTransition(db, hub, lifecycle.ActionStartTrip, "Driver is on the way")
}

// ConfirmPickup moves an en_route order to picked_up
func ConfirmPickup(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return driverTransition(db, hub, lifecycle.ActionPickUp, "Passenger is aboard")
}

// CompleteTrip moves a picked_up order to completed. After this the order
// is read-only for trip-flow actions.
func CompleteTrip(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return driverTransition(db, hub, lifecycle.ActionComplete, "Trip completed")
}

// driverTransition runs one lifecycle action on an order the requesting
// driver is assigned to. An action attempted from the wrong status changes
// nothing and reports the conflict; the driver app treats that as a no-op.
func driverTransition(db *gorm.DB, hub *services.Hub, action lifecycle.Action, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverId := c.GetUint("userId")

		var order models.Order
		if err := db.First(&order, c.Param("orderId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Order not found"})
			return
		}

		if order.DriverID == nil || *order.DriverID != driverId {
			c.JSON(403, gin.H{"error": "Unauthorized to update this order"})
			return
		}

		if err := lifecycle.Apply(&order, action, time.Now()); err != nil {
			c.JSON(409, gin.H{"error": err.Error(), "status": order.Status})
			return
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update order status"})
			return
		}

		notifyOrderUpdate(hub, &order, message)

		c.JSON(200, gin.H{
			"message": message,
			"orderNo": order.OrderNo,
			"status":  order.Status,
		})
	}
}
