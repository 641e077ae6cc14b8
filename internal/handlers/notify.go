package handlers

import (
	"context"
	"log"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// notifyOrderUpdate fans an order's new status out to its passenger, its
// assigned driver, every admin console, and the Redis channel other
// instances listen on. Delivery is best effort; dispatch state already
// lives in the database.
func notifyOrderUpdate(hub *services.Hub, order *models.Order, message string) {
	update := services.OrderStatusUpdate{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Status:  order.Status,
		Message: message,
	}
	if order.DriverID != nil {
		update.DriverID = *order.DriverID
	}

	hub.SendOrderStatusUpdate(order.PassengerID, update)
	if order.DriverID != nil {
		hub.SendOrderStatusUpdate(*order.DriverID, update)
	}
	hub.SendOrderStatusUpdateToAdmins(update)

	if err := services.PublishOrderUpdate(context.Background(), order.ID, order.OrderNo, order.Status, gin.H{
		"message": message,
	}); err != nil {
		log.Printf("Failed to publish order update for %s: %v", order.OrderNo, err)
	}
}
