package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/fare"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// DraftTTL bounds how long an unfinished booking survives between screens.
// Drafts are a convenience cache only; the order record is the authority.
const DraftTTL = 24 * time.Hour

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// SetBookingDraft stores a passenger's draft trip configuration
func SetBookingDraft(ctx context.Context, passengerID uint, config fare.TripConfiguration) error {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("booking:draft:%d", passengerID)
	return RedisClient.Set(ctx, key, data, DraftTTL).Err()
}

// GetBookingDraft retrieves a passenger's draft trip configuration
func GetBookingDraft(ctx context.Context, passengerID uint) (fare.TripConfiguration, error) {
	key := fmt.Sprintf("booking:draft:%d", passengerID)
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return fare.TripConfiguration{}, err
	}

	var config fare.TripConfiguration
	if err := json.Unmarshal([]byte(data), &config); err != nil {
		return fare.TripConfiguration{}, err
	}

	return config, nil
}

// ClearBookingDraft removes a passenger's draft once an order is created
func ClearBookingDraft(ctx context.Context, passengerID uint) error {
	key := fmt.Sprintf("booking:draft:%d", passengerID)
	return RedisClient.Del(ctx, key).Err()
}

// SetDriverAvailability stores driver availability status
func SetDriverAvailability(ctx context.Context, driverID uint, isAvailable bool) error {
	key := fmt.Sprintf("driver:availability:%d", driverID)
	value := "true"
	if !isAvailable {
		value = "false"
	}
	return RedisClient.Set(ctx, key, value, time.Hour).Err()
}

// GetDriverAvailability retrieves driver availability status
func GetDriverAvailability(ctx context.Context, driverID uint) (bool, error) {
	key := fmt.Sprintf("driver:availability:%d", driverID)
	result, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return result == "true", nil
}

// PublishOrderUpdate publishes an order status change to Redis pub/sub so
// other instances can fan it out to their own websocket clients.
func PublishOrderUpdate(ctx context.Context, orderID uint, orderNo, status string, data map[string]interface{}) error {
	updateData := map[string]interface{}{
		"orderId":   orderID,
		"orderNo":   orderNo,
		"status":    status,
		"data":      data,
		"timestamp": time.Now().Unix(),
	}

	jsonData, err := json.Marshal(updateData)
	if err != nil {
		return err
	}

	return RedisClient.Publish(ctx, "order:updates", jsonData).Err()
}
