package database

import (
	"fmt"
	"os"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.DriverProfile{},
		&models.VehicleClass{},
		&models.Order{},
		&models.Coupon{},
	)
	if err != nil {
		return err
	}

	// Constrain the closed status sets at the database level too
	db.Exec(`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_user_type_check`)
	db.Exec(`ALTER TABLE users ADD CONSTRAINT users_user_type_check CHECK (user_type IN ('passenger', 'driver', 'admin'))`)

	db.Exec(`ALTER TABLE driver_profiles DROP CONSTRAINT IF EXISTS driver_profiles_status_check`)
	db.Exec(`ALTER TABLE driver_profiles ADD CONSTRAINT driver_profiles_status_check CHECK (status IN ('pending', 'active', 'denied'))`)

	db.Exec(`ALTER TABLE orders DROP CONSTRAINT IF EXISTS orders_status_check`)
	db.Exec(`ALTER TABLE orders ADD CONSTRAINT orders_status_check CHECK (status IN ('pending', 'confirmed', 'en_route', 'picked_up', 'completed', 'cancelled', 'refund_pending'))`)

	return SeedVehicleClasses(db)
}

// SeedVehicleClasses inserts the default price table on an empty database.
func SeedVehicleClasses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.VehicleClass{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.VehicleClass{
		{
			Name:                   "Standard Sedan",
			Description:            "Up to 3 passengers, 3 bags",
			PassengerCapacity:      3,
			LuggageCapacity:        3,
			BasePrice:              400,
			ClassSurcharge:         0,
			SeatRearFacingPrice:    120,
			SeatForwardFacingPrice: 120,
			SeatBoosterPrice:       100,
			SignboardPrice:         150,
			IsActive:               true,
		},
		{
			Name:                   "Executive Sedan",
			Description:            "Up to 3 passengers, 3 bags, premium vehicle",
			PassengerCapacity:      3,
			LuggageCapacity:        3,
			BasePrice:              400,
			ClassSurcharge:         250,
			SeatRearFacingPrice:    120,
			SeatForwardFacingPrice: 120,
			SeatBoosterPrice:       100,
			SignboardPrice:         150,
			IsActive:               true,
		},
		{
			Name:                   "Minivan",
			Description:            "Up to 7 passengers, 7 bags",
			PassengerCapacity:      7,
			LuggageCapacity:        7,
			BasePrice:              550,
			ClassSurcharge:         150,
			SeatRearFacingPrice:    100,
			SeatForwardFacingPrice: 100,
			SeatBoosterPrice:       80,
			SignboardPrice:         150,
			IsActive:               true,
		},
	}

	return db.Create(&defaults).Error
}
