package main

import (
	"log"
	"os"
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/database"
	"github.com/MRsugoii/skycar-system-sub001/internal/handlers"
	"github.com/MRsugoii/skycar-system-sub001/internal/middleware"
	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored documents
	r.Static("/uploads", "/app/uploads")

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(db))
				users.PUT("/profile", handlers.UpdateProfile(db))
			}

			// Booking routes (passenger app)
			protected.GET("/classes", handlers.GetVehicleClasses(db))
			bookings := protected.Group("/bookings")
			{
				bookings.POST("/quote", handlers.QuoteBooking(db))
				bookings.PUT("/draft", handlers.SaveBookingDraft())
				bookings.GET("/draft", handlers.GetBookingDraft())
			}
			protected.GET("/coupons/:code", handlers.LookupCoupon(db))

			// Order routes (passenger app)
			orders := protected.Group("/orders")
			{
				orders.POST("", handlers.CreateOrder(db, hub))
				orders.GET("", handlers.GetPassengerOrders(db))
				orders.GET("/:orderId", handlers.GetOrder(db))
				orders.POST("/:orderId/cancel", handlers.CancelOrder(db, hub))
				orders.POST("/:orderId/refund", handlers.RequestRefund(db, hub))
			}

			// Driver routes
			driver := protected.Group("/driver")
			driver.Use(middleware.RequireRole(string(models.UserTypeDriver)))
			{
				driver.GET("/profile", handlers.GetDriverProfile(db))
				driver.PUT("/profile", handlers.UpdateDriverProfile(db))
				driver.POST("/documents", handlers.UploadDriverDocument(db))
				driver.GET("/orders", handlers.GetDriverOrders(db))
				driver.GET("/history", handlers.GetDriverTripHistory(db))
				driver.POST("/orders/:orderId/start", handlers.StartTrip(db, hub))
				driver.POST("/orders/:orderId/pickup", handlers.ConfirmPickup(db, hub))
				driver.POST("/orders/:orderId/complete", handlers.CompleteTrip(db, hub))
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(string(models.UserTypeAdmin)))
			{
				admin.GET("/orders", handlers.GetAllOrders(db))
				admin.POST("/orders/:orderId/assign", handlers.AssignDriver(db, hub))
				admin.POST("/orders/:orderId/cancel", handlers.AdminCancelOrder(db, hub))
				admin.GET("/drivers", handlers.GetDrivers(db))
				admin.POST("/drivers/:driverId/verify", handlers.VerifyDriver(db))
				admin.POST("/classes", handlers.CreateVehicleClass(db))
				admin.PUT("/classes/:classId", handlers.UpdateVehicleClass(db))
				admin.DELETE("/classes/:classId", handlers.DeactivateVehicleClass(db))
				admin.GET("/reports/daily", handlers.GetDailyReport(db))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
