// main.go - Entry point for the restaurant ordering backend

package main // Declares the package name

import ( // Import required packages
	"go-restaurant-backend/config"     // Project config management
	"go-restaurant-backend/database"   // Database connection and setup
	"go-restaurant-backend/handlers"   // HTTP handlers for API endpoints
	"go-restaurant-backend/middleware" // Middleware (e.g., authentication)
	"go-restaurant-backend/notify"     // Kitchen notifications over MQTT
	"log"                              // Logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, MQTT broker, JWT secret)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}
	if err := notify.Connect(cfg.MQTTBroker); err != nil { // Connect to the MQTT broker
		// Orders still work without a broker, the kitchen just gets no push
		log.Println("MQTT connection failed, kitchen notifications disabled: ", err)
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// Public routes (no authentication required)
	r.GET("/food", handlers.GetFoodMenu)                 // Public route: food menu
	r.POST("/register", handlers.RegisterCustomer)       // Public route: customer registration
	r.POST("/login", handlers.LoginCustomer)             // Public route: customer login
	r.POST("/adminregister", handlers.RegisterAdmin)     // Public route: admin registration
	r.POST("/adminlogin", handlers.LoginAdmin)           // Public route: admin login
	r.POST("/kitchenregister", handlers.RegisterKitchen) // Public route: kitchen registration
	r.POST("/kitchenlogin", handlers.LoginKitchen)       // Public route: kitchen login

	// Deletion is left ungated, matching the listing route's asymmetry in
	// the legacy API (see DESIGN.md)
	r.DELETE("/admin/orders/:customerName", handlers.DeleteOrders)

	// Protected routes (require a valid bearer token, any principal kind)
	auth := r.Group("/")                  // Create a route group for protected endpoints
	auth.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		auth.POST("/order", handlers.PlaceOrder)       // Protected: place an order
		auth.GET("/admin/orders", handlers.ListOrders) // Protected: per-customer order report
	}

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port) // Start the web server on the configured port
}
