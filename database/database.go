// database.go - Handles database connection, migrations and seed data

package database // Declares the package name

import ( // Import required packages
	"go-restaurant-backend/config" // Project config
	"go-restaurant-backend/models" // Database models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error                                            // Declare error variable
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                          // If error, return it
		return err
	}

	// Auto-migrate all models (create tables if needed)
	if err := DB.AutoMigrate(
		&models.Customer{},
		&models.Kitchen{},
		&models.Admin{},
		&models.Food{},
		&models.Order{},
	); err != nil {
		return err
	}

	// Seed the menu so a fresh deployment has something to serve
	if err := seedMenu(); err != nil {
		return err
	}

	// Create default admin user if configured
	return createDefaultAdmin()
}

// seedMenu inserts a starter menu when the food table is empty.
func seedMenu() error {
	var count int64
	DB.Model(&models.Food{}).Count(&count)
	if count > 0 {
		return nil // Menu already populated
	}

	menu := []models.Food{
		{FoodName: "Paneer Tikka", Category: "Starter", CostINR: 180, ChefName: "Ravi"},
		{FoodName: "Butter Chicken", Category: "Main Course", CostINR: 320, ChefName: "Ravi"},
		{FoodName: "Masala Dosa", Category: "Main Course", CostINR: 120, ChefName: "Lakshmi"},
		{FoodName: "Veg Biryani", Category: "Main Course", CostINR: 220, ChefName: "Lakshmi"},
		{FoodName: "Gulab Jamun", Category: "Dessert", CostINR: 90, ChefName: "Arjun"},
		{FoodName: "Masala Chai", Category: "Beverage", CostINR: 40, ChefName: "Arjun"},
	}
	return DB.Create(&menu).Error
}

// createDefaultAdmin - Creates a default admin user if configured and none exists
// This uses environment variables instead of hardcoded credentials
func createDefaultAdmin() error {
	cfg := config.Load() // Load configuration

	// Only create admin if explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	// Check if any admin exists
	var count int64
	DB.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		// Create default admin using config values
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.Admin{
			Username: cfg.AdminName,
			Password: string(hash),
		}

		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
