// menu.go - Handles the public food menu listing

package handlers // Declares the package name

import ( // Import required packages
	"go-restaurant-backend/database" // Database connection
	"go-restaurant-backend/models"   // Food model
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// GetFoodMenu - Handler for GET /food (unauthenticated)
// Returns every menu row verbatim, no filtering or shaping.
func GetFoodMenu(c *gin.Context) {
	foods := make([]models.Food, 0)                           // Empty menu serializes as [], not null
	if err := database.DB.Find(&foods).Error; err != nil {    // Load all menu rows
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"}) // Return 500 if DB fails
		return
	}
	c.JSON(http.StatusOK, foods) // Return the full menu
}
