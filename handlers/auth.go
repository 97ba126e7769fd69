// auth.go - Handles registration and login for all three principal kinds
//
// Customers, kitchen staff and admins live in three separate tables with
// independent uniqueness domains, so each kind gets its own register/login
// pair working against its own table. Login deliberately answers the same
// 401 body for an unknown username and a wrong password so the response
// cannot be used to enumerate accounts.

package handlers // Declares the package name

import ( // Import required packages
	"errors"                         // For gorm.ErrRecordNotFound checks
	"go-restaurant-backend/config"   // Project config (JWT secret)
	"go-restaurant-backend/database" // Database connection
	"go-restaurant-backend/models"   // Principal models
	"go-restaurant-backend/token"    // Token issuance
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // For ErrRecordNotFound
)

// CredentialsInput - Shared request body for all register/login routes.
// No binding constraints: empty usernames and passwords are accepted.
type CredentialsInput struct {
	Username string `json:"username"` // Principal name
	Password string `json:"password"` // Plain password (hashed before storage)
}

const invalidCredentialsMsg = "Invalid username or password" // Identical for unknown user and wrong password

// ===== Registration =====

// RegisterCustomer - Handler for POST /register
func RegisterCustomer(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	// Check-then-insert; the unique constraint is the backstop for the race
	var count int64
	database.DB.Model(&models.Customer{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error_msg": "Username already exists"}) // 409 on duplicate
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	customer := models.Customer{Username: input.Username, Password: string(hash)}
	if err := database.DB.Create(&customer).Error; err != nil { // Save to DB
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"}) // 201, no auto-login
}

// RegisterAdmin - Handler for POST /adminregister
// Same flow as customer registration but against the admins table; answers
// 400 instead of 409 on a duplicate name.
func RegisterAdmin(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	var count int64
	database.DB.Model(&models.Admin{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error_msg": "Admin name already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	admin := models.Admin{Username: input.Username, Password: string(hash)}
	if err := database.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully"})
}

// RegisterKitchen - Handler for POST /kitchenregister
func RegisterKitchen(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	var count int64
	database.DB.Model(&models.Kitchen{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error_msg": "Kitchen name already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}

	kitchen := models.Kitchen{Username: input.Username, Password: string(hash)}
	if err := database.DB.Create(&kitchen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Kitchen registered successfully"})
}

// ===== Login =====

// loginPrincipal compares the supplied password against the stored hash and
// answers with a token. The caller passes its table's lookup result so the
// same flow serves all three principal kinds.
func loginPrincipal(c *gin.Context, lookupErr error, storedHash, username, password string) {
	if lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) { // Unknown username
			c.JSON(http.StatusUnauthorized, gin.H{"error_msg": invalidCredentialsMsg})
		} else { // Real store failure
			c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		}
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"error_msg": invalidCredentialsMsg}) // Same body as unknown user
		return
	}

	cfg := config.Load()                               // Load config for JWT secret
	jwtToken, err := token.Issue(username, cfg.JWTSecret) // Issue token carrying only the username
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jwtToken": jwtToken}) // Return token
}

// LoginCustomer - Handler for POST /login
func LoginCustomer(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	var customer models.Customer
	err := database.DB.Where("username = ?", input.Username).First(&customer).Error
	loginPrincipal(c, err, customer.Password, input.Username, input.Password)
}

// LoginAdmin - Handler for POST /adminlogin
func LoginAdmin(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	var admin models.Admin
	err := database.DB.Where("username = ?", input.Username).First(&admin).Error
	loginPrincipal(c, err, admin.Password, input.Username, input.Password)
}

// LoginKitchen - Handler for POST /kitchenlogin
func LoginKitchen(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	var kitchen models.Kitchen
	err := database.DB.Where("username = ?", input.Username).First(&kitchen).Error
	loginPrincipal(c, err, kitchen.Password, input.Username, input.Password)
}
