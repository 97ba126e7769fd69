// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract the bearer token from the Authorization header
// 2. Verify the token signature via the token package
// 3. Store the resolved username in the gin context for handlers
//
// The gate is role-agnostic on purpose: tokens carry only a username and no
// marker of which credential table issued them, so a token from any of the
// three login routes passes any route guarded by this middleware.

package middleware // Declares the package name

import ( // Import required packages
	"go-restaurant-backend/config" // Project config (for JWT secret)
	"go-restaurant-backend/token"  // Token verification
	"net/http"                     // HTTP status codes
	"strings"                      // For header parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthMiddleware - Returns a Gin middleware function for JWT authentication
//
// How it works:
// 1. Checks for "Authorization: Bearer <token>" header
// 2. Verifies the token signature
// 3. Stores the embedded username in the Gin context
// 4. Continues to the next handler if valid, aborts with 401 if not
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "Invalid JWT Token"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Verify the token
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		cfg := config.Load()                              // Load config for JWT secret
		username, err := token.Verify(tokenStr, cfg.JWTSecret)
		if err != nil { // If token is malformed or the signature check fails
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_msg": "Invalid JWT Token"}) // Return 401 Unauthorized
			return
		}

		// STEP 3: Store the username in context for later use
		// No check that the username still exists in any credential table.
		c.Set("username", username)

		c.Next() // Continue to next handler (authentication successful)
	}
}
