// token.go - Issues and verifies bearer tokens
//
// Tokens carry exactly one claim: the username. There is no role and no
// expiry, so any token that verifies is accepted forever. The secret is a
// parameter rather than package state, which keeps both functions stateless.

package token // Declares the package name

import ( // Import required packages
	"errors" // For sentinel-style errors
	"fmt"    // For error formatting

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims is the token payload: a username and nothing else.
type Claims struct {
	Username string `json:"username"` // Principal name embedded at login
	jwt.RegisteredClaims
}

// Issue produces a signed HS256 token carrying the given username.
func Issue(username, secret string) (string, error) {
	claims := Claims{Username: username}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create JWT token
	return t.SignedString([]byte(secret))                  // Sign token with the shared secret
}

// Verify checks the signature and returns the embedded username. It does not
// check whether the username still exists in any credential table.
func Verify(tokenString, secret string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok { // Reject non-HMAC algorithms
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil // Provide secret key for validation
	})
	if err != nil {
		return "", err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return "", errors.New("invalid token claims")
	}
	return claims.Username, nil
}
