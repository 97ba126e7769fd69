// orders_test.go - Tests for order placement, the admin report and deletion

package handlers

import (
	"bytes"         // For building request bodies
	"encoding/json" // For encoding/decoding JSON
	"net/http"      // HTTP status codes
	"net/http/httptest"
	"os"      // For file operations
	"testing" // Go's testing package

	"go-restaurant-backend/config"     // Project config
	"go-restaurant-backend/database"   // Database connection
	"go-restaurant-backend/middleware" // Auth gate for the protected routes
	"go-restaurant-backend/models"     // Order model
	"go-restaurant-backend/token"      // Token issuance for test tokens

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
)

// setupOrderTestDB removes any existing test DB and creates a new one
func setupOrderTestDB(t *testing.T) {
	_ = os.Remove("test_orders.db") // Remove old test DB if exists
	if err := database.Connect("test_orders.db"); err != nil {
		t.Fatal("test DB connect failed: ", err)
	}
}

// setupOrderRouter returns a router with the order routes wired the same way
// as in main: placement and listing behind the auth gate, deletion open.
func setupOrderRouter() *gin.Engine {
	r := gin.Default()
	r.DELETE("/admin/orders/:customerName", DeleteOrders)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/order", PlaceOrder)
		auth.GET("/admin/orders", ListOrders)
	}
	return r
}

// bearerFor issues a valid token for the given username
func bearerFor(t *testing.T, username string) string {
	tok, err := token.Issue(username, config.Load().JWTSecret)
	if err != nil {
		t.Fatal("token issue failed: ", err)
	}
	return "Bearer " + tok
}

// TestPlaceOrderStoresLineTotal tests that one line is stored per detail
// with the total computed at write time
func TestPlaceOrderStoresLineTotal(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	input := PlaceOrderInput{
		CustomerName: "asha",
		OrderDetails: []OrderDetailInput{
			{FoodName: "Paneer Tikka", FoodID: 1, Category: "Starter", CostINR: 50, Quantity: 2, ChefName: "Ravi"},
		},
	}
	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "asha"))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Order placed successfully", w.Body.String())

	var line models.Order
	err := database.DB.Where("customer_name = ?", "asha").First(&line).Error
	assert.NoError(t, err)
	assert.Equal(t, float64(100), line.QuantityCost) // 2 * 50, stored redundantly
}

// TestPlaceOrderWithoutToken tests that placement is behind the auth gate
func TestPlaceOrderWithoutToken(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBufferString(`{"customerName":"x","orderDetails":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

// TestPlaceOrderEmptyDetails pins the empty-order edge case: the batch
// insert rejects an empty set, so the call fails with 500.
func TestPlaceOrderEmptyDetails(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	body := []byte(`{"customerName":"asha","orderDetails":[]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/order", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "asha"))
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)

	var count int64
	database.DB.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count) // Nothing was written
}

// TestListOrdersAggregation tests the per-customer grouping of the report
func TestListOrdersAggregation(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	// Two Pizza lines and one Soda line for customer A
	lines := []models.Order{
		{CustomerName: "A", FoodName: "Pizza", FoodID: 1, CostINR: 10, Quantity: 2, QuantityCost: 20, ChefName: "chef1"},
		{CustomerName: "A", FoodName: "Pizza", FoodID: 1, CostINR: 10, Quantity: 1, QuantityCost: 10, ChefName: "chef1"},
		{CustomerName: "A", FoodName: "Soda", FoodID: 2, CostINR: 2, Quantity: 3, QuantityCost: 6, ChefName: "chef1"},
	}
	assert.NoError(t, database.DB.Create(&lines).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/orders", nil)
	req.Header.Set("Authorization", bearerFor(t, "boss"))
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	var summaries []OrderSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 1) // One customer

	s := summaries[0]
	assert.Equal(t, "A", s.CustomerName)
	assert.Equal(t, float64(36), s.TotalCost)     // 20 + 10 + 6
	assert.Equal(t, int64(6), s.TotalQuantity)    // 2 + 1 + 3
	assert.Len(t, s.Items, 2)                     // (Pizza, chef1) and (Soda, chef1)

	byFood := map[string]OrderItemSummary{}
	for _, item := range s.Items {
		byFood[item.FoodName] = item
	}
	assert.Equal(t, int64(2), byFood["Pizza"].TotalItems)    // Two order lines collapsed
	assert.Equal(t, int64(3), byFood["Pizza"].TotalQuantity) // 2 + 1
	assert.Equal(t, "chef1", byFood["Pizza"].Chef)
	assert.Equal(t, int64(1), byFood["Soda"].TotalItems)
	assert.Equal(t, int64(3), byFood["Soda"].TotalQuantity)
}

// TestCustomerTokenAcceptedOnAdminRoute pins the role-agnostic gate: a
// token from a customer login passes the admin report route.
func TestCustomerTokenAcceptedOnAdminRoute(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	// Register a customer through the real flow and log in
	authRouter := setupAuthRouter()
	creds := CredentialsInput{Username: "plain-customer", Password: "pw"}
	assert.Equal(t, 201, postJSON(authRouter, "/register", creds).Code)
	login := postJSON(authRouter, "/login", creds)
	assert.Equal(t, 200, login.Code)

	var resp map[string]string
	json.Unmarshal(login.Body.Bytes(), &resp)

	// The customer token opens the admin report
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+resp["jwtToken"])
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

// TestDeleteOrdersIsIdempotent tests bulk deletion by customer name
func TestDeleteOrdersIsIdempotent(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()

	lines := []models.Order{
		{CustomerName: "A", FoodName: "Pizza", FoodID: 1, CostINR: 10, Quantity: 1, QuantityCost: 10, ChefName: "chef1"},
		{CustomerName: "B", FoodName: "Soda", FoodID: 2, CostINR: 2, Quantity: 1, QuantityCost: 2, ChefName: "chef1"},
	}
	assert.NoError(t, database.DB.Create(&lines).Error)

	// First delete removes all of A's lines (no token needed on this route)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/orders/A", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Orders deleted successfully", w.Body.String())

	var count int64
	database.DB.Model(&models.Order{}).Where("customer_name = ?", "A").Count(&count)
	assert.Equal(t, int64(0), count)

	// B's lines are untouched
	database.DB.Model(&models.Order{}).Where("customer_name = ?", "B").Count(&count)
	assert.Equal(t, int64(1), count)

	// Second delete affects zero rows and still succeeds
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/admin/orders/A", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

// TestFoodMenuSeeded tests that the public menu route serves the seed data
func TestFoodMenuSeeded(t *testing.T) {
	setupOrderTestDB(t)
	r := gin.Default()
	r.GET("/food", GetFoodMenu)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/food", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	var foods []models.Food
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
	assert.NotEmpty(t, foods) // Seeded on connect
}
