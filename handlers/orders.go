// orders.go - Handles order placement, the admin order report and bulk deletion
//
// Order lines are stored denormalized, so the report never joins: a single
// GROUP BY over the orders table produces per-(customer, food, chef) rows
// which are then folded into one summary per customer in memory.

package handlers // Declares the package name

import ( // Import required packages
	"go-restaurant-backend/database" // Database connection
	"go-restaurant-backend/models"   // Order model
	"go-restaurant-backend/notify"   // Kitchen notifications over MQTT
	"log"                            // For best-effort notification failures
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// OrderDetailInput - One line item of an order request
type OrderDetailInput struct {
	FoodName string  `json:"foodName"` // Dish name
	FoodID   uint    `json:"foodId"`   // Menu ID of the dish
	Category string  `json:"category"` // Dish category
	CostINR  float64 `json:"costINR"`  // Price per unit
	Quantity int64   `json:"quantity"` // Units ordered
	ChefName string  `json:"chefName"` // Chef responsible
}

// PlaceOrderInput - Request body for POST /order. The customer name comes
// from the body, not from the authenticated token.
type PlaceOrderInput struct {
	CustomerName string             `json:"customerName"` // Who the order is for
	OrderDetails []OrderDetailInput `json:"orderDetails"` // Line items
}

// PlaceOrder - Handler for POST /order (bearer-gated)
// Persists one Order row per line item in a single batch create, so the
// whole call succeeds or fails as one unit. An empty orderDetails list is
// rejected by the batch create and answers 500.
func PlaceOrder(c *gin.Context) {
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.String(http.StatusInternalServerError, "Internal Server Error") // Plain text on this route
		return
	}

	// Build one row per order detail, computing the line total at write time
	lines := make([]models.Order, 0, len(input.OrderDetails))
	var totalCost float64
	for _, d := range input.OrderDetails {
		lineTotal := float64(d.Quantity) * d.CostINR // quantity * cost per unit
		lines = append(lines, models.Order{
			CustomerName: input.CustomerName,
			FoodName:     d.FoodName,
			FoodID:       d.FoodID,
			Category:     d.Category,
			CostINR:      d.CostINR,
			Quantity:     d.Quantity,
			QuantityCost: lineTotal,
			ChefName:     d.ChefName,
		})
		totalCost += lineTotal
	}

	// Batch create runs in one transaction: all rows land or none do.
	// GORM rejects an empty slice, which keeps the legacy contract of a
	// failing write for an order with no line items.
	if err := database.DB.Create(&lines).Error; err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Tell the kitchen. Best effort: a broker failure is logged, never
	// surfaced to the customer.
	if err := notify.PublishOrderPlaced(notify.OrderPlaced{
		CustomerName: input.CustomerName,
		Items:        len(lines),
		TotalCost:    totalCost,
	}); err != nil {
		log.Println("kitchen notification failed:", err)
	}

	c.String(http.StatusOK, "Order placed successfully") // Plain text success
}

// orderGroup - One row of the GROUP BY report query
type orderGroup struct {
	CustomerName  string  // Grouping key
	FoodName      string  // Grouping key
	ChefName      string  // Grouping key
	TotalItems    int64   // COUNT(food_id) within the group
	TotalCost     float64 // SUM(quantity_cost) within the group
	TotalQuantity int64   // SUM(quantity) within the group
}

// OrderItemSummary - One (food, chef) entry inside a customer's summary
type OrderItemSummary struct {
	FoodName      string `json:"food_name"`      // Dish name
	TotalItems    int64  `json:"total_items"`    // How many order lines
	TotalQuantity int64  `json:"total_quantity"` // Units across those lines
	Chef          string `json:"chef"`           // Chef responsible
}

// OrderSummary - Per-customer aggregation returned by the admin report
type OrderSummary struct {
	CustomerName  string             `json:"customer_name"`  // The customer
	Items         []OrderItemSummary `json:"items"`          // One entry per (food, chef) group
	TotalCost     float64            `json:"total_cost"`     // Sum across the customer's groups
	TotalQuantity int64              `json:"total_quantity"` // Sum across the customer's groups
}

// ListOrders - Handler for GET /admin/orders (bearer-gated)
func ListOrders(c *gin.Context) {
	var rows []orderGroup
	err := database.DB.Model(&models.Order{}).
		Select("customer_name, food_name, chef_name, COUNT(food_id) as total_items, SUM(quantity_cost) as total_cost, SUM(quantity) as total_quantity").
		Group("customer_name, food_name, chef_name").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, aggregateOrders(rows)) // Fold group rows into per-customer summaries
}

// aggregateOrders re-groups the flat report rows by customer. Customers and
// their items keep the order of first appearance in the query result; there
// is no sorting.
func aggregateOrders(rows []orderGroup) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(rows)) // Empty report serializes as [], not null
	index := make(map[string]int)                   // Customer name -> position in summaries
	for _, row := range rows {
		i, seen := index[row.CustomerName]
		if !seen { // First appearance of this customer
			i = len(summaries)
			index[row.CustomerName] = i
			summaries = append(summaries, OrderSummary{
				CustomerName: row.CustomerName,
				Items:        []OrderItemSummary{},
			})
		}
		s := &summaries[i]
		s.Items = append(s.Items, OrderItemSummary{ // One item per (food, chef) group
			FoodName:      row.FoodName,
			TotalItems:    row.TotalItems,
			TotalQuantity: row.TotalQuantity,
			Chef:          row.ChefName,
		})
		s.TotalCost += row.TotalCost         // Summary totals are sums over the groups
		s.TotalQuantity += row.TotalQuantity
	}
	return summaries
}

// DeleteOrders - Handler for DELETE /admin/orders/:customerName
// Removes every order line for the customer. Idempotent: deleting a customer
// with no lines still answers 200.
func DeleteOrders(c *gin.Context) {
	customerName := c.Param("customerName") // Path parameter
	if err := database.DB.Where("customer_name = ?", customerName).Delete(&models.Order{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error_msg": "Internal Server Error"})
		return
	}
	c.String(http.StatusOK, "Orders deleted successfully") // Plain text success
}
