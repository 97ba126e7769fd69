// order.go - Defines the Order model (one line item of a placed order)

package models // Declares the package name

// Order rows are denormalized on purpose: customer, food, chef and cost are
// copied in at write time so the report query never joins. QuantityCost is
// Quantity * CostINR, computed once on placement and stored. Rows are never
// updated; they are only deleted in bulk by customer name.
type Order struct {
	ID           uint    `gorm:"primaryKey" json:"id"`        // Unique order line ID (primary key)
	CustomerName string  `gorm:"index;not null" json:"customer_name"` // Who placed the order
	FoodName     string  `gorm:"not null" json:"food_name"`   // Dish name (copied from menu)
	FoodID       uint    `json:"food_id"`                     // Menu ID of the dish
	Category     string  `json:"category"`                    // Dish category
	CostINR      float64 `json:"cost_inr"`                    // Price per unit at order time
	Quantity     int64   `json:"quantity"`                    // Number of units ordered
	QuantityCost float64 `json:"quantity_cost"`               // Quantity * CostINR, stored at write time
	ChefName     string  `json:"chef_name"`                   // Chef responsible for the dish
}
