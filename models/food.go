// food.go - Defines the Food model (menu reference data)

package models // Declares the package name

type Food struct { // Food struct represents one menu item
	ID       uint    `gorm:"primaryKey" json:"id"`    // Unique food ID (primary key)
	FoodName string  `gorm:"not null" json:"food_name"` // Dish name
	Category string  `json:"category"`                // e.g. starter, main course, beverage
	CostINR  float64 `json:"cost_inr"`                // Price per unit in INR
	ChefName string  `json:"chef_name"`               // Chef responsible for the dish
	ImageURL string  `json:"image_url"`               // Optional picture for the menu UI
}

// TableName keeps the legacy table name used by the menu data.
func (Food) TableName() string { return "food_menu" }
