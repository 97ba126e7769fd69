// principal.go - Defines the three credential tables

package models // Declares the package name

// Customer, Kitchen and Admin are three disjoint identity spaces. They are
// separate tables with independent uniqueness domains, so the same username
// may legitimately exist in more than one of them.

type Customer struct { // Customer struct represents a customer account
	ID       uint   `gorm:"primaryKey" json:"id"`                // Unique customer ID (primary key)
	Username string `gorm:"unique;not null" json:"username"`     // Customer name (must be unique, cannot be null)
	Password string `gorm:"not null" json:"-"`                   // Hashed password (never serialized)
}

type Kitchen struct { // Kitchen struct represents a kitchen staff account
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

type Admin struct { // Admin struct represents an admin account
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}
