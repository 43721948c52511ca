package models

import "gorm.io/gorm"

// GroceryItem is one product saved to a user's grocery list, with the score
// snapshot from when it was added.
type GroceryItem struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	Barcode     string `gorm:"type:varchar(50)"`
	ProductName string `gorm:"type:text"`
	PurityScore int
}
