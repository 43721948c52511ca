package services

import (
	"github.com/mark-blue-evans/purescan/config"
	"github.com/mark-blue-evans/purescan/models"
)

// GetGroceryList returns the user's grocery items, newest first.
func GetGroceryList(userID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// AddGroceryItem saves a product with its score snapshot.
func AddGroceryItem(userID uint, barcode, productName string, purityScore int) (*models.GroceryItem, error) {
	item := models.GroceryItem{
		UserID:      userID,
		Barcode:     barcode,
		ProductName: productName,
		PurityScore: purityScore,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteGroceryItem removes one item, scoped to its owner.
func DeleteGroceryItem(userID, itemID uint) error {
	return config.DB.
		Where("user_id = ?", userID).
		Delete(&models.GroceryItem{}, itemID).Error
}
