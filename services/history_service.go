package services

import (
	"github.com/mark-blue-evans/purescan/config"
	"github.com/mark-blue-evans/purescan/models"
)

const historyLimit = 50

// GetScanHistory returns the user's most recent scans, newest first.
func GetScanHistory(userID uint) ([]models.ScanRecord, error) {
	var scans []models.ScanRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&scans).Error
	return scans, err
}

// DeleteScan removes one history entry, scoped to its owner.
func DeleteScan(userID, scanID uint) error {
	return config.DB.
		Where("user_id = ?", userID).
		Delete(&models.ScanRecord{}, scanID).Error
}
