package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	// AlertThreshold is the purity score below which scans trigger an alert.
	AlertThreshold int `gorm:"default:40"`
}
