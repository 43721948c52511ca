package models

import "gorm.io/gorm"

// ScanRecord is one entry in a user's scan history. Ingredients are stored
// as serialized JSON text, mirroring what the product source returned at
// scan time.
type ScanRecord struct {
	gorm.Model
	UserID          uint   `gorm:"index"`
	Barcode         string `gorm:"type:varchar(50);index"`
	ProductName     string `gorm:"type:text"`
	PurityScore     int
	ProcessingLevel string `gorm:"size:16"`
	Ingredients     string `gorm:"type:text"`
	ImageURL        string `gorm:"type:text"`
}
