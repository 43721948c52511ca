package services

import (
	"github.com/mark-blue-evans/purescan/config"
	"github.com/mark-blue-evans/purescan/models"
)

func GetUserByID(userID uint) (models.User, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	return user, err
}

// UpdateProfile changes the display name and/or alert threshold. Zero values
// leave the existing setting untouched.
func UpdateProfile(userID uint, fullName string, alertThreshold int) (models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return user, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if alertThreshold > 0 {
		user.AlertThreshold = alertThreshold
	}
	err = config.DB.Save(&user).Error
	return user, err
}
