package controllers

import (
	"net/http"

	"github.com/mark-blue-evans/purescan/services"

	"github.com/gin-gonic/gin"
)

// GET /user/profile
func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"full_name":       user.FullName,
		"alert_threshold": user.AlertThreshold,
	})
}

type UpdateProfileInput struct {
	FullName       string `json:"full_name"`
	AlertThreshold int    `json:"alert_threshold"`
}

// PUT /user/profile
func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.AlertThreshold < 0 || input.AlertThreshold > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_threshold must be between 0 and 100"})
		return
	}

	user, err := services.UpdateProfile(uid, input.FullName, input.AlertThreshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"full_name":       user.FullName,
		"alert_threshold": user.AlertThreshold,
	})
}
