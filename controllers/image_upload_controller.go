package controllers

import (
	"net/http"

	"github.com/mark-blue-evans/purescan/utils"

	"github.com/gin-gonic/gin"
)

type UploadPhotoInput struct {
	Barcode     string `json:"barcode" binding:"required"`
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /photos — attach a user-taken product photo.
func UploadProductPhoto(c *gin.Context) {
	var input UploadPhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode and image_base64 required"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.ImageBase64, input.Barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
