package controllers

import (
	"net/http"
	"strconv"

	"github.com/mark-blue-evans/purescan/services"

	"github.com/gin-gonic/gin"
)

// GET /history
func GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	scans, err := services.GetScanHistory(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scans)
}

// DELETE /history/:id
func DeleteScan(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteScan(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
