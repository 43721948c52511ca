package controllers

import (
	"net/http"
	"strconv"

	"github.com/mark-blue-evans/purescan/services"

	"github.com/gin-gonic/gin"
)

// GET /grocery
func GetGroceryList(c *gin.Context) {
	uid := c.GetUint("userID")

	items, err := services.GetGroceryList(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

type AddGroceryInput struct {
	Barcode     string `json:"barcode" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	PurityScore int    `json:"purity_score"`
}

// POST /grocery
func AddGroceryItem(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AddGroceryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode and product_name required"})
		return
	}

	item, err := services.AddGroceryItem(uid, input.Barcode, input.ProductName, input.PurityScore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DELETE /grocery/:id
func DeleteGroceryItem(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteGroceryItem(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
