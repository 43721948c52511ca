package controllers

import (
	"errors"
	"net/http"

	"github.com/mark-blue-evans/purescan/services"

	"github.com/gin-gonic/gin"
)

// POST /scan  { "barcode": "737628064502" }
func ScanProduct(c *gin.Context) {
	var req struct {
		Barcode string `json:"barcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode required"})
		return
	}

	uid := c.GetUint("userID")
	svc := services.NewScanService(services.NewOpenFoodFactsService())

	out, err := svc.ScanBarcode(uid, req.Barcode)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// GET /products/search?q=oat+milk
func SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	off := services.NewOpenFoodFactsService()
	out, err := off.SearchProducts(q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
