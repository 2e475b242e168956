package controllers

import (
    "net/http"

    "backend/services"
    "github.com/gin-gonic/gin"
)

// GET /food/search?q=apple
func SearchFoods(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}
	off := services.NewOpenFoodFactsService()
	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	foodSvc := services.NewFoodService(off, rek)
	out, err := foodSvc.Search(q)
    if err != nil {
        c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, out)
}

// GET /food/barcode/:code
func LookupBarcode(c *gin.Context) {
	off := services.NewOpenFoodFactsService()
	out, err := off.LookupBarcode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/recognize  { "image_base64": "data:..." }
func RecognizeFood(c *gin.Context) {
    var req struct{ ImageBase64 string `json:"image_base64" binding:"required"` }
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(400, gin.H{"error": "invalid body"})
        return
    }
    off := services.NewOpenFoodFactsService()
    rek, err := services.NewRekognitionService()
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    foodSvc := services.NewFoodService(off, rek)
    out, err := foodSvc.Recognize(req.ImageBase64)
    if err != nil {
        c.JSON(500, gin.H{"error": err.Error()})
        return
    }
    c.JSON(200, out)
}
