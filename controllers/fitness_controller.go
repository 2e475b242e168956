// controllers/fitness_controller.go
package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"github.com/gin-gonic/gin"
)

// POST /fitness: upsert the synced fitness snapshot for a day
func UpsertFitness(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Date string `json:"date"` // YYYY-MM-DD, defaults to today
		services.FitnessInput
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, date.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = d
	}

	if err := services.UpsertFitness(uid, date, req.FitnessInput); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /fitness?date=YYYY-MM-DD
func GetFitness(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, date.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = d
	}

	data, err := services.GetFitnessByDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no fitness data for date"})
		return
	}
	c.JSON(http.StatusOK, data)
}
