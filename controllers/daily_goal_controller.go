// controllers/daily_goal_controller.go
package controllers

import (
	"backend/config"
	"backend/models"
	"backend/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
    email := c.MustGet("email").(string)
    var user models.User
    if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
        return
    }

    goal, progress, err := services.GetGoalsAndProgressByDate(user.ID, time.Now())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func UpdateGoals(c *gin.Context) {
    email := c.MustGet("email").(string)
    var user models.User
    if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
        return
    }

    var req services.GoalInput
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    if err := services.UpsertGoals(user.ID, req); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Status(http.StatusNoContent)
}

func GetGoalsByDate(c *gin.Context) {
	email := c.MustGet("email").(string)
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	dateStr := c.Query("date") // expected format: YYYY-MM-DD
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, progress, err := services.GetGoalsAndProgressByDate(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    dateStr,
		"goals":   goal,
		"progress": progress,
	})
}
