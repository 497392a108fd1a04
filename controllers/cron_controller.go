package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

// CheckReminders is hit by an external scheduler. It sends every due, unsent,
// non-dismissed reminder for users who opted into email notifications.
func CheckReminders(c *gin.Context) {
	if secret := os.Getenv("CRON_SECRET"); secret != "" {
		if c.GetHeader("Authorization") != "Bearer "+secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
	}

	result, err := services.DispatchDueReminders(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, result)
}
