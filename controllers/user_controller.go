package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

type SettingsInput struct {
	EmailNotifications *bool `json:"emailNotifications" binding:"required"`
}

func GetSettings(c *gin.Context) {
	user, err := services.GetUserSettings(currentUserID(c))
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"emailNotifications": user.EmailNotifications})
}

func UpdateSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserSettings(currentUserID(c), *input.EmailNotifications)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"emailNotifications": user.EmailNotifications})
}
