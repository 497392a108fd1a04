package controllers

import (
	"net/http"
	"time"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListReminders(c *gin.Context) {
	childID, ok := queryID(c, "childId")
	if !ok {
		return
	}
	showDismissed := c.Query("showDismissed") == "true"

	reminders, err := services.ListReminders(currentUserID(c), childID, showDismissed, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải dữ liệu nhắc nhở"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func CreateReminder(c *gin.Context) {
	var input services.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := services.CreateReminder(currentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy thông tin bé", "Không thể thêm nhắc nhở")
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

func UpdateReminder(c *gin.Context) {
	reminderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.ReminderUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := services.UpdateReminder(currentUserID(c), reminderID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy nhắc nhở", "Không thể cập nhật nhắc nhở")
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func DeleteReminder(c *gin.Context) {
	reminderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteReminder(currentUserID(c), reminderID); err != nil {
		respondServiceError(c, err, "Không tìm thấy nhắc nhở", "Không thể xóa nhắc nhở")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SyncVaccinationReminders backfills reminders for pending vaccinations.
func SyncVaccinationReminders(c *gin.Context) {
	childID, ok := queryID(c, "childId")
	if !ok {
		return
	}

	result, err := services.SyncVaccinationReminders(currentUserID(c), childID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đồng bộ lịch tiêm"})
		return
	}
	c.JSON(http.StatusOK, result)
}
