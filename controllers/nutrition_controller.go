package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListFeedingLogs(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	logs, err := services.ListFeedingLogs(currentUserID(c), childID)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Không thể tải dữ liệu dinh dưỡng")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func CreateFeedingLog(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.FeedingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateFeedingLog(currentUserID(c), childID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Không thể thêm dữ liệu dinh dưỡng")
		return
	}
	c.JSON(http.StatusCreated, entry)
}
