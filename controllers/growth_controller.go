package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListGrowthRecords(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	records, err := services.ListGrowthRecords(currentUserID(c), childID)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Không thể tải dữ liệu tăng trưởng")
		return
	}
	c.JSON(http.StatusOK, records)
}

func CreateGrowthRecord(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.GrowthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.CreateGrowthRecord(currentUserID(c), childID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Không thể thêm dữ liệu tăng trưởng")
		return
	}
	c.JSON(http.StatusCreated, record)
}
