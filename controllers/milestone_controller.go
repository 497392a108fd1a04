package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListMilestones(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	milestones, err := services.ListMilestones(currentUserID(c), childID)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, milestones)
}

func CreateMilestone(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := services.CreateMilestone(currentUserID(c), childID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, milestone)
}

func UpdateMilestone(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}
	milestoneID, ok := paramID(c, "milestoneId")
	if !ok {
		return
	}

	var input services.MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := services.UpdateMilestone(currentUserID(c), childID, milestoneID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func DeleteMilestone(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}
	milestoneID, ok := paramID(c, "milestoneId")
	if !ok {
		return
	}

	if err := services.DeleteMilestone(currentUserID(c), childID, milestoneID); err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa cột mốc"})
}
