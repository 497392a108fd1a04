package controllers

import (
	"net/http"
	"time"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListChildren(c *gin.Context) {
	children, err := services.ListChildren(currentUserID(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải danh sách con"})
		return
	}
	c.JSON(http.StatusOK, children)
}

func CreateChild(c *gin.Context) {
	var input services.ChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := services.CreateChild(currentUserID(c), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo hồ sơ con"})
		return
	}
	c.JSON(http.StatusCreated, child)
}

func GetChild(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	detail, err := services.GetChild(currentUserID(c), childID, time.Now())
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Không thể tải thông tin")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func UpdateChild(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.ChildUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := services.UpdateChild(currentUserID(c), childID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Không thể cập nhật")
		return
	}
	c.JSON(http.StatusOK, child)
}

func DeleteChild(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.SoftDeleteChild(currentUserID(c), childID); err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Không thể xóa")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
