package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

// ListVaccinations returns a child's vaccination records, materializing them
// from the standard schedule on first access.
func ListVaccinations(c *gin.Context) {
	childID, ok := queryID(c, "childId")
	if !ok {
		return
	}
	if childID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu ID của bé"})
		return
	}

	vaccinations, err := services.ListVaccinations(currentUserID(c), *childID)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy thông tin bé", "Không thể tải danh sách tiêm chủng")
		return
	}
	c.JSON(http.StatusOK, vaccinations)
}

func CreateVaccination(c *gin.Context) {
	var input services.VaccinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vaccination, err := services.CreateVaccination(currentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy thông tin bé", "Không thể tạo bản ghi tiêm chủng")
		return
	}
	c.JSON(http.StatusCreated, vaccination)
}

func UpdateVaccination(c *gin.Context) {
	vaccinationID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.VaccinationUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vaccination, err := services.UpdateVaccination(currentUserID(c), vaccinationID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy bản ghi tiêm chủng", "Không thể cập nhật bản ghi tiêm chủng")
		return
	}
	c.JSON(http.StatusOK, vaccination)
}

func DeleteVaccination(c *gin.Context) {
	vaccinationID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteVaccination(currentUserID(c), vaccinationID); err != nil {
		respondServiceError(c, err, "Không tìm thấy bản ghi tiêm chủng", "Không thể xóa bản ghi tiêm chủng")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa bản ghi tiêm chủng"})
}
