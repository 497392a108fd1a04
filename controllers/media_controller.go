package controllers

import (
	"net/http"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func ListMedia(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	media, err := services.ListMedia(currentUserID(c), childID)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, media)
}

func UploadMedia(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := services.CreateMedia(currentUserID(c), childID, input)
	if err != nil {
		respondServiceError(c, err, "Không tìm thấy trẻ", "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, media)
}

func DeleteMedia(c *gin.Context) {
	childID, ok := paramID(c, "id")
	if !ok {
		return
	}
	mediaID, ok := paramID(c, "mediaId")
	if !ok {
		return
	}

	if err := services.DeleteMedia(currentUserID(c), childID, mediaID); err != nil {
		respondServiceError(c, err, "Không tìm thấy", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
