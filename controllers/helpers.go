package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ferbta/babyverse/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// paramID parses a numeric path parameter. A malformed id behaves like a
// missing record.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy"})
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query parameter.
func queryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tham số " + name + " không hợp lệ"})
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// respondServiceError maps service errors onto the API taxonomy: not-found
// (including not-owned) → 404, bad transitions → 400, anything else → 500
// with a generic message.
func respondServiceError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, services.ErrBadTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trạng thái không hợp lệ"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
