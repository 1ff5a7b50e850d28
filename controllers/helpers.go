package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Makai-Stern/shoppingify-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the 400-class payload shape.
func respondServiceError(c *gin.Context, err error, resource string) {
	var conflict *services.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": resource + " does not exist."})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidCredentials.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// pageParams reads the optional 1-based page and the limit (default 10) from
// the query string.
func pageParams(c *gin.Context) (*int, int) {
	var page *int
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = &n
		}
	}

	limit := services.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}
