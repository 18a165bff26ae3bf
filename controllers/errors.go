package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BakhatBug/Keto-Slim/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service error types onto HTTP statuses. Anything
// unrecognized is a storage or internal failure.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError
	var unauthorized *services.UnauthorizedError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam reads a numeric path parameter. Malformed ids are rejected
// before any service call.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
