package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	body := gin.H{
		"status":  statusCode,
		"error":   http.StatusText(statusCode),
		"message": message,
	}
	if details != nil {
		body["errors"] = details
	}
	c.JSON(statusCode, body)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusBadRequest, message, details)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message, nil)
}

// UnsupportedMediaType sends a 415 Unsupported Media Type response
func UnsupportedMediaType(c *gin.Context, message string) {
	Error(c, http.StatusUnsupportedMediaType, message, nil)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusInternalServerError, message, details)
}

// Created sends a 201 Created response carrying the new entity and a
// Location header pointing at it.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends an empty 204 No Content response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
