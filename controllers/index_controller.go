package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index returns service metadata for the root URL
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Wishlists REST API Service",
		"version": "1.0",
		"paths": gin.H{
			"wishlists": "/wishlists",
		},
	})
}

// Health is the liveness endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
