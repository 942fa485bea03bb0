package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealcraft/backend/internal/service"
)

// Version is reported by the health check.
var Version = "dev"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MealCraft API is running",
		"version": Version,
	})
}

// RegisterRoutes registers the health check, the JSON API and the HTML form.
func RegisterRoutes(router *gin.Engine, planner service.IPlanService) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	planHandler := NewPlanHandler(planner)
	formHandler := NewFormHandler(planner)

	v1 := router.Group("/api/v1")
	planHandler.RegisterRoutes(v1)

	formHandler.RegisterRoutes(router)
}
