package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anonprint-backend/internal/models"
)

// HealthCheck godoc
// @Summary     Liveness probe
// @Description Reports process liveness for the hosting platform's probe.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
