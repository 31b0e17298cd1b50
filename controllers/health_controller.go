package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tailor shop API is running",
	})
}

// DatabaseStatus checks database connectivity and returns table information
// @Summary Database connectivity and tables
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /database/status [get]
func (h *Handler) DatabaseStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		h.respondError(c, err, "Database connection failed")
		return
	}

	tables, err := h.repo.DB.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		h.respondError(c, err, "Failed to query tables")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
