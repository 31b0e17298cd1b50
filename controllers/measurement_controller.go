package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/models"
)

// garmentParams reads :garment and ?final, answering 400 on bad values.
func (h *Handler) garmentParams(c *gin.Context) (models.GarmentType, bool, bool) {
	garment, ok := models.ParseGarmentType(c.Param("garment"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "Garment must be one of jacket, shirt, pant",
		})
		return "", false, false
	}

	final, err := strconv.ParseBool(c.DefaultQuery("final", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "Query parameter final must be true or false",
			Error:   err.Error(),
		})
		return "", false, false
	}
	return garment, final, true
}

// CreateMeasurement godoc
// @Summary Record a measurement for an order
// @Description The measurement takes its customer and date from the order. Pass final=true for the confirmed measurement.
// @Tags measurements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param garment path string true "jacket, shirt or pant"
// @Param final query bool false "final measurement"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Router /measurement/{garment} [post]
func (h *Handler) CreateMeasurement(c *gin.Context) {
	garment, final, ok := h.garmentParams(c)
	if !ok {
		return
	}

	rec, _ := models.NewMeasurement(garment, final)
	if err := c.ShouldBindJSON(rec); err != nil {
		h.badRequest(c, err)
		return
	}
	orderNo := strings.TrimSpace(rec.Base().OrderNo)
	if orderNo == "" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "order_no is required",
		})
		return
	}

	if err := h.measurements.Create(c.Request.Context(), orderNo, rec); err != nil {
		h.respondError(c, err, "Failed to record measurement")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Measurement recorded",
		"measurement_id": rec.Base().MeasurementID,
		"data":           rec,
	})
}

// ListCustomerMeasurements handles GET /api/v1/customer/:id/measurements/:garment
func (h *Handler) ListCustomerMeasurements(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	garment, final, ok := h.garmentParams(c)
	if !ok {
		return
	}

	list, err := h.measurements.ListByCustomer(c.Request.Context(), garment, final, id)
	if err != nil {
		h.respondError(c, err, "Failed to list measurements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// ListOrderMeasurements handles GET /api/v1/order/:orderNo/measurements/:garment
func (h *Handler) ListOrderMeasurements(c *gin.Context) {
	garment, final, ok := h.garmentParams(c)
	if !ok {
		return
	}

	list, err := h.measurements.ListByOrder(c.Request.Context(), garment, final, c.Param("orderNo"))
	if err != nil {
		h.respondError(c, err, "Failed to list measurements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}
