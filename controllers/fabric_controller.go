package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/models"
)

// CreateFabricRequest represents the request body for registering a fabric
type CreateFabricRequest struct {
	Code            string  `json:"code" binding:"required"`
	Description     string  `json:"description"`
	AvailableLength float64 `json:"available_length" binding:"gte=0"`
	FabricSupplier  string  `json:"fabric_supplier"`
	FabricBrand     string  `json:"fabric_brand"`
	StockLocation   string  `json:"stock_location"`
	Barcode         string  `json:"barcode"`
}

// EnsureFabricRequest names a fabric by code or id.
type EnsureFabricRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// ListFabrics handles GET /api/v1/fabrics
func (h *Handler) ListFabrics(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.repo.Fabrics.List(ctx)
	if err != nil {
		h.respondError(c, err, "Failed to list fabrics")
		return
	}
	for i := range list {
		h.images.ImageURL(ctx, &list[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetFabric handles GET /api/v1/fabric/:fabricId
func (h *Handler) GetFabric(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}

	fabric, err := h.repo.Fabrics.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Fabric not found")
		return
	}
	h.images.ImageURL(c.Request.Context(), fabric)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fabric})
}

// CreateFabric handles POST /api/v1/fabric
func (h *Handler) CreateFabric(c *gin.Context) {
	var req CreateFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.Fabrics.GetByCode(ctx, req.Code); err == nil {
		c.JSON(http.StatusConflict, errorResponse{
			Success: false,
			Code:    "CONFLICT",
			Message: "A fabric with this code already exists",
		})
		return
	}

	fabric := models.Fabric{
		Code:            req.Code,
		Description:     req.Description,
		AvailableLength: req.AvailableLength,
		FabricSupplier:  req.FabricSupplier,
		FabricBrand:     req.FabricBrand,
		StockLocation:   req.StockLocation,
		Barcode:         req.Barcode,
	}
	if err := h.repo.Fabrics.Create(ctx, &fabric); err != nil {
		h.respondError(c, err, "Failed to create fabric")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Fabric created",
		"fabric_id": fabric.FabricID,
		"data":      fabric,
	})
}

// EnsureFabric godoc
// @Summary Look up a fabric by code or id, registering a placeholder if unknown
// @Tags fabrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnsureFabricRequest true "fabric code or id"
// @Success 200 {object} map[string]interface{} "existing fabric"
// @Success 201 {object} map[string]interface{} "placeholder created"
// @Failure 400 {object} errorResponse
// @Router /fabrics/ensure [post]
func (h *Handler) EnsureFabric(c *gin.Context) {
	var req EnsureFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	fabric, created, err := h.cascade.EnsureFabric(c.Request.Context(), req.Identifier)
	if err != nil {
		h.respondError(c, err, "Failed to provision fabric")
		return
	}
	if fabric == nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "identifier must not be blank",
		})
		return
	}

	status, message := http.StatusOK, "Fabric exists"
	if created {
		status, message = http.StatusCreated, "Fabric created"
	}
	c.JSON(status, gin.H{
		"success":   true,
		"message":   message,
		"created":   created,
		"fabric_id": fabric.FabricID,
		"data":      fabric,
	})
}

// UpdateFabric handles PUT /api/v1/fabric/:fabricId
func (h *Handler) UpdateFabric(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	if err := h.repo.Fabrics.Update(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update fabric")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fabric updated", "fabric_id": id})
}

// DeleteFabric handles DELETE /api/v1/fabric/:fabricId. A fabric used by any
// item cannot be deleted.
func (h *Handler) DeleteFabric(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}

	removed, err := h.images.RemoveFabric(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to delete fabric")
		return
	}

	body := gin.H{"success": true, "message": "Fabric deleted", "fabric_id": id}
	if !removed {
		body["warning"] = "Fabric image could not be removed from storage"
	}
	c.JSON(http.StatusOK, body)
}
