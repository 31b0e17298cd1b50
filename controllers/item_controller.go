package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/services"
)

// CreateItemRequest adds one item of the garment named in the path.
type CreateItemRequest struct {
	OrderNo       string `json:"order_no" binding:"required"`
	ItemName      string `json:"item_name"`
	MeasurementID string `json:"measurement_id" binding:"required"`
	Fabric        string `json:"fabric"`
	LiningFabric  string `json:"lining_fabric"`
}

// BatchItem is one entry of CreateItemsRequest.
type BatchItem struct {
	ItemName      string `json:"item_name"`
	ItemType      string `json:"item_type" binding:"required,garment"`
	MeasurementID string `json:"measurement_id" binding:"required"`
	Fabric        string `json:"fabric"`
	LiningFabric  string `json:"lining_fabric"`
}

// CreateItemsRequest adds several items to one order, all or none.
type CreateItemsRequest struct {
	OrderNo string      `json:"order_no" binding:"required"`
	Items   []BatchItem `json:"items" binding:"required,min=1,dive"`
}

// ListItems handles GET /api/v1/items
func (h *Handler) ListItems(c *gin.Context) {
	list, err := h.repo.Items.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// ListOrderItems handles GET /api/v1/order/:orderNo/items
func (h *Handler) ListOrderItems(c *gin.Context) {
	list, err := h.repo.Items.ListByOrder(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		h.respondError(c, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetItem handles GET /api/v1/item/:id
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	item, err := h.repo.Items.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// CreateItem godoc
// @Summary Add one item to an order
// @Description Fabric and lining_fabric are fabric codes or ids. Unknown codes are registered as placeholder fabrics.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param garment path string true "jacket, shirt or pant"
// @Param body body CreateItemRequest true "item"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Router /item/{garment} [post]
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	item, err := h.cascade.CreateItem(c.Request.Context(), req.OrderNo, services.ItemDescriptor{
		ItemName:      req.ItemName,
		ItemType:      c.Param("garment"),
		MeasurementID: req.MeasurementID,
		Fabric:        req.Fabric,
		LiningFabric:  req.LiningFabric,
	})
	if err != nil {
		h.respondError(c, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Item created",
		"item_id": item.ItemID,
		"data":    item,
	})
}

// CreateItems godoc
// @Summary Add several items to an order at once
// @Description Either every item is created or none is.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateItemsRequest true "items"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /items [post]
func (h *Handler) CreateItems(c *gin.Context) {
	var req CreateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	descs := make([]services.ItemDescriptor, len(req.Items))
	for i, it := range req.Items {
		descs[i] = services.ItemDescriptor{
			ItemName:      it.ItemName,
			ItemType:      it.ItemType,
			MeasurementID: it.MeasurementID,
			Fabric:        it.Fabric,
			LiningFabric:  it.LiningFabric,
		}
	}

	items, err := h.cascade.CreateItems(c.Request.Context(), req.OrderNo, descs)
	if err != nil {
		h.respondError(c, err, "Failed to create items")
		return
	}

	ids := make([]uint, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Items created",
		"item_ids": ids,
		"data":     items,
	})
}

// UpdateItem handles PUT /api/v1/item/:id. fabric_id and lining_fabric_id must
// name existing fabrics; fabric and lining_fabric take a code and create a
// placeholder when needed.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	if err := h.cascade.UpdateItem(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item updated", "item_id": id})
}

// DeleteItem handles DELETE /api/v1/item/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Items.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted", "item_id": id})
}
