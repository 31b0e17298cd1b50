package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/models"
)

func (h *Handler) missingField(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Code:    "VALIDATION_ERROR",
		Message: field + " is required",
	})
}

// ListSuppliers handles GET /api/v1/suppliers
func (h *Handler) ListSuppliers(c *gin.Context) {
	list, err := h.repo.Suppliers.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetSupplier handles GET /api/v1/supplier/:id
func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	s, err := h.repo.Suppliers.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s})
}

// CreateSupplier handles POST /api/v1/supplier
func (h *Handler) CreateSupplier(c *gin.Context) {
	var s models.Supplier
	if err := c.ShouldBindJSON(&s); err != nil {
		h.badRequest(c, err)
		return
	}
	if strings.TrimSpace(s.SupplierName) == "" {
		h.missingField(c, "supplier_name")
		return
	}
	s.SupplierID = 0

	if err := h.repo.Suppliers.Create(c.Request.Context(), &s); err != nil {
		h.respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Supplier created", "supplier_id": s.SupplierID, "data": s})
}

// UpdateSupplier handles PUT /api/v1/supplier/:id
func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}
	if err := h.repo.Suppliers.Update(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supplier updated", "supplier_id": id})
}

// DeleteSupplier handles DELETE /api/v1/supplier/:id
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Suppliers.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete supplier")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supplier deleted", "supplier_id": id})
}

// ListFabricOrders handles GET /api/v1/fabric-orders
func (h *Handler) ListFabricOrders(c *gin.Context) {
	list, err := h.repo.FabricOrders.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list fabric orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// ListFabricOrdersByCode handles GET /api/v1/fabric-orders/code/:code
func (h *Handler) ListFabricOrdersByCode(c *gin.Context) {
	list, err := h.repo.FabricOrders.ListByFabricCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, err, "Failed to list fabric orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetFabricOrder handles GET /api/v1/fabric-order/:id
func (h *Handler) GetFabricOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	o, err := h.repo.FabricOrders.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Fabric order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": o})
}

// CreateFabricOrder handles POST /api/v1/fabric-order
func (h *Handler) CreateFabricOrder(c *gin.Context) {
	var o models.FabricOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		h.badRequest(c, err)
		return
	}
	if strings.TrimSpace(o.FabricCode) == "" {
		h.missingField(c, "fabric_code")
		return
	}
	o.OrderID = 0

	if err := h.repo.FabricOrders.Create(c.Request.Context(), &o); err != nil {
		h.respondError(c, err, "Failed to create fabric order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Fabric order created", "order_id": o.OrderID, "data": o})
}

// UpdateFabricOrder handles PUT /api/v1/fabric-order/:id
func (h *Handler) UpdateFabricOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}
	if err := h.repo.FabricOrders.Update(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update fabric order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fabric order updated", "order_id": id})
}

// DeleteFabricOrder handles DELETE /api/v1/fabric-order/:id
func (h *Handler) DeleteFabricOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.FabricOrders.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete fabric order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Fabric order deleted", "order_id": id})
}

// ListRawMaterialsOrders handles GET /api/v1/raw-materials-orders
func (h *Handler) ListRawMaterialsOrders(c *gin.Context) {
	list, err := h.repo.RawMaterialsOrders.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list raw materials orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetRawMaterialsOrder handles GET /api/v1/raw-materials-order/:id
func (h *Handler) GetRawMaterialsOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	o, err := h.repo.RawMaterialsOrders.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Raw materials order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": o})
}

// CreateRawMaterialsOrder handles POST /api/v1/raw-materials-order
func (h *Handler) CreateRawMaterialsOrder(c *gin.Context) {
	var o models.RawMaterialsOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		h.badRequest(c, err)
		return
	}
	if strings.TrimSpace(o.ProductName) == "" {
		h.missingField(c, "product_name")
		return
	}
	o.OrderID = 0

	if err := h.repo.RawMaterialsOrders.Create(c.Request.Context(), &o); err != nil {
		h.respondError(c, err, "Failed to create raw materials order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Raw materials order created", "order_id": o.OrderID, "data": o})
}

// UpdateRawMaterialsOrder handles PUT /api/v1/raw-materials-order/:id
func (h *Handler) UpdateRawMaterialsOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}
	if err := h.repo.RawMaterialsOrders.Update(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update raw materials order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Raw materials order updated", "order_id": id})
}

// DeleteRawMaterialsOrder handles DELETE /api/v1/raw-materials-order/:id
func (h *Handler) DeleteRawMaterialsOrder(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.repo.RawMaterialsOrders.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete raw materials order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Raw materials order deleted", "order_id": id})
}
