package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/models"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	OrderNo    string     `json:"order_no" binding:"required,max=64"`
	CustomerID *uint      `json:"customer_id" binding:"omitempty,gt=0"`
	Date       *time.Time `json:"date"`
	Note       *string    `json:"note"`
}

// ListOrders handles GET /api/v1/orders
func (h *Handler) ListOrders(c *gin.Context) {
	list, err := h.repo.Orders.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// ListCustomerOrders handles GET /api/v1/customer/:id/orders
func (h *Handler) ListCustomerOrders(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	list, err := h.repo.Orders.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetOrder handles GET /api/v1/order/:orderNo
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.repo.Orders.Get(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// CreateOrder handles POST /api/v1/order
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	order := models.Order{
		OrderNo:    req.OrderNo,
		CustomerID: req.CustomerID,
		Note:       req.Note,
	}
	if req.Date != nil {
		order.Date = req.Date.UTC()
	}

	if err := h.orders.Create(c.Request.Context(), &order); err != nil {
		h.respondError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Order created",
		"order_no": order.OrderNo,
		"data":     order,
	})
}

// UpdateOrder handles PUT /api/v1/order/:orderNo. The order number itself
// cannot be changed.
func (h *Handler) UpdateOrder(c *gin.Context) {
	orderNo := c.Param("orderNo")
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	if err := h.repo.Orders.Update(c.Request.Context(), orderNo, fields); err != nil {
		h.respondError(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order updated", "order_no": orderNo})
}

// DeleteOrder godoc
// @Summary Delete an order and everything recorded for it
// @Description Removes the order's photos, items and measurements together with the order. Photo objects that could not be removed from storage are listed under warning.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNo path string true "order number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /order/{orderNo} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	res, err := h.cascade.DeleteOrder(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		h.respondError(c, err, "Failed to delete order")
		return
	}

	body := gin.H{
		"success":  true,
		"message":  "Order and related records deleted",
		"order_no": res.OrderNo,
		"deleted":  res.Deleted,
	}
	if len(res.OrphanedKeys) > 0 {
		body["warning"] = gin.H{
			"message":       "Some photo files could not be removed from storage",
			"orphaned_keys": res.OrphanedKeys,
		}
	}
	c.JSON(http.StatusOK, body)
}
