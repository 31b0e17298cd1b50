package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/models"
)

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	FirstName        string  `json:"first_name" binding:"required"`
	MiddleName       *string `json:"middle_name"`
	LastName         string  `json:"last_name" binding:"required"`
	Add1             string  `json:"add1" binding:"required"`
	Add2             *string `json:"add2"`
	Add3             *string `json:"add3"`
	Add4             *string `json:"add4"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Mobile           string  `json:"mobile" binding:"required"`
	OfficePhone      *string `json:"office_phone"`
	ResidentialPhone *string `json:"residential_phone"`
}

// MergeCustomersRequest lists the customers to merge. The first id survives.
type MergeCustomersRequest struct {
	CustomerIDs []uint `json:"customerIds" binding:"required,min=2,dive,gt=0"`
}

// ListCustomers handles GET /api/v1/customers
func (h *Handler) ListCustomers(c *gin.Context) {
	list, err := h.repo.Customers.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// SearchCustomers handles GET /api/v1/customers/search?q=
func (h *Handler) SearchCustomers(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "VALIDATION_ERROR",
			Message: "Query parameter q is required",
		})
		return
	}

	list, err := h.repo.Customers.Search(c.Request.Context(), term)
	if err != nil {
		h.respondError(c, err, "Failed to search customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetCustomer handles GET /api/v1/customer/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.repo.Customers.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

// CreateCustomer handles POST /api/v1/customer
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	customer := models.Customer{
		FirstName:        strings.TrimSpace(req.FirstName),
		MiddleName:       req.MiddleName,
		LastName:         strings.TrimSpace(req.LastName),
		Add1:             req.Add1,
		Add2:             req.Add2,
		Add3:             req.Add3,
		Add4:             req.Add4,
		Email:            req.Email,
		Mobile:           strings.TrimSpace(req.Mobile),
		OfficePhone:      req.OfficePhone,
		ResidentialPhone: req.ResidentialPhone,
	}
	if err := h.repo.Customers.Create(c.Request.Context(), &customer); err != nil {
		h.respondError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Customer created",
		"customer_id": customer.CustomerID,
		"data":        customer,
	})
}

// UpdateCustomer handles PUT /api/v1/customer/:id
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	if err := h.repo.Customers.Update(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer updated", "customer_id": id})
}

// DeleteCustomer godoc
// @Summary Delete a customer, keeping their orders and measurements
// @Description Clears the customer reference on every order and measurement, then removes the customer.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "customer id"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /customer/{id} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	res, err := h.cascade.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Customer deleted; related orders and measurements kept without a customer",
		"customer_id": res.CustomerID,
		"detached":    res.Detached,
	})
}

// MergeCustomers godoc
// @Summary Merge customers into the first one
// @Description Moves every order and measurement of the other customers to the first, then deletes the others.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MergeCustomersRequest true "ids, survivor first"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /customers/merge [post]
func (h *Handler) MergeCustomers(c *gin.Context) {
	var req MergeCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	res, err := h.cascade.MergeCustomers(c.Request.Context(), req.CustomerIDs)
	if err != nil {
		h.respondError(c, err, "Failed to merge customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Customers merged",
		"customer_id": res.TargetID,
		"merged_ids":  res.MergedIDs,
		"reassigned":  res.Reassigned,
	})
}
