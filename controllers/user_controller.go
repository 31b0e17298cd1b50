package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/middleware"
)

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Create a staff user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credentials"
// @Success 201 {object} map[string]interface{}
// @Failure 400,409 {object} errorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered",
		"data":    user,
	})
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401 {object} errorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	token, exp, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Logged in",
		"token":      token,
		"expires_at": exp,
	})
}

// Logout godoc
// @Summary Revoke the caller's token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Success: false,
			Code:    "UNAUTHORIZED",
			Message: "Could not extract user information",
			Error:   err.Error(),
		})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		h.respondError(c, err, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// Me godoc
// @Summary Show the signed-in user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401,404 {object} errorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Success: false,
			Code:    "UNAUTHORIZED",
			Message: "Could not extract user information",
			Error:   err.Error(),
		})
		return
	}

	claims, err := middleware.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Success: false,
			Code:    "UNAUTHORIZED",
			Message: "Could not extract token claims",
			Error:   err.Error(),
		})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"data":             user,
		"token_expires_at": time.Unix(claims.RegisteredClaims.Expiry, 0).UTC(),
	})
}
