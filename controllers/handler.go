package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/kendall-kelly/tailorshop-api/utils"
	"go.uber.org/zap"
)

// Handler serves the HTTP API on top of the services.
type Handler struct {
	repo         *repository.Repository
	cascade      *services.CascadeService
	orders       *services.OrderService
	measurements *services.MeasurementService
	images       *services.ImageService
	auth         *services.AuthService
	log          *zap.Logger
}

func NewHandler(repo *repository.Repository, store services.BlobStore, auth *services.AuthService, log *zap.Logger) *Handler {
	return &Handler{
		repo:         repo,
		cascade:      services.NewCascadeService(repo, store, log),
		orders:       services.NewOrderService(repo, log),
		measurements: services.NewMeasurementService(repo, log),
		images:       services.NewImageService(repo, store, log),
		auth:         auth,
		log:          log.Named("http"),
	}
}

// RegisterValidators adds the custom binding tags used by request structs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return v.RegisterValidation("garment", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseGarmentType(fl.Field().String())
		return ok
	})
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// respondError maps err onto a status code and writes the error body.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, errorResponse{Success: false, Code: code, Message: message, Error: err.Error()})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request data",
		Error:   err.Error(),
	})
}

func classify(err error) (int, string) {
	var fileErr *utils.FileUploadError
	switch {
	case errors.As(err, &fileErr):
		return http.StatusBadRequest, fileErr.Code
	case services.IsValidation(err):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case services.IsNotFound(err):
		return http.StatusNotFound, "NOT_FOUND"
	case services.IsConflict(err):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// uintParam reads a positive numeric path parameter, answering 400 when it
// is not one.
func (h *Handler) uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "INVALID_ID",
			Message: "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// bindFields reads a partial update body.
func (h *Handler) bindFields(c *gin.Context) (map[string]any, bool) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.badRequest(c, err)
		return nil, false
	}
	return fields, true
}
