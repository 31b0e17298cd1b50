package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PhotoUploadRequest names the file the client is about to upload.
type PhotoUploadRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// UploadFabricImage godoc
// @Summary Upload a fabric image
// @Description Multipart upload in the image field. Accepts .png, .jpg, .jpeg and .webp up to 10 MB and replaces any previous image.
// @Tags fabrics
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param fabricId path int true "fabric id"
// @Param image formData file true "image file"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /fabric/{fabricId}/upload-image [post]
func (h *Handler) UploadFabricImage(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Code:    "MISSING_FILE",
			Message: "An image file is required in the image field",
			Error:   err.Error(),
		})
		return
	}

	fabric, err := h.images.UploadFabricImage(c.Request.Context(), id, fileHeader)
	if err != nil {
		h.respondError(c, err, "Failed to upload fabric image")
		return
	}
	h.images.ImageURL(c.Request.Context(), fabric)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Fabric image uploaded",
		"fabric_id": fabric.FabricID,
		"data":      fabric,
	})
}

// GetFabricImage handles GET /api/v1/fabric/:fabricId/image and returns a
// time-limited download URL.
func (h *Handler) GetFabricImage(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}

	url, err := h.images.FabricImageURL(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Fabric image not available")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "fabric_id": id, "image_url": url})
}

// DeleteFabricImage handles DELETE /api/v1/fabric/:fabricId/image
func (h *Handler) DeleteFabricImage(c *gin.Context) {
	id, ok := h.uintParam(c, "fabricId")
	if !ok {
		return
	}

	removed, err := h.images.DeleteFabricImage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to delete fabric image")
		return
	}

	body := gin.H{"success": true, "message": "Fabric image deleted", "fabric_id": id}
	if !removed {
		body["warning"] = "Image file could not be removed from storage"
	}
	c.JSON(http.StatusOK, body)
}

// RequestPhotoUpload godoc
// @Summary Reserve a photo slot on an order
// @Description Records the photo and returns a presigned URL to PUT the file to. An order holds at most five photos.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderNo path string true "order number"
// @Param body body PhotoUploadRequest true "file name"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,409 {object} errorResponse
// @Router /order/{orderNo}/photos/upload-url [post]
func (h *Handler) RequestPhotoUpload(c *gin.Context) {
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	upload, err := h.images.RequestPhotoUpload(c.Request.Context(), c.Param("orderNo"), strings.TrimSpace(req.Filename))
	if err != nil {
		h.respondError(c, err, "Failed to prepare photo upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Upload the photo with a PUT to upload_url",
		"photo_id":   upload.Photo.PhotoID,
		"upload_url": upload.UploadURL,
		"data":       upload.Photo,
	})
}

// ListPhotos handles GET /api/v1/order/:orderNo/photos
func (h *Handler) ListPhotos(c *gin.Context) {
	photos, err := h.images.ListPhotos(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		h.respondError(c, err, "Failed to list photos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": photos})
}

// DeletePhoto handles DELETE /api/v1/order/:orderNo/photos/:photoId
func (h *Handler) DeletePhoto(c *gin.Context) {
	photoID, ok := h.uintParam(c, "photoId")
	if !ok {
		return
	}

	removed, err := h.images.DeletePhoto(c.Request.Context(), c.Param("orderNo"), photoID)
	if err != nil {
		h.respondError(c, err, "Failed to delete photo")
		return
	}

	body := gin.H{"success": true, "message": "Photo deleted", "photo_id": photoID}
	if !removed {
		body["warning"] = "Photo file could not be removed from storage"
	}
	c.JSON(http.StatusOK, body)
}
