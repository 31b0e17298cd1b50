package utils

import (
	"fmt"
	"mime/multipart"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
)

// imageContentTypes maps every accepted image extension to its content type.
var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateImageFile validates the uploaded file format and size and returns
// the content type to store it with.
func ValidateImageFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}
	return ValidateImageName(fileHeader.Filename)
}

// ValidateImageName checks the file extension and returns the matching content type.
func ValidateImageName(filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", &FileUploadError{
			Code:    "INVALID_FILE_FORMAT",
			Message: fmt.Sprintf("Only %s files are allowed", strings.Join(allowedExtensions(), ", ")),
		}
	}
	return contentType, nil
}

func allowedExtensions() []string {
	exts := make([]string, 0, len(imageContentTypes))
	for ext := range imageContentTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ObjectKey builds the storage key <collection>/<id>/<nonce>_<filename>. The
// nonce keeps repeated uploads of the same file name apart.
func ObjectKey(collection, id, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	id = strings.ReplaceAll(id, "/", "_")
	return fmt.Sprintf("%s/%s/%s_%s", collection, id, uuid.NewString()[:8], name)
}
