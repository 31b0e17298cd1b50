package services

import (
	"errors"

	"github.com/kendall-kelly/tailorshop-api/repository"
)

// Service errors. Handlers map them to status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrFabricNotFound     = errors.New("fabric not found")
	ErrFabricInUse        = errors.New("fabric is used by items")
	ErrMeasurementMissing = errors.New("measurement not found")
	ErrUnknownGarment     = errors.New("unknown garment type")
	ErrPhotoLimit         = errors.New("photo limit reached")
	ErrNoImage            = errors.New("fabric has no image")
	ErrOrderExists        = errors.New("order number already in use")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or revoked token")
)

// IsNotFound reports whether err means the addressed row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrFabricNotFound) ||
		errors.Is(err, ErrMeasurementMissing) ||
		errors.Is(err, ErrNoImage)
}

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnknownGarment) ||
		errors.Is(err, repository.ErrUnknownField) ||
		errors.Is(err, repository.ErrNoFields)
}

// IsConflict reports whether err is a clash with existing state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrPhotoLimit) ||
		errors.Is(err, ErrFabricInUse) ||
		errors.Is(err, ErrOrderExists) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, repository.ErrDuplicate)
}
