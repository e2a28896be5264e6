package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrModelNotFound indicates the requested model does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrInvalidModelID indicates the supplied identifier is not a
	// well-formed ObjectID hex string.
	ErrInvalidModelID = errors.New("invalid model id")

	// ErrMissingImage indicates a create request without an image file.
	ErrMissingImage = errors.New("image file required")

	// ErrUnsupportedFileType indicates an image with a disallowed extension.
	ErrUnsupportedFileType = errors.New("invalid file type, allowed: jpg, jpeg, png, webp")

	// ErrMissingRequiredField indicates a form without name or price.
	ErrMissingRequiredField = errors.New("name and price are required")

	// ErrInvalidPrice indicates a price that does not parse as a finite number.
	ErrInvalidPrice = errors.New("price must be a valid number")

	// ErrUploadFailed wraps an asset host failure during image upload.
	ErrUploadFailed = errors.New("image upload failed")
)
