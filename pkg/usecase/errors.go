package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrVendorNotFound = errors.New("vendor not found")

	// Mutation errors
	ErrVendorNotDeletable = errors.New("only draft vendors can be deleted")
	ErrInvalidVendor      = errors.New("invalid vendor")

	// Exchange errors
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrVersionMismatch = errors.New("data version mismatch")
)

// Context keys for error values
const (
	VendorIDKey = "vendor_id"
	VersionKey  = "version"
)
