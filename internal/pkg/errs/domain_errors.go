package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Stay errors
	ErrInvalidRange = errors.New("invalid date range")

	// Lookup errors
	ErrNotFound    = errors.New("not found")
	ErrNotBookable = errors.New("hotel is not bookable")

	// Inventory errors
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrAllotmentConflict     = errors.New("allotment below reserved units")

	// Concurrency errors
	ErrWriteConflict = errors.New("write conflict")

	// Idempotency errors
	ErrIdempotencyMismatch = errors.New("idempotency key reused with a different request")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
