package errs

import "errors"

// Cross-layer sentinels. Domain packages declare their own kinds next to the aggregates.
var (
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrInvalidCursor           = errors.New("invalid cursor")
	ErrDomainValidation        = errors.New("domain validation error")
)
