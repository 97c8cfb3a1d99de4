package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and readable log output.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeCreateFailed indicates a missing resource could not be created.
	CodeCreateFailed ErrorCode = "CREATE_FAILED"

	// CodeReadFailed indicates a resource was opened but its content could
	// not be read in full.
	CodeReadFailed ErrorCode = "READ_FAILED"

	// CodeOpenFailed indicates opening a resource failed for a reason other
	// than absence.
	CodeOpenFailed ErrorCode = "OPEN_FAILED"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Provider errors.

	// CodeNetwork indicates a request to a remote storage backend failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates the storage backend is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
