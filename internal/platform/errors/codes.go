// Package errors provides structured error handling for catalog and command
// failures.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"

	// Input errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidFilter   Code = "INVALID_FILTER"

	// Caller contract errors
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"

	// Startup errors
	CodeDatasetLoadFailed Code = "DATASET_LOAD_FAILED"
)

// CallerFault reports whether the code describes a request the caller can fix.
func (c Code) CallerFault() bool {
	switch c {
	case CodeInvalidArgument,
		CodeInvalidFilter,
		CodeUnknownOperation:
		return true
	default:
		return false
	}
}
