package errors

import (
	"errors"
)

// codeOf extracts the error code; foreign errors are Internal
func codeOf(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return codeOf(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return codeOf(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return codeOf(err) == CodeFailedPrecondition
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return codeOf(err) == CodeOutOfRange
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return codeOf(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return codeOf(err) == CodeUnavailable
}

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool {
	return codeOf(err) == CodeCanceled
}

// IsDeadlineExceeded checks if an error is a deadline exceeded error
func IsDeadlineExceeded(err error) bool {
	return codeOf(err) == CodeDeadlineExceeded
}
