package errors

import "net/http"

// Code classifies an error; each code maps onto one gRPC status code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// FromHTTPStatus classifies the status of an upstream HTTP response.
// Missing documents are NotFound; every other failure means the host
// could not serve the request right now.
func FromHTTPStatus(status int) Code {
	switch {
	case status >= 200 && status <= 299:
		return CodeOK
	case status == http.StatusNotFound, status == http.StatusGone:
		return CodeNotFound
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		return CodeUnavailable
	}
}
