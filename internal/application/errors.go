package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeTicketGone          = "TICKET_GONE"
	ErrCodeInvalidTicket       = "INVALID_TICKET"
	ErrCodeGatewayUnavailable  = "GATEWAY_UNAVAILABLE"
	ErrCodeGatewayRejected     = "GATEWAY_REJECTED"
	ErrCodeUnknownGatewayState = "UNKNOWN_GATEWAY_STATE"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// NewValidationError is returned for malformed requests. Nothing was touched.
func NewValidationError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    "Invalid request",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewConflictError covers a seat contested by another buyer or already sold.
func NewConflictError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConflict,
		Message:    "Seat is not available",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    "Resource not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewTicketGoneError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTicketGone,
		Message:    "Ticket does not exist",
		HTTPStatus: http.StatusGone,
		Err:        err,
	}
}

func NewInvalidTicketError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidTicket,
		Message:    "Ticket is not valid for entry",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewGatewayUnavailableError wraps transport failures, timeouts and 5xx
// answers. The caller may retry.
func NewGatewayUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeGatewayUnavailable,
		Message:    "Payment gateway is unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewGatewayRejectedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeGatewayRejected,
		Message:    "Payment gateway rejected the operation",
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

func NewUnknownGatewayStateError(status string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnknownGatewayState,
		Message:    fmt.Sprintf("Payment gateway returned unrecognized status %q", status),
		HTTPStatus: http.StatusBadGateway,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// HasCode reports whether err carries a ServiceError with the given code.
func HasCode(err error, code string) bool {
	svcErr, ok := IsServiceError(err)
	return ok && svcErr.Code == code
}
