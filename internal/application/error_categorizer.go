package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	// Context Errors (Transient - network/timeout issues)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// Service/Application Errors
	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidation, ErrCodeNotFound, ErrCodeTicketGone, ErrCodeInvalidTicket:
			return CategoryClientError
		case ErrCodeConflict:
			return CategoryBusinessRule
		case ErrCodeGatewayRejected:
			return CategoryPermanent
		case ErrCodeGatewayUnavailable, ErrCodeTimeout, ErrCodeUnknownGatewayState:
			return CategoryTransient
		case ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	// Domain Errors (Business Rules)
	if errors.Is(err, domain.ErrSoldOut) ||
		errors.Is(err, domain.ErrSeatTaken) ||
		errors.Is(err, domain.ErrTicketExists) ||
		errors.Is(err, domain.ErrInvalidTransition) {
		return CategoryBusinessRule
	}

	if errors.Is(err, domain.ErrTicketNotFound) ||
		errors.Is(err, domain.ErrEventNotFound) ||
		errors.Is(err, domain.ErrLandingNotFound) ||
		errors.Is(err, domain.ErrBookingNotFound) ||
		errors.Is(err, domain.ErrMissingField) {
		return CategoryClientError
	}

	// Gateway Errors (External API)
	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.IsRetryable() {
			return CategoryTransient
		}
		if gwErr.StatusCode == http.StatusNotFound {
			return CategoryClientError
		}
		return CategoryPermanent
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrSeatTaken),
		errors.Is(err, domain.ErrTicketExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrLandingNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.IsRetryable() {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, domain.ErrTicketNotFound) {
		return "TICKET_NOT_FOUND"
	}
	if errors.Is(err, domain.ErrEventNotFound) {
		return "EVENT_NOT_FOUND"
	}

	if gwErr, ok := IsGatewayError(err); ok && gwErr.Code != "" {
		return strings.ToUpper(gwErr.Code)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
