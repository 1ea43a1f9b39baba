package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrLandingNotFound   = errors.New("landing not found")
	ErrBookingNotFound   = errors.New("temporary booking not found")
	ErrSoldOut           = errors.New("no seats left for landing")
	ErrSeatTaken         = errors.New("seat already sold")
	ErrTicketExists      = errors.New("ticket already issued for bill")
	ErrMissingField      = errors.New("missing required field")
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Retryable interface for errors that can be retried
type Retryable interface {
	IsRetryable() bool
}

const (
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeMissingField      = "MISSING_REQUIRED_FIELD"
	ErrCodeSeatTaken         = "SEAT_TAKEN"
	ErrCodeSoldOut           = "SOLD_OUT"
)

func NewInvalidTransitionError(from, to TicketStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition ticket from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewMissingFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
		Err:     ErrMissingField,
	}
}

func NewSeatTakenError(eventID int64, seat SeatData) *DomainError {
	return &DomainError{
		Code:    ErrCodeSeatTaken,
		Message: fmt.Sprintf("seat %s for event %d is already sold", seat, eventID),
		Err:     ErrSeatTaken,
	}
}

func NewSoldOutError(eventID int64, seat SeatData) *DomainError {
	return &DomainError{
		Code:    ErrCodeSoldOut,
		Message: fmt.Sprintf("no seats left in %s for event %d", seat.Landing(), eventID),
		Err:     ErrSoldOut,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
