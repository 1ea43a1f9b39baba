package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrGatewayNotFound matches any 404 answer from the acquirer.
var ErrGatewayNotFound = errors.New("gateway resource not found")

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type Customer struct {
	Email string `json:"email,omitempty"`
}

type StatusValue struct {
	Value string `json:"value"`
}

type CreateBillRequest struct {
	BillID             string   `json:"-"`
	Amount             Amount   `json:"amount"`
	ExpirationDateTime string   `json:"expirationDateTime"`
	Comment            string   `json:"comment"`
	Customer           Customer `json:"customer"`
}

type BillPayment struct {
	PaymentID string      `json:"paymentId"`
	Status    StatusValue `json:"status"`
}

type BillResponse struct {
	BillID   string        `json:"billId,omitempty"`
	Status   StatusValue   `json:"status"`
	PayURL   string        `json:"payUrl,omitempty"`
	Payments []BillPayment `json:"payments,omitempty"`
}

type PaymentResponse struct {
	PaymentID string      `json:"paymentId,omitempty"`
	Status    StatusValue `json:"status"`
}

type CreateRefundRequest struct {
	Amount Amount `json:"amount"`
}

type RefundResponse struct {
	RefundID string      `json:"refundId,omitempty"`
	Status   StatusValue `json:"status"`
}

// GatewayError is a non-2xx answer from the acquirer.
type GatewayError struct {
	Code       string
	Message    string
	StatusCode int
}

type GatewayErrorResponse struct {
	Err     string `json:"errorCode"`
	Message string `json:"description"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *GatewayError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayNotFound && e.StatusCode == http.StatusNotFound
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// IsGatewayNotFound separates a 404 from every other failure.
func IsGatewayNotFound(err error) bool {
	return errors.Is(err, ErrGatewayNotFound)
}
