package domain

import "strings"

// BillStatus is the acquirer's view of a bill.
type BillStatus string

const (
	BillCreated  BillStatus = "CREATED"
	BillPaid     BillStatus = "PAID"
	BillExpired  BillStatus = "EXPIRED"
	BillDeclined BillStatus = "DECLINED"
	BillUnknown  BillStatus = "UNKNOWN"
)

var billStatuses = map[string]BillStatus{
	"CREATED":  BillCreated,
	"PAID":     BillPaid,
	"EXPIRED":  BillExpired,
	"DECLINED": BillDeclined,
}

// ParseBillStatus never fails; unmapped tokens become BillUnknown.
func ParseBillStatus(raw string) BillStatus {
	if s, ok := billStatuses[normalize(raw)]; ok {
		return s
	}
	return BillUnknown
}

func (s BillStatus) IsSuccess() bool {
	return s == BillCreated || s == BillPaid
}

func (s BillStatus) IsFailure() bool {
	return s == BillExpired || s == BillDeclined
}

// PaymentStatus is the acquirer's view of a single payment attempt.
type PaymentStatus string

const (
	PaymentWaiting   PaymentStatus = "WAITING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentDeclined  PaymentStatus = "DECLINED"
	PaymentUnknown   PaymentStatus = "UNKNOWN"
)

var paymentStatuses = map[string]PaymentStatus{
	"WAITING":   PaymentWaiting,
	"COMPLETED": PaymentCompleted,
	"DECLINED":  PaymentDeclined,
	"FAILED":    PaymentDeclined,
	"CANCELED":  PaymentDeclined,
}

func ParsePaymentStatus(raw string) PaymentStatus {
	if s, ok := paymentStatuses[normalize(raw)]; ok {
		return s
	}
	return PaymentUnknown
}

func (s PaymentStatus) IsFailure() bool {
	return s == PaymentDeclined
}

// TicketStatus maps the payment state onto the ticket lifecycle.
func (s PaymentStatus) TicketStatus() TicketStatus {
	switch s {
	case PaymentWaiting:
		return StatusWaitingPayment
	case PaymentCompleted:
		return StatusActive
	case PaymentDeclined:
		return StatusCanceled
	default:
		return StatusUnknown
	}
}

// RefundStatus is the acquirer's view of a refund.
type RefundStatus string

const (
	RefundWaiting   RefundStatus = "WAITING"
	RefundCompleted RefundStatus = "COMPLETED"
	RefundDeclined  RefundStatus = "DECLINED"
	RefundUnknown   RefundStatus = "UNKNOWN"
)

var refundStatuses = map[string]RefundStatus{
	"WAITING":   RefundWaiting,
	"PARTIAL":   RefundWaiting,
	"COMPLETED": RefundCompleted,
	"SUCCESS":   RefundCompleted,
	"DECLINED":  RefundDeclined,
	"FAILED":    RefundDeclined,
}

func ParseRefundStatus(raw string) RefundStatus {
	if s, ok := refundStatuses[normalize(raw)]; ok {
		return s
	}
	return RefundUnknown
}

func (s RefundStatus) TicketStatus() TicketStatus {
	switch s {
	case RefundWaiting:
		return StatusWaitingRefund
	case RefundCompleted:
		return StatusSuccessRefund
	case RefundDeclined:
		return StatusFailRefund
	default:
		return StatusUnknown
	}
}

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
