// Package domain holds the ticket lifecycle, seat inventory and the
// acquirer status vocabularies the engine reconciles against.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketStatus values are persisted and exposed verbatim.
type TicketStatus string

const (
	StatusUnknown        TicketStatus = "unknown"
	StatusWaitingPayment TicketStatus = "waiting_payment"
	StatusActive         TicketStatus = "active"
	StatusUsed           TicketStatus = "used"
	StatusExpired        TicketStatus = "expired"
	StatusCanceled       TicketStatus = "canceled"
	StatusNeedRefund     TicketStatus = "need_refund"
	StatusWaitingRefund  TicketStatus = "waiting_refund"
	StatusSuccessRefund  TicketStatus = "success_refund"
	StatusFailRefund     TicketStatus = "fail_refund"
)

// NoRefund labels a ticket that never entered the refund flow.
const NoRefund = "no_refund"

// ReleasedStatuses no longer hold a seat.
var ReleasedStatuses = []TicketStatus{StatusCanceled, StatusSuccessRefund, StatusFailRefund}

type NotificationStatus string

const (
	NotifyNone     NotificationStatus = "no_notify"
	Notify3Days    NotificationStatus = "3_days"
	NotifyDayInDay NotificationStatus = "day_in_day"
	NotifyExpired  NotificationStatus = "expired"
)

type Ticket struct {
	UUID      uuid.UUID
	EventID   *int64
	EventName string
	BillID    string
	UserID    string
	UserEmail string
	Seat      SeatData
	Price     decimal.Decimal

	Status          TicketStatus
	AcquiringStatus string
	PaymentID       *string
	RefundID        *string

	NotificationStatus NotificationStatus
	CheckCount         int
	StatusUpdated      time.Time
	BoughtAt           time.Time

	// Event is populated by queries that join the event row.
	Event *Event
}

// NewTicket issues a ticket for a confirmed booking.
func NewTicket(booking *TemporaryBooking, event *Event, paymentID, acquiringStatus string, status TicketStatus) (*Ticket, error) {
	if booking == nil {
		return nil, NewMissingFieldError("booking")
	}
	if booking.BillID == "" {
		return nil, NewMissingFieldError("bill ID")
	}
	if booking.UserID == "" {
		return nil, NewMissingFieldError("user ID")
	}
	if paymentID == "" {
		return nil, NewMissingFieldError("payment ID")
	}

	now := time.Now().UTC()
	eventID := booking.EventID
	t := &Ticket{
		UUID:               uuid.New(),
		EventID:            &eventID,
		BillID:             booking.BillID,
		UserID:             booking.UserID,
		UserEmail:          booking.Email,
		Seat:               booking.Seat,
		Price:              booking.Price,
		Status:             status,
		AcquiringStatus:    acquiringStatus,
		PaymentID:          &paymentID,
		NotificationStatus: NotifyNone,
		StatusUpdated:      now,
		BoughtAt:           now,
	}
	if event != nil {
		t.EventName = event.Name
		t.Event = event
	}
	return t, nil
}

// TransitionTo moves the ticket to target if the lifecycle allows it.
// Moving to the current status is a no-op.
func (t *Ticket) TransitionTo(target TicketStatus) error {
	if t.Status == target {
		return nil
	}
	if err := t.canTransitionTo(target); err != nil {
		return err
	}
	t.Status = target
	t.StatusUpdated = time.Now().UTC()
	return nil
}

func (t *Ticket) canTransitionTo(target TicketStatus) error {
	switch t.Status {
	case StatusUnknown:
		return t.allow(target,
			StatusWaitingPayment, StatusActive, StatusCanceled,
			StatusWaitingRefund, StatusSuccessRefund, StatusFailRefund,
		)
	case StatusWaitingPayment:
		return t.allow(target, StatusActive, StatusCanceled, StatusUnknown)
	case StatusActive:
		return t.allow(target, StatusUsed, StatusExpired, StatusNeedRefund)
	case StatusNeedRefund:
		return t.allow(target, StatusWaitingRefund, StatusUnknown)
	case StatusWaitingRefund:
		return t.allow(target, StatusSuccessRefund, StatusFailRefund, StatusUnknown)
	}
	return NewInvalidTransitionError(t.Status, target)
}

func (t *Ticket) allow(target TicketStatus, allowed ...TicketStatus) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(t.Status, target)
}

// ApplyPayment folds a polled payment status into the ticket. A ticket that
// would become active for a canceled event goes to need_refund instead.
func (t *Ticket) ApplyPayment(status PaymentStatus, raw string) error {
	target := status.TicketStatus()
	if err := t.TransitionTo(target); err != nil {
		return err
	}
	if raw != "" {
		t.AcquiringStatus = raw
	}
	if t.Status == StatusActive && t.Event != nil && t.Event.Canceled {
		return t.TransitionTo(StatusNeedRefund)
	}
	return nil
}

// ApplyRefund folds a refund status into the ticket. A need_refund ticket
// passes through waiting_refund when the acquirer settles immediately.
func (t *Ticket) ApplyRefund(status RefundStatus, raw string) error {
	target := status.TicketStatus()
	if t.Status == StatusNeedRefund && (target == StatusSuccessRefund || target == StatusFailRefund) {
		if err := t.TransitionTo(StatusWaitingRefund); err != nil {
			return err
		}
	}
	if err := t.TransitionTo(target); err != nil {
		return err
	}
	if raw != "" {
		t.AcquiringStatus = raw
	}
	return nil
}

// MarkUsed consumes the ticket at the venue entrance.
func (t *Ticket) MarkUsed() error {
	return t.TransitionTo(StatusUsed)
}

func (t *Ticket) MarkExpired() error {
	return t.TransitionTo(StatusExpired)
}

// MarkNeedRefund flags an active ticket for refund and resets its poll counter.
func (t *Ticket) MarkNeedRefund() error {
	if err := t.TransitionTo(StatusNeedRefund); err != nil {
		return err
	}
	t.CheckCount = 0
	return nil
}

// RecordCheck counts one reconciliation poll against the acquirer.
func (t *Ticket) RecordCheck() {
	t.CheckCount++
	t.StatusUpdated = time.Now().UTC()
}

// RefundStatusLabel reports the refund side of the ticket.
func (t *Ticket) RefundStatusLabel() string {
	switch t.Status {
	case StatusNeedRefund, StatusWaitingRefund, StatusSuccessRefund, StatusFailRefund:
		return string(t.Status)
	}
	if t.RefundID != nil {
		return string(StatusWaitingRefund)
	}
	return NoRefund
}

// HoldsSeat reports whether the ticket still occupies its seat.
func (t *Ticket) HoldsSeat() bool {
	return !slices.Contains(ReleasedStatuses, t.Status)
}

func (t *Ticket) IsTerminal() bool {
	switch t.Status {
	case StatusUsed, StatusExpired, StatusSuccessRefund, StatusFailRefund, StatusCanceled:
		return true
	}
	return false
}
