package services

import (
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/shopspring/decimal"
)

type BuyCommand struct {
	UserID    string `validate:"required,max=64"`
	UserEmail string `validate:"omitempty,email,max=255"`
	EventID   int64  `validate:"required,gt=0"`
	Seat      domain.SeatData
	Price     decimal.Decimal
}

type RefundCommand struct {
	PaymentID string `validate:"required"`
	RefundID  string `validate:"required"`
	Amount    decimal.Decimal
}

type BuyResult struct {
	PayURL string
	BillID string
}

type ConfirmOutcome string

const (
	OutcomeConfirmed ConfirmOutcome = "confirmed"
	OutcomePending   ConfirmOutcome = "pending"
)

type ConfirmResult struct {
	Outcome ConfirmOutcome
	Ticket  *domain.Ticket
}

// PaymentResult is a polled payment mapped onto the ticket vocabulary.
type PaymentResult struct {
	Status          domain.PaymentStatus
	AcquiringStatus string
}

func (r PaymentResult) TicketStatus() domain.TicketStatus {
	return r.Status.TicketStatus()
}

type RefundResult struct {
	Status          domain.RefundStatus
	AcquiringStatus string
	RefundID        string
}

func (r RefundResult) TicketStatus() domain.TicketStatus {
	return r.Status.TicketStatus()
}
