package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
)

// GatewayClient is the port for the external acquirer. Every call ends in
// one of three ways: a payload, an error matching ErrGatewayNotFound, or a
// retryable transport/server error.
type GatewayClient interface {
	CreateBill(ctx context.Context, req CreateBillRequest) (*BillResponse, error)
	GetBillDetails(ctx context.Context, billID string) (*BillResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentResponse, error)
	CreateRefund(ctx context.Context, paymentID, refundID string, req CreateRefundRequest) (*RefundResponse, error)
	GetRefund(ctx context.Context, paymentID, refundID string) (*RefundResponse, error)
}

// ReservationStore keeps TTL-bound soft claims and the list of bills
// awaiting reconciliation.
type ReservationStore interface {
	SaveBooking(ctx context.Context, booking *domain.TemporaryBooking, ttl time.Duration) error
	FindBookingsByEvent(ctx context.Context, eventID int64) ([]*domain.TemporaryBooking, error)
	FindBookingByBill(ctx context.Context, billID string) (*domain.TemporaryBooking, error)
	DeleteBooking(ctx context.Context, booking *domain.TemporaryBooking) error
	AddPendingBill(ctx context.Context, billID string) error
	RemovePendingBill(ctx context.Context, billID string) error
	ListPendingBills(ctx context.Context) ([]string, error)
}

// SeatLedger is the authoritative inventory. IssueTicket and ReleaseSeat
// change landing quantity and ticket rows in one transaction.
type SeatLedger interface {
	FindEvent(ctx context.Context, id int64) (*domain.Event, error)
	FindLanding(ctx context.Context, eventID int64, seat domain.SeatData) (*domain.Landing, error)
	FindSpecialSeat(ctx context.Context, landingID int64, seat string) (*domain.SpecialSeat, error)
	SeatTaken(ctx context.Context, eventID int64, seat domain.SeatData) (bool, error)
	IssueTicket(ctx context.Context, ticket *domain.Ticket) error
	SaveTicket(ctx context.Context, ticket *domain.Ticket, releaseSeat bool) error
	CancelEvent(ctx context.Context, eventID int64) (int64, error)
}

type TicketRepository interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	FindByUUIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	FindByBillID(ctx context.Context, billID string) (*domain.Ticket, error)
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Ticket, error)
	FindByStatus(ctx context.Context, limit int, statuses ...domain.TicketStatus) ([]*domain.Ticket, error)
	FindForNotification(ctx context.Context, kind domain.NotificationStatus, today time.Time, limit int) ([]*domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket *domain.Ticket) error
	// AssignRefundID stores refundID unless the ticket already has one and
	// returns the id in effect.
	AssignRefundID(ctx context.Context, id uuid.UUID, refundID string) (string, error)
	UpdateNotificationStatus(ctx context.Context, ids []uuid.UUID, status domain.NotificationStatus) error
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
	WithTx(ctx context.Context, fn func(repo TicketRepository) error) error
}

// NotificationMessage is one delivery request for the dispatcher.
type NotificationMessage struct {
	Recipients []string       `json:"recipients"`
	Template   string         `json:"template"`
	Payload    map[string]any `json:"payload"`
}

type NotificationDispatcher interface {
	Dispatch(ctx context.Context, msg NotificationMessage) error
}

// EmailSettings exposes the global email kill switch.
type EmailSettings interface {
	SendEmails(ctx context.Context) (bool, error)
	SetSendEmails(ctx context.Context, enabled bool) error
}

type EmailTemplate struct {
	Type    string
	Subject string
	Message string
}

type EmailTemplates interface {
	FindTemplate(ctx context.Context, emailType string) (*EmailTemplate, error)
}
