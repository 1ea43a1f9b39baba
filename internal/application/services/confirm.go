package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
)

type ConfirmService struct {
	ledger  application.SeatLedger
	tickets application.TicketRepository
	store   application.ReservationStore
	gateway application.GatewayClient
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewConfirmService(
	ledger application.SeatLedger,
	tickets application.TicketRepository,
	store application.ReservationStore,
	gateway application.GatewayClient,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ConfirmService {
	return &ConfirmService{
		ledger:  ledger,
		tickets: tickets,
		store:   store,
		gateway: gateway,
		metrics: m,
		logger:  logger,
	}
}

// ConfirmBuying turns a paid bill into a ticket. Calling it again for the
// same bill never issues a second ticket: the bill_id is unique and the
// booking is gone after the first success.
func (s *ConfirmService) ConfirmBuying(ctx context.Context, billID string) (*ConfirmResult, error) {
	result, err := s.confirm(ctx, billID)
	s.metrics.CountConfirmation(confirmOutcome(result, err))
	return result, err
}

func (s *ConfirmService) confirm(ctx context.Context, billID string) (*ConfirmResult, error) {
	if billID == "" {
		return nil, application.NewValidationError(domain.NewMissingFieldError("bill ID"))
	}

	bill, err := s.gateway.GetBillDetails(ctx, billID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	billStatus := domain.ParseBillStatus(bill.Status.Value)
	switch {
	case billStatus.IsFailure():
		s.releaseBooking(ctx, billID)
		return nil, application.NewGatewayRejectedError(fmt.Errorf("bill %s is %s", billID, billStatus))
	case !billStatus.IsSuccess():
		return nil, application.NewUnknownGatewayStateError(bill.Status.Value)
	}

	if len(bill.Payments) == 0 {
		return &ConfirmResult{Outcome: OutcomePending}, nil
	}

	payment := bill.Payments[0]
	paymentStatus := domain.ParsePaymentStatus(payment.Status.Value)
	if paymentStatus.IsFailure() {
		s.releaseBooking(ctx, billID)
		return nil, application.NewGatewayRejectedError(fmt.Errorf("payment %s is %s", payment.PaymentID, payment.Status.Value))
	}

	if _, err := s.tickets.FindByBillID(ctx, billID); err == nil {
		s.releaseBooking(ctx, billID)
		return nil, application.NewNotFoundError(fmt.Errorf("bill %s: %w", billID, domain.ErrTicketExists))
	} else if !errors.Is(err, domain.ErrTicketNotFound) {
		return nil, application.NewInternalError(err)
	}

	booking, err := s.store.FindBookingByBill(ctx, billID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	event, err := s.ledger.FindEvent(ctx, booking.EventID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	ticket, err := domain.NewTicket(booking, event, payment.PaymentID, payment.Status.Value, paymentStatus.TicketStatus())
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if ticket.Status == domain.StatusActive && event.Canceled {
		if err := ticket.MarkNeedRefund(); err != nil {
			return nil, application.NewInternalError(err)
		}
	}

	if err := s.ledger.IssueTicket(ctx, ticket); err != nil {
		switch {
		case errors.Is(err, domain.ErrSoldOut), errors.Is(err, domain.ErrSeatTaken):
			s.deleteBooking(ctx, booking)
			// a concurrent confirm of this bill may have taken the seat first
			if _, findErr := s.tickets.FindByBillID(ctx, billID); findErr == nil {
				return nil, application.NewNotFoundError(fmt.Errorf("bill %s: %w", billID, domain.ErrTicketExists))
			}
			s.logger.Warn("paid bill lost its seat",
				"bill_id", billID,
				"payment_id", payment.PaymentID,
				"event_id", booking.EventID,
				"error", err,
			)
			return nil, application.NewConflictError(err)
		case errors.Is(err, domain.ErrTicketExists):
			s.deleteBooking(ctx, booking)
			return nil, application.NewNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}

	s.deleteBooking(ctx, booking)

	s.logger.Info("ticket issued",
		"bill_id", billID,
		"ticket_id", ticket.UUID,
		"status", ticket.Status,
	)

	return &ConfirmResult{Outcome: OutcomeConfirmed, Ticket: ticket}, nil
}

// releaseBooking drops the soft claim of a bill that will never be paid.
func (s *ConfirmService) releaseBooking(ctx context.Context, billID string) {
	booking, err := s.store.FindBookingByBill(ctx, billID)
	if err != nil {
		if !errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Error("failed to look up booking", "bill_id", billID, "error", err)
		}
		return
	}
	s.deleteBooking(ctx, booking)
}

func (s *ConfirmService) deleteBooking(ctx context.Context, booking *domain.TemporaryBooking) {
	if err := s.store.DeleteBooking(ctx, booking); err != nil {
		s.logger.Error("failed to delete booking", "bill_id", booking.BillID, "error", err)
	}
}

func confirmOutcome(result *ConfirmResult, err error) string {
	if err == nil {
		return string(result.Outcome)
	}
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		return "error"
	}
	switch svcErr.Code {
	case application.ErrCodeNotFound:
		return "not_found"
	case application.ErrCodeGatewayRejected:
		return "rejected"
	case application.ErrCodeConflict:
		return "conflict"
	}
	return "error"
}
