package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
)

type PaymentService struct {
	ledger  application.SeatLedger
	gateway application.GatewayClient
	logger  *slog.Logger
}

func NewPaymentService(ledger application.SeatLedger, gateway application.GatewayClient, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		ledger:  ledger,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *PaymentService) CheckPayment(ctx context.Context, paymentID string) (*PaymentResult, error) {
	if paymentID == "" {
		return nil, application.NewValidationError(domain.NewMissingFieldError("payment ID"))
	}

	resp, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return &PaymentResult{
		Status:          domain.ParsePaymentStatus(resp.Status.Value),
		AcquiringStatus: resp.Status.Value,
	}, nil
}

// ApplyPayment stores a polled payment status on the ticket. A canceled
// payment gives the seat back to the landing in the same transaction.
func (s *PaymentService) ApplyPayment(ctx context.Context, ticket *domain.Ticket, result *PaymentResult) error {
	previous := ticket.Status

	ticket.RecordCheck()
	if err := ticket.ApplyPayment(result.Status, result.AcquiringStatus); err != nil {
		if saveErr := s.ledger.SaveTicket(ctx, ticket, false); saveErr != nil {
			s.logger.Error("failed to record payment poll", "ticket_id", ticket.UUID, "error", saveErr)
		}
		return fmt.Errorf("ticket %s: %w", ticket.UUID, err)
	}

	release := ticket.Status == domain.StatusCanceled && previous != domain.StatusCanceled
	if err := s.ledger.SaveTicket(ctx, ticket, release); err != nil {
		return err
	}

	if previous != ticket.Status {
		s.logger.Info("payment status changed",
			"ticket_id", ticket.UUID,
			"from", previous,
			"to", ticket.Status,
		)
	}
	return nil
}
