package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

type RefundService struct {
	ledger   application.SeatLedger
	tickets  application.TicketRepository
	gateway  application.GatewayClient
	currency string
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRefundService(
	ledger application.SeatLedger,
	tickets application.TicketRepository,
	gateway application.GatewayClient,
	currency string,
	logger *slog.Logger,
) *RefundService {
	return &RefundService{
		ledger:   ledger,
		tickets:  tickets,
		gateway:  gateway,
		currency: currency,
		validate: validator.New(),
		logger:   logger,
	}
}

// Refund asks the acquirer to return the money. The refund id is chosen
// by the caller so a repeated request targets the same refund.
func (s *RefundService) Refund(ctx context.Context, cmd RefundCommand) (*RefundResult, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, application.NewValidationError(err)
	}
	if !cmd.Amount.IsPositive() {
		return nil, application.NewValidationError(errors.New("refund amount must be positive"))
	}

	resp, err := s.gateway.CreateRefund(ctx, cmd.PaymentID, cmd.RefundID, application.CreateRefundRequest{
		Amount: application.Amount{
			Currency: s.currency,
			Value:    cmd.Amount.StringFixed(2),
		},
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return newRefundResult(cmd.RefundID, resp), nil
}

func (s *RefundService) CheckRefund(ctx context.Context, paymentID, refundID string) (*RefundResult, error) {
	if paymentID == "" || refundID == "" {
		return nil, application.NewValidationError(domain.NewMissingFieldError("payment ID and refund ID"))
	}

	resp, err := s.gateway.GetRefund(ctx, paymentID, refundID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return newRefundResult(refundID, resp), nil
}

// RequestRefund refunds a need_refund ticket in full. The refund id is
// persisted before the gateway is called, so a retried request reuses it.
func (s *RefundService) RequestRefund(ctx context.Context, ticket *domain.Ticket) (*RefundResult, error) {
	if ticket.PaymentID == nil {
		return nil, application.NewValidationError(domain.NewMissingFieldError("payment ID"))
	}

	refundID, err := s.tickets.AssignRefundID(ctx, ticket.UUID, uuid.NewString())
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	ticket.RefundID = &refundID

	return s.Refund(ctx, RefundCommand{
		PaymentID: *ticket.PaymentID,
		RefundID:  refundID,
		Amount:    ticket.Price,
	})
}

// ApplyRefund stores a polled refund status on the ticket. Reaching
// success_refund gives the seat back to the landing.
func (s *RefundService) ApplyRefund(ctx context.Context, ticket *domain.Ticket, result *RefundResult) error {
	previous := ticket.Status

	ticket.RecordCheck()
	if ticket.RefundID == nil && result.RefundID != "" {
		refundID := result.RefundID
		ticket.RefundID = &refundID
	}
	if err := ticket.ApplyRefund(result.Status, result.AcquiringStatus); err != nil {
		if saveErr := s.ledger.SaveTicket(ctx, ticket, false); saveErr != nil {
			s.logger.Error("failed to record refund poll", "ticket_id", ticket.UUID, "error", saveErr)
		}
		return fmt.Errorf("ticket %s: %w", ticket.UUID, err)
	}

	release := ticket.Status == domain.StatusSuccessRefund && previous != domain.StatusSuccessRefund
	if err := s.ledger.SaveTicket(ctx, ticket, release); err != nil {
		return err
	}

	if previous != ticket.Status {
		s.logger.Info("refund status changed",
			"ticket_id", ticket.UUID,
			"from", previous,
			"to", ticket.Status,
		)
	}
	return nil
}

func newRefundResult(refundID string, resp *application.RefundResponse) *RefundResult {
	id := resp.RefundID
	if id == "" {
		id = refundID
	}
	return &RefundResult{
		Status:          domain.ParseRefundStatus(resp.Status.Value),
		AcquiringStatus: resp.Status.Value,
		RefundID:        id,
	}
}
