package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
)

type CheckInService struct {
	tickets application.TicketRepository
	logger  *slog.Logger
}

func NewCheckInService(tickets application.TicketRepository, logger *slog.Logger) *CheckInService {
	return &CheckInService{tickets: tickets, logger: logger}
}

// CheckTicketQr admits the holder of an active ticket exactly once.
func (s *CheckInService) CheckTicketQr(ctx context.Context, id uuid.UUID) error {
	err := s.tickets.WithTx(ctx, func(repo application.TicketRepository) error {
		ticket, err := repo.FindByUUIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrTicketNotFound) {
				return application.NewTicketGoneError(err)
			}
			return application.NewInternalError(err)
		}

		if ticket.Status != domain.StatusActive {
			return application.NewInvalidTicketError(fmt.Errorf("ticket %s is %s", id, ticket.Status))
		}

		if err := ticket.MarkUsed(); err != nil {
			return application.NewInvalidTicketError(err)
		}

		if err := repo.UpdateTicket(ctx, ticket); err != nil {
			return application.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("ticket checked in", "ticket_id", id)
	return nil
}
