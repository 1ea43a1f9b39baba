package services

import (
	"context"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type QueryService struct {
	tickets application.TicketRepository
}

func NewQueryService(tickets application.TicketRepository) *QueryService {
	return &QueryService{tickets: tickets}
}

func (s *QueryService) GetUserTickets(ctx context.Context, userID string, limit, offset int) ([]*domain.Ticket, error) {
	if userID == "" {
		return nil, application.NewValidationError(domain.NewMissingFieldError("user ID"))
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	tickets, err := s.tickets.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return tickets, nil
}

func (s *QueryService) GetTicket(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByUUID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return ticket, nil
}
