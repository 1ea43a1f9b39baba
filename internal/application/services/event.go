package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
)

type EventService struct {
	ledger application.SeatLedger
	logger *slog.Logger
}

func NewEventService(ledger application.SeatLedger, logger *slog.Logger) *EventService {
	return &EventService{ledger: ledger, logger: logger}
}

// CancelEvent stops sales and queues every active ticket for refund. The
// refund sweep takes it from there.
func (s *EventService) CancelEvent(ctx context.Context, eventID int64) (int64, error) {
	flagged, err := s.ledger.CancelEvent(ctx, eventID)
	if err != nil {
		return 0, notFoundOrInternal(err)
	}

	s.logger.Info("event canceled", "event_id", eventID, "tickets_to_refund", flagged)
	return flagged, nil
}
