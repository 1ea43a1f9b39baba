package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

const billExpiryLayout = "2006-01-02T15:04:05-07:00"

type PurchaseService struct {
	ledger   application.SeatLedger
	store    application.ReservationStore
	gateway  application.GatewayClient
	cfg      config.ReservationConfig
	currency string
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewPurchaseService(
	ledger application.SeatLedger,
	store application.ReservationStore,
	gateway application.GatewayClient,
	cfg config.ReservationConfig,
	currency string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *PurchaseService {
	return &PurchaseService{
		ledger:   ledger,
		store:    store,
		gateway:  gateway,
		cfg:      cfg,
		currency: currency,
		validate: validator.New(),
		metrics:  m,
		logger:   logger,
	}
}

// Buy places a soft claim on a seat and opens a bill for it. Nothing is
// sold yet: the ticket is issued by ConfirmBuying once the bill is paid.
func (s *PurchaseService) Buy(ctx context.Context, cmd BuyCommand) (*BuyResult, error) {
	result, err := s.buy(ctx, cmd)
	s.metrics.CountPurchase(purchaseOutcome(err))
	return result, err
}

func (s *PurchaseService) buy(ctx context.Context, cmd BuyCommand) (*BuyResult, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, application.NewValidationError(err)
	}
	if !cmd.Price.IsPositive() {
		return nil, application.NewValidationError(errors.New("price must be positive"))
	}

	event, err := s.ledger.FindEvent(ctx, cmd.EventID)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	if !event.OnSale(time.Now()) {
		return nil, application.NewValidationError(fmt.Errorf("event %d is not on sale", event.ID))
	}

	landing, err := s.ledger.FindLanding(ctx, event.ID, cmd.Seat)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	if landing.Quantity <= 0 {
		return nil, application.NewConflictError(domain.NewSoldOutError(event.ID, cmd.Seat))
	}

	if err := s.checkPrice(ctx, landing, cmd); err != nil {
		return nil, err
	}

	if err := s.claimSeat(ctx, cmd); err != nil {
		return nil, err
	}

	taken, err := s.ledger.SeatTaken(ctx, event.ID, cmd.Seat)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if taken {
		return nil, application.NewConflictError(domain.NewSeatTakenError(event.ID, cmd.Seat))
	}

	billID := uuid.NewString()
	bill, err := s.gateway.CreateBill(ctx, application.CreateBillRequest{
		BillID: billID,
		Amount: application.Amount{
			Currency: s.currency,
			Value:    cmd.Price.StringFixed(2),
		},
		ExpirationDateTime: time.Now().UTC().Add(s.cfg.BillExpiry).Format(billExpiryLayout),
		Comment:            "Payment for ticket to " + event.Name,
		Customer:           application.Customer{Email: cmd.UserEmail},
	})
	if err != nil {
		s.logger.Warn("create bill failed", "bill_id", billID, "event_id", event.ID, "error", err)
		if application.IsGatewayNotFound(err) {
			return nil, application.NewGatewayRejectedError(err)
		}
		return nil, mapGatewayError(err)
	}

	if status := domain.ParseBillStatus(bill.Status.Value); !status.IsSuccess() {
		return nil, application.NewGatewayRejectedError(fmt.Errorf("bill %s created with status %q", billID, bill.Status.Value))
	}

	booking, err := domain.NewTemporaryBooking(event.ID, billID, cmd.UserID, cmd.UserEmail, cmd.Seat, cmd.Price)
	if err != nil {
		return nil, application.NewValidationError(err)
	}
	if err := s.store.SaveBooking(ctx, booking, s.cfg.TTL); err != nil {
		return nil, application.NewInternalError(err)
	}
	if err := s.store.AddPendingBill(ctx, billID); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("seat reserved",
		"bill_id", billID,
		"event_id", event.ID,
		"user_id", cmd.UserID,
		"seat", cmd.Seat.String(),
	)

	return &BuyResult{PayURL: bill.PayURL, BillID: billID}, nil
}

func (s *PurchaseService) checkPrice(ctx context.Context, landing *domain.Landing, cmd BuyCommand) error {
	var special *domain.SpecialSeat
	if cmd.Seat.Seat != nil {
		var err error
		special, err = s.ledger.FindSpecialSeat(ctx, landing.ID, *cmd.Seat.Seat)
		if err != nil {
			return application.NewInternalError(err)
		}
	}

	expected := landing.PriceFor(special)
	if !expected.Equal(cmd.Price) {
		return application.NewValidationError(fmt.Errorf("price %s does not match %s", cmd.Price, expected))
	}
	return nil
}

// claimSeat rejects a seat another user holds a live booking for. The
// caller's own older bookings of the seat are dropped.
func (s *PurchaseService) claimSeat(ctx context.Context, cmd BuyCommand) error {
	bookings, err := s.store.FindBookingsByEvent(ctx, cmd.EventID)
	if err != nil {
		return application.NewInternalError(err)
	}

	for _, b := range bookings {
		if !b.ClaimsSameSeat(cmd.EventID, cmd.Seat) {
			continue
		}
		if b.UserID != cmd.UserID {
			return application.NewConflictError(fmt.Errorf("seat %s is reserved by another buyer: %w", cmd.Seat, domain.ErrSeatTaken))
		}
		if err := s.store.DeleteBooking(ctx, b); err != nil {
			return application.NewInternalError(err)
		}
		if err := s.store.RemovePendingBill(ctx, b.BillID); err != nil {
			return application.NewInternalError(err)
		}
		s.logger.Info("replaced stale booking", "bill_id", b.BillID, "user_id", b.UserID)
	}
	return nil
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return "pay_url"
	case application.HasCode(err, application.ErrCodeConflict):
		return "conflict"
	case application.HasCode(err, application.ErrCodeGatewayRejected):
		return "rejected"
	}
	return "error"
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, domain.ErrEventNotFound) ||
		errors.Is(err, domain.ErrLandingNotFound) ||
		errors.Is(err, domain.ErrTicketNotFound) ||
		errors.Is(err, domain.ErrBookingNotFound) {
		return application.NewNotFoundError(err)
	}
	return application.NewInternalError(err)
}
