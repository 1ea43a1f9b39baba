package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

const (
	userIDHeader    = "X-User-ID"
	userEmailHeader = "X-User-Email"
)

type PurchaseService interface {
	Buy(ctx context.Context, cmd services.BuyCommand) (*services.BuyResult, error)
}

type ConfirmService interface {
	ConfirmBuying(ctx context.Context, billID string) (*services.ConfirmResult, error)
}

type CheckInService interface {
	CheckTicketQr(ctx context.Context, id uuid.UUID) error
}

type QueryService interface {
	GetUserTickets(ctx context.Context, userID string, limit, offset int) ([]*domain.Ticket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
}

type EventService interface {
	CancelEvent(ctx context.Context, eventID int64) (int64, error)
}

// EmailSwitch toggles reminder emails globally.
type EmailSwitch interface {
	SendEmails(ctx context.Context) (bool, error)
	SetSendEmails(ctx context.Context, enabled bool) error
}

type Handlers struct {
	purchase PurchaseService
	confirm  ConfirmService
	checkIn  CheckInService
	query    QueryService
	events   EventService
	emails   EmailSwitch
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(
	purchase PurchaseService,
	confirm ConfirmService,
	checkIn CheckInService,
	query QueryService,
	events EventService,
	emails EmailSwitch,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		purchase: purchase,
		confirm:  confirm,
		checkIn:  checkIn,
		query:    query,
		events:   events,
		emails:   emails,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/tickets/buy", h.BuyTicket)
	mux.HandleFunc("POST /api/v1/bills/{billId}/confirm", h.ConfirmBill)
	mux.HandleFunc("POST /api/v1/tickets/check", h.CheckTicket)
	mux.HandleFunc("GET /api/v1/tickets", h.ListTickets)
	mux.HandleFunc("GET /api/v1/tickets/{ticketId}", h.GetTicket)
	mux.HandleFunc("POST /api/v1/events/{eventId}/cancel", h.CancelEvent)
	mux.HandleFunc("GET /api/v1/settings/email", h.GetEmailSettings)
	mux.HandleFunc("PUT /api/v1/settings/email", h.UpdateEmailSettings)
}
