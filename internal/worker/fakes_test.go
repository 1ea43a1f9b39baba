package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type outcome struct {
	result *services.ConfirmResult
	err    error
}

type fakeConfirmer struct {
	mu       sync.Mutex
	outcomes map[string]outcome
	calls    []string
}

func (f *fakeConfirmer) ConfirmBuying(_ context.Context, billID string) (*services.ConfirmResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, billID)
	o, ok := f.outcomes[billID]
	if !ok {
		return nil, application.NewNotFoundError(domain.ErrBookingNotFound)
	}
	return o.result, o.err
}

type fakeBills struct {
	mu      sync.Mutex
	ids     []string
	removed []string
	listErr error
}

func (f *fakeBills) ListPendingBills(context.Context) ([]string, error) {
	return slices.Clone(f.ids), f.listErr
}

func (f *fakeBills) RemovePendingBill(_ context.Context, billID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, billID)
	return nil
}

type fakeTickets struct {
	mu          sync.Mutex
	byStatus    map[domain.TicketStatus][]*domain.Ticket
	toNotify    map[domain.NotificationStatus][]*domain.Ticket
	notified    map[domain.NotificationStatus][]uuid.UUID
	notifyCalls int
	expired     int64
	expiredAt   time.Time
}

func newFakeTickets() *fakeTickets {
	return &fakeTickets{
		byStatus: make(map[domain.TicketStatus][]*domain.Ticket),
		toNotify: make(map[domain.NotificationStatus][]*domain.Ticket),
		notified: make(map[domain.NotificationStatus][]uuid.UUID),
	}
}

func (f *fakeTickets) FindByStatus(_ context.Context, limit int, statuses ...domain.TicketStatus) ([]*domain.Ticket, error) {
	var out []*domain.Ticket
	for _, s := range statuses {
		out = append(out, f.byStatus[s]...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTickets) FindForNotification(_ context.Context, kind domain.NotificationStatus, _ time.Time, _ int) ([]*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifyCalls++
	return f.toNotify[kind], nil
}

func (f *fakeTickets) UpdateNotificationStatus(_ context.Context, ids []uuid.UUID, status domain.NotificationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified[status] = append(f.notified[status], ids...)
	return nil
}

func (f *fakeTickets) ExpireEnded(_ context.Context, now time.Time) (int64, error) {
	f.expiredAt = now
	return f.expired, nil
}

type fakePayments struct {
	mu      sync.Mutex
	results map[string]*services.PaymentResult
	checked []string
	applied []uuid.UUID
}

func (f *fakePayments) CheckPayment(_ context.Context, paymentID string) (*services.PaymentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checked = append(f.checked, paymentID)
	if r, ok := f.results[paymentID]; ok {
		return r, nil
	}
	return nil, application.NewGatewayUnavailableError(errors.New("connection reset"))
}

func (f *fakePayments) ApplyPayment(_ context.Context, t *domain.Ticket, result *services.PaymentResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.RecordCheck()
	f.applied = append(f.applied, t.UUID)
	return t.ApplyPayment(result.Status, result.AcquiringStatus)
}

type fakeRefunds struct {
	mu        sync.Mutex
	requested []uuid.UUID
	checked   []string
	applied   map[uuid.UUID]domain.TicketStatus
}

func (f *fakeRefunds) RequestRefund(_ context.Context, t *domain.Ticket) (*services.RefundResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested = append(f.requested, t.UUID)
	return &services.RefundResult{Status: domain.RefundWaiting, RefundID: "ref-" + t.UUID.String()}, nil
}

func (f *fakeRefunds) CheckRefund(_ context.Context, _, refundID string) (*services.RefundResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checked = append(f.checked, refundID)
	return &services.RefundResult{Status: domain.RefundCompleted, RefundID: refundID}, nil
}

func (f *fakeRefunds) ApplyRefund(_ context.Context, t *domain.Ticket, result *services.RefundResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.RecordCheck()
	if err := t.ApplyRefund(result.Status, result.AcquiringStatus); err != nil {
		return err
	}
	f.applied[t.UUID] = t.Status
	return nil
}

type fakeTemplates struct{}

func (fakeTemplates) FindTemplate(_ context.Context, emailType string) (*application.EmailTemplate, error) {
	return &application.EmailTemplate{
		Type:    emailType,
		Subject: "Reminder",
		Message: "{event_name} at {datetime}: {url}",
	}, nil
}

func ticket(status domain.TicketStatus, paymentID string) *domain.Ticket {
	eventID := int64(1)
	t := &domain.Ticket{
		UUID:      uuid.New(),
		EventID:   &eventID,
		EventName: "Concert",
		UserEmail: "user@example.com",
		Status:    status,
	}
	if paymentID != "" {
		t.PaymentID = &paymentID
	}
	return t
}
