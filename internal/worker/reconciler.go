// Package worker runs the background sweeps that reconcile local ticket
// state with the acquirer and notify ticket holders.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
	"github.com/google/uuid"
)

type BillConfirmer interface {
	ConfirmBuying(ctx context.Context, billID string) (*services.ConfirmResult, error)
}

type PendingBills interface {
	ListPendingBills(ctx context.Context) ([]string, error)
	RemovePendingBill(ctx context.Context, billID string) error
}

type TicketStore interface {
	FindByStatus(ctx context.Context, limit int, statuses ...domain.TicketStatus) ([]*domain.Ticket, error)
	FindForNotification(ctx context.Context, kind domain.NotificationStatus, today time.Time, limit int) ([]*domain.Ticket, error)
	UpdateNotificationStatus(ctx context.Context, ids []uuid.UUID, status domain.NotificationStatus) error
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}

type PaymentChecker interface {
	CheckPayment(ctx context.Context, paymentID string) (*services.PaymentResult, error)
	ApplyPayment(ctx context.Context, ticket *domain.Ticket, result *services.PaymentResult) error
}

type RefundProcessor interface {
	RequestRefund(ctx context.Context, ticket *domain.Ticket) (*services.RefundResult, error)
	CheckRefund(ctx context.Context, paymentID, refundID string) (*services.RefundResult, error)
	ApplyRefund(ctx context.Context, ticket *domain.Ticket, result *services.RefundResult) error
}

// Dependencies groups what the sweeps read from and act on.
type Dependencies struct {
	Confirmer  BillConfirmer
	Bills      PendingBills
	Tickets    TicketStore
	Payments   PaymentChecker
	Refunds    RefundProcessor
	Dispatcher application.NotificationDispatcher
	Settings   application.EmailSettings
	Templates  application.EmailTemplates
}

type Reconciler struct {
	deps         Dependencies
	cfg          config.WorkerConfig
	eventURLBase string
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

func NewReconciler(
	deps Dependencies,
	cfg config.WorkerConfig,
	eventURLBase string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Reconciler {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Reconciler{
		deps:         deps,
		cfg:          cfg,
		eventURLBase: eventURLBase,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.logger.Info("starting background reconciler",
		"interval", r.cfg.Interval,
		"batch_size", r.cfg.BatchSize,
		"concurrency", r.cfg.Concurrency,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping background reconciler")
			return
		case <-ticker.C:
			r.run(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) {
	r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) {
	r.sweepBills(ctx)
	r.sweepPayments(ctx)
	r.sweepExpired(ctx)
	r.sweepRefunds(ctx)
	r.sweepNotifications(ctx)
}
